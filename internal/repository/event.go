package repository

import (
	"context"
	"net/http"

	"github.com/deppfellow/promo-event/internal/model"
)

const (
	PathEvent   = "/event"
	PathRewards = "/rewards"
	PathFortune = "/fortune"
	PathInfo    = "/info"
)

// Doer is the part of backend.Client the repository needs.
type Doer interface {
	Do(ctx context.Context, op, method, path string, in, out any) error
}

// EventRepository reads the event data and stores form submissions on the
// backend.
type EventRepository struct {
	client Doer
}

func NewEventRepository(client Doer) *EventRepository {
	return &EventRepository{client: client}
}

// GetEventInfo fetches the event metadata.
func (r *EventRepository) GetEventInfo(ctx context.Context) (*model.EventInfo, error) {
	var info model.EventInfo
	if err := r.client.Do(ctx, "get_event_info", http.MethodGet, PathEvent, nil, &info); err != nil {
		return nil, err
	}
	return &info, nil
}

// GetRewards fetches the reward list in backend order. An empty list is
// returned as an empty, non-nil slice.
func (r *EventRepository) GetRewards(ctx context.Context) ([]model.Reward, error) {
	rewards := []model.Reward{}
	if err := r.client.Do(ctx, "get_rewards", http.MethodGet, PathRewards, nil, &rewards); err != nil {
		return nil, err
	}
	if rewards == nil {
		rewards = []model.Reward{}
	}
	return rewards, nil
}

// GetFortuneList fetches the fortune wheel segments in backend order.
func (r *EventRepository) GetFortuneList(ctx context.Context) ([]model.FortuneItem, error) {
	items := []model.FortuneItem{}
	if err := r.client.Do(ctx, "get_fortune_list", http.MethodGet, PathFortune, nil, &items); err != nil {
		return nil, err
	}
	if items == nil {
		items = []model.FortuneItem{}
	}
	return items, nil
}

// PostInfo submits info as-is and returns the backend's echo of it.
func (r *EventRepository) PostInfo(ctx context.Context, info model.UserInfo) (*model.UserInfo, error) {
	var echoed model.UserInfo
	if err := r.client.Do(ctx, "post_info", http.MethodPost, PathInfo, info, &echoed); err != nil {
		return nil, err
	}
	return &echoed, nil
}
