package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/deppfellow/promo-event/internal/model"
	"github.com/deppfellow/promo-event/internal/validation"
)

// EventStore is the data access surface EventService depends on.
type EventStore interface {
	GetEventInfo(ctx context.Context) (*model.EventInfo, error)
	GetRewards(ctx context.Context) ([]model.Reward, error)
	GetFortuneList(ctx context.Context) ([]model.FortuneItem, error)
	PostInfo(ctx context.Context, info model.UserInfo) (*model.UserInfo, error)
}

type EventService struct {
	store     EventStore
	validator *validation.Validator
	logger    *zerolog.Logger
}

func NewEventService(store EventStore, v *validation.Validator, logger *zerolog.Logger) *EventService {
	if v == nil {
		v = validation.New(validation.English)
	}
	if logger == nil {
		nop := zerolog.Nop()
		logger = &nop
	}
	return &EventService{store: store, validator: v, logger: logger}
}

func (s *EventService) EventInfo(ctx context.Context) (*model.EventInfo, error) {
	return s.store.GetEventInfo(ctx)
}

func (s *EventService) Rewards(ctx context.Context) ([]model.Reward, error) {
	return s.store.GetRewards(ctx)
}

func (s *EventService) FortuneList(ctx context.Context) ([]model.FortuneItem, error) {
	return s.store.GetFortuneList(ctx)
}

// Validate returns the per-field messages for info without submitting it.
func (s *EventService) Validate(info model.UserInfo) validation.ValidationErrors {
	return s.validator.UserInfo(info)
}

// Submit validates info and, when every field passes, posts it once.
// A rejected form yields *validation.SubmissionError and no backend call.
// Backend failures are returned unchanged; nothing is retried.
func (s *EventService) Submit(ctx context.Context, info model.UserInfo) (*model.UserInfo, error) {
	result := s.validator.UserInfo(info)
	if !result.Valid() {
		s.log(ctx).Debug().
			Int("invalid_fields", len(result.FieldErrors())).
			Msg("submission rejected by validation")
		return nil, &validation.SubmissionError{Fields: result}
	}

	echoed, err := s.store.PostInfo(ctx, info)
	if err != nil {
		return nil, err
	}

	s.log(ctx).Info().Msg("submission accepted by backend")
	return echoed, nil
}

// log prefers the request-scoped logger carried by ctx.
func (s *EventService) log(ctx context.Context) *zerolog.Logger {
	if l := zerolog.Ctx(ctx); l.GetLevel() != zerolog.Disabled {
		return l
	}
	return s.logger
}
