package repository

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deppfellow/promo-event/internal/config"
	"github.com/deppfellow/promo-event/internal/errs"
	"github.com/deppfellow/promo-event/internal/lib/backend"
	"github.com/deppfellow/promo-event/internal/model"
)

type request struct {
	method string
	path   string
	body   []byte
}

type recorder struct {
	mu   sync.Mutex
	reqs []request
}

func (r *recorder) add(req request) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.reqs = append(r.reqs, req)
}

func (r *recorder) all() []request {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]request(nil), r.reqs...)
}

// fakeBackend echoes POST bodies and answers GETs with the body registered
// for the path.
func fakeBackend(t *testing.T, responses map[string]string) (*EventRepository, *recorder) {
	t.Helper()

	seen := &recorder{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		seen.add(request{method: r.Method, path: r.URL.Path, body: body})

		if r.Method == http.MethodPost {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write(body)
			return
		}
		resp, ok := responses[r.URL.Path]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, resp)
	}))
	t.Cleanup(srv.Close)

	return newRepo(t, srv.URL), seen
}

func newRepo(t *testing.T, baseURL string) *EventRepository {
	t.Helper()

	client, err := backend.New(config.BackendConfig{BaseURL: baseURL, Timeout: 2 * time.Second, HealthPath: "/event"}, nil)
	require.NoError(t, err)
	return NewEventRepository(client)
}

func TestGetEventInfo(t *testing.T) {
	repo, seen := fakeBackend(t, map[string]string{
		PathEvent: `{"id":1,"period":"2024.01.01 ~ 2024.01.31","target":"All users","description":"Spin the wheel"}`,
	})

	info, err := repo.GetEventInfo(context.Background())
	require.NoError(t, err)

	assert.Equal(t, &model.EventInfo{ID: 1, Period: "2024.01.01 ~ 2024.01.31", Target: "All users", Description: "Spin the wheel"}, info)
	reqs := seen.all()
	require.Len(t, reqs, 1)
	assert.Equal(t, http.MethodGet, reqs[0].method)
	assert.Equal(t, PathEvent, reqs[0].path)
}

func TestGetRewardsKeepsOrder(t *testing.T) {
	repo, _ := fakeBackend(t, map[string]string{
		PathRewards: `[
			{"id":2,"name":"Coffee","brand":"Cafe","image":"/c.png","validDate":"2024-12-31"},
			{"id":1,"name":"Cake","brand":"Bakery","image":"/k.png","validDate":"2024-06-30"}
		]`,
	})

	rewards, err := repo.GetRewards(context.Background())
	require.NoError(t, err)

	require.Len(t, rewards, 2)
	assert.Equal(t, 2, rewards[0].ID)
	assert.Equal(t, "2024-12-31", rewards[0].ValidDate)
	assert.Equal(t, "Cake", rewards[1].Name)
}

func TestEmptyListsAreNonNil(t *testing.T) {
	for _, body := range []string{`[]`, `null`} {
		t.Run(body, func(t *testing.T) {
			repo, _ := fakeBackend(t, map[string]string{PathRewards: body, PathFortune: body})

			rewards, err := repo.GetRewards(context.Background())
			require.NoError(t, err)
			assert.NotNil(t, rewards)
			assert.Empty(t, rewards)

			items, err := repo.GetFortuneList(context.Background())
			require.NoError(t, err)
			assert.NotNil(t, items)
			assert.Empty(t, items)
		})
	}
}

func TestGetFortuneList(t *testing.T) {
	repo, seen := fakeBackend(t, map[string]string{
		PathFortune: `[{"id":1,"label":"Lucky","icon":"🍀"},{"id":2,"label":"Try again","icon":"🔁"}]`,
	})

	items, err := repo.GetFortuneList(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []model.FortuneItem{{ID: 1, Label: "Lucky", Icon: "🍀"}, {ID: 2, Label: "Try again", Icon: "🔁"}}, items)
	assert.Equal(t, PathFortune, seen.all()[0].path)
}

func TestPostInfoSendsExactBody(t *testing.T) {
	repo, seen := fakeBackend(t, nil)
	info := model.UserInfo{Name: "Kim", Phone: "010-1234-5678", Email: "a@b.com", AgreedTerms: true}

	echoed, err := repo.PostInfo(context.Background(), info)
	require.NoError(t, err)
	assert.Equal(t, info, *echoed)

	reqs := seen.all()
	require.Len(t, reqs, 1)
	assert.Equal(t, http.MethodPost, reqs[0].method)
	assert.Equal(t, PathInfo, reqs[0].path)

	var sent map[string]any
	require.NoError(t, json.Unmarshal(reqs[0].body, &sent))
	assert.Equal(t, map[string]any{
		"name":        "Kim",
		"phone":       "010-1234-5678",
		"email":       "a@b.com",
		"agreedTerms": true,
	}, sent)
}

func TestServerErrorPropagates(t *testing.T) {
	repo, _ := fakeBackend(t, map[string]string{})

	_, err := repo.GetEventInfo(context.Background())
	var serverErr *errs.ServerError
	require.ErrorAs(t, err, &serverErr)
	assert.Equal(t, http.StatusNotFound, serverErr.StatusCode)
}

func TestNetworkErrorWithoutRetry(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		// Drop the connection without a response.
		if hj, ok := w.(http.Hijacker); ok {
			if conn, _, err := hj.Hijack(); err == nil {
				_ = conn.Close()
			}
		}
	}))
	defer srv.Close()

	repo := newRepo(t, srv.URL)
	calls := map[string]func() error{
		"event":   func() error { _, err := repo.GetEventInfo(context.Background()); return err },
		"rewards": func() error { _, err := repo.GetRewards(context.Background()); return err },
		"fortune": func() error { _, err := repo.GetFortuneList(context.Background()); return err },
	}

	for name, call := range calls {
		t.Run(name, func(t *testing.T) {
			before := hits.Load()
			err := call()
			assert.True(t, errs.IsNetworkError(err), "got %v", err)
			assert.Equal(t, before+1, hits.Load())
		})
	}
}
