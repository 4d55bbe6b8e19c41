package service

import (
	"github.com/deppfellow/promo-event/internal/repository"
	"github.com/deppfellow/promo-event/internal/server"
	"github.com/deppfellow/promo-event/internal/validation"
)

// Services groups the business services.
type Services struct {
	Event *EventService
}

func NewServices(s *server.Server, repos *repository.Repositories) *Services {
	v := validation.New(validation.MessagesFor(s.Config.Validation.Locale))

	return &Services{
		Event: NewEventService(repos.Event, v, s.Logger),
	}
}
