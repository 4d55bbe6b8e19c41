package handler

import (
	"github.com/deppfellow/promo-event/internal/server"
	"github.com/deppfellow/promo-event/internal/service"
)

// Handlers groups every HTTP handler for the router.
type Handlers struct {
	Event   *EventHandler
	Health  *HealthHandler
	OpenAPI *OpenAPIHandler
}

func NewHandlers(s *server.Server, services *service.Services) *Handlers {
	return &Handlers{
		Event:   NewEventHandler(s, services.Event),
		Health:  NewHealthHandler(s),
		OpenAPI: NewOpenAPIHandler(s),
	}
}
