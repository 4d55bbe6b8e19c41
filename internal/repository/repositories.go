package repository

import (
	"github.com/deppfellow/promo-event/internal/server"
)

// Repositories groups every repository so services receive one value.
type Repositories struct {
	Event *EventRepository
}

// NewRepositories builds the repositories on top of the server's backend client.
func NewRepositories(s *server.Server) *Repositories {
	return &Repositories{
		Event: NewEventRepository(s.Backend),
	}
}
