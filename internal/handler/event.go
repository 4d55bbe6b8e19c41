package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/deppfellow/promo-event/internal/model"
	"github.com/deppfellow/promo-event/internal/server"
	"github.com/deppfellow/promo-event/internal/service"
	"github.com/deppfellow/promo-event/internal/validation"
)

// EventHandler serves the event page data and the participation form.
type EventHandler struct {
	Handler
	events    *service.EventService
	validator *validation.Validator
}

func NewEventHandler(s *server.Server, events *service.EventService) *EventHandler {
	return &EventHandler{
		Handler:   NewHandler(s),
		events:    events,
		validator: validation.New(validation.MessagesFor(s.Config.Validation.Locale)),
	}
}

// SubmitInfoRequest is the participation form. It rejects itself with
// per-field messages when any rule fails.
type SubmitInfoRequest struct {
	model.UserInfo
	validator *validation.Validator
}

func (r *SubmitInfoRequest) Validate() error {
	if fieldErrs := validation.AsCustomErrors(r.validator.UserInfo(r.UserInfo)); len(fieldErrs) > 0 {
		return fieldErrs
	}
	return nil
}

// CheckInfoRequest binds the same form but never rejects it; the handler
// reports the messages instead.
type CheckInfoRequest struct {
	model.UserInfo
}

func (r *CheckInfoRequest) Validate() error { return nil }

func (h *EventHandler) GetEventInfo() echo.HandlerFunc {
	return Handle(h.Handler, func(c echo.Context, _ *EmptyRequest) (*model.EventInfo, error) {
		return h.events.EventInfo(c.Request().Context())
	}, http.StatusOK, newEmptyRequest)
}

func (h *EventHandler) GetRewards() echo.HandlerFunc {
	return Handle(h.Handler, func(c echo.Context, _ *EmptyRequest) ([]model.Reward, error) {
		return h.events.Rewards(c.Request().Context())
	}, http.StatusOK, newEmptyRequest)
}

func (h *EventHandler) GetFortuneList() echo.HandlerFunc {
	return Handle(h.Handler, func(c echo.Context, _ *EmptyRequest) ([]model.FortuneItem, error) {
		return h.events.FortuneList(c.Request().Context())
	}, http.StatusOK, newEmptyRequest)
}

// SubmitInfo forwards a valid form to the backend and returns its echo.
func (h *EventHandler) SubmitInfo() echo.HandlerFunc {
	return Handle(h.Handler, func(c echo.Context, req *SubmitInfoRequest) (*model.UserInfo, error) {
		return h.events.Submit(c.Request().Context(), req.UserInfo)
	}, http.StatusCreated, func() *SubmitInfoRequest {
		return &SubmitInfoRequest{validator: h.validator}
	})
}

// CheckInfo returns the validation record of a form without submitting it.
func (h *EventHandler) CheckInfo() echo.HandlerFunc {
	return Handle(h.Handler, func(c echo.Context, req *CheckInfoRequest) (validation.ValidationErrors, error) {
		return h.events.Validate(req.UserInfo), nil
	}, http.StatusOK, func() *CheckInfoRequest {
		return &CheckInfoRequest{}
	})
}
