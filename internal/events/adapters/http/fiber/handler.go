package fiber

import (
	"context"
	"errors"
	"net/http"

	accounts "peakdash-service/internal/accounts/core/domain"
	"peakdash-service/internal/events/core/usecase"
	"peakdash-service/internal/logging"

	"github.com/gofiber/fiber/v2"
)

type StoreEventUseCase interface {
	Execute(ctx context.Context, session accounts.Session, in usecase.StoreEventInput) (bool, error)
	BulkCreateEvents(ctx context.Context, session accounts.Session, in usecase.BulkCreateEventsInput) (usecase.BulkCreateEventsResult, error)
}

// SessionFunc extracts the authenticated session from the request.
type SessionFunc func(c *fiber.Ctx) (accounts.Session, bool)

type EventHandler struct {
	storeUC StoreEventUseCase
	session SessionFunc
}

func NewEventHandler(storeUC StoreEventUseCase, session SessionFunc) *EventHandler {
	return &EventHandler{storeUC: storeUC, session: session}
}

// CreateEvent godoc
// @Summary Record an app event
// @Description Stores a single event for the signed-in user with idempotency handling
// @Tags Events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateEventRequest true "Event payload"
// @Success 201 {object} CreateEventResponse
// @Success 200 {object} CreateEventResponse "Duplicate event"
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /events [post]
func (h *EventHandler) CreateEvent(c *fiber.Ctx) error {
	session, ok := h.session(c)
	if !ok {
		return h.fail(c, usecase.ErrUnauthenticated)
	}

	var req CreateEventRequest

	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid_json",
		})
	}

	created, err := h.storeUC.Execute(c.UserContext(), session, toInput(req))
	if err != nil {
		return h.fail(c, err)
	}

	if !created {
		resp := CreateEventResponse{
			Status: "duplicate",
		}
		return c.Status(http.StatusOK).JSON(resp)
	}

	resp := CreateEventResponse{
		Status: "created",
	}
	return c.Status(http.StatusCreated).JSON(resp)
}

// BulkCreateEvents godoc
// @Summary Bulk record app events
// @Description Accepts a list of events for the signed-in user and stores them individually
// @Tags Events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body BulkCreateEventsRequest true "Bulk event payload"
// @Success 201 {object} BulkCreateEventsResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /events/bulk [post]
func (h *EventHandler) BulkCreateEvents(c *fiber.Ctx) error {
	session, ok := h.session(c)
	if !ok {
		return h.fail(c, usecase.ErrUnauthenticated)
	}

	var req BulkCreateEventsRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid_json",
		})
	}

	if len(req.Events) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "events_list_required",
		})
	}

	inputs := make([]usecase.StoreEventInput, len(req.Events))
	for i, e := range req.Events {
		inputs[i] = toInput(e)
	}

	result, err := h.storeUC.BulkCreateEvents(
		c.UserContext(),
		session,
		usecase.BulkCreateEventsInput{Events: inputs},
	)
	if err != nil {
		return h.fail(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(BulkCreateEventsResponse{
		Created:    result.Created,
		Duplicates: result.Duplicates,
	})
}

func (h *EventHandler) fail(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, usecase.ErrInvalidEvent),
		errors.Is(err, usecase.ErrFutureTime):
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Error:   "invalid_event",
			Message: err.Error(),
		})
	case errors.Is(err, usecase.ErrUnauthenticated):
		return c.Status(http.StatusUnauthorized).JSON(ErrorResponse{
			Error:   "unauthenticated",
			Message: err.Error(),
		})
	default:
		logging.Ctx(c.UserContext()).Error().Err(err).Msg("event write failed")
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
			Error: "internal_server_error",
		})
	}
}

func toInput(req CreateEventRequest) usecase.StoreEventInput {
	return usecase.StoreEventInput{
		Screen:     req.Screen,
		Event:      req.Event,
		Timestamp:  req.Timestamp,
		DurationMs: req.DurationMs,
		Metadata:   req.Metadata,
	}
}
