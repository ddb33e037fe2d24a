package fiber

import (
	"context"
	"errors"
	"net/http"

	accounts "peakdash-service/internal/accounts/core/domain"
	"peakdash-service/internal/checkins/core/domain"
	"peakdash-service/internal/checkins/core/usecase"
	"peakdash-service/internal/logging"

	"github.com/gofiber/fiber/v2"
)

type CheckInUseCase interface {
	ListOwn(ctx context.Context, session accounts.Session) ([]domain.CheckIn, error)
	ListAll(ctx context.Context, session accounts.Session) ([]domain.CheckIn, error)
	Add(ctx context.Context, session accounts.Session, in usecase.AddCheckInInput) (*domain.CheckIn, error)
}

// SessionFunc extracts the authenticated session from the request.
type SessionFunc func(c *fiber.Ctx) (accounts.Session, bool)

type CheckInHandler struct {
	uc      CheckInUseCase
	session SessionFunc
}

func NewCheckInHandler(uc CheckInUseCase, session SessionFunc) *CheckInHandler {
	return &CheckInHandler{uc: uc, session: session}
}

// ListOwn godoc
// @Summary My check-in timeline
// @Description Returns the signed-in user's check-ins, newest first
// @Tags CheckIns
// @Produce json
// @Security BearerAuth
// @Success 200 {object} TimelineResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /checkins [get]
func (h *CheckInHandler) ListOwn(c *fiber.Ctx) error {
	session, ok := h.session(c)
	if !ok {
		return h.fail(c, usecase.ErrUnauthenticated)
	}

	items, err := h.uc.ListOwn(c.UserContext(), session)
	if err != nil {
		return h.fail(c, err)
	}
	return c.Status(http.StatusOK).JSON(toTimeline(items))
}

// ListAll godoc
// @Summary All check-ins
// @Description Returns every user's check-ins merged into one timeline, newest first
// @Tags CheckIns
// @Produce json
// @Security BearerAuth
// @Success 200 {object} TimelineResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /admin/checkins [get]
func (h *CheckInHandler) ListAll(c *fiber.Ctx) error {
	session, ok := h.session(c)
	if !ok {
		return h.fail(c, usecase.ErrUnauthenticated)
	}

	items, err := h.uc.ListAll(c.UserContext(), session)
	if err != nil {
		return h.fail(c, err)
	}
	return c.Status(http.StatusOK).JSON(toTimeline(items))
}

// Create godoc
// @Summary Add a check-in
// @Description Stores a photo check-in for the signed-in user
// @Tags CheckIns
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateCheckInRequest true "Check-in payload"
// @Success 201 {object} CheckInResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /checkins [post]
func (h *CheckInHandler) Create(c *fiber.Ctx) error {
	session, ok := h.session(c)
	if !ok {
		return h.fail(c, usecase.ErrUnauthenticated)
	}

	var req CreateCheckInRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid_json",
		})
	}

	item, err := h.uc.Add(c.UserContext(), session, usecase.AddCheckInInput{
		PhotoURL:  req.PhotoURL,
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
		Timestamp: req.Timestamp,
	})
	if err != nil {
		return h.fail(c, err)
	}
	return c.Status(http.StatusCreated).JSON(toCheckInResponse(*item))
}

func (h *CheckInHandler) fail(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, usecase.ErrInvalidCheckIn):
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Error:   "invalid_checkin",
			Message: err.Error(),
		})
	case errors.Is(err, usecase.ErrUnauthenticated):
		return c.Status(http.StatusUnauthorized).JSON(ErrorResponse{
			Error:   "unauthenticated",
			Message: err.Error(),
		})
	case errors.Is(err, usecase.ErrForbidden):
		return c.Status(http.StatusForbidden).JSON(ErrorResponse{
			Error:   "forbidden",
			Message: err.Error(),
		})
	default:
		logging.Ctx(c.UserContext()).Error().Err(err).Msg("check-in request failed")
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
			Error: "internal_server_error",
		})
	}
}

func toTimeline(items []domain.CheckIn) TimelineResponse {
	resp := TimelineResponse{CheckIns: make([]CheckInResponse, 0, len(items))}
	for _, item := range items {
		resp.CheckIns = append(resp.CheckIns, toCheckInResponse(item))
	}
	return resp
}

func toCheckInResponse(item domain.CheckIn) CheckInResponse {
	resp := CheckInResponse{
		ID:            item.ID,
		UserID:        item.UserID,
		PhotoURL:      item.PhotoURL,
		DateLabel:     item.DateLabel(),
		LocationLabel: item.LocationLabel(),
	}
	if !item.Timestamp.IsZero() {
		ts := item.Timestamp
		resp.Timestamp = &ts
	}
	if item.Location != nil {
		resp.Location = &LocationResponse{
			Latitude:  item.Location.Latitude,
			Longitude: item.Location.Longitude,
		}
	}
	return resp
}
