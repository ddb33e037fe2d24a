package fiber

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	accounts "peakdash-service/internal/accounts/core/domain"
	"peakdash-service/internal/analytics/core/domain"
	"peakdash-service/internal/analytics/core/usecase"
	"peakdash-service/internal/logging"

	"github.com/gofiber/fiber/v2"
)

const defaultRange = "30"

type GetDashboardUseCase interface {
	Execute(ctx context.Context, session accounts.Session, in usecase.GetDashboardInput) (*domain.Dashboard, error)
}

// SessionFunc extracts the authenticated session from the request.
type SessionFunc func(c *fiber.Ctx) (accounts.Session, bool)

type AnalyticsHandler struct {
	uc      GetDashboardUseCase
	session SessionFunc
}

func NewAnalyticsHandler(uc GetDashboardUseCase, session SessionFunc) *AnalyticsHandler {
	return &AnalyticsHandler{uc: uc, session: session}
}

// GetDashboard godoc
// @Summary Admin analytics dashboard
// @Description Aggregates the event log: average duration per screen, event type counts and daily volume
// @Tags Analytics
// @Produce json
// @Security BearerAuth
// @Param screen query string false "Screen name or all" default(all)
// @Param range query string false "Days back or all" default(30)
// @Success 200 {object} DashboardResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /admin/analytics [get]
func (h *AnalyticsHandler) GetDashboard(c *fiber.Ctx) error {
	session, ok := h.session(c)
	if !ok {
		return c.Status(http.StatusUnauthorized).JSON(ErrorResponse{
			Error: "unauthenticated",
		})
	}

	in := usecase.GetDashboardInput{
		Screen:    c.Query("screen", domain.AllScreens),
		TimeRange: c.Query("range", defaultRange),
	}

	res, err := h.uc.Execute(c.UserContext(), session, in)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidTimeRange):
			return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
				Error:   "invalid_time_range",
				Message: err.Error(),
			})
		case errors.Is(err, usecase.ErrForbidden):
			return c.Status(http.StatusForbidden).JSON(ErrorResponse{
				Error:   "forbidden",
				Message: err.Error(),
			})
		default:
			logging.Ctx(c.UserContext()).Error().Err(err).Msg("analytics dashboard failed")
			return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
				Error: "internal_server_error",
			})
		}
	}

	return c.Status(http.StatusOK).JSON(toDashboardResponse(res))
}

func toDashboardResponse(d *domain.Dashboard) DashboardResponse {
	resp := DashboardResponse{
		Screen:          d.Filter.Screen,
		Range:           usecase.AllTime,
		TotalEvents:     d.TotalEvents,
		Screens:         make([]string, 0, len(d.Screens)),
		AverageDuration: make([]ScreenDurationResponse, 0, len(d.AverageDuration)),
		EventTypes:      make([]EventTypeResponse, 0, len(d.EventTypes)),
		Daily:           make([]DailyCountResponse, 0, len(d.Daily)),
	}
	if d.Filter.WindowDays > 0 {
		resp.Range = strconv.Itoa(d.Filter.WindowDays)
	}

	resp.Screens = append(resp.Screens, d.Screens...)
	for _, s := range d.AverageDuration {
		resp.AverageDuration = append(resp.AverageDuration, ScreenDurationResponse{
			Screen:      s.Screen,
			AvgDuration: s.AvgDuration,
		})
	}
	for _, e := range d.EventTypes {
		resp.EventTypes = append(resp.EventTypes, EventTypeResponse{
			Name:  e.Name,
			Value: e.Value,
		})
	}
	for _, day := range d.Daily {
		resp.Daily = append(resp.Daily, DailyCountResponse{
			Date:  day.Date,
			Count: day.Count,
		})
	}

	return resp
}
