package usecase

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	accounts "peakdash-service/internal/accounts/core/domain"
	"peakdash-service/internal/analytics/core/domain"
	"peakdash-service/internal/analytics/core/ports"
	"peakdash-service/internal/logging"
	"peakdash-service/internal/observability"
)

const AllTime = "all"

var (
	ErrInvalidTimeRange = errors.New("invalid time range")
	ErrForbidden        = errors.New("admin session required")
)

type GetDashboardInput struct {
	Screen    string // "all" or an exact screen name
	TimeRange string // "all" or a positive number of days
}

type GetDashboardUseCase struct {
	reader     ports.DocumentReaderPort
	collection string
	now        func() time.Time
}

func NewGetDashboardUseCase(reader ports.DocumentReaderPort, collection string) *GetDashboardUseCase {
	return &GetDashboardUseCase{
		reader:     reader,
		collection: collection,
		now:        time.Now,
	}
}

// WithClock overrides the time source; used by tests.
func (uc *GetDashboardUseCase) WithClock(now func() time.Time) *GetDashboardUseCase {
	uc.now = now
	return uc
}

// Execute fetches the event log once and derives every dashboard view from it.
func (uc *GetDashboardUseCase) Execute(ctx context.Context, session accounts.Session, in GetDashboardInput) (*domain.Dashboard, error) {
	if !session.Admin {
		return nil, ErrForbidden
	}

	days, err := ParseTimeRange(in.TimeRange)
	if err != nil {
		return nil, err
	}

	screen := strings.TrimSpace(in.Screen)
	if screen == "" {
		screen = domain.AllScreens
	}

	records, err := uc.fetchRecords(ctx)
	if err != nil {
		return nil, err
	}

	dashboard := domain.BuildDashboard(records, domain.Filter{Screen: screen, WindowDays: days}, uc.now())
	return &dashboard, nil
}

func (uc *GetDashboardUseCase) fetchRecords(ctx context.Context) ([]domain.EventRecord, error) {
	start := time.Now()
	docs, err := uc.reader.ListDocuments(ctx, uc.collection)
	observability.DocumentFetchDuration.WithLabelValues(uc.collection).Observe(time.Since(start).Seconds())
	if err != nil {
		observability.DocumentFetchErrors.WithLabelValues(uc.collection).Inc()
		logging.Ctx(ctx).Error().Err(err).Str("collection", uc.collection).Msg("event log fetch failed")
		return nil, err
	}

	records, dropped := domain.DecodeEventRecords(docs)
	if dropped > 0 {
		observability.RecordsDropped.WithLabelValues(uc.collection).Add(float64(dropped))
	}
	return records, nil
}

// ParseTimeRange turns "all" (or empty) into 0 and "N" into N days.
func ParseTimeRange(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, AllTime) {
		return 0, nil
	}
	days, err := strconv.Atoi(s)
	if err != nil || days <= 0 || days > domain.MaxWindowDays {
		return 0, ErrInvalidTimeRange
	}
	return days, nil
}
