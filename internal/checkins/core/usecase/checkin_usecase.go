package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	accounts "peakdash-service/internal/accounts/core/domain"
	"peakdash-service/internal/checkins/core/domain"
	"peakdash-service/internal/checkins/core/ports"
	"peakdash-service/internal/logging"
	"peakdash-service/internal/validation"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

var (
	ErrInvalidCheckIn  = errors.New("invalid check-in")
	ErrUnauthenticated = errors.New("check-ins require a signed-in user")
	ErrForbidden       = errors.New("admin session required")
)

type CheckInUseCase struct {
	repo        ports.CheckInRepositoryPort
	concurrency int
	now         func() time.Time
}

func NewCheckInUseCase(repo ports.CheckInRepositoryPort, concurrency int) *CheckInUseCase {
	if concurrency <= 0 {
		concurrency = 1
	}
	return &CheckInUseCase{repo: repo, concurrency: concurrency, now: time.Now}
}

// WithClock overrides the time source used for check-ins without a timestamp.
func (uc *CheckInUseCase) WithClock(now func() time.Time) *CheckInUseCase {
	uc.now = now
	return uc
}

// ListOwn returns the session user's timeline.
func (uc *CheckInUseCase) ListOwn(ctx context.Context, session accounts.Session) ([]domain.CheckIn, error) {
	if session.UserID == "" {
		return nil, ErrUnauthenticated
	}

	items, err := uc.repo.ListCheckIns(ctx, session.UserID)
	if err != nil {
		return nil, err
	}

	domain.SortTimeline(items)
	return items, nil
}

// ListAll merges every user's check-ins into one timeline. Users are fetched
// concurrently; the first failure cancels the remaining fetches.
func (uc *CheckInUseCase) ListAll(ctx context.Context, session accounts.Session) ([]domain.CheckIn, error) {
	if !session.Admin {
		return nil, ErrForbidden
	}

	userIDs, err := uc.repo.ListUserIDs(ctx)
	if err != nil {
		return nil, err
	}

	perUser := make([][]domain.CheckIn, len(userIDs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(uc.concurrency)
	for i, id := range userIDs {
		i, id := i, id
		g.Go(func() error {
			items, err := uc.repo.ListCheckIns(gctx, id)
			if err != nil {
				return fmt.Errorf("check-ins of %s: %w", id, err)
			}
			perUser[i] = items
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		logging.Ctx(ctx).Error().Err(err).Int("users", len(userIDs)).Msg("check-in fan-out failed")
		return nil, err
	}

	var all []domain.CheckIn
	for _, items := range perUser {
		all = append(all, items...)
	}
	domain.SortTimeline(all)
	return all, nil
}

type AddCheckInInput struct {
	PhotoURL  string   `validate:"required,url"`
	Latitude  *float64 `validate:"omitempty,gte=-90,lte=90"`
	Longitude *float64 `validate:"omitempty,gte=-180,lte=180"`
	Timestamp int64    `validate:"gte=0"` // 0 means now
}

func (uc *CheckInUseCase) Add(ctx context.Context, session accounts.Session, in AddCheckInInput) (*domain.CheckIn, error) {
	if session.UserID == "" {
		return nil, ErrUnauthenticated
	}
	if err := validation.ValidateStruct(in); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidCheckIn, err.Error())
	}
	if (in.Latitude == nil) != (in.Longitude == nil) {
		return nil, fmt.Errorf("%w: latitude and longitude go together", ErrInvalidCheckIn)
	}

	ts := uc.now().UTC().Truncate(time.Second)
	if in.Timestamp > 0 {
		ts = time.Unix(in.Timestamp, 0).UTC()
	}

	c := &domain.CheckIn{
		ID:        uuid.NewString(),
		UserID:    session.UserID,
		Timestamp: ts,
		PhotoURL:  in.PhotoURL,
	}
	if in.Latitude != nil && in.Longitude != nil {
		c.Location = &domain.Location{Latitude: *in.Latitude, Longitude: *in.Longitude}
	}

	if err := uc.repo.AddCheckIn(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}
