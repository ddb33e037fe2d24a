package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	accounts "peakdash-service/internal/accounts/core/domain"
	"peakdash-service/internal/events/core/domain"
	"peakdash-service/internal/events/core/ports"
	"peakdash-service/internal/validation"
)

var (
	ErrInvalidEvent    = errors.New("invalid event")
	ErrFutureTime      = errors.New("timestamp cannot be in the future")
	ErrUnauthenticated = errors.New("events require a signed-in user")
)

type StoreEventUseCase struct {
	repo ports.EventRepositoryPort
	now  func() time.Time
}

func NewStoreEventUseCase(repo ports.EventRepositoryPort) *StoreEventUseCase {
	return &StoreEventUseCase{repo: repo, now: time.Now}
}

// WithClock overrides the time source used for the future-timestamp check.
func (uc *StoreEventUseCase) WithClock(now func() time.Time) *StoreEventUseCase {
	uc.now = now
	return uc
}

type StoreEventInput struct {
	Screen     string   `validate:"required"`
	Event      string   `validate:"required"`
	Timestamp  int64    `validate:"gt=0"`
	DurationMs *float64 `validate:"omitempty,gte=0"`
	Metadata   map[string]any
}

// Execute stores one event for the session's user. A repeated event is reported as not created.
func (uc *StoreEventUseCase) Execute(ctx context.Context, session accounts.Session, in StoreEventInput) (bool, error) {
	if session.UserID == "" {
		return false, ErrUnauthenticated
	}

	in.Screen = strings.TrimSpace(in.Screen)
	in.Event = strings.TrimSpace(in.Event)
	if err := uc.validateInput(in); err != nil {
		return false, err
	}

	eventTime := time.Unix(in.Timestamp, 0).UTC()

	e := &domain.Event{
		UserID:     session.UserID,
		Screen:     in.Screen,
		Event:      in.Event,
		Timestamp:  eventTime,
		DurationMs: in.DurationMs,
		Metadata:   in.Metadata,
		DedupeKey:  domain.NewDedupeKey(session.UserID, in.Screen, in.Event, eventTime),
	}

	created, err := uc.repo.InsertEvent(ctx, e)
	if err != nil {
		return false, err
	}

	return created, nil
}

type BulkCreateEventsInput struct {
	Events []StoreEventInput
}

type BulkCreateEventsResult struct {
	Created    int
	Duplicates int
}

// BulkCreateEvents validates the whole batch before writing any of it.
func (uc *StoreEventUseCase) BulkCreateEvents(ctx context.Context, session accounts.Session, in BulkCreateEventsInput) (BulkCreateEventsResult, error) {
	var res BulkCreateEventsResult

	if session.UserID == "" {
		return res, ErrUnauthenticated
	}

	for i, ev := range in.Events {
		ev.Screen = strings.TrimSpace(ev.Screen)
		ev.Event = strings.TrimSpace(ev.Event)
		if err := uc.validateInput(ev); err != nil {
			return res, fmt.Errorf("event %d: %w", i, err)
		}
	}

	for _, ev := range in.Events {
		ok, err := uc.Execute(ctx, session, ev)
		if err != nil {
			return res, err
		}

		if ok {
			res.Created++
		} else {
			res.Duplicates++
		}
	}

	return res, nil
}

func (uc *StoreEventUseCase) validateInput(in StoreEventInput) error {
	if err := validation.ValidateStruct(in); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidEvent, err.Error())
	}

	if in.Timestamp > uc.now().Unix() {
		return ErrFutureTime
	}

	return nil
}
