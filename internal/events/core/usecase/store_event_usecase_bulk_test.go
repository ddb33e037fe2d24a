package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	accounts "peakdash-service/internal/accounts/core/domain"
	"peakdash-service/internal/events/core/domain"
)

// Fake repo
type fakeBulkRepo struct {
	InsertCalls []*domain.Event
	Results     []bool
	Err         error
}

func (f *fakeBulkRepo) InsertEvent(ctx context.Context, e *domain.Event) (bool, error) {
	if f.Err != nil {
		return false, f.Err
	}
	f.InsertCalls = append(f.InsertCalls, e)

	if len(f.Results) == 0 {
		// default: created
		return true, nil
	}

	res := f.Results[0]
	f.Results = f.Results[1:]
	return res, nil
}

var bulkSession = accounts.Session{UserID: "user_1"}

func TestBulkCreateEvents_AllCreated(t *testing.T) {
	ctx := context.Background()

	repo := &fakeBulkRepo{
		Results: []bool{true, true, true},
	}

	uc := NewStoreEventUseCase(repo)

	now := time.Now().Add(-time.Minute).Unix()

	input := BulkCreateEventsInput{
		Events: []StoreEventInput{
			{Screen: "Home", Event: "view", Timestamp: now, Metadata: map[string]any{"source": "push"}},
			{Screen: "Profile", Event: "view", Timestamp: now},
			{Screen: "Profile", Event: "click", Timestamp: now},
		},
	}

	res, err := uc.BulkCreateEvents(ctx, bulkSession, input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if res.Created != 3 {
		t.Errorf("expected Created=3, got %d", res.Created)
	}
	if res.Duplicates != 0 {
		t.Errorf("expected Duplicates=0, got %d", res.Duplicates)
	}

	if len(repo.InsertCalls) != 3 {
		t.Fatalf("expected 3 InsertEvent calls, got %d", len(repo.InsertCalls))
	}
	for _, e := range repo.InsertCalls {
		if e.UserID != "user_1" {
			t.Errorf("expected every event to carry the session user, got %q", e.UserID)
		}
	}
}

func TestBulkCreateEvents_MixedCreatedAndDuplicate(t *testing.T) {
	ctx := context.Background()

	// created, duplicate, created
	repo := &fakeBulkRepo{
		Results: []bool{true, false, true},
	}

	uc := NewStoreEventUseCase(repo)

	now := time.Now().Add(-time.Minute).Unix()

	input := BulkCreateEventsInput{
		Events: []StoreEventInput{
			{Screen: "Home", Event: "view", Timestamp: now},
			{Screen: "Home", Event: "view", Timestamp: now},
			{Screen: "Home", Event: "click", Timestamp: now},
		},
	}

	res, err := uc.BulkCreateEvents(ctx, bulkSession, input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if res.Created != 2 {
		t.Errorf("expected Created=2, got %d", res.Created)
	}
	if res.Duplicates != 1 {
		t.Errorf("expected Duplicates=1, got %d", res.Duplicates)
	}

	if len(repo.InsertCalls) != 3 {
		t.Errorf("expected 3 InsertEvent calls, got %d", len(repo.InsertCalls))
	}
	if repo.InsertCalls[0].DedupeKey != repo.InsertCalls[1].DedupeKey {
		t.Errorf("identical events should share a dedupe key")
	}
}

func TestBulkCreateEvents_ValidationErrorInOneEvent(t *testing.T) {
	ctx := context.Background()

	repo := &fakeBulkRepo{}
	uc := NewStoreEventUseCase(repo)

	now := time.Now().Add(-time.Minute).Unix()

	input := BulkCreateEventsInput{
		Events: []StoreEventInput{
			{Screen: "Home", Event: "view", Timestamp: now},
			// Error : empty Event
			{Screen: "Home", Event: "", Timestamp: now},
			{Screen: "Home", Event: "click", Timestamp: now},
		},
	}

	_, err := uc.BulkCreateEvents(ctx, bulkSession, input)
	if err == nil {
		t.Fatal("expected error, got nil")
	}

	if !errors.Is(err, ErrInvalidEvent) {
		t.Errorf("expected ErrInvalidEvent, got %v", err)
	}

	if len(repo.InsertCalls) != 0 {
		t.Errorf("expected 0 InsertEvent calls, got %d", len(repo.InsertCalls))
	}
}

func TestBulkCreateEvents_RepositoryErrorStops(t *testing.T) {
	repo := &fakeBulkRepo{Err: errors.New("db failure")}
	uc := NewStoreEventUseCase(repo)

	now := time.Now().Add(-time.Minute).Unix()
	input := BulkCreateEventsInput{
		Events: []StoreEventInput{
			{Screen: "Home", Event: "view", Timestamp: now},
		},
	}

	res, err := uc.BulkCreateEvents(context.Background(), bulkSession, input)
	if err == nil || err.Error() != "db failure" {
		t.Fatalf("expected db failure, got %v", err)
	}
	if res.Created != 0 || res.Duplicates != 0 {
		t.Errorf("expected empty result, got %+v", res)
	}
}

func TestBulkCreateEvents_RequiresUser(t *testing.T) {
	uc := NewStoreEventUseCase(&fakeBulkRepo{})

	_, err := uc.BulkCreateEvents(context.Background(), accounts.Session{}, BulkCreateEventsInput{})
	if !errors.Is(err, ErrUnauthenticated) {
		t.Fatalf("expected ErrUnauthenticated, got %v", err)
	}
}
