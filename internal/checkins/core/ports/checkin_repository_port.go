package ports

import (
	"context"

	"peakdash-service/internal/checkins/core/domain"
)

type CheckInRepositoryPort interface {
	// ListCheckIns returns the user's check-ins in storage order.
	ListCheckIns(ctx context.Context, userID string) ([]domain.CheckIn, error)
	// ListUserIDs returns the id of every document in the users collection.
	ListUserIDs(ctx context.Context) ([]string, error)
	AddCheckIn(ctx context.Context, c *domain.CheckIn) error
}
