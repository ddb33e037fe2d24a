package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"peakdash-service/internal/checkins/core/domain"
	"peakdash-service/internal/checkins/core/ports"
)

const usersCollection = "users"

const (
	listDocumentsSQL = `
SELECT doc_id, data
FROM documents
WHERE collection = $1
`
	listDocIDsSQL = `
SELECT doc_id
FROM documents
WHERE collection = $1
`
	insertCheckInSQL = `
INSERT INTO documents (collection, doc_id, data)
VALUES ($1, $2, $3::jsonb)
`
)

type CheckInRepository struct {
	db DB
}

func NewCheckInRepository(db DB) *CheckInRepository {
	return &CheckInRepository{db: db}
}

var _ ports.CheckInRepositoryPort = (*CheckInRepository)(nil)

func (r *CheckInRepository) ListCheckIns(ctx context.Context, userID string) ([]domain.CheckIn, error) {
	collection := domain.Collection(userID)

	rows, err := r.db.QueryContext(ctx, listDocumentsSQL, collection)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", collection, err)
	}
	defer rows.Close()

	var items []domain.CheckIn
	for rows.Next() {
		var (
			id  string
			raw []byte
		)
		if err := rows.Scan(&id, &raw); err != nil {
			return nil, fmt.Errorf("scan %s: %w", collection, err)
		}

		var doc map[string]any
		if err := json.Unmarshal(raw, &doc); err != nil {
			return nil, fmt.Errorf("decode %s/%s: %w", collection, id, err)
		}
		items = append(items, domain.DecodeCheckIn(id, userID, doc))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list %s: %w", collection, err)
	}

	return items, nil
}

func (r *CheckInRepository) ListUserIDs(ctx context.Context) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, listDocIDsSQL, usersCollection)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan users: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}

	return ids, nil
}

func (r *CheckInRepository) AddCheckIn(ctx context.Context, c *domain.CheckIn) error {
	data, err := json.Marshal(c.Document())
	if err != nil {
		return fmt.Errorf("encode check-in: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, insertCheckInSQL, domain.Collection(c.UserID), c.ID, string(data)); err != nil {
		return fmt.Errorf("insert check-in: %w", err)
	}
	return nil
}
