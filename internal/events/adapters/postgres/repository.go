package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"peakdash-service/internal/events/core/domain"
	"peakdash-service/internal/events/core/ports"
)

// EventRepository appends events to the document collection the dashboard reads.
type EventRepository struct {
	db         DB
	collection string
}

func NewEventRepository(db DB, collection string) *EventRepository {
	return &EventRepository{db: db, collection: collection}
}

var _ ports.EventRepositoryPort = (*EventRepository)(nil)

// the dedupe key doubles as the document id
const insertEventSQL = `
INSERT INTO documents (
    collection,
    doc_id,
    data
) VALUES (
    $1, $2, $3::jsonb
)
ON CONFLICT (collection, doc_id) DO NOTHING;
`

func (r *EventRepository) InsertEvent(ctx context.Context, e *domain.Event) (bool, error) {
	data, err := json.Marshal(e.Document())
	if err != nil {
		return false, fmt.Errorf("encode event: %w", err)
	}

	res, err := r.db.ExecContext(ctx, insertEventSQL,
		r.collection,
		e.DedupeKey,
		string(data),
	)
	if err != nil {
		return false, err
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return false, err
	}

	// rows == 1  -> new record
	// rows == 0  -> duplicate (ON CONFLICT DO NOTHING)
	return rows > 0, nil
}
