package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"peakdash-service/internal/analytics/core/domain"
)

const listDocumentsSQL = `
SELECT doc_id, data
FROM documents
WHERE collection = $1
`

type DocumentReader struct {
	db DB
}

func NewDocumentReader(db DB) *DocumentReader {
	return &DocumentReader{db: db}
}

// ListDocuments returns every document of the collection, unordered and unpaged.
func (r *DocumentReader) ListDocuments(ctx context.Context, collection string) ([]domain.Document, error) {
	rows, err := r.db.QueryContext(ctx, listDocumentsSQL, collection)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", collection, err)
	}
	defer rows.Close()

	var docs []domain.Document
	for rows.Next() {
		var (
			id  string
			raw []byte
		)
		if err := rows.Scan(&id, &raw); err != nil {
			return nil, fmt.Errorf("scan %s: %w", collection, err)
		}

		doc := domain.Document{}
		if err := json.Unmarshal(raw, &doc); err != nil {
			return nil, fmt.Errorf("decode %s/%s: %w", collection, id, err)
		}
		docs = append(docs, doc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list %s: %w", collection, err)
	}

	return docs, nil
}
