package ports

import (
	"context"

	"peakdash-service/internal/analytics/core/domain"
)

type DocumentReaderPort interface {
	// ListDocuments returns every document of the collection. No paging, no ordering guarantee.
	ListDocuments(ctx context.Context, collection string) ([]domain.Document, error)
}
