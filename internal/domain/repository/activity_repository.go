package repository

import (
	"context"

	"github.com/relocaid/relocaid-api/internal/domain/entity"
	"github.com/relocaid/relocaid-api/pkg/pagination"
)

// ActivityLogRepository defines the interface for activity log operations
type ActivityLogRepository interface {
	Create(ctx context.Context, log *entity.ActivityLog) error
	// List returns one page of activity entries, newest first, optionally
	// filtered by entity type.
	List(ctx context.Context, params *pagination.PaginationParams, entityType string) ([]entity.ActivityLog, int64, error)
}
