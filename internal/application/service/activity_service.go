package service

import (
	"context"
	"log"

	"github.com/google/uuid"
	"github.com/relocaid/relocaid-api/internal/domain/entity"
	"github.com/relocaid/relocaid-api/internal/domain/repository"
	"github.com/relocaid/relocaid-api/pkg/pagination"
)

// ActivityService records who did what in the dashboard
type ActivityService struct {
	activityRepo repository.ActivityLogRepository
}

// NewActivityService creates a new activity service
func NewActivityService(activityRepo repository.ActivityLogRepository) *ActivityService {
	return &ActivityService{activityRepo: activityRepo}
}

// Record writes an activity entry in the background. Logging failures are
// never propagated to the operation being recorded.
func (s *ActivityService) Record(userID *uuid.UUID, userEmail, action, entityType, entityID string, details *string) {
	go func() {
		entry := &entity.ActivityLog{
			UserID:     userID,
			UserEmail:  userEmail,
			Action:     action,
			EntityType: entityType,
			EntityID:   entityID,
			Details:    details,
		}
		if err := s.activityRepo.Create(context.Background(), entry); err != nil {
			log.Printf("Warning: failed to record activity %s %s/%s: %v", action, entityType, entityID, err)
		}
	}()
}

// ListActivity returns one page of the activity log, newest first
func (s *ActivityService) ListActivity(ctx context.Context, params *pagination.PaginationParams, entityType string) (*pagination.PaginatedResult[entity.ActivityLog], error) {
	logs, total, err := s.activityRepo.List(ctx, params, entityType)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Page, params.PerPage, total)
	return pagination.NewPaginatedResult(logs, pag), nil
}
