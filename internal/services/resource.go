package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"resource-directory/internal/models"
)

// ResourceService is the entry point for directory reads. It holds no
// per-request state and is safe for concurrent use.
type ResourceService struct {
	store     ResourceStore
	validator *SearchValidator
	filter    *CategoryFilter
	ranker    *DistanceRanker
	detail    *ResourceDetailAssembler
	logr      *zap.Logger
}

func NewResourceService(store ResourceStore, distance DistanceFunc, logr *zap.Logger) *ResourceService {
	if logr == nil {
		logr = zap.NewNop()
	}
	return &ResourceService{
		store:     store,
		validator: NewSearchValidator(store),
		filter:    NewCategoryFilter(store),
		ranker:    NewDistanceRanker(distance),
		detail:    NewResourceDetailAssembler(store),
		logr:      logr,
	}
}

// Search validates params, filters by category and, when coordinates were
// supplied, ranks by distance. Without coordinates the filtered set keeps
// storage order. Validation errors are returned before any storage read of
// resources happens.
func (s *ResourceService) Search(ctx context.Context, params models.SearchParams) ([]*models.Resource, error) {
	query, err := s.validator.Validate(ctx, params)
	if err != nil {
		return nil, err
	}

	resources, err := s.filter.Filter(ctx, query.CategoryID)
	if err != nil {
		return nil, fmt.Errorf("search category %d: %w", query.CategoryID, err)
	}

	if !query.Ranked() {
		return resources, nil
	}

	ranking := s.ranker.Rank(*query.Origin, resources)
	if ranking.Unplaced > 0 {
		s.logr.Debug("resources without coordinates excluded from ranking",
			zap.Int64("category_id", query.CategoryID),
			zap.Int("excluded", ranking.Unplaced),
			zap.Int("ranked", len(ranking.Ranked)))
	}

	return ranking.Resources(), nil
}

// GetResourceByID returns the nested detail view of one resource.
func (s *ResourceService) GetResourceByID(ctx context.Context, id int64) (*models.ResourceDetail, error) {
	return s.detail.Assemble(ctx, id)
}

// ListCategories returns every category ordered by name.
func (s *ResourceService) ListCategories(ctx context.Context) ([]*models.Category, error) {
	categories, err := s.store.ListCategories(ctx)
	if err != nil {
		return nil, storageError("list categories", err)
	}
	return categories, nil
}
