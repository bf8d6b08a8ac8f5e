package services

import (
	"context"

	"resource-directory/internal/models"
)

// CategoryFilter yields the resources tagged with a category.
type CategoryFilter struct {
	store ResourceStore
}

func NewCategoryFilter(store ResourceStore) *CategoryFilter {
	return &CategoryFilter{store: store}
}

// Filter returns every resource associated with categoryID in storage order.
// Rows repeated by the join collapse to their first occurrence, and rows whose
// loaded associations do not include the category are dropped.
func (f *CategoryFilter) Filter(ctx context.Context, categoryID int64) ([]*models.Resource, error) {
	rows, err := f.store.ResourcesByCategory(ctx, categoryID)
	if err != nil {
		return nil, storageError("resources by category", err)
	}

	seen := make(map[int64]struct{}, len(rows))
	out := make([]*models.Resource, 0, len(rows))
	for _, r := range rows {
		if r == nil {
			continue
		}
		if _, dup := seen[r.ID]; dup {
			continue
		}
		if r.Categories != nil && !r.HasCategory(categoryID) {
			continue
		}
		seen[r.ID] = struct{}{}
		out = append(out, r)
	}

	return out, nil
}
