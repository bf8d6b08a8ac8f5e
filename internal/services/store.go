package services

import (
	"context"

	"resource-directory/internal/models"
)

// CategoryLookup resolves category identifiers.
type CategoryLookup interface {
	CategoryExists(ctx context.Context, id int64) (bool, error)
}

// ResourceStore is the storage collaborator the search and detail paths read from.
type ResourceStore interface {
	CategoryLookup

	// ResourcesByCategory returns the resources tagged with categoryID, with
	// Address and Categories loaded, in storage order (id ascending).
	ResourcesByCategory(ctx context.Context, categoryID int64) ([]*models.Resource, error)

	// ResourceByID returns the fully loaded resource, or nil when no resource
	// has that id.
	ResourceByID(ctx context.Context, id int64) (*models.Resource, error)

	ListCategories(ctx context.Context) ([]*models.Category, error)
}
