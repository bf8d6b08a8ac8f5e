package services

import (
	"context"
	"slices"
	"strings"

	"resource-directory/internal/models"
)

// fakeStore is an in-memory ResourceStore. Resources are kept in insertion
// order, which stands in for storage order.
type fakeStore struct {
	categories []*models.Category
	resources  []*models.Resource

	existsErr error
	listErr   error
	getErr    error

	existsCalls int
	listCalls   int
}

func newFakeStore() *fakeStore {
	return &fakeStore{}
}

func (f *fakeStore) addCategory(id int64, name string) *models.Category {
	c := &models.Category{ID: id, Name: name}
	f.categories = append(f.categories, c)
	return c
}

func (f *fakeStore) addResource(r *models.Resource) *models.Resource {
	f.resources = append(f.resources, r)
	return r
}

func (f *fakeStore) CategoryExists(_ context.Context, id int64) (bool, error) {
	f.existsCalls++
	if f.existsErr != nil {
		return false, f.existsErr
	}
	for _, c := range f.categories {
		if c.ID == id {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeStore) ResourcesByCategory(_ context.Context, categoryID int64) ([]*models.Resource, error) {
	f.listCalls++
	if f.listErr != nil {
		return nil, f.listErr
	}
	out := []*models.Resource{}
	for _, r := range f.resources {
		if r.HasCategory(categoryID) {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeStore) ResourceByID(_ context.Context, id int64) (*models.Resource, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	for _, r := range f.resources {
		if r.ID == id {
			return r, nil
		}
	}
	return nil, nil
}

func (f *fakeStore) ListCategories(_ context.Context) ([]*models.Category, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	out := slices.Clone(f.categories)
	slices.SortFunc(out, func(a, b *models.Category) int { return strings.Compare(a.Name, b.Name) })
	return out, nil
}

func ptr[T any](v T) *T { return &v }

func located(id int64, lat, long float64, categories ...*models.Category) *models.Resource {
	return &models.Resource{
		ID:         id,
		Name:       "resource",
		Address:    &models.Address{ID: id, ResourceID: id, Latitude: ptr(lat), Longitude: ptr(long)},
		Categories: categories,
	}
}

func ids(resources []*models.Resource) []int64 {
	out := make([]int64, 0, len(resources))
	for _, r := range resources {
		out = append(out, r.ID)
	}
	return out
}
