package services

import (
	"context"

	"resource-directory/internal/models"
)

// ResourceDetailAssembler composes the nested view of a single resource.
type ResourceDetailAssembler struct {
	store ResourceStore
}

func NewResourceDetailAssembler(store ResourceStore) *ResourceDetailAssembler {
	return &ResourceDetailAssembler{store: store}
}

// Assemble loads the resource and renders address, categories, schedule,
// phones, notes and services (each with notes and schedule).
func (a *ResourceDetailAssembler) Assemble(ctx context.Context, id int64) (*models.ResourceDetail, error) {
	r, err := a.store.ResourceByID(ctx, id)
	if err != nil {
		return nil, storageError("resource by id", err)
	}
	if r == nil {
		return nil, ErrResourceNotFound
	}

	services := make([]models.ServiceView, 0, len(r.Services))
	for _, s := range r.Services {
		if s == nil {
			continue
		}
		services = append(services, models.NewServiceView(s))
	}

	return &models.ResourceDetail{
		ID:               r.ID,
		Name:             r.Name,
		ShortDescription: r.ShortDescription,
		LongDescription:  r.LongDescription,
		Website:          r.Website,
		Email:            r.Email,
		Address:          models.NewAddressView(r.Address),
		Categories:       models.NewCategoryViews(r.Categories),
		Schedule:         models.NewScheduleView(r.Schedule),
		Phones:           models.NewPhoneViews(r.Phones),
		Notes:            models.NewNoteViews(r.Notes),
		Services:         services,
	}, nil
}
