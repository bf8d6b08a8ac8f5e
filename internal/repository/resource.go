package repository

import (
	"cmp"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"slices"

	"github.com/uptrace/bun"

	"resource-directory/internal/models"
)

// ResourceRepository reads the directory tables through Bun. It works against
// both the Postgres and the SQLite dialect.
type ResourceRepository struct {
	db bun.IDB
}

func NewResourceRepository(db bun.IDB) *ResourceRepository {
	return &ResourceRepository{db: db}
}

// CategoryExists reports whether a category with id is stored.
func (r *ResourceRepository) CategoryExists(ctx context.Context, id int64) (bool, error) {
	exists, err := r.db.NewSelect().
		Model((*models.Category)(nil)).
		Where("c.id = ?", id).
		Exists(ctx)
	if err != nil {
		return false, fmt.Errorf("category exists %d: %w", id, err)
	}
	return exists, nil
}

// ResourcesByCategory returns every resource tagged with categoryID ordered by
// id, with Address and Categories loaded.
func (r *ResourceRepository) ResourcesByCategory(ctx context.Context, categoryID int64) ([]*models.Resource, error) {
	resources := []*models.Resource{}

	err := r.db.NewSelect().
		Model(&resources).
		Relation("Address").
		Relation("Categories").
		Where("EXISTS (SELECT 1 FROM categories_resources AS tag WHERE tag.resource_id = r.id AND tag.category_id = ?)", categoryID).
		OrderExpr("r.id ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("resources by category %d: %w", categoryID, err)
	}

	for _, res := range resources {
		sortByID(res.Categories, func(c *models.Category) int64 { return c.ID })
	}

	return resources, nil
}

// ResourceByID loads one resource with everything the detail view renders.
// It returns nil, nil when no resource has that id.
func (r *ResourceRepository) ResourceByID(ctx context.Context, id int64) (*models.Resource, error) {
	res := new(models.Resource)

	err := r.db.NewSelect().
		Model(res).
		Relation("Address").
		Relation("Categories").
		Relation("Phones").
		Relation("Services").
		Where("r.id = ?", id).
		Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("resource %d: %w", id, err)
	}

	sortByID(res.Categories, func(c *models.Category) int64 { return c.ID })
	sortByID(res.Phones, func(p *models.Phone) int64 { return p.ID })
	sortByID(res.Services, func(s *models.Service) int64 { return s.ID })

	serviceIDs := make([]int64, 0, len(res.Services))
	for _, s := range res.Services {
		serviceIDs = append(serviceIDs, s.ID)
	}

	if err := r.attachNotes(ctx, res, serviceIDs); err != nil {
		return nil, err
	}
	if err := r.attachSchedules(ctx, res, serviceIDs); err != nil {
		return nil, err
	}

	return res, nil
}

// attachNotes loads resource and service notes in one query and distributes
// them by owner.
func (r *ResourceRepository) attachNotes(ctx context.Context, res *models.Resource, serviceIDs []int64) error {
	var notes []*models.Note

	q := r.db.NewSelect().
		Model(&notes).
		Where("n.resource_id = ?", res.ID)
	if len(serviceIDs) > 0 {
		q = q.WhereOr("n.service_id IN (?)", bun.In(serviceIDs))
	}

	if err := q.OrderExpr("n.id ASC").Scan(ctx); err != nil {
		return fmt.Errorf("notes for resource %d: %w", res.ID, err)
	}

	byService := make(map[int64][]*models.Note, len(serviceIDs))
	res.Notes = []*models.Note{}
	for _, n := range notes {
		switch {
		case n.ResourceID != nil && *n.ResourceID == res.ID:
			res.Notes = append(res.Notes, n)
		case n.ServiceID != nil:
			byService[*n.ServiceID] = append(byService[*n.ServiceID], n)
		}
	}

	for _, s := range res.Services {
		s.Notes = byService[s.ID]
		if s.Notes == nil {
			s.Notes = []*models.Note{}
		}
	}

	return nil
}

// attachSchedules loads the resource schedule and the service schedules with
// their days in one query.
func (r *ResourceRepository) attachSchedules(ctx context.Context, res *models.Resource, serviceIDs []int64) error {
	var schedules []*models.Schedule

	q := r.db.NewSelect().
		Model(&schedules).
		Relation("ScheduleDays").
		Where("sch.resource_id = ?", res.ID)
	if len(serviceIDs) > 0 {
		q = q.WhereOr("sch.service_id IN (?)", bun.In(serviceIDs))
	}

	if err := q.OrderExpr("sch.id ASC").Scan(ctx); err != nil {
		return fmt.Errorf("schedules for resource %d: %w", res.ID, err)
	}

	byService := make(map[int64]*models.Schedule, len(serviceIDs))
	for _, sch := range schedules {
		sortByID(sch.ScheduleDays, func(d *models.ScheduleDay) int64 { return d.ID })

		switch {
		case sch.ResourceID != nil && *sch.ResourceID == res.ID:
			// first one wins if the data holds more than one
			if res.Schedule == nil {
				res.Schedule = sch
			}
		case sch.ServiceID != nil:
			if _, ok := byService[*sch.ServiceID]; !ok {
				byService[*sch.ServiceID] = sch
			}
		}
	}

	for _, s := range res.Services {
		s.Schedule = byService[s.ID]
	}

	return nil
}

// ListCategories returns every category ordered by name.
func (r *ResourceRepository) ListCategories(ctx context.Context) ([]*models.Category, error) {
	categories := []*models.Category{}

	err := r.db.NewSelect().
		Model(&categories).
		OrderExpr("c.name ASC, c.id ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}

	return categories, nil
}

func sortByID[T any](items []T, id func(T) int64) {
	slices.SortFunc(items, func(a, b T) int {
		return cmp.Compare(id(a), id(b))
	})
}
