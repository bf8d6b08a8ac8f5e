package database

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"

	"resource-directory/internal/models"
)

var schemaModels = []any{
	(*models.Category)(nil),
	(*models.Resource)(nil),
	(*models.ResourceCategory)(nil),
	(*models.Address)(nil),
	(*models.Phone)(nil),
	(*models.Note)(nil),
	(*models.Service)(nil),
	(*models.Schedule)(nil),
	(*models.ScheduleDay)(nil),
}

type schemaIndex struct {
	model  any
	name   string
	column string
}

var schemaIndexes = []schemaIndex{
	{(*models.ResourceCategory)(nil), "categories_resources_category_id_idx", "category_id"},
	{(*models.Service)(nil), "services_resource_id_idx", "resource_id"},
	{(*models.Phone)(nil), "phones_resource_id_idx", "resource_id"},
	{(*models.Note)(nil), "notes_service_id_idx", "service_id"},
	{(*models.Schedule)(nil), "schedules_service_id_idx", "service_id"},
	{(*models.ScheduleDay)(nil), "schedule_days_schedule_id_idx", "schedule_id"},
}

// CreateSchema creates every directory table and index that does not exist yet.
func CreateSchema(ctx context.Context, db bun.IDB) error {
	for _, m := range schemaModels {
		if _, err := db.NewCreateTable().Model(m).IfNotExists().Exec(ctx); err != nil {
			return fmt.Errorf("create schema: table for %T: %w", m, err)
		}
	}

	for _, idx := range schemaIndexes {
		_, err := db.NewCreateIndex().
			Model(idx.model).
			Index(idx.name).
			Column(idx.column).
			IfNotExists().
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("create schema: index %s: %w", idx.name, err)
		}
	}

	return nil
}
