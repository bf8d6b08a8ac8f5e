package models

import (
	"github.com/uptrace/bun"
)

// Service is a specific offering provided at a resource.
type Service struct {
	bun.BaseModel `bun:"table:services,alias:s"`

	ID                 int64  `bun:"id,pk,autoincrement" json:"id"`
	ResourceID         int64  `bun:"resource_id,notnull" json:"resource_id"`
	Name               string `bun:"name,notnull" json:"name"`
	LongDescription    string `bun:"long_description" json:"long_description"`
	Eligibility        string `bun:"eligibility" json:"eligibility"`
	RequiredDocuments  string `bun:"required_documents" json:"required_documents"`
	Fee                string `bun:"fee" json:"fee"`
	ApplicationProcess string `bun:"application_process" json:"application_process"`

	// Relations
	Notes []*Note `bun:"rel:has-many,join:id=service_id" json:"notes"`

	Schedule *Schedule `bun:"-" json:"schedule"`
}

// Schedule holds the open hours of a resource or of a service. Exactly one
// owner id is set.
type Schedule struct {
	bun.BaseModel `bun:"table:schedules,alias:sch"`

	ID         int64  `bun:"id,pk,autoincrement" json:"id"`
	ResourceID *int64 `bun:"resource_id" json:"resource_id,omitempty"`
	ServiceID  *int64 `bun:"service_id" json:"service_id,omitempty"`

	ScheduleDays []*ScheduleDay `bun:"rel:has-many,join:id=schedule_id" json:"schedule_days"`
}

// ScheduleDay is one open interval. OpensAt and ClosesAt are HHMM integers
// (e.g. 930 for 09:30).
type ScheduleDay struct {
	bun.BaseModel `bun:"table:schedule_days,alias:sd"`

	ID         int64  `bun:"id,pk,autoincrement" json:"id"`
	ScheduleID int64  `bun:"schedule_id,notnull" json:"schedule_id"`
	Day        string `bun:"day,notnull" json:"day"`
	OpensAt    int    `bun:"opens_at" json:"opens_at"`
	ClosesAt   int    `bun:"closes_at" json:"closes_at"`
}
