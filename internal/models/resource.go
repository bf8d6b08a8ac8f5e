package models

import (
	"time"

	"github.com/uptrace/bun"
)

// Resource is a directory entry such as a shelter or clinic.
type Resource struct {
	bun.BaseModel `bun:"table:resources,alias:r"`

	ID               int64      `bun:"id,pk,autoincrement" json:"id"`
	Name             string     `bun:"name,notnull" json:"name"`
	ShortDescription *string    `bun:"short_description" json:"short_description"`
	LongDescription  *string    `bun:"long_description" json:"long_description"`
	Website          *string    `bun:"website" json:"website"`
	Email            *string    `bun:"email" json:"email"`
	VerifiedAt       *time.Time `bun:"verified_at" json:"verified_at"`
	CreatedAt        time.Time  `bun:"created_at,notnull,default:current_timestamp" json:"created_at"`
	UpdatedAt        time.Time  `bun:"updated_at,notnull,default:current_timestamp" json:"updated_at"`

	// Relations
	Address    *Address    `bun:"rel:has-one,join:id=resource_id" json:"address"`
	Categories []*Category `bun:"m2m:categories_resources,join:Resource=Category" json:"categories"`
	Services   []*Service  `bun:"rel:has-many,join:id=resource_id" json:"services"`
	Phones     []*Phone    `bun:"rel:has-many,join:id=resource_id" json:"phones"`
	Notes      []*Note     `bun:"rel:has-many,join:id=resource_id" json:"notes"`

	// Schedule is loaded separately together with the service schedules.
	Schedule *Schedule `bun:"-" json:"schedule"`
}

// Point returns the resource location, or false when it has no usable address.
func (r *Resource) Point() (Point, bool) {
	if r == nil || r.Address == nil {
		return Point{}, false
	}
	return r.Address.Point()
}

// HasCategory reports whether the loaded category associations include id.
func (r *Resource) HasCategory(id int64) bool {
	for _, c := range r.Categories {
		if c != nil && c.ID == id {
			return true
		}
	}
	return false
}

// Address is the physical location owned by exactly one resource.
type Address struct {
	bun.BaseModel `bun:"table:addresses,alias:a"`

	ID            int64    `bun:"id,pk,autoincrement" json:"id"`
	ResourceID    int64    `bun:"resource_id,notnull,unique" json:"resource_id"`
	Address1      string   `bun:"address_1" json:"address_1"`
	Address2      *string  `bun:"address_2" json:"address_2"`
	City          string   `bun:"city" json:"city"`
	StateProvince string   `bun:"state_province" json:"state_province"`
	PostalCode    string   `bun:"postal_code" json:"postal_code"`
	Latitude      *float64 `bun:"latitude,type:float8" json:"latitude"`
	Longitude     *float64 `bun:"longitude,type:float8" json:"longitude"`
}

// Point returns the coordinates, or false when either one is missing.
func (a *Address) Point() (Point, bool) {
	if a == nil || a.Latitude == nil || a.Longitude == nil {
		return Point{}, false
	}
	return Point{Lat: *a.Latitude, Long: *a.Longitude}, true
}

// Category tags resources by the type of service they offer.
type Category struct {
	bun.BaseModel `bun:"table:categories,alias:c"`

	ID   int64  `bun:"id,pk,autoincrement" json:"id"`
	Name string `bun:"name,notnull,unique" json:"name"`
}

// ResourceCategory is the many-to-many join row between resources and categories.
type ResourceCategory struct {
	bun.BaseModel `bun:"table:categories_resources,alias:cr"`

	ResourceID int64     `bun:"resource_id,pk"`
	Resource   *Resource `bun:"rel:belongs-to,join:resource_id=id"`
	CategoryID int64     `bun:"category_id,pk"`
	Category   *Category `bun:"rel:belongs-to,join:category_id=id"`
}

// Phone is a contact number for a resource.
type Phone struct {
	bun.BaseModel `bun:"table:phones,alias:p"`

	ID          int64  `bun:"id,pk,autoincrement" json:"id"`
	ResourceID  int64  `bun:"resource_id,notnull" json:"resource_id"`
	Number      string `bun:"number,notnull" json:"number"`
	ServiceType string `bun:"service_type" json:"service_type"`
}

// Note is free text attached to a resource or to one of its services.
type Note struct {
	bun.BaseModel `bun:"table:notes,alias:n"`

	ID         int64  `bun:"id,pk,autoincrement" json:"id"`
	Note       string `bun:"note,notnull" json:"note"`
	ResourceID *int64 `bun:"resource_id" json:"resource_id,omitempty"`
	ServiceID  *int64 `bun:"service_id" json:"service_id,omitempty"`
}
