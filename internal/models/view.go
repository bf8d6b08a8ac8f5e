package models

import (
	"strconv"
	"strings"
)

// AddressView renders coordinates as fixed-point decimal strings.
type AddressView struct {
	ID            int64   `json:"id"`
	Address1      string  `json:"address_1"`
	Address2      *string `json:"address_2"`
	City          string  `json:"city"`
	StateProvince string  `json:"state_province"`
	PostalCode    string  `json:"postal_code"`
	Latitude      *string `json:"latitude"`
	Longitude     *string `json:"longitude"`
}

type CategoryView struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type PhoneView struct {
	ID          int64  `json:"id"`
	Number      string `json:"number"`
	ServiceType string `json:"service_type"`
}

type NoteView struct {
	ID   int64  `json:"id"`
	Note string `json:"note"`
}

type ScheduleDayView struct {
	ID       int64  `json:"id"`
	Day      string `json:"day"`
	OpensAt  int    `json:"opens_at"`
	ClosesAt int    `json:"closes_at"`
}

// ScheduleView is always rendered as an object; ID is nil when the owner has
// no stored schedule.
type ScheduleView struct {
	ID           *int64            `json:"id"`
	ScheduleDays []ScheduleDayView `json:"schedule_days"`
}

type ServiceView struct {
	ID                 int64        `json:"id"`
	Name               string       `json:"name"`
	LongDescription    string       `json:"long_description"`
	Eligibility        string       `json:"eligibility"`
	RequiredDocuments  string       `json:"required_documents"`
	Fee                string       `json:"fee"`
	ApplicationProcess string       `json:"application_process"`
	Notes              []NoteView   `json:"notes"`
	Schedule           ScheduleView `json:"schedule"`
}

// ResourceSummary is one entry of a search result.
type ResourceSummary struct {
	ID               int64          `json:"id"`
	Name             string         `json:"name"`
	ShortDescription *string        `json:"short_description"`
	Website          *string        `json:"website"`
	Address          *AddressView   `json:"address"`
	Categories       []CategoryView `json:"categories"`
}

// ResourceDetail is the full nested view of a single resource.
type ResourceDetail struct {
	ID               int64          `json:"id"`
	Name             string         `json:"name"`
	ShortDescription *string        `json:"short_description"`
	LongDescription  *string        `json:"long_description"`
	Website          *string        `json:"website"`
	Email            *string        `json:"email"`
	Address          *AddressView   `json:"address"`
	Categories       []CategoryView `json:"categories"`
	Schedule         ScheduleView   `json:"schedule"`
	Phones           []PhoneView    `json:"phones"`
	Notes            []NoteView     `json:"notes"`
	Services         []ServiceView  `json:"services"`
}

// FormatDecimal renders v in plain positional notation with at least one
// fractional digit: 10 -> "10.0", 37.7749 -> "37.7749", -0.5 -> "-0.5".
func FormatDecimal(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

func formatCoordinate(v *float64) *string {
	if v == nil {
		return nil
	}
	s := FormatDecimal(*v)
	return &s
}

func NewAddressView(a *Address) *AddressView {
	if a == nil {
		return nil
	}
	return &AddressView{
		ID:            a.ID,
		Address1:      a.Address1,
		Address2:      a.Address2,
		City:          a.City,
		StateProvince: a.StateProvince,
		PostalCode:    a.PostalCode,
		Latitude:      formatCoordinate(a.Latitude),
		Longitude:     formatCoordinate(a.Longitude),
	}
}

func NewCategoryViews(categories []*Category) []CategoryView {
	out := make([]CategoryView, 0, len(categories))
	for _, c := range categories {
		if c == nil {
			continue
		}
		out = append(out, CategoryView{ID: c.ID, Name: c.Name})
	}
	return out
}

func NewPhoneViews(phones []*Phone) []PhoneView {
	out := make([]PhoneView, 0, len(phones))
	for _, p := range phones {
		if p == nil {
			continue
		}
		out = append(out, PhoneView{ID: p.ID, Number: p.Number, ServiceType: p.ServiceType})
	}
	return out
}

func NewNoteViews(notes []*Note) []NoteView {
	out := make([]NoteView, 0, len(notes))
	for _, n := range notes {
		if n == nil {
			continue
		}
		out = append(out, NoteView{ID: n.ID, Note: n.Note})
	}
	return out
}

func NewScheduleView(s *Schedule) ScheduleView {
	view := ScheduleView{ScheduleDays: []ScheduleDayView{}}
	if s == nil {
		return view
	}
	id := s.ID
	view.ID = &id
	for _, d := range s.ScheduleDays {
		if d == nil {
			continue
		}
		view.ScheduleDays = append(view.ScheduleDays, ScheduleDayView{
			ID:       d.ID,
			Day:      d.Day,
			OpensAt:  d.OpensAt,
			ClosesAt: d.ClosesAt,
		})
	}
	return view
}

func NewServiceView(s *Service) ServiceView {
	return ServiceView{
		ID:                 s.ID,
		Name:               s.Name,
		LongDescription:    s.LongDescription,
		Eligibility:        s.Eligibility,
		RequiredDocuments:  s.RequiredDocuments,
		Fee:                s.Fee,
		ApplicationProcess: s.ApplicationProcess,
		Notes:              NewNoteViews(s.Notes),
		Schedule:           NewScheduleView(s.Schedule),
	}
}

func NewResourceSummary(r *Resource) ResourceSummary {
	return ResourceSummary{
		ID:               r.ID,
		Name:             r.Name,
		ShortDescription: r.ShortDescription,
		Website:          r.Website,
		Address:          NewAddressView(r.Address),
		Categories:       NewCategoryViews(r.Categories),
	}
}

func NewResourceSummaries(resources []*Resource) []ResourceSummary {
	out := make([]ResourceSummary, 0, len(resources))
	for _, r := range resources {
		out = append(out, NewResourceSummary(r))
	}
	return out
}
