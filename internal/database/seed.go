package database

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/uptrace/bun"
	"gopkg.in/yaml.v3"

	"resource-directory/internal/models"
)

// Fixture is the YAML document accepted by `dirctl seed`.
type Fixture struct {
	Categories []CategoryFixture `yaml:"categories"`
	Resources  []ResourceFixture `yaml:"resources"`
}

type CategoryFixture struct {
	ID   int64  `yaml:"id"`
	Name string `yaml:"name"`
}

type ResourceFixture struct {
	Name             string `yaml:"name"`
	ShortDescription string `yaml:"short_description"`
	LongDescription  string `yaml:"long_description"`
	Website          string `yaml:"website"`
	Email            string `yaml:"email"`
	// Categories lists category names.
	Categories []string         `yaml:"categories"`
	Address    *AddressFixture  `yaml:"address"`
	Phones     []PhoneFixture   `yaml:"phones"`
	Notes      []string         `yaml:"notes"`
	Schedule   *ScheduleFixture `yaml:"schedule"`
	Services   []ServiceFixture `yaml:"services"`
}

type AddressFixture struct {
	Address1      string   `yaml:"address_1"`
	Address2      string   `yaml:"address_2"`
	City          string   `yaml:"city"`
	StateProvince string   `yaml:"state_province"`
	PostalCode    string   `yaml:"postal_code"`
	Latitude      *float64 `yaml:"latitude"`
	Longitude     *float64 `yaml:"longitude"`
}

type PhoneFixture struct {
	Number      string `yaml:"number"`
	ServiceType string `yaml:"service_type"`
}

type ScheduleFixture struct {
	Days []ScheduleDayFixture `yaml:"days"`
}

type ScheduleDayFixture struct {
	Day      string `yaml:"day"`
	OpensAt  int    `yaml:"opens_at"`
	ClosesAt int    `yaml:"closes_at"`
}

type ServiceFixture struct {
	Name               string           `yaml:"name"`
	LongDescription    string           `yaml:"long_description"`
	Eligibility        string           `yaml:"eligibility"`
	RequiredDocuments  string           `yaml:"required_documents"`
	Fee                string           `yaml:"fee"`
	ApplicationProcess string           `yaml:"application_process"`
	Notes              []string         `yaml:"notes"`
	Schedule           *ScheduleFixture `yaml:"schedule"`
}

// SeedStats counts the rows Seed inserted.
type SeedStats struct {
	Categories int
	Resources  int
	Services   int
}

// LoadFixture reads and parses a YAML fixture file.
func LoadFixture(path string) (*Fixture, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load fixture: read %q: %w", path, err)
	}
	return ParseFixture(raw)
}

// ParseFixture parses and validates a YAML fixture.
func ParseFixture(raw []byte) (*Fixture, error) {
	var f Fixture
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("parse fixture: %w", err)
	}
	if err := f.Validate(); err != nil {
		return nil, err
	}
	return &f, nil
}

// Validate checks names are present and every category reference resolves.
func (f *Fixture) Validate() error {
	known := make(map[string]struct{}, len(f.Categories))
	for i, c := range f.Categories {
		name := strings.TrimSpace(c.Name)
		if name == "" {
			return fmt.Errorf("fixture: category at index %d: name cannot be empty", i)
		}
		if _, dup := known[name]; dup {
			return fmt.Errorf("fixture: category %q defined twice", name)
		}
		known[name] = struct{}{}
	}

	for i, r := range f.Resources {
		if strings.TrimSpace(r.Name) == "" {
			return fmt.Errorf("fixture: resource at index %d: name cannot be empty", i)
		}
		for _, c := range r.Categories {
			if _, ok := known[strings.TrimSpace(c)]; !ok {
				return fmt.Errorf("fixture: resource %q: unknown category %q", r.Name, c)
			}
		}
		for j, s := range r.Services {
			if strings.TrimSpace(s.Name) == "" {
				return fmt.Errorf("fixture: resource %q: service at index %d: name cannot be empty", r.Name, j)
			}
		}
	}

	return nil
}

// Seed inserts the fixture in a single transaction.
func Seed(ctx context.Context, db *bun.DB, f *Fixture) (SeedStats, error) {
	var stats SeedStats
	if err := f.Validate(); err != nil {
		return stats, err
	}

	err := db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		categoryIDs := make(map[string]int64, len(f.Categories))
		for _, cf := range f.Categories {
			c := &models.Category{ID: cf.ID, Name: strings.TrimSpace(cf.Name)}
			if _, err := tx.NewInsert().Model(c).Exec(ctx); err != nil {
				return fmt.Errorf("seed: insert category %q: %w", c.Name, err)
			}
			categoryIDs[c.Name] = c.ID
			stats.Categories++
		}

		for _, rf := range f.Resources {
			n, err := seedResource(ctx, tx, rf, categoryIDs)
			if err != nil {
				return fmt.Errorf("seed: resource %q: %w", rf.Name, err)
			}
			stats.Resources++
			stats.Services += n
		}
		return nil
	})
	if err != nil {
		return SeedStats{}, err
	}

	return stats, nil
}

func seedResource(ctx context.Context, tx bun.Tx, rf ResourceFixture, categoryIDs map[string]int64) (int, error) {
	now := time.Now().UTC()
	r := &models.Resource{
		Name:             strings.TrimSpace(rf.Name),
		ShortDescription: optional(rf.ShortDescription),
		LongDescription:  optional(rf.LongDescription),
		Website:          optional(rf.Website),
		Email:            optional(rf.Email),
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if _, err := tx.NewInsert().Model(r).Exec(ctx); err != nil {
		return 0, fmt.Errorf("insert resource: %w", err)
	}

	for _, name := range rf.Categories {
		join := &models.ResourceCategory{ResourceID: r.ID, CategoryID: categoryIDs[strings.TrimSpace(name)]}
		if _, err := tx.NewInsert().Model(join).Ignore().Exec(ctx); err != nil {
			return 0, fmt.Errorf("tag category %q: %w", name, err)
		}
	}

	if af := rf.Address; af != nil {
		a := &models.Address{
			ResourceID:    r.ID,
			Address1:      af.Address1,
			Address2:      optional(af.Address2),
			City:          af.City,
			StateProvince: af.StateProvince,
			PostalCode:    af.PostalCode,
			Latitude:      af.Latitude,
			Longitude:     af.Longitude,
		}
		if _, err := tx.NewInsert().Model(a).Exec(ctx); err != nil {
			return 0, fmt.Errorf("insert address: %w", err)
		}
	}

	for _, pf := range rf.Phones {
		p := &models.Phone{ResourceID: r.ID, Number: pf.Number, ServiceType: pf.ServiceType}
		if _, err := tx.NewInsert().Model(p).Exec(ctx); err != nil {
			return 0, fmt.Errorf("insert phone: %w", err)
		}
	}

	resourceID := r.ID
	if err := insertNotes(ctx, tx, rf.Notes, &resourceID, nil); err != nil {
		return 0, err
	}
	if err := insertSchedule(ctx, tx, rf.Schedule, &resourceID, nil); err != nil {
		return 0, err
	}

	for _, sf := range rf.Services {
		s := &models.Service{
			ResourceID:         r.ID,
			Name:               strings.TrimSpace(sf.Name),
			LongDescription:    sf.LongDescription,
			Eligibility:        sf.Eligibility,
			RequiredDocuments:  sf.RequiredDocuments,
			Fee:                sf.Fee,
			ApplicationProcess: sf.ApplicationProcess,
		}
		if _, err := tx.NewInsert().Model(s).Exec(ctx); err != nil {
			return 0, fmt.Errorf("insert service %q: %w", s.Name, err)
		}
		serviceID := s.ID
		if err := insertNotes(ctx, tx, sf.Notes, nil, &serviceID); err != nil {
			return 0, err
		}
		if err := insertSchedule(ctx, tx, sf.Schedule, nil, &serviceID); err != nil {
			return 0, err
		}
	}

	return len(rf.Services), nil
}

func insertNotes(ctx context.Context, tx bun.Tx, notes []string, resourceID, serviceID *int64) error {
	for _, text := range notes {
		n := &models.Note{Note: text, ResourceID: resourceID, ServiceID: serviceID}
		if _, err := tx.NewInsert().Model(n).Exec(ctx); err != nil {
			return fmt.Errorf("insert note: %w", err)
		}
	}
	return nil
}

func insertSchedule(ctx context.Context, tx bun.Tx, sf *ScheduleFixture, resourceID, serviceID *int64) error {
	if sf == nil {
		return nil
	}
	s := &models.Schedule{ResourceID: resourceID, ServiceID: serviceID}
	if _, err := tx.NewInsert().Model(s).Exec(ctx); err != nil {
		return fmt.Errorf("insert schedule: %w", err)
	}
	for _, df := range sf.Days {
		d := &models.ScheduleDay{ScheduleID: s.ID, Day: df.Day, OpensAt: df.OpensAt, ClosesAt: df.ClosesAt}
		if _, err := tx.NewInsert().Model(d).Exec(ctx); err != nil {
			return fmt.Errorf("insert schedule day %q: %w", df.Day, err)
		}
	}
	return nil
}

func optional(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
