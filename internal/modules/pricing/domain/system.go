package domain

import (
	"errors"
	"fmt"
)

// ErrClubNotFound reports a lookup for an unknown club id.
var ErrClubNotFound = errors.New("club not found")

// ErrGroupNotFound reports a lookup for a court-group index a club does not
// have.
var ErrGroupNotFound = errors.New("court group not found")

// PricingSystem is the top-level aggregate: every configured club, built
// once from a catalog snapshot and immutable afterwards. Queries never
// mutate it, so a single instance serves concurrent callers without locking.
type PricingSystem struct {
	clubs []*Club
	byID  map[string]*Club
	cal   *HolidayCalendar
}

// NewPricingSystem compiles the whole catalog. Construction fails fast on
// the first malformed club rather than silently skipping it; the error names
// the club and, where possible, the group.
func NewPricingSystem(catalog Catalog, cal *HolidayCalendar) (*PricingSystem, error) {
	if cal == nil {
		return nil, errors.New("holiday calendar is required")
	}
	s := &PricingSystem{cal: cal, byID: make(map[string]*Club, len(catalog))}
	for _, doc := range catalog {
		club, err := newClub(doc, cal)
		if err != nil {
			return nil, err
		}
		if _, dup := s.byID[club.ID]; dup {
			return nil, fmt.Errorf("club %q: duplicate id %q", doc.Name, club.ID)
		}
		s.clubs = append(s.clubs, club)
		s.byID[club.ID] = club
	}
	return s, nil
}

func newClub(doc ClubDocument, cal *HolidayCalendar) (*Club, error) {
	if doc.ID == "" {
		return nil, fmt.Errorf("club %q: missing id", doc.Name)
	}
	club := &Club{
		ID:             doc.ID,
		Name:           doc.Name,
		Address:        doc.Address,
		GoogleMapsLink: doc.GoogleMapsLink,
		Website:        doc.Website,
	}
	for _, gd := range doc.Courts {
		group, err := newCourtGroup(gd, cal)
		if err != nil {
			return nil, fmt.Errorf("club %q, court group %s %s: %w", doc.Name, gd.Surface, gd.Type, err)
		}
		club.Groups = append(club.Groups, group)
	}
	return club, nil
}

// List returns every club in catalog order.
func (s *PricingSystem) List() []*Club {
	return s.clubs
}

// Club looks a club up by id.
func (s *PricingSystem) Club(id string) (*Club, error) {
	club, ok := s.byID[id]
	if !ok {
		return nil, ErrClubNotFound
	}
	return club, nil
}

// Group resolves a court group by club id and zero-based group index.
func (s *PricingSystem) Group(clubID string, index int) (*CourtGroup, error) {
	club, err := s.Club(clubID)
	if err != nil {
		return nil, err
	}
	if index < 0 || index >= len(club.Groups) {
		return nil, ErrGroupNotFound
	}
	return club.Groups[index], nil
}

// Calendar exposes the holiday calendar the system resolves DayTags with.
func (s *PricingSystem) Calendar() *HolidayCalendar {
	return s.cal
}
