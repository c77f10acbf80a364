package usecase

import (
	"time"

	"kortyPricing/internal/modules/pricing/domain"
)

// GroupView is the transport shape of one court group on a given date.
type GroupView struct {
	Index   int            `json:"index"`
	Surface string         `json:"surface"`
	Type    string         `json:"type"`
	Courts  []string       `json:"courts"`
	Closed  bool           `json:"closed"`
	Weekday *domain.MinMax `json:"weekday,omitempty"`
	Weekend *domain.MinMax `json:"weekend,omitempty"`
}

// ClubView is the transport shape of one club.
type ClubView struct {
	ID             string      `json:"id"`
	Name           string      `json:"name"`
	Address        string      `json:"address"`
	GoogleMapsLink string      `json:"googleMapsLink,omitempty"`
	Website        string      `json:"website,omitempty"`
	Groups         []GroupView `json:"groups"`
}

// QuoteView is the answer to a price query over a concrete time range.
type QuoteView struct {
	Available bool      `json:"available"`
	Price     float64   `json:"price"`
	Currency  string    `json:"currency"`
	Start     time.Time `json:"start"`
	End       time.Time `json:"end"`
}

// SummaryView carries the min-max price bands of one group for a date.
type SummaryView struct {
	Surface string         `json:"surface"`
	Type    string         `json:"type"`
	Date    string         `json:"date"`
	Closed  bool           `json:"closed"`
	Day     *domain.MinMax `json:"day,omitempty"`
	Weekday *domain.MinMax `json:"weekday,omitempty"`
	Weekend *domain.MinMax `json:"weekend,omitempty"`
}

// QueryUseCase answers read queries against the current snapshot.
type QueryUseCase struct {
	snapshot *SnapshotUseCase
}

func NewQueryUseCase(snapshot *SnapshotUseCase) *QueryUseCase {
	return &QueryUseCase{snapshot: snapshot}
}

// ListClubs returns every club with per-group price bands for the date.
func (uc *QueryUseCase) ListClubs(date time.Time) ([]ClubView, error) {
	sys, err := uc.snapshot.Current()
	if err != nil {
		return nil, err
	}
	views := make([]ClubView, 0, len(sys.List()))
	for _, club := range sys.List() {
		views = append(views, clubView(club, date))
	}
	return views, nil
}

// Club returns one club with per-group price bands for the date.
func (uc *QueryUseCase) Club(id string, date time.Time) (ClubView, error) {
	sys, err := uc.snapshot.Current()
	if err != nil {
		return ClubView{}, err
	}
	club, err := sys.Club(id)
	if err != nil {
		return ClubView{}, err
	}
	return clubView(club, date), nil
}

// Quote prices a half-open [start, end) range on one court group. Range
// errors from the domain pass through for the transport layer to map.
func (uc *QueryUseCase) Quote(clubID string, group int, start, end time.Time) (QuoteView, error) {
	sys, err := uc.snapshot.Current()
	if err != nil {
		return QuoteView{}, err
	}
	g, err := sys.Group(clubID, group)
	if err != nil {
		return QuoteView{}, err
	}
	price, ok, err := g.Price(start, end)
	if err != nil {
		return QuoteView{}, err
	}
	return QuoteView{
		Available: ok,
		Price:     price,
		Currency:  "PLN",
		Start:     start,
		End:       end,
	}, nil
}

// Summary returns the day, weekday and weekend price bands of one group.
func (uc *QueryUseCase) Summary(clubID string, group int, date time.Time) (SummaryView, error) {
	sys, err := uc.snapshot.Current()
	if err != nil {
		return SummaryView{}, err
	}
	g, err := sys.Group(clubID, group)
	if err != nil {
		return SummaryView{}, err
	}
	view := SummaryView{
		Surface: g.Surface,
		Type:    g.Type,
		Date:    date.Format("2006-01-02"),
		Closed:  g.IsClosed(date),
	}
	if mm, ok := g.MinMaxForDay(date); ok {
		day := mm
		view.Day = &day
	}
	view.Weekday, view.Weekend = bands(g, date)
	return view, nil
}

func clubView(club *domain.Club, date time.Time) ClubView {
	view := ClubView{
		ID:             club.ID,
		Name:           club.Name,
		Address:        club.Address,
		GoogleMapsLink: club.GoogleMapsLink,
		Website:        club.Website,
		Groups:         make([]GroupView, 0, len(club.Groups)),
	}
	for i, g := range club.Groups {
		gv := GroupView{
			Index:   i,
			Surface: g.Surface,
			Type:    g.Type,
			Closed:  g.IsClosed(date),
		}
		for _, court := range g.Courts {
			gv.Courts = append(gv.Courts, court.ID)
		}
		gv.Weekday, gv.Weekend = bands(g, date)
		view.Groups = append(view.Groups, gv)
	}
	return view
}

func bands(g *domain.CourtGroup, date time.Time) (weekday, weekend *domain.MinMax) {
	if mm, ok := g.MinMaxForWeekday(date); ok {
		v := mm
		weekday = &v
	}
	if mm, ok := g.MinMaxForWeekend(date); ok {
		v := mm
		weekend = &v
	}
	return weekday, weekend
}
