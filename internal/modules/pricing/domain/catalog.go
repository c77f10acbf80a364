package domain

// Catalog is the plain-record configuration tree the pricing engine is built
// from. Deserialization from a concrete format lives in infrastructure; the
// engine only sees these records.
type Catalog []ClubDocument

// ClubDocument describes one club as configured: metadata plus its court
// groups. The field names follow the club catalog document the price updater
// emits.
type ClubDocument struct {
	ID             string          `yaml:"id" json:"id"`
	Name           string          `yaml:"name" json:"name"`
	Address        string          `yaml:"address" json:"address"`
	GoogleMapsLink string          `yaml:"googleMapsLink" json:"googleMapsLink"`
	Website        string          `yaml:"website" json:"website"`
	Courts         []GroupDocument `yaml:"courts" json:"courts"`
}

// GroupDocument describes a homogeneous set of courts sharing surface, type
// and pricing.
type GroupDocument struct {
	Surface string           `yaml:"surface" json:"surface"`
	Type    string           `yaml:"type" json:"type"`
	Courts  []string         `yaml:"courts" json:"courts"`
	Prices  []PeriodDocument `yaml:"prices" json:"prices"`
}

// PeriodDocument is one pricing period: an inclusive date range and its rule
// map ("mo:7-22" -> "100"). An empty or missing schedule marks the period as
// closed.
type PeriodDocument struct {
	From     string            `yaml:"from" json:"from"`
	To       string            `yaml:"to" json:"to"`
	Schedule map[string]string `yaml:"schedule" json:"schedule"`
}
