package domain

// Club owns its court groups; a group has no existence outside its club.
type Club struct {
	ID             string
	Name           string
	Address        string
	GoogleMapsLink string
	Website        string
	Groups         []*CourtGroup
}
