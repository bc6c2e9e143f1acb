package models

type HomepageStats struct {
	Teams   int     `json:"teams"`
	Players int     `json:"players"`
	Prizes  float64 `json:"prizes"`
}

type HomepageData struct {
	Stats       HomepageStats `json:"stats"`
	Tournaments []Tournament  `json:"tournaments"`
}

// DashboardData is the admin view: every row of every table, id-ordered.
type DashboardData struct {
	Teams         []Team         `json:"teams"`
	Players       []Player       `json:"players"`
	Tournaments   []Tournament   `json:"tournaments"`
	Memberships   []Membership   `json:"memberships"`
	Registrations []Registration `json:"registrations"`
}
