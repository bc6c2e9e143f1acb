package models

// Tournament runs from StartDate to EndDate inclusive.
type Tournament struct {
	ID        int     `json:"tournament_id" db:"tournament_id"`
	Name      string  `json:"tournament_name" db:"tournament_name"`
	StartDate Date    `json:"start_date" db:"start_date"`
	EndDate   Date    `json:"end_date" db:"end_date"`
	PrizePool float64 `json:"prize_pool" db:"prize_pool"`
}

// TournamentSummary feeds the registration form's tournament dropdown.
type TournamentSummary struct {
	ID   int    `json:"tournament_id" db:"tournament_id"`
	Name string `json:"tournament_name" db:"tournament_name"`
}
