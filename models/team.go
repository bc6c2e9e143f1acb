package models

// Team is a registered esports team.
type Team struct {
	ID   int    `json:"team_id" db:"team_id"`
	Name string `json:"team_name" db:"team_name"`
}
