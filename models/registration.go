package models

// Membership links a player to a team roster (player_team).
type Membership struct {
	PlayerID int `json:"player_id" db:"player_id"`
	TeamID   int `json:"team_id" db:"team_id"`
}

// Registration enters a team into a tournament (team_tournament).
type Registration struct {
	TeamID       int `json:"team_id" db:"team_id"`
	TournamentID int `json:"tournament_id" db:"tournament_id"`
}

// RegistrationView is the public, name-resolved form of a Registration.
type RegistrationView struct {
	TeamName       string `json:"team_name"`
	TournamentName string `json:"tournament_name"`
}
