package models

// Player is a single competitor. Username is unique across all players.
type Player struct {
	ID       int    `json:"player_id" db:"player_id"`
	Name     string `json:"player_name" db:"player_name"`
	Username string `json:"username" db:"username"`
	Country  string `json:"country" db:"country"`
}
