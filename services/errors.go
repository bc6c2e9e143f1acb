package services

import "errors"

// Errors shared by the services and the HTTP error mapping.
var (
	ErrTeamNotFound       = errors.New("team not found")
	ErrPlayerNotFound     = errors.New("player not found")
	ErrTournamentNotFound = errors.New("tournament not found")

	// Validation
	ErrTeamNameRequired           = errors.New("team name is required")
	ErrPlayerFieldsRequired       = errors.New("player name, username and country are required")
	ErrTournamentNameRequired     = errors.New("tournament name is required")
	ErrTournamentDatesRequired    = errors.New("tournament start and end dates are required")
	ErrTournamentInvalidDateRange = errors.New("tournament end date must not be before start date")
	ErrPrizePoolNegative          = errors.New("prize pool must not be negative")
	ErrRosterTooSmall             = errors.New("not enough players for registration")

	// Storage failures, details are logged and never returned to clients
	ErrRegistrationFailed     = errors.New("registration failed")
	ErrTeamCreateFailed       = errors.New("failed to create team")
	ErrTeamUpdateFailed       = errors.New("failed to update team")
	ErrTeamDeleteFailed       = errors.New("failed to delete team")
	ErrPlayerCreateFailed     = errors.New("failed to create player")
	ErrPlayerUpdateFailed     = errors.New("failed to update player")
	ErrPlayerDeleteFailed     = errors.New("failed to delete player")
	ErrTournamentCreateFailed = errors.New("failed to create tournament")
	ErrTournamentUpdateFailed = errors.New("failed to update tournament")
	ErrTournamentDeleteFailed = errors.New("failed to delete tournament")

	ErrSnapshotStorageDisabled = errors.New("snapshot storage is not configured")
	ErrSnapshotExportFailed    = errors.New("failed to export dashboard snapshot")
)
