package services

import "errors"

var (
	ErrTeamNotFound  = errors.New("team not found")
	ErrTeamExists    = errors.New("team already exists")
	ErrMatchNotFound = errors.New("match not found")
	ErrInvalidSport  = errors.New("sport is not in the allowed list")
	ErrInvalidDate   = errors.New("invalid date format")
	ErrInvalidWinner = errors.New("winner must be one of the match teams")
)
