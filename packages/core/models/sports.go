package models

// AllowedSports is the set of sports the site runs tournaments for.
// Request validation and fixtures both read from this list.
var AllowedSports = []string{"basketball", "volleyball", "ping-pong"}

func IsAllowedSport(sport string) bool {
	for _, s := range AllowedSports {
		if s == sport {
			return true
		}
	}
	return false
}
