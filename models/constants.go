package models

// Availability post statuses
const (
	PostStatusOpen    = "open"
	PostStatusMatched = "matched"
)

// Match statuses
const (
	MatchStatusProposed  = "proposed"
	MatchStatusConfirmed = "confirmed"
	MatchStatusCancelled = "cancelled"
)

// Ground types
const (
	GroundTypeFree = "free"
	GroundTypePaid = "paid"
)

// StakeNegotiable is the sentinel bet amount meaning "negotiate directly".
// For paid grounds it is treated as a wildcard by the matching engine.
const StakeNegotiable = "contact the opposite captain"

// DefaultGround is assigned to auto-provisioned teams.
const DefaultGround = "Dussehra Ground"

// RoleCaptain is the default user role.
const RoleCaptain = "captain"

// Weekdays in calendar order (Sunday-first), used by the expiry sweep.
var Weekdays = []string{
	"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday",
}

// WeekdayIndex returns the Sunday-first index of a weekday name, or -1.
func WeekdayIndex(day string) int {
	for i, d := range Weekdays {
		if d == day {
			return i
		}
	}
	return -1
}
