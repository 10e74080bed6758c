package engine

import "time"

// ContactCategory describes a relationship tier and how often contact is due.
type ContactCategory struct {
	Name            string `json:"name"`
	DefaultInterval int    `json:"defaultInterval"` // days
}

// ContactCategories is the fixed lookup of relationship categories to their
// default contact intervals in days.
var ContactCategories = map[string]ContactCategory{
	"immediate_family": {Name: "Immediate Family", DefaultInterval: 7},
	"close_friend":     {Name: "Close Friend", DefaultInterval: 14},
	"friend":           {Name: "Friend", DefaultInterval: 30},
	"extended_family":  {Name: "Extended Family", DefaultInterval: 60},
	"acquaintance":     {Name: "Acquaintance", DefaultInterval: 90},
	"professional":     {Name: "Professional", DefaultInterval: 180},
}

// DefaultInterval returns the default contact interval for a category, and
// whether the category is known.
func DefaultInterval(category string) (int, bool) {
	c, ok := ContactCategories[category]
	if !ok {
		return 0, false
	}
	return c.DefaultInterval, true
}

// NextContactDue advances lastContact by intervalDays at calendar-day
// granularity. A time-of-day component on lastContact is preserved.
func NextContactDue(lastContact time.Time, intervalDays int) time.Time {
	return lastContact.AddDate(0, 0, intervalDays)
}

// IsOverdue reports whether the next contact date has passed.
func IsOverdue(now, nextContactDue time.Time) bool {
	return now.After(nextContactDue)
}

// DaysSince returns whole days elapsed since lastContact, floored at zero for
// future-dated contacts.
func DaysSince(now, lastContact time.Time) int {
	days := int(now.Sub(lastContact).Hours() / 24)
	if days < 0 {
		return 0
	}
	return days
}
