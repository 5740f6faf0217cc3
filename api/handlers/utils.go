package handlers

import (
	"fmt"
	"regexp"
	"time"

	"gorm.io/datatypes"

	"github.com/AbhimanyuAhuja12/saleslog-cli/pkg/models"
)

// Hours must be zero-padded: time strings sort lexicographically everywhere
// downstream, and "9:05" would order after "10:00".
var timePattern = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d$`)

const dateLayout = "2006-01-02"

// ValidTaskType reports whether t names a known activity type.
func ValidTaskType(t string) bool {
	switch models.TaskType(t) {
	case models.TaskTypeMeeting, models.TaskTypeCall, models.TaskTypeVideoCall:
		return true
	}
	return false
}

// ValidStatus reports whether s is a known task status.
func ValidStatus(s string) bool {
	switch models.Status(s) {
	case models.StatusOpen, models.StatusClosed:
		return true
	}
	return false
}

// ValidTime reports whether s is a 24h HH:MM clock time.
func ValidTime(s string) bool {
	return timePattern.MatchString(s)
}

// ParseDate parses a YYYY-MM-DD string into a database date.
func ParseDate(s string) (datatypes.Date, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return datatypes.Date{}, fmt.Errorf("date must be YYYY-MM-DD: %w", err)
	}
	return datatypes.Date(t), nil
}

// NormalizePriority maps loose priority spellings to the stored form.
// Unknown values fall back to Medium.
func NormalizePriority(p string) string {
	switch p {
	case "High", "HIGH", "H":
		return string(models.PriorityHigh)
	case "Low", "LOW", "L":
		return string(models.PriorityLow)
	default:
		return string(models.PriorityMedium)
	}
}
