// Package schedule decides which calendar dates a doctor's static schedule
// covers. The checks here are advisory: a date outside the working days only
// produces a warning on the booking surface, it never blocks a reservation.
package schedule

import (
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

// weekdaySynonyms maps each canonical weekday to the labels accepted for it.
// Directory data mixes English and Arabic weekday names, so both are listed;
// matching is case-insensitive and substring-tolerant (a label such as
// "كل اثنين - Monday evening" still counts as Monday).
var weekdaySynonyms = map[time.Weekday][]string{
	time.Sunday:    {"sunday", "الأحد"},
	time.Monday:    {"monday", "الاثنين"},
	time.Tuesday:   {"tuesday", "الثلاثاء", "الثلاثا"},
	time.Wednesday: {"wednesday", "الأربع"},
	time.Thursday:  {"thursday", "الخميس"},
	time.Friday:    {"friday", "الجمعة"},
	time.Saturday:  {"saturday", "السبت"},
}

// DayAllowed reports whether date falls on one of the given working-day
// labels. It fails open: an empty or missing schedule, or an unparseable
// date, allows every day so that a malformed record degrades to a warning
// instead of blocking booking entirely.
func DayAllowed(date string, daysAvailable []string) bool {
	if len(daysAvailable) == 0 {
		return true
	}
	d, err := time.Parse(dateLayout, date)
	if err != nil {
		return true
	}
	synonyms := weekdaySynonyms[d.Weekday()]
	for _, raw := range daysAvailable {
		label := strings.ToLower(strings.TrimSpace(raw))
		if label == "" {
			continue
		}
		for _, syn := range synonyms {
			if strings.Contains(label, syn) {
				return true
			}
		}
	}
	return false
}

// IsPastDate reports whether date is strictly before the current local
// calendar day. Malformed dates are not considered past.
func IsPastDate(date string, now time.Time) bool {
	d, err := time.Parse(dateLayout, date)
	if err != nil {
		return false
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	return d.Before(today)
}

// MinBookableDate returns today's date in the wire format, the earliest day
// the slot picker may offer.
func MinBookableDate(now time.Time) string {
	return now.Format(dateLayout)
}

// ValidDate reports whether date is a well-formed "YYYY-MM-DD" string.
func ValidDate(date string) bool {
	_, err := time.Parse(dateLayout, date)
	return err == nil
}
