package filter

import (
	"strconv"
	"strings"
	"time"

	"github.com/yigit/passboard/internal/app/models"
)

// LastNYears returns the distinct academic years present in records whose
// start year is at least now.Year()-n. Academic years without a hyphen or with
// a non-numeric start year are never recent.
func LastNYears(records []models.Record, n int, now time.Time) map[string]struct{} {
	cutoff := now.Year() - n
	years := make(map[string]struct{})

	for _, r := range records {
		start, ok := StartYear(r.AcademicYear)
		if ok && start >= cutoff {
			years[r.AcademicYear] = struct{}{}
		}
	}

	return years
}

// StartYear parses the first year out of a "YYYY-YYYY" academic year.
func StartYear(academicYear string) (int, bool) {
	first, _, found := strings.Cut(academicYear, "-")
	if !found {
		return 0, false
	}
	year, err := strconv.Atoi(strings.TrimSpace(first))
	if err != nil {
		return 0, false
	}
	return year, true
}
