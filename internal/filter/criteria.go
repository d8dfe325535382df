package filter

import "strings"

// Academic-year values that select a window of recent years instead of a
// literal academic year
const (
	LastThreeYears = "3"
	LastFiveYears  = "5"
)

// Sentinels lists the recent-years selections in display order
var Sentinels = []string{LastThreeYears, LastFiveYears}

// Criteria is one query's set of constraints. An empty field places no
// constraint on the records. Criteria is a value; build a new one per query.
type Criteria struct {
	AcademicYear   string
	BTechYear      string
	Semester       string
	Department     string
	PassComparison Comparison
	PassPercentage string
}

// NewCriteria builds Criteria from the six raw selections captured when a
// filter action fires.
func NewCriteria(academicYear, btechYear, semester, department, passComparison, passPercentage string) Criteria {
	return Criteria{
		AcademicYear:   academicYear,
		BTechYear:      btechYear,
		Semester:       semester,
		Department:     strings.TrimSpace(department),
		PassComparison: ParseComparison(passComparison),
		PassPercentage: passPercentage,
	}
}

// IsEmpty reports whether the criteria constrain nothing.
func (c Criteria) IsEmpty() bool {
	return c.AcademicYear == "" &&
		c.BTechYear == "" &&
		c.Semester == "" &&
		c.Department == "" &&
		c.PassPercentage == ""
}

// recentWindow returns the N of a last-N-years selection.
func (c Criteria) recentWindow() (int, bool) {
	switch c.AcademicYear {
	case LastThreeYears:
		return 3, true
	case LastFiveYears:
		return 5, true
	}
	return 0, false
}
