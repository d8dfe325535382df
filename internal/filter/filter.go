// Package filter narrows a record collection by year, semester, department and
// pass-percentage criteria.
package filter

import (
	"math"
	"strings"
	"time"

	"github.com/yigit/passboard/internal/app/models"
	"github.com/yigit/passboard/internal/normalize"
)

// Engine applies Criteria to record collections.
type Engine struct {
	normalizer *normalize.Normalizer
	now        func() time.Time
}

// Option configures an Engine
type Option func(*Engine)

// WithClock sets the source of the current date used by the recent-years
// selections.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		e.now = now
	}
}

// NewEngine creates an Engine. A nil normalizer uses the default rules.
func NewEngine(normalizer *normalize.Normalizer, opts ...Option) *Engine {
	if normalizer == nil {
		normalizer = normalize.Default()
	}
	e := &Engine{
		normalizer: normalizer,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Apply returns the records that satisfy every non-empty criterion, in their
// original order. records is never modified and Apply never fails.
func (e *Engine) Apply(records []models.Record, c Criteria) []models.Record {
	p := e.compile(records, c)

	filtered := make([]models.Record, 0, len(records))
	for _, r := range records {
		if p.match(r) {
			filtered = append(filtered, r)
		}
	}
	return filtered
}

// predicate holds everything derived once per query
type predicate struct {
	normalizer *normalize.Normalizer

	academicYear string
	recentYears  map[string]struct{}

	btechYear string
	semester  string

	department string

	hasThreshold bool
	threshold    float64
	comparison   Comparison
}

func (e *Engine) compile(records []models.Record, c Criteria) predicate {
	p := predicate{
		normalizer: e.normalizer,
		btechYear:  c.BTechYear,
		semester:   c.Semester,
		comparison: c.PassComparison,
	}

	if n, ok := c.recentWindow(); ok {
		p.recentYears = LastNYears(records, n, e.now())
	} else {
		p.academicYear = c.AcademicYear
	}

	if dept := strings.TrimSpace(c.Department); dept != "" {
		p.department = e.normalizer.Normalize(dept)
	}

	if c.PassPercentage != "" {
		p.hasThreshold = true
		threshold, ok := models.ParsePercentage(c.PassPercentage)
		if !ok {
			// nothing compares true against NaN
			threshold = math.NaN()
		}
		p.threshold = threshold
	}

	return p
}

func (p predicate) match(r models.Record) bool {
	if p.recentYears != nil {
		if _, ok := p.recentYears[r.AcademicYear]; !ok {
			return false
		}
	} else if p.academicYear != "" && p.academicYear != r.AcademicYear {
		return false
	}

	if p.btechYear != "" && p.btechYear != r.BTechYear.String() {
		return false
	}

	if p.semester != "" && p.semester != r.Semester.String() {
		return false
	}

	if p.department != "" {
		section := p.normalizer.Normalize(r.Section)
		// a parent department also selects its differentiated sections
		if section != p.department && !strings.HasPrefix(section, p.department) {
			return false
		}
	}

	if p.hasThreshold {
		value, ok := r.PassPercent()
		if !ok {
			return false
		}
		if !p.comparison.Compare(value, p.threshold) {
			return false
		}
	}

	return true
}
