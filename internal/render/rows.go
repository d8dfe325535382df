// Package render projects filtered records into display rows and writes them
// as a table.
package render

import (
	"strconv"

	"github.com/yigit/passboard/internal/app/models"
)

// NotAvailable is shown for absent values
const NotAvailable = "N/A"

// NoResults is the single indicator written for an empty result
const NoResults = "No results found."

// Headers are the column titles, in column order
var Headers = []string{
	"Sl. No",
	"Name of the Teacher",
	"Department",
	"Name of the subject",
	"Academic Year",
	"B. Tech. Year",
	"Sem",
	"% of Pass",
}

// Row is one display line
type Row struct {
	Index          int    `json:"slNo"`
	TeacherName    string `json:"teacherName"`
	Section        string `json:"section"`
	SubjectName    string `json:"subjectName"`
	AcademicYear   string `json:"academicYear"`
	BTechYear      string `json:"btechYear"`
	Semester       string `json:"semester"`
	PassPercentage string `json:"passPercentage"`
}

// Cells returns the row's values in Headers order
func (r Row) Cells() []string {
	return []string{
		strconv.Itoa(r.Index),
		r.TeacherName,
		r.Section,
		r.SubjectName,
		r.AcademicYear,
		r.BTechYear,
		r.Semester,
		r.PassPercentage,
	}
}

// Rows projects records into rows numbered from 1, preserving order.
func Rows(records []models.Record) []Row {
	rows := make([]Row, 0, len(records))
	for i, r := range records {
		rows = append(rows, Row{
			Index:          i + 1,
			TeacherName:    orNA(r.TeacherName.String()),
			Section:        orNA(r.Section),
			SubjectName:    orNA(r.SubjectName.String()),
			AcademicYear:   orNA(r.AcademicYear),
			BTechYear:      orNA(r.BTechYear.String()),
			Semester:       orNA(r.Semester.String()),
			PassPercentage: FormatPercentage(r),
		})
	}
	return rows
}

// FormatPercentage renders the pass percentage with two decimals and a
// trailing percent sign, or N/A when it is absent or unparsable.
func FormatPercentage(r models.Record) string {
	v, ok := r.PassPercent()
	if !ok {
		return NotAvailable
	}
	return strconv.FormatFloat(v, 'f', 2, 64) + "%"
}

func orNA(s string) string {
	if s == "" {
		return NotAvailable
	}
	return s
}
