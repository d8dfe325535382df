package models

import (
	"bytes"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-json"
)

// Record is one teacher/subject/term performance entry.
// JSON keys are fixed by the published dataset.
type Record struct {
	TeacherName    Field  `json:"Name of the teacher"`
	Section        string `json:"Section"`
	SubjectName    Field  `json:"Name of the subject"`
	AcademicYear   string `json:"Academic Year"`
	BTechYear      Field  `json:"B. Tech. Year"`
	Semester       Field  `json:"Sem"`
	PassPercentage Field  `json:"% of Pass"`

	// RawSection keeps the label as published when Section holds a
	// normalized value
	RawSection string `json:"-"`
}

// PassPercent parses PassPercentage. ok is false when the value is absent or
// does not start with a finite number.
func (r Record) PassPercent() (float64, bool) {
	if !r.PassPercentage.Present {
		return 0, false
	}
	return ParsePercentage(r.PassPercentage.Value)
}

// Field is a record value published either as a JSON string or a JSON number.
// Numbers keep their shortest decimal text, so 2 reads as "2" and 85.50 as
// "85.5". Present is false for null or missing values.
type Field struct {
	Value   string
	Present bool
}

// Text returns a present Field holding s.
func Text(s string) Field {
	return Field{Value: s, Present: true}
}

// String returns the textual value, empty when absent.
func (f Field) String() string {
	return f.Value
}

// UnmarshalJSON implements json.Unmarshaler.
func (f *Field) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*f = Field{}
		return nil
	}

	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = Text(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		// booleans, objects and arrays keep their literal text and fail
		// percentage parsing for this record only
		*f = Text(string(data))
		return nil
	}
	v, err := n.Float64()
	if err != nil {
		*f = Text(n.String())
		return nil
	}
	*f = Text(strconv.FormatFloat(v, 'f', -1, 64))
	return nil
}

// MarshalJSON implements json.Marshaler. Absent values encode as null.
func (f Field) MarshalJSON() ([]byte, error) {
	if !f.Present {
		return []byte("null"), nil
	}
	return json.Marshal(f.Value)
}

var leadingNumber = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?`)

// ParsePercentage reads the leading decimal number of s, ignoring surrounding
// whitespace and any trailing text such as a percent sign.
func ParsePercentage(s string) (float64, bool) {
	m := leadingNumber.FindString(strings.TrimSpace(s))
	if m == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(m, 64)
	if err != nil || math.IsInf(v, 0) || math.IsNaN(v) {
		return 0, false
	}
	return v, true
}
