package models

import (
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordUnmarshalMixedTypes(t *testing.T) {
	data := []byte(`[
		{"Name of the teacher": "Dr. K. Ramesh", "Section": "cse-1", "Name of the subject": "DS",
		 "Academic Year": "2024-2025", "B. Tech. Year": 2, "Sem": "1", "% of Pass": 85.50},
		{"Name of the teacher": null, "Section": "ECE", "Academic Year": "2023-2024",
		 "B. Tech. Year": "3", "Sem": 2, "% of Pass": "bad"}
	]`)

	var records []Record
	require.NoError(t, json.Unmarshal(data, &records))
	require.Len(t, records, 2)

	first := records[0]
	assert.Equal(t, "Dr. K. Ramesh", first.TeacherName.String())
	assert.Equal(t, "cse-1", first.Section)
	assert.Equal(t, "2024-2025", first.AcademicYear)
	assert.Equal(t, Text("2"), first.BTechYear)
	assert.Equal(t, Text("1"), first.Semester)
	assert.Equal(t, Text("85.5"), first.PassPercentage)

	second := records[1]
	assert.False(t, second.TeacherName.Present)
	assert.False(t, second.SubjectName.Present)
	assert.Equal(t, "3", second.BTechYear.String())
	assert.Equal(t, "2", second.Semester.String())
	assert.Equal(t, Text("bad"), second.PassPercentage)
}

func TestRecordUnmarshalNonScalarFields(t *testing.T) {
	data := []byte(`[
		{"Section": "CSE", "Academic Year": "2024-2025", "% of Pass": 80},
		{"Section": "ECE", "Academic Year": "2024-2025", "B. Tech. Year": false, "Sem": [1], "% of Pass": true},
		{"Section": "IT", "Academic Year": "2024-2025", "% of Pass": {"value": 70}}
	]`)

	var records []Record
	require.NoError(t, json.Unmarshal(data, &records))
	require.Len(t, records, 3)

	_, ok := records[0].PassPercent()
	assert.True(t, ok)

	second := records[1]
	assert.Equal(t, Text("true"), second.PassPercentage)
	assert.Equal(t, Text("false"), second.BTechYear)
	assert.True(t, second.Semester.Present)
	_, ok = second.PassPercent()
	assert.False(t, ok)

	_, ok = records[2].PassPercent()
	assert.False(t, ok)
	assert.Equal(t, "IT", records[2].Section)
}

func TestFieldMarshal(t *testing.T) {
	out, err := json.Marshal(struct {
		A Field `json:"a"`
		B Field `json:"b"`
	}{A: Text("2"), B: Field{}})

	require.NoError(t, err)
	assert.JSONEq(t, `{"a":"2","b":null}`, string(out))
}

func TestPassPercent(t *testing.T) {
	tests := []struct {
		name   string
		field  Field
		want   float64
		wantOK bool
	}{
		{name: "plain", field: Text("85.5"), want: 85.5, wantOK: true},
		{name: "trailing zero", field: Text("85.50"), want: 85.5, wantOK: true},
		{name: "integer", field: Text("70"), want: 70, wantOK: true},
		{name: "percent sign", field: Text("92.3%"), want: 92.3, wantOK: true},
		{name: "whitespace", field: Text("  64 "), want: 64, wantOK: true},
		{name: "leading dot", field: Text(".5"), want: 0.5, wantOK: true},
		{name: "exponent", field: Text("8.55e1"), want: 85.5, wantOK: true},
		{name: "text", field: Text("bad"), wantOK: false},
		{name: "empty", field: Text(""), wantOK: false},
		{name: "overflow", field: Text("1e999"), wantOK: false},
		{name: "absent", field: Field{}, wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Record{PassPercentage: tt.field}.PassPercent()
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.InDelta(t, tt.want, got, 1e-9)
			}
		})
	}
}
