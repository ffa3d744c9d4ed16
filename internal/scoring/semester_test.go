package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseSemesterKey(t *testing.T) {
	tests := []struct {
		label string
		key   int
	}{
		{"Fall 2023", 20233},
		{"fall 2023", 20233},
		{"2023 Fall", 20233},
		{"Autumn 2019", 20193},
		{"Spring 2021", 20211},
		{"Summer 2021", 20212},
		{"Semester 1", 20000},
		{"2022", 20220},
		{"garbage", 20000},
		{"", 20000},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.key, ParseSemesterKey(tt.label), tt.label)
	}
}

func TestParseSemesterKeyOrdering(t *testing.T) {
	// Spring < Summer < Fall within a year, any year beats earlier years.
	assert.Less(t, ParseSemesterKey("Spring 2022"), ParseSemesterKey("Summer 2022"))
	assert.Less(t, ParseSemesterKey("Summer 2022"), ParseSemesterKey("Fall 2022"))
	assert.Less(t, ParseSemesterKey("Fall 2022"), ParseSemesterKey("Spring 2023"))
}

func TestSortedSemesterLabels(t *testing.T) {
	semesters := map[string][]Course{
		"Fall 2023":   nil,
		"Spring 2022": nil,
		"Fall 2022":   nil,
		"Spring 2023": nil,
	}
	assert.Equal(t,
		[]string{"Spring 2022", "Fall 2022", "Spring 2023", "Fall 2023"},
		sortedSemesterLabels(semesters))
}
