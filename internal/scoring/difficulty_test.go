package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitCourseCode(t *testing.T) {
	tests := []struct {
		code string
		dept string
		num  string
		ok   bool
	}{
		{"CS 61A", "CS", "61A", true},
		{"cs61a", "CS", "61A", true},
		{"  math   1B ", "MATH", "1B", true},
		{"EECS 16A", "EECS", "16A", true},
		{"STAT C140", "STAT", "C140", true},
		{"61A", "", "", false},
		{"Intro to Jazz", "", "", false},
		{"", "", "", false},
	}
	for _, tt := range tests {
		dept, num, ok := SplitCourseCode(tt.code)
		assert.Equal(t, tt.ok, ok, tt.code)
		assert.Equal(t, tt.dept, dept, tt.code)
		assert.Equal(t, tt.num, num, tt.code)
	}
}

func TestResolveEstimates(t *testing.T) {
	r := NewDifficultyResolver(nil)

	tests := []struct {
		code       string
		difficulty float64
	}{
		{"HIST 10", 2.5},     // <50 base 3.0, medium dept -0.5
		{"ART 30", 2.5},      // <50 base 3.0, medium dept -0.5
		{"BIO 40", 3.0},      // <50 base 3.0, no adjustment
		{"CS 61A", 5.5},      // <100 base 5.0, hard dept +0.5
		{"MATH 55", 5.5},     // <100 base 5.0, hard dept +0.5
		{"CHEM 101", 6.5},    // <200 base 6.5
		{"PHYSICS 205", 8.0}, // <300 base 7.5, hard dept +0.5
		{"EE 380", 8.5},      // >=300 base 8.0, hard dept +0.5
		{"ENGL 310", 7.5},    // >=300 base 8.0, medium dept -0.5
	}
	for _, tt := range tests {
		res := r.Resolve(tt.code, "somewhere")
		assert.False(t, res.IsKnown, tt.code)
		assert.Equal(t, tt.difficulty, res.Difficulty, tt.code)
	}
}

func TestResolveUnparseableDefaultsToMedium(t *testing.T) {
	r := NewDifficultyResolver(nil)
	res := r.Resolve("Introduction to Underwater Basket Weaving", "somewhere")
	assert.Equal(t, 5.0, res.Difficulty)
	assert.False(t, res.IsKnown)
}

func TestResolveCatalogLookupOrder(t *testing.T) {
	catalog := NewStaticCatalog([]CatalogEntry{
		{University: "berkeley", Department: "CS", Number: "61A", Difficulty: 6.5, IsTechnical: true, Aliases: []string{"COMPSCI 61A"}},
		{University: "mit", Department: "MATH", Number: "18", Difficulty: 7.5, IsTechnical: true},
	})
	r := NewDifficultyResolver(catalog)

	// Exact id match.
	res := r.Resolve("CS 61A", "berkeley")
	assert.True(t, res.IsKnown)
	assert.Equal(t, 6.5, res.Difficulty)

	// Alias match for an unknown university id.
	res = r.Resolve("COMPSCI 61A", "somewhere")
	assert.True(t, res.IsKnown)
	assert.Equal(t, 6.5, res.Difficulty)

	// Department+number match across universities.
	res = r.Resolve("MATH 18", "somewhere")
	assert.True(t, res.IsKnown)
	assert.Equal(t, 7.5, res.Difficulty)

	// Catalog miss falls back to the estimate.
	res = r.Resolve("CS 189", "berkeley")
	assert.False(t, res.IsKnown)
	assert.Equal(t, 7.0, res.Difficulty)
}

func TestResolveClampsCatalogDifficulty(t *testing.T) {
	catalog := NewStaticCatalog([]CatalogEntry{
		{University: "x", Department: "CS", Number: "1", Difficulty: 12.0},
	})
	r := NewDifficultyResolver(catalog)
	res := r.Resolve("CS 1", "x")
	assert.Equal(t, 10.0, res.Difficulty)
}
