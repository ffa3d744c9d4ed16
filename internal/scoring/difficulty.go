package scoring

import (
	"regexp"
	"strconv"
	"strings"
)

// CatalogEntry is one known course in the difficulty reference data.
type CatalogEntry struct {
	ID          string
	University  string
	Department  string
	Number      string
	Aliases     []string
	Difficulty  float64
	IsTechnical bool
}

// Catalog is the read-only course-difficulty reference data consulted by the
// resolver. A miss is not an error, it only triggers the estimate fallback.
type Catalog interface {
	// Lookup tries, in order: exact id "{university}_{dept}{number}", alias
	// match, then department+number match across universities.
	Lookup(university, department, number string) (CatalogEntry, bool)
}

// DifficultyResolution is the outcome of resolving one course code.
type DifficultyResolution struct {
	Department  string
	Number      string
	Difficulty  float64
	IsTechnical bool
	// IsKnown is true when the difficulty came from the catalog rather than
	// the number-magnitude estimate.
	IsKnown bool
}

var courseCodeRe = regexp.MustCompile(`^([A-Z]+)\s*([A-Z]?\d+[A-Z]?)$`)
var courseNumRe = regexp.MustCompile(`\d+`)

// Departments whose courses skew harder than their number suggests.
var hardDepartments = map[string]bool{
	"CS":      true,
	"EECS":    true,
	"EE":      true,
	"ECE":     true,
	"MATH":    true,
	"PHYSICS": true,
	"STAT":    true,
}

// Departments whose courses skew easier at a given number.
var mediumDepartments = map[string]bool{
	"COMM":  true,
	"SOC":   true,
	"PSYCH": true,
	"HIST":  true,
	"ENGL":  true,
	"ART":   true,
	"MUSIC": true,
}

var technicalDepartments = map[string]bool{
	"CS": true, "EECS": true, "EE": true, "ECE": true, "CSE": true,
	"MATH": true, "STAT": true, "PHYSICS": true, "PHYS": true,
	"CHEM": true, "BIO": true, "DATA": true, "DS": true,
	"ENGR": true, "ME": true, "MECH": true, "CEE": true, "BME": true,
	"ASTRO": true, "INFO": true,
}

// DifficultyResolver maps raw course codes to a 1-10 difficulty, preferring
// the catalog and falling back to a rule-based estimate.
type DifficultyResolver struct {
	catalog Catalog
}

func NewDifficultyResolver(catalog Catalog) *DifficultyResolver {
	return &DifficultyResolver{catalog: catalog}
}

// SplitCourseCode normalizes a raw course code and splits it into department
// and number ("cs  61a" -> "CS", "61A"). ok is false when the code does not
// match the department+number pattern.
func SplitCourseCode(code string) (department, number string, ok bool) {
	normalized := strings.ToUpper(strings.Join(strings.Fields(code), " "))
	m := courseCodeRe.FindStringSubmatch(normalized)
	if m == nil {
		return "", "", false
	}
	return m[1], m[2], true
}

// Resolve returns the difficulty for a raw course code at a university.
// Unparseable codes resolve to a medium 5.0 with IsKnown=false.
func (r *DifficultyResolver) Resolve(code, university string) DifficultyResolution {
	dept, num, ok := SplitCourseCode(code)
	if !ok {
		return DifficultyResolution{Difficulty: 5.0}
	}

	res := DifficultyResolution{
		Department:  dept,
		Number:      num,
		IsTechnical: technicalDepartments[dept],
	}

	if r.catalog != nil {
		if entry, found := r.catalog.Lookup(university, dept, num); found {
			res.Difficulty = clamp(entry.Difficulty, 1.0, 10.0)
			res.IsTechnical = entry.IsTechnical
			res.IsKnown = true
			return res
		}
	}

	res.Difficulty = estimateDifficulty(dept, num)
	return res
}

// estimateDifficulty guesses a difficulty from the course-number magnitude
// with a small department adjustment.
func estimateDifficulty(dept, number string) float64 {
	n := 0
	if m := courseNumRe.FindString(number); m != "" {
		n, _ = strconv.Atoi(m)
	}

	var base float64
	switch {
	case n < 50:
		base = 3.0
	case n < 100:
		base = 5.0
	case n < 200:
		base = 6.5
	case n < 300:
		base = 7.5
	default:
		base = 8.0
	}

	switch {
	case hardDepartments[dept]:
		base += 0.5
	case mediumDepartments[dept]:
		base -= 0.5
	}

	return clamp(base, 1.0, 10.0)
}
