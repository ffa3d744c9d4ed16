package scoring

import "strings"

// GradeKind classifies a grade token into one of three closed categories.
type GradeKind int

const (
	GradeLetter GradeKind = iota
	GradePassFail
	GradeAdministrative
	GradeUnknown
)

// Grade is the decoded form of a raw grade token.
type Grade struct {
	Token string
	Kind  GradeKind
	// Value is the 4.0-scale value for letter grades, zero otherwise.
	Value float64
	// Passed is set for pass/fail tokens that represent a pass.
	Passed bool
}

var letterGrades = map[string]float64{
	"A+": 4.3,
	"A":  4.0,
	"A-": 3.7,
	"B+": 3.3,
	"B":  3.0,
	"B-": 2.7,
	"C+": 2.3,
	"C":  2.0,
	"C-": 1.7,
	"D+": 1.3,
	"D":  1.0,
	"D-": 0.7,
	"F":  0.0,
}

var passTokens = map[string]bool{
	"P":  true, // pass
	"CR": true, // credit
	"S":  true, // satisfactory
	"NP": false,
	"NC": false,
	"U":  false,
}

var adminTokens = map[string]bool{
	"W":  true, // withdrawn
	"I":  true, // incomplete
	"IP": true, // in progress
}

// ParseGrade decodes a raw grade token into its closed category. Unknown
// tokens come back with GradeUnknown; callers treat them as administrative.
func ParseGrade(token string) Grade {
	t := strings.ToUpper(strings.TrimSpace(token))
	if v, ok := letterGrades[t]; ok {
		return Grade{Token: t, Kind: GradeLetter, Value: v}
	}
	if passed, ok := passTokens[t]; ok {
		return Grade{Token: t, Kind: GradePassFail, Passed: passed}
	}
	if adminTokens[t] {
		return Grade{Token: t, Kind: GradeAdministrative}
	}
	return Grade{Token: t, Kind: GradeUnknown}
}

// GPAValue returns the grade's GPA contribution. The second return is false
// for pass/fail and administrative grades, which carry no GPA value.
func (g Grade) GPAValue() (float64, bool) {
	if g.Kind != GradeLetter {
		return 0, false
	}
	return g.Value, true
}
