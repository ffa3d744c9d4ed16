package scoring

import (
	"fmt"
	"strings"
)

// Hand-tuned calibration tables. Treat these as replaceable configuration:
// the factors correct raw GPA toward a cross-school-comparable scale, the
// tier sets reflect relative selectivity.
var gradeInflationFactors = []struct {
	School string
	Factor float64
}{
	{"harvard", 0.90},
	{"yale", 0.91},
	{"brown", 0.90},
	{"stanford", 0.92},
	{"duke", 0.93},
	{"mit", 1.02},
	{"caltech", 1.05},
	{"berkeley", 1.00},
	{"cmu", 1.02},
	{"princeton", 0.97},
	{"cornell", 0.98},
	{"gatech", 1.03},
	{"purdue", 1.02},
	{"uchicago", 0.98},
}

var tier1Schools = []string{
	"mit", "stanford", "berkeley", "cmu", "caltech",
	"harvard", "princeton", "yale",
}

var tier2Schools = []string{
	"ucla", "michigan", "gatech", "uiuc", "cornell",
	"washington", "ut austin", "columbia", "duke",
}

// GPACalibration is the cross-school view of a raw cumulative GPA.
type GPACalibration struct {
	RawGPA                float64 `json:"raw_gpa"`
	AdjustedGPA           float64 `json:"adjusted_gpa"`
	InflationFactor       float64 `json:"inflation_factor"`
	SchoolPercentile      float64 `json:"school_percentile"`
	CrossSchoolPercentile float64 `json:"cross_school_percentile"`
	Explanation           string  `json:"explanation"`
}

// CalibrateGPA corrects a raw cumulative GPA for the university's grading
// behavior, estimates a within-school percentile from the raw GPA, and a
// cross-school percentile from the overall score plus a selectivity boost.
func CalibrateGPA(university string, rawGPA, avgDifficulty, overallScore float64) GPACalibration {
	factor := inflationFactor(university)

	adjusted := rawGPA * factor
	if boost := (avgDifficulty - 5) * 0.02; boost > 0 {
		adjusted += boost
	}
	if adjusted > 4.0 {
		adjusted = 4.0
	}

	cross := overallScore + tierBoost(university)
	if cross > 99 {
		cross = 99
	}

	return GPACalibration{
		RawGPA:                rawGPA,
		AdjustedGPA:           adjusted,
		InflationFactor:       factor,
		SchoolPercentile:      schoolPercentile(rawGPA),
		CrossSchoolPercentile: cross,
		Explanation: fmt.Sprintf(
			"raw GPA %.2f adjusted to %.2f (inflation factor %.2f)",
			rawGPA, adjusted, factor),
	}
}

func inflationFactor(university string) float64 {
	u := strings.ToLower(university)
	for _, entry := range gradeInflationFactors {
		if strings.Contains(u, entry.School) {
			return entry.Factor
		}
	}
	return 1.0
}

func tierBoost(university string) float64 {
	u := strings.ToLower(university)
	for _, name := range tier1Schools {
		if strings.Contains(u, name) {
			return 10
		}
	}
	for _, name := range tier2Schools {
		if strings.Contains(u, name) {
			return 5
		}
	}
	return 0
}

// schoolPercentile estimates a within-school percentile from raw GPA via a
// piecewise-linear ladder, interpolating inside each band.
func schoolPercentile(gpa float64) float64 {
	switch {
	case gpa >= 3.9:
		return min(98, 90+(gpa-3.9)/0.1*8)
	case gpa >= 3.7:
		return 75 + (gpa-3.7)/0.2*15
	case gpa >= 3.5:
		return 60 + (gpa-3.5)/0.2*15
	case gpa >= 3.0:
		return 30 + (gpa-3.0)/0.5*30
	default:
		return clamp(gpa*10, 0, 30)
	}
}
