package scoring

import "fmt"

// ScoreLoad measures how heavy the average semester was in units. All rows
// count toward the load, including pass/fail and administrative grades.
func ScoreLoad(semesters map[string][]EnrichedCourse) ComponentScore {
	if len(semesters) == 0 {
		return ComponentScore{
			Score:       0,
			Explanation: "no semesters found",
		}
	}

	var totalUnits float64
	var heavySemesters float64
	for _, courses := range semesters {
		var units float64
		for _, c := range courses {
			units += float64(c.Units)
		}
		totalUnits += units
		if units >= 20 {
			heavySemesters++
		}
	}
	avg := totalUnits / float64(len(semesters))

	var base float64
	switch {
	case avg < 12:
		base = 30 + (avg/12)*20
	case avg < 15:
		base = 50 + ((avg-12)/3)*15
	case avg < 18:
		base = 65 + ((avg-15)/3)*15
	default:
		base = 80 + min(20, (avg-18)*5)
	}

	heavyBonus := min(10, 3*heavySemesters)
	score := clamp(base+heavyBonus, 0, 100)

	return ComponentScore{
		Score: score,
		SubScores: map[string]float64{
			"base":        base,
			"heavy_bonus": heavyBonus,
		},
		Explanation: fmt.Sprintf("average %.1f units per semester", avg),
		Data: map[string]any{
			"avg_units_per_semester": avg,
			"heavy_semesters":        heavySemesters,
		},
	}
}
