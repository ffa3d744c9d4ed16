package scoring

import "fmt"

// semesterGPA is one semester's unit-weighted GPA over graded courses.
type semesterGPA struct {
	Label string
	GPA   float64
}

// ScoreTrajectory measures the trend of semester GPAs over time by comparing
// the first half of the ordered semesters against the second half. Fewer than
// two graded semesters yields a neutral 50.
func ScoreTrajectory(semesters map[string][]EnrichedCourse) ComponentScore {
	gpas := semesterGPAs(semesters)

	if len(gpas) < 2 {
		return ComponentScore{
			Score:       50,
			Explanation: "not enough graded semesters for a trend",
			Data:        map[string]any{"graded_semesters": len(gpas)},
		}
	}

	mid := len(gpas) / 2
	firstAvg := avgGPA(gpas[:mid])
	secondAvg := avgGPA(gpas[mid:])
	trend := secondAvg - firstAvg
	base := 50 + trend*50

	consistent := true
	var weakPenalty float64
	for _, s := range gpas {
		if s.GPA < 3.5 {
			consistent = false
		}
		if s.GPA < 2.5 {
			weakPenalty += 5
		}
	}
	var consistencyBonus float64
	if consistent {
		consistencyBonus = 10
	}

	score := clamp(base+consistencyBonus-weakPenalty, 0, 100)

	direction := "flat"
	switch {
	case trend > 0.05:
		direction = "improving"
	case trend < -0.05:
		direction = "declining"
	}

	history := make([]map[string]any, 0, len(gpas))
	for _, s := range gpas {
		history = append(history, map[string]any{"semester": s.Label, "gpa": s.GPA})
	}

	return ComponentScore{
		Score: score,
		SubScores: map[string]float64{
			"base":              base,
			"consistency_bonus": consistencyBonus,
			"weak_penalty":      weakPenalty,
		},
		Explanation: fmt.Sprintf("GPA trend %s (%+.2f from %.2f to %.2f)",
			direction, trend, firstAvg, secondAvg),
		Data: map[string]any{
			"trend":         trend,
			"semester_gpas": history,
		},
	}
}

// semesterGPAs computes per-semester unit-weighted GPAs in chronological
// order, skipping semesters with no GPA-bearing courses.
func semesterGPAs(semesters map[string][]EnrichedCourse) []semesterGPA {
	out := make([]semesterGPA, 0, len(semesters))
	for _, label := range sortedSemesterLabels(semesters) {
		var sum, units float64
		for _, c := range semesters[label] {
			if c.IsAP || c.GPAValue == nil {
				continue
			}
			sum += *c.GPAValue * float64(c.Units)
			units += float64(c.Units)
		}
		if units > 0 {
			out = append(out, semesterGPA{Label: label, GPA: sum / units})
		}
	}
	return out
}

func avgGPA(gpas []semesterGPA) float64 {
	if len(gpas) == 0 {
		return 0
	}
	var sum float64
	for _, s := range gpas {
		sum += s.GPA
	}
	return sum / float64(len(gpas))
}
