package scoring

import "fmt"

// ScorePerformance measures how well the student did, adjusted for how hard
// each course was. High grades in hard courses are rewarded, low grades in
// easy courses are penalized, and pass/fail passes contribute a flat proxy at
// half weight. AP credit is excluded.
func ScorePerformance(courses []EnrichedCourse) ComponentScore {
	var weightedSum, totalWeight float64
	var hardACount, gradPassCount float64

	for _, c := range courses {
		if c.IsAP {
			continue
		}

		weight := float64(c.Units) * (1 + (c.Difficulty/5)*0.2)

		if c.IsPassFail {
			grade := ParseGrade(c.Grade)
			if !grade.Passed {
				continue
			}
			proxy := 60.0
			if c.Difficulty >= 7 {
				proxy = 70.0
			}
			weightedSum += proxy * (weight * 0.5)
			totalWeight += weight * 0.5
			continue
		}

		if c.GPAValue == nil {
			continue
		}
		gpa := *c.GPAValue

		base := (gpa / 4.0) * 100
		var multiplier float64
		switch {
		case gpa >= 3.7:
			// Reward, never penalize, an A: the multiplier stays within
			// [1.0, 1.5] so an A beats a B at any difficulty.
			multiplier = clamp(1+(c.Difficulty-5)*0.1, 1.0, 1.5)
		case gpa >= 3.0:
			multiplier = 1.0
		default:
			multiplier = 1 - (5-c.Difficulty)*0.05
		}

		if isGradEarly(c) && gpa >= 3.0 {
			multiplier *= 1.1
			gradPassCount++
		}
		if gpa >= 3.7 && c.Difficulty >= 8 {
			hardACount++
		}

		weightedSum += base * multiplier * weight
		totalWeight += weight
	}

	if totalWeight == 0 {
		return ComponentScore{
			Score:       0,
			Explanation: "no graded courses for performance",
		}
	}

	weightedAvg := weightedSum / totalWeight
	hardABonus := min(10, 3*hardACount)
	gradBonus := min(8, 4*gradPassCount)
	score := clamp(weightedAvg+hardABonus+gradBonus, 0, 100)

	return ComponentScore{
		Score: score,
		SubScores: map[string]float64{
			"weighted_avg":      weightedAvg,
			"hard_a_bonus":      hardABonus,
			"grad_course_bonus": gradBonus,
		},
		Explanation: fmt.Sprintf(
			"difficulty-adjusted performance %.1f with %.0f bonus points",
			weightedAvg, hardABonus+gradBonus),
		Data: map[string]any{
			"hard_course_as":     hardACount,
			"grad_course_passes": gradPassCount,
		},
	}
}
