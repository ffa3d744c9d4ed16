package scoring

import "fmt"

// ScoreRigor measures how challenging the course selection was: a
// unit-weighted average difficulty plus bonuses for hard courses, graduate
// courses taken early, and pass/fail risk-taking. AP credit is excluded
// because it was not taken at the institution.
func ScoreRigor(courses []EnrichedCourse) ComponentScore {
	var weightedSum, totalWeight float64
	var hardBonus, gradEarlyCount, pfRiskCount float64

	for _, c := range courses {
		if c.IsAP {
			continue
		}

		difficulty := c.Difficulty
		if isGradEarly(c) {
			difficulty += 1.5
			if difficulty > 10 {
				difficulty = 10
			}
			gradEarlyCount++
		}

		weight := float64(c.Units)
		if c.IsTransfer {
			weight *= 0.8
		}
		weightedSum += difficulty * weight
		totalWeight += weight

		switch {
		case c.Difficulty >= 8:
			hardBonus += 5
		case c.Difficulty >= 7:
			hardBonus += 2
		}
		if c.IsPassFail && c.Difficulty >= 7 {
			pfRiskCount++
		}
	}

	if totalWeight == 0 {
		return ComponentScore{
			Score:       0,
			Explanation: "no countable courses for rigor",
		}
	}

	avgDifficulty := weightedSum / totalWeight
	base := (avgDifficulty / 10) * 100

	if hardBonus > 15 {
		hardBonus = 15
	}
	gradBonus := min(gradEarlyCount*5, 10)
	pfBonus := min(pfRiskCount*2, 5)

	score := clamp(base+hardBonus+gradBonus+pfBonus, 0, 100)

	return ComponentScore{
		Score: score,
		SubScores: map[string]float64{
			"base":              base,
			"hard_course_bonus": hardBonus,
			"grad_early_bonus":  gradBonus,
			"pass_fail_bonus":   pfBonus,
		},
		Explanation: fmt.Sprintf(
			"unit-weighted average difficulty %.2f/10 with %.0f bonus points",
			avgDifficulty, hardBonus+gradBonus+pfBonus),
		Data: map[string]any{
			"avg_difficulty":         avgDifficulty,
			"grad_courses_early":     gradEarlyCount,
			"pass_fail_hard_courses": pfRiskCount,
		},
	}
}
