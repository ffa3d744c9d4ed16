package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScoreRigorBase(t *testing.T) {
	// Single course of difficulty 6.5: base (6.5/10)*100, no bonuses.
	cs := ScoreRigor([]EnrichedCourse{graded("CS 61A", "A", 4, 6.5)})
	assert.InDelta(t, 65.0, cs.Score, 0.001)
}

func TestScoreRigorExcludesAP(t *testing.T) {
	courses := []EnrichedCourse{
		graded("CS 61A", "A", 4, 6.5),
	}
	ap := graded("MATH 1A", "A", 4, 9.0)
	ap.IsAP = true

	without := ScoreRigor(courses)
	with := ScoreRigor(append(courses, ap))
	assert.Equal(t, without.Score, with.Score)
}

func TestScoreRigorGradEarlyBoost(t *testing.T) {
	course := graded("CS 262A", "A", 4, 8.0)
	course.IsGraduate = true
	course.StudentYear = 2

	cs := ScoreRigor([]EnrichedCourse{course})
	// Effective difficulty 9.5: base 95, +5 hard-course bonus, +5 grad-early.
	assert.InDelta(t, 100.0, cs.Score, 0.001)

	// Same course as a senior gets no boost.
	course.StudentYear = 4
	cs = ScoreRigor([]EnrichedCourse{course})
	assert.InDelta(t, 85.0, cs.Score, 0.001)
}

func TestScoreRigorTransferWeight(t *testing.T) {
	hard := graded("CS 170", "A", 4, 9.0)
	easy := graded("HIST 10", "A", 4, 3.0)
	easyTransfer := easy
	easyTransfer.IsTransfer = true

	// Down-weighting the easy transfer course pulls the average toward the
	// hard on-campus one.
	mixed := ScoreRigor([]EnrichedCourse{hard, easy})
	withTransfer := ScoreRigor([]EnrichedCourse{hard, easyTransfer})
	assert.Greater(t, withTransfer.Score, mixed.Score)
}

func TestScoreRigorBonusCaps(t *testing.T) {
	var courses []EnrichedCourse
	for i := 0; i < 10; i++ {
		courses = append(courses, graded("CS 162", "A", 4, 9.0))
	}
	cs := ScoreRigor(courses)
	// Hard-course bonus is capped at 15, so 90 base + 15 clamps at 100.
	assert.Equal(t, 100.0, cs.Score)
	assert.Equal(t, 15.0, cs.SubScores["hard_course_bonus"])
}

func TestScoreRigorPassFailRiskBonus(t *testing.T) {
	pf := graded("CS 170", "P", 4, 8.5)
	cs := ScoreRigor([]EnrichedCourse{pf})
	// Base 85 + 5 (difficulty >=8) + 2 (pass/fail risk).
	assert.InDelta(t, 92.0, cs.Score, 0.001)
}

func TestScoreRigorNoCourses(t *testing.T) {
	cs := ScoreRigor(nil)
	assert.Equal(t, 0.0, cs.Score)
}
