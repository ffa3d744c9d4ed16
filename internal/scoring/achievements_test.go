package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func technical(c EnrichedCourse) EnrichedCourse {
	c.IsTechnical = true
	return c
}

func TestDetectAchievementsNeutralBase(t *testing.T) {
	courses := []EnrichedCourse{
		inSemester(graded("CS 61A", "A", 4, 6.5), "Fall 2023"),
	}
	cs := DetectAchievements(courses, groupBySemester(courses))
	assert.Equal(t, 50.0, cs.Score)
	assert.Empty(t, achievementNotes(cs))
}

func TestDetectAchievementsHardSemester(t *testing.T) {
	label := "Fall 2022"
	courses := []EnrichedCourse{
		inSemester(graded("CS 162", "B", 4, 9.0), label),
		inSemester(graded("CS 170", "B", 4, 8.5), label),
		inSemester(graded("CS 61C", "B", 4, 7.5), label),
	}
	cs := DetectAchievements(courses, groupBySemester(courses))
	assert.Equal(t, 60.0, cs.Score)
	assert.Contains(t, achievementNotes(cs)[0], label)
}

func TestDetectAchievementsHardCourseEarly(t *testing.T) {
	course := graded("CS 170", "A", 4, 8.5)
	course.StudentYear = 1
	courses := []EnrichedCourse{inSemester(course, "Fall 2022")}
	cs := DetectAchievements(courses, groupBySemester(courses))
	assert.Equal(t, 65.0, cs.Score)

	// Same grade as a senior is not exceptional.
	course.StudentYear = 4
	courses = []EnrichedCourse{inSemester(course, "Fall 2022")}
	cs = DetectAchievements(courses, groupBySemester(courses))
	assert.Equal(t, 50.0, cs.Score)
}

func TestDetectAchievementsTechnicalGPA(t *testing.T) {
	courses := []EnrichedCourse{
		technical(inSemester(graded("CS 61A", "A", 4, 6.5), "Fall 2022")),
		technical(inSemester(graded("CS 61B", "A", 4, 7.0), "Spring 2023")),
		technical(inSemester(graded("MATH 1B", "A", 4, 6.0), "Spring 2023")),
	}
	cs := DetectAchievements(courses, groupBySemester(courses))
	assert.Equal(t, 65.0, cs.Score)

	// Two technical courses are not enough evidence for the pattern.
	cs = DetectAchievements(courses[:2], groupBySemester(courses[:2]))
	assert.Equal(t, 50.0, cs.Score)
}

func TestDetectAchievementsAPlusCap(t *testing.T) {
	labels := []string{"Fall 2021", "Spring 2022", "Fall 2022", "Spring 2023", "Fall 2023"}
	var courses []EnrichedCourse
	for i := 0; i < 5; i++ {
		courses = append(courses, inSemester(graded("CS 162", "A+", 4, 9.5), labels[i]))
	}
	cs := DetectAchievements(courses, groupBySemester(courses))
	// 3x A+ in difficulty >=9 at +10 each, on top of the base.
	assert.Equal(t, 80.0, cs.Score)
}

func TestDetectAchievementsGradCourses(t *testing.T) {
	grad := graded("CS 262A", "A-", 4, 9.0)
	grad.IsGraduate = true
	courses := []EnrichedCourse{inSemester(grad, "Fall 2022")}
	cs := DetectAchievements(courses, groupBySemester(courses))
	assert.Equal(t, 58.0, cs.Score)
}

func TestDetectAchievementsPassFailRiskAndBreadth(t *testing.T) {
	courses := []EnrichedCourse{
		technical(inSemester(graded("CS 170", "P", 4, 8.5), "Fall 2022")),
		technical(inSemester(graded("MATH 185", "P", 4, 8.0), "Fall 2022")),
		technical(inSemester(graded("STAT 134", "B", 4, 7.0), "Spring 2023")),
		technical(inSemester(graded("EE 120", "B", 4, 7.0), "Spring 2023")),
	}
	cs := DetectAchievements(courses, groupBySemester(courses))
	// +5 for two pass/fail passes in difficulty >=8, +8 for four technical
	// departments.
	assert.Equal(t, 63.0, cs.Score)
}
