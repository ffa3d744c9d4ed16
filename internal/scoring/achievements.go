package scoring

import (
	"fmt"
	"sort"
)

// DetectAchievements scans the enriched courses and their semester groupings
// for exceptional patterns. It returns a score built up from a neutral base
// of 50 plus a human-readable note per detected pattern.
func DetectAchievements(courses []EnrichedCourse, semesters map[string][]EnrichedCourse) ComponentScore {
	score := 50.0
	var notes []string

	// Heavy hard-course semester.
	for _, label := range sortedSemesterLabels(semesters) {
		hard := 0
		for _, c := range semesters[label] {
			if c.Difficulty >= 7 {
				hard++
			}
		}
		if hard >= 3 {
			score += 10
			notes = append(notes, fmt.Sprintf(
				"Took %d challenging courses in %s", hard, label))
			break
		}
	}

	// Hard courses aced early.
	for _, c := range courses {
		if c.Difficulty >= 8 && c.GPAValue != nil && *c.GPAValue >= 3.7 &&
			(c.StudentYear == 1 || c.StudentYear == 2) {
			score += 15
			notes = append(notes, fmt.Sprintf(
				"Excelled in %s (difficulty %.1f) as an underclassman", c.Code, c.Difficulty))
		}
	}

	// Outstanding technical GPA. A single good grade is not a pattern, so
	// this needs at least three graded technical courses.
	techGraded := 0
	for _, c := range courses {
		if c.IsTechnical && !c.IsAP && c.GPAValue != nil {
			techGraded++
		}
	}
	if techGPA := unitWeightedGPA(courses, true); techGraded >= 3 && techGPA >= 3.9 {
		score += 15
		notes = append(notes, fmt.Sprintf("Technical GPA of %.2f", techGPA))
	}

	// A+ in the hardest courses.
	aPlusCount := 0
	for _, c := range courses {
		if aPlusCount >= 3 {
			break
		}
		if ParseGrade(c.Grade).Token == "A+" && c.Difficulty >= 9 {
			score += 10
			aPlusCount++
			notes = append(notes, fmt.Sprintf("A+ in %s (difficulty %.1f)", c.Code, c.Difficulty))
		}
	}

	// Graduate coursework passed.
	gradPassCount := 0
	for _, c := range courses {
		if gradPassCount >= 3 {
			break
		}
		if c.IsGraduate && coursePassed(c) {
			score += 8
			gradPassCount++
			notes = append(notes, fmt.Sprintf("Passed graduate course %s", c.Code))
		}
	}

	// Pass/fail risk-taking in the hardest courses.
	pfHard := 0
	for _, c := range courses {
		if c.IsPassFail && c.Difficulty >= 8 && ParseGrade(c.Grade).Passed {
			pfHard++
		}
	}
	if pfHard >= 2 {
		score += 5
		notes = append(notes, fmt.Sprintf(
			"Passed %d very hard courses on a pass/fail basis", pfHard))
	}

	// Breadth across technical departments.
	depts := make(map[string]bool)
	for _, c := range courses {
		if !c.IsTechnical {
			continue
		}
		if dept, _, ok := SplitCourseCode(c.Code); ok {
			depts[dept] = true
		}
	}
	if len(depts) >= 4 {
		score += 8
		names := make([]string, 0, len(depts))
		for d := range depts {
			names = append(names, d)
		}
		sort.Strings(names)
		notes = append(notes, fmt.Sprintf(
			"Technical coursework spanning %d departments", len(names)))
	}

	return ComponentScore{
		Score:       clamp(score, 0, 100),
		Explanation: fmt.Sprintf("%d exceptional patterns detected", len(notes)),
		Data:        map[string]any{"achievements": notes},
	}
}

// coursePassed reports whether a course was completed successfully, either
// with a pass token or a B-or-better letter grade.
func coursePassed(c EnrichedCourse) bool {
	if c.IsPassFail {
		return ParseGrade(c.Grade).Passed
	}
	return c.GPAValue != nil && *c.GPAValue >= 3.0
}

// achievementNotes pulls the note list back out of the component's payload.
func achievementNotes(cs ComponentScore) []string {
	notes, _ := cs.Data["achievements"].([]string)
	if notes == nil {
		return []string{}
	}
	return notes
}
