package scoring

// defaultUnits is assumed when the parser could not read a unit count.
const defaultUnits = 3

// enrich builds the per-run EnrichedCourse slice: grades normalized against
// the closed grade table, difficulty resolved per course, and student year
// inferred from chronological position when the parser left it blank.
func (e *Engine) enrich(t Transcript) []EnrichedCourse {
	semesterYear := inferStudentYears(t.Semesters)

	out := make([]EnrichedCourse, 0, len(t.Courses))
	for _, c := range t.Courses {
		if c.Units <= 0 {
			c.Units = defaultUnits
		}

		grade := ParseGrade(c.Grade)
		switch grade.Kind {
		case GradeLetter:
			if c.GPAValue == nil {
				v := grade.Value
				c.GPAValue = &v
			}
			c.IsPassFail = false
		case GradePassFail:
			c.IsPassFail = true
			c.GPAValue = nil
		default:
			// W/I/IP and anything unrecognized: no GPA, not pass/fail.
			c.IsPassFail = false
			c.GPAValue = nil
		}

		if c.StudentYear == 0 {
			c.StudentYear = semesterYear[c.Semester]
		}

		res := e.resolver.Resolve(c.Code, t.University)
		out = append(out, EnrichedCourse{
			Course:      c,
			Difficulty:  res.Difficulty,
			IsTechnical: res.IsTechnical,
			IsKnown:     res.IsKnown,
		})
	}
	return out
}

// inferStudentYears maps each semester label to a 1-4 student year based on
// its chronological position, assuming two primary semesters per year.
func inferStudentYears(semesters map[string][]Course) map[string]int {
	labels := sortedSemesterLabels(semesters)
	years := make(map[string]int, len(labels))
	for i, label := range labels {
		year := i/2 + 1
		if year > 4 {
			year = 4
		}
		years[label] = year
	}
	return years
}

// groupBySemester regroups enriched courses under their semester label so the
// semester-level scorers see resolved difficulties.
func groupBySemester(courses []EnrichedCourse) map[string][]EnrichedCourse {
	groups := make(map[string][]EnrichedCourse)
	for _, c := range courses {
		groups[c.Semester] = append(groups[c.Semester], c)
	}
	return groups
}

// isGradEarly reports whether a course is a graduate course taken in the
// student's first three years.
func isGradEarly(c EnrichedCourse) bool {
	return c.IsGraduate && c.StudentYear >= 1 && c.StudentYear <= 3
}
