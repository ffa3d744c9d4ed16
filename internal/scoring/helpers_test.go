package scoring

// Test fixtures shared by the scorer tests.

func graded(code, grade string, units int, difficulty float64) EnrichedCourse {
	g := ParseGrade(grade)
	c := EnrichedCourse{Difficulty: difficulty, IsKnown: true}
	c.Code = code
	c.Grade = g.Token
	c.Units = units
	if v, ok := g.GPAValue(); ok {
		c.GPAValue = &v
	}
	if g.Kind == GradePassFail {
		c.IsPassFail = true
	}
	return c
}

func inSemester(c EnrichedCourse, semester string) EnrichedCourse {
	c.Semester = semester
	return c
}

func asSemesters(courses ...EnrichedCourse) map[string][]EnrichedCourse {
	return groupBySemester(courses)
}
