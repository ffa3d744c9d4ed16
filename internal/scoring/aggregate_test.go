package scoring

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCatalog() Catalog {
	return NewStaticCatalog([]CatalogEntry{
		{University: "berkeley", Department: "CS", Number: "61A", Difficulty: 6.5, IsTechnical: true, Aliases: []string{"COMPSCI 61A"}},
		{University: "berkeley", Department: "CS", Number: "61B", Difficulty: 7.0, IsTechnical: true},
		{University: "berkeley", Department: "CS", Number: "70", Difficulty: 8.5, IsTechnical: true},
	})
}

func singleCourseTranscript() Transcript {
	course := Course{
		Code:     "CS 61A",
		Grade:    "A",
		Units:    4,
		Semester: "Fall 2023",
	}
	return Transcript{
		University: "berkeley",
		Courses:    []Course{course},
		Semesters:  map[string][]Course{"Fall 2023": {course}},
	}
}

func TestWeightsSumToOne(t *testing.T) {
	assert.Equal(t, 1.0, WeightRigor+WeightPerformance+WeightTrajectory+WeightLoad+WeightAchievement)
}

func TestScoreSingleCourseScenario(t *testing.T) {
	engine := NewEngine(testCatalog())
	b := engine.Score(singleCourseTranscript())

	assert.InDelta(t, 65.0, b.Rigor.Score, 0.001)
	assert.InDelta(t, 100.0, b.Performance.Score, 0.001)
	assert.InDelta(t, 50.0, b.Trajectory.Score, 0.001)
	assert.InDelta(t, 30+(4.0/12)*20, b.Load.Score, 0.001)
	assert.InDelta(t, 50.0, b.Achievement.Score, 0.001)
	assert.InDelta(t, 70.667, b.OverallScore, 0.01)

	assert.Equal(t, 4, b.Stats.TotalUnits)
	assert.Equal(t, 4, b.Stats.TechnicalUnits)
	assert.InDelta(t, 4.0, b.Stats.CumulativeGPA, 0.001)
	assert.InDelta(t, 4.0, b.Stats.TechnicalGPA, 0.001)
}

func TestScoreEmptyTranscript(t *testing.T) {
	engine := NewEngine(testCatalog())
	b := engine.Score(Transcript{University: "berkeley"})

	assert.Equal(t, 0.0, b.OverallScore)
	assert.Equal(t, 50.0, b.Trajectory.Score)
	assert.Equal(t, []string{"No courses found in transcript"}, b.Concerns)

	// Strengths and achievements serialize as empty lists, not null.
	payload, err := json.Marshal(b)
	require.NoError(t, err)
	assert.Contains(t, string(payload), `"strengths":[]`)
	assert.Contains(t, string(payload), `"achievements":[]`)
}

func TestScoreDeterministic(t *testing.T) {
	engine := NewEngine(testCatalog())
	transcript := Transcript{
		University: "berkeley",
		Courses: []Course{
			{Code: "CS 61A", Grade: "A", Units: 4, Semester: "Fall 2022"},
			{Code: "CS 61B", Grade: "A-", Units: 4, Semester: "Spring 2023"},
			{Code: "CS 70", Grade: "P", Units: 4, Semester: "Spring 2023"},
			{Code: "HIST 10", Grade: "W", Units: 3, Semester: "Fall 2022"},
		},
		Semesters: map[string][]Course{
			"Fall 2022":   {{Code: "CS 61A", Grade: "A", Units: 4, Semester: "Fall 2022"}, {Code: "HIST 10", Grade: "W", Units: 3, Semester: "Fall 2022"}},
			"Spring 2023": {{Code: "CS 61B", Grade: "A-", Units: 4, Semester: "Spring 2023"}, {Code: "CS 70", Grade: "P", Units: 4, Semester: "Spring 2023"}},
		},
	}

	first, err := json.Marshal(engine.Score(transcript))
	require.NoError(t, err)
	second, err := json.Marshal(engine.Score(transcript))
	require.NoError(t, err)
	assert.Equal(t, string(first), string(second))
}

func TestScoreRangeInvariants(t *testing.T) {
	engine := NewEngine(testCatalog())
	transcripts := []Transcript{
		singleCourseTranscript(),
		{University: "nowhere"},
		{
			University: "berkeley",
			Courses: []Course{
				{Code: "CS 70", Grade: "F", Units: 4, Semester: "Fall 2022"},
				{Code: "HIST 10", Grade: "D", Units: 3, Semester: "Spring 2023"},
			},
			Semesters: map[string][]Course{
				"Fall 2022":   {{Code: "CS 70", Grade: "F", Units: 4, Semester: "Fall 2022"}},
				"Spring 2023": {{Code: "HIST 10", Grade: "D", Units: 3, Semester: "Spring 2023"}},
			},
		},
	}
	for _, transcript := range transcripts {
		b := engine.Score(transcript)
		for name, score := range map[string]float64{
			"rigor":       b.Rigor.Score,
			"performance": b.Performance.Score,
			"trajectory":  b.Trajectory.Score,
			"load":        b.Load.Score,
			"achievement": b.Achievement.Score,
			"overall":     b.OverallScore,
		} {
			assert.GreaterOrEqual(t, score, 0.0, name)
			assert.LessOrEqual(t, score, 100.0, name)
		}
	}
}

func TestScoreAPCoursesDoNotChangeScores(t *testing.T) {
	engine := NewEngine(testCatalog())

	base := singleCourseTranscript()
	withAP := singleCourseTranscript()
	ap := Course{Code: "MATH 1A", Grade: "A", Units: 4, Semester: "Fall 2023", IsAP: true}
	withAP.Courses = append(withAP.Courses, ap)
	withAP.Semesters["Fall 2023"] = append(withAP.Semesters["Fall 2023"], ap)

	b1 := engine.Score(base)
	b2 := engine.Score(withAP)
	assert.Equal(t, b1.Rigor.Score, b2.Rigor.Score)
	assert.Equal(t, b1.Performance.Score, b2.Performance.Score)
	assert.Equal(t, b1.Stats.CumulativeGPA, b2.Stats.CumulativeGPA)
}

func TestScoreStudentYearInference(t *testing.T) {
	// Eight semesters: the first two map to year 1, the last two to year 4.
	semesters := make(map[string][]Course)
	labels := []string{
		"Fall 2020", "Spring 2021", "Fall 2021", "Spring 2022",
		"Fall 2022", "Spring 2023", "Fall 2023", "Spring 2024",
	}
	for _, label := range labels {
		semesters[label] = nil
	}
	years := inferStudentYears(semesters)
	assert.Equal(t, 1, years["Fall 2020"])
	assert.Equal(t, 1, years["Spring 2021"])
	assert.Equal(t, 2, years["Fall 2021"])
	assert.Equal(t, 4, years["Fall 2023"])
	assert.Equal(t, 4, years["Spring 2024"])
}

func TestScoreStrengthsAndConcerns(t *testing.T) {
	engine := NewEngine(testCatalog())

	// All F grades in easy courses: weak performance concern expected.
	weak := Transcript{
		University: "berkeley",
		Courses: []Course{
			{Code: "HIST 10", Grade: "F", Units: 3, Semester: "Fall 2022"},
			{Code: "ART 30", Grade: "D", Units: 3, Semester: "Spring 2023"},
		},
		Semesters: map[string][]Course{
			"Fall 2022":   {{Code: "HIST 10", Grade: "F", Units: 3, Semester: "Fall 2022"}},
			"Spring 2023": {{Code: "ART 30", Grade: "D", Units: 3, Semester: "Spring 2023"}},
		},
	}
	b := engine.Score(weak)
	assert.NotEmpty(t, b.Concerns)
}
