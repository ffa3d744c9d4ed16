package scoring

import "fmt"

// Component weights for the overall score. Fixed, not configurable per call;
// they must sum to exactly 1.0.
const (
	WeightRigor       = 0.30
	WeightPerformance = 0.35
	WeightTrajectory  = 0.15
	WeightLoad        = 0.10
	WeightAchievement = 0.10
)

// Engine runs the full scoring pipeline. It is stateless between invocations
// apart from the read-only difficulty catalog, so one Engine can be shared by
// any number of concurrent scoring calls.
type Engine struct {
	resolver *DifficultyResolver
}

func NewEngine(catalog Catalog) *Engine {
	return &Engine{resolver: NewDifficultyResolver(catalog)}
}

// Score runs the five component scorers over one transcript and assembles
// the full breakdown. It never fails: an empty transcript produces a
// degraded breakdown with an overall score of 0.
func (e *Engine) Score(t Transcript) ScoreBreakdown {
	if len(t.Courses) == 0 {
		return emptyBreakdown()
	}

	courses := e.enrich(t)
	semesters := groupBySemester(courses)

	breakdown := ScoreBreakdown{
		Rigor:       ScoreRigor(courses),
		Performance: ScorePerformance(courses),
		Trajectory:  ScoreTrajectory(semesters),
		Load:        ScoreLoad(semesters),
		Achievement: DetectAchievements(courses, semesters),
	}

	breakdown.OverallScore = WeightRigor*breakdown.Rigor.Score +
		WeightPerformance*breakdown.Performance.Score +
		WeightTrajectory*breakdown.Trajectory.Score +
		WeightLoad*breakdown.Load.Score +
		WeightAchievement*breakdown.Achievement.Score

	breakdown.Weights = componentWeights()
	breakdown.Stats = computeStats(courses, semesters)
	breakdown.Achievements = achievementNotes(breakdown.Achievement)
	breakdown.Strengths, breakdown.Concerns = strengthsAndConcerns(breakdown)
	return breakdown
}

func componentWeights() map[string]float64 {
	return map[string]float64{
		"rigor":       WeightRigor,
		"performance": WeightPerformance,
		"trajectory":  WeightTrajectory,
		"load":        WeightLoad,
		"achievement": WeightAchievement,
	}
}

func emptyBreakdown() ScoreBreakdown {
	return ScoreBreakdown{
		Rigor:        ComponentScore{Explanation: "no courses to score"},
		Performance:  ComponentScore{Explanation: "no courses to score"},
		Trajectory:   ComponentScore{Score: 50, Explanation: "no courses to score"},
		Load:         ComponentScore{Explanation: "no courses to score"},
		Achievement:  ComponentScore{Explanation: "no courses to score"},
		Strengths:    []string{},
		Concerns:     []string{"No courses found in transcript"},
		Achievements: []string{},
	}
}

// unitWeightedGPA averages GPA values across GPA-bearing, non-AP courses,
// weighted by units. technicalOnly restricts it to technical courses.
func unitWeightedGPA(courses []EnrichedCourse, technicalOnly bool) float64 {
	var sum, units float64
	for _, c := range courses {
		if c.IsAP || c.GPAValue == nil {
			continue
		}
		if technicalOnly && !c.IsTechnical {
			continue
		}
		sum += *c.GPAValue * float64(c.Units)
		units += float64(c.Units)
	}
	if units == 0 {
		return 0
	}
	return sum / units
}

func computeStats(courses []EnrichedCourse, semesters map[string][]EnrichedCourse) TranscriptStats {
	stats := TranscriptStats{
		CumulativeGPA: unitWeightedGPA(courses, false),
		TechnicalGPA:  unitWeightedGPA(courses, true),
	}
	var difficultySum float64
	for _, c := range courses {
		stats.TotalUnits += c.Units
		if c.IsTechnical {
			stats.TechnicalUnits += c.Units
		}
		difficultySum += c.Difficulty
	}
	if len(courses) > 0 {
		stats.AvgDifficulty = difficultySum / float64(len(courses))
	}
	if len(semesters) > 0 {
		stats.AvgUnitsPerSemester = float64(stats.TotalUnits) / float64(len(semesters))
	}
	return stats
}

func strengthsAndConcerns(b ScoreBreakdown) (strengths, concerns []string) {
	// Both always serialize as JSON lists, even when nothing triggers.
	strengths = []string{}
	concerns = []string{}
	if b.Rigor.Score >= 75 {
		strengths = append(strengths, "Consistently challenging course selection")
	}
	if b.Performance.Score >= 80 {
		strengths = append(strengths, "Strong grades relative to course difficulty")
	}
	if b.Trajectory.Score >= 70 {
		strengths = append(strengths, "Improving grade trend over time")
	}
	if b.Load.Score >= 70 {
		strengths = append(strengths, "Heavy course loads handled well")
	}
	strengths = append(strengths, b.Achievements...)

	if b.Rigor.Score < 40 {
		concerns = append(concerns, "Mostly lower-difficulty coursework")
	}
	if b.Performance.Score < 50 {
		concerns = append(concerns, fmt.Sprintf(
			"Weak performance (%.0f/100) given course difficulty", b.Performance.Score))
	}
	if b.Trajectory.Score < 40 {
		concerns = append(concerns, "Declining grade trend")
	}
	return strengths, concerns
}
