package scoring

// Course is one row of a parsed transcript, as produced by the LLM parsing
// step. GPAValue is nil for pass/fail and administrative grades.
type Course struct {
	Code        string   `json:"code"`
	Name        string   `json:"name,omitempty"`
	Grade       string   `json:"grade"`
	Units       int      `json:"units"`
	Semester    string   `json:"semester"`
	Year        int      `json:"year,omitempty"`
	GPAValue    *float64 `json:"gpa_value"`
	IsGraduate  bool     `json:"is_graduate"`
	IsPassFail  bool     `json:"is_pass_fail"`
	IsTransfer  bool     `json:"is_transfer"`
	IsAP        bool     `json:"is_ap"`
	StudentYear int      `json:"student_year,omitempty"` // 1=freshman .. 4=senior, 0=unknown
}

// Transcript is the aggregate input for one scoring run.
type Transcript struct {
	University string              `json:"university"`
	Courses    []Course            `json:"courses"`
	Semesters  map[string][]Course `json:"semesters"`
}

// EnrichedCourse is a Course plus its resolved difficulty. Built fresh for
// every scoring run and never shared outside it.
type EnrichedCourse struct {
	Course
	Difficulty  float64 `json:"difficulty"`
	IsTechnical bool    `json:"is_technical"`
	IsKnown     bool    `json:"is_known"`
}

// ComponentScore is one scored dimension with everything needed to audit it.
type ComponentScore struct {
	Score       float64            `json:"score"`
	SubScores   map[string]float64 `json:"sub_scores,omitempty"`
	Weights     map[string]float64 `json:"weights,omitempty"`
	Explanation string             `json:"explanation"`
	Data        map[string]any     `json:"data,omitempty"`
}

// TranscriptStats are the aggregate counters reported next to the scores.
type TranscriptStats struct {
	TotalUnits          int     `json:"total_units"`
	TechnicalUnits      int     `json:"technical_units"`
	AvgUnitsPerSemester float64 `json:"avg_units_per_semester"`
	AvgDifficulty       float64 `json:"avg_difficulty"`
	CumulativeGPA       float64 `json:"cumulative_gpa"`
	TechnicalGPA        float64 `json:"technical_gpa"`
}

// ScoreBreakdown is the full output of one scoring run.
type ScoreBreakdown struct {
	Rigor        ComponentScore     `json:"rigor"`
	Performance  ComponentScore     `json:"performance"`
	Trajectory   ComponentScore     `json:"trajectory"`
	Load         ComponentScore     `json:"load"`
	Achievement  ComponentScore     `json:"achievement"`
	OverallScore float64            `json:"overall_score"`
	Weights      map[string]float64 `json:"weights,omitempty"`
	Strengths    []string           `json:"strengths"`
	Concerns     []string           `json:"concerns"`
	Achievements []string           `json:"achievements"`
	Stats        TranscriptStats    `json:"stats"`
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
