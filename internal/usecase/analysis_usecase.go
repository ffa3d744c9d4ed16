package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/fadilmartias/transcript-analyzer/internal/model"
	"github.com/fadilmartias/transcript-analyzer/internal/repository"
	"github.com/fadilmartias/transcript-analyzer/internal/scoring"
	"github.com/fadilmartias/transcript-analyzer/internal/service"
	"github.com/pgvector/pgvector-go"
	"github.com/tidwall/gjson"
)

type AnalysisUsecase struct {
	taskRepo    *repository.TranscriptTaskRepository
	catalogRepo *repository.CourseDifficultyRepository
	openRouter  service.OpenRouterServiceInterface
	gemini      service.GeminiServiceInterface
	engine      *scoring.Engine
}

func NewAnalysisUsecase(taskRepo *repository.TranscriptTaskRepository, catalogRepo *repository.CourseDifficultyRepository, openRouter service.OpenRouterServiceInterface, gemini service.GeminiServiceInterface) *AnalysisUsecase {
	return &AnalysisUsecase{
		taskRepo:    taskRepo,
		catalogRepo: catalogRepo,
		openRouter:  openRouter,
		gemini:      gemini,
		engine:      scoring.NewEngine(catalogRepo),
	}
}

// Submit stores a new analysis task and kicks off the pipeline in the
// background. Progress is visible through the task's status column.
func (uc *AnalysisUsecase) Submit(task model.TranscriptTask) (string, error) {
	task.Status = "processing"
	task.Breakdown = "{}"
	task.Calibration = "{}"
	task.CreatedAt = time.Now()
	task.UpdatedAt = time.Now()
	if err := uc.taskRepo.CreateTask(&task); err != nil {
		return "", err
	}

	go uc.AnalyzeTask(&task)

	return task.ID.String(), nil
}

// AnalyzeTask runs the full pipeline for one stored task: LLM parse of the
// raw text into a structured transcript, then the deterministic scoring
// engine and GPA calibration.
func (uc *AnalysisUsecase) AnalyzeTask(task *model.TranscriptTask) error {
	ctx := context.Background()

	parsed, err := uc.parseTranscript(ctx, task.RawText)
	if err != nil {
		log.Printf("Parse failed for task %s: %v", task.ID, err)
		task.Status = "failed"
		_ = uc.taskRepo.UpdateTask(task)
		return err
	}

	transcript := decodeTranscript(parsed)
	if task.University != "" {
		transcript.University = task.University
	}

	breakdown := uc.engine.Score(transcript)
	calibration := scoring.CalibrateGPA(
		transcript.University,
		breakdown.Stats.CumulativeGPA,
		breakdown.Stats.AvgDifficulty,
		breakdown.OverallScore,
	)

	breakdownJSON, err := json.Marshal(breakdown)
	if err != nil {
		task.Status = "failed"
		_ = uc.taskRepo.UpdateTask(task)
		return err
	}
	calibrationJSON, _ := json.Marshal(calibration)

	task.University = transcript.University
	task.OverallScore = breakdown.OverallScore
	task.CumulativeGPA = breakdown.Stats.CumulativeGPA
	task.AdjustedGPA = calibration.AdjustedGPA
	task.Percentile = calibration.CrossSchoolPercentile
	task.Breakdown = string(breakdownJSON)
	task.Calibration = string(calibrationJSON)
	task.Status = "completed"
	return uc.taskRepo.UpdateTask(task)
}

// parseTranscript asks Gemini to structure the raw text, falling back to
// OpenRouter when Gemini fails.
func (uc *AnalysisUsecase) parseTranscript(ctx context.Context, rawText string) (string, error) {
	prompt := fmt.Sprintf(`
You are a transcript parser. Extract every course row from the academic transcript below.
Return your answer STRICTLY in JSON format with this schema:
{
  "university": "<university name, empty string if unknown>",
  "courses": [
    {
      "code": "<raw course code, e.g. CS 61A>",
      "name": "<course name if present>",
      "grade": "<raw grade token: A+..F, P, NP, CR, NC, S, U, W, I, IP>",
      "units": <integer, 3 if not shown>,
      "semester": "<semester label, e.g. Fall 2023>",
      "is_graduate": <true if a graduate-level course>,
      "is_transfer": <true if transfer credit>,
      "is_ap": <true if AP/exam credit>
    }
  ]
}

Transcript:
%s
`, rawText)

	text, err := uc.gemini.GenerateContent(ctx, "gemini-2.5-flash", prompt)
	if err == nil {
		return text, nil
	}
	log.Printf("Gemini parse failed, falling back to OpenRouter: %v", err)
	return uc.openRouter.ParseTranscript(rawText)
}

// decodeTranscript turns the LLM's JSON answer into the engine's input,
// grouping courses under their semester labels.
func decodeTranscript(text string) scoring.Transcript {
	t := scoring.Transcript{
		University: gjson.Get(text, "university").String(),
		Semesters:  make(map[string][]scoring.Course),
	}

	gjson.Get(text, "courses").ForEach(func(_, row gjson.Result) bool {
		course := scoring.Course{
			Code:       row.Get("code").String(),
			Name:       row.Get("name").String(),
			Grade:      row.Get("grade").String(),
			Units:      int(row.Get("units").Int()),
			Semester:   row.Get("semester").String(),
			Year:       int(row.Get("year").Int()),
			IsGraduate: row.Get("is_graduate").Bool(),
			IsTransfer: row.Get("is_transfer").Bool(),
			IsAP:       row.Get("is_ap").Bool(),
		}
		t.Courses = append(t.Courses, course)
		t.Semesters[course.Semester] = append(t.Semesters[course.Semester], course)
		return true
	})

	return t
}

func (uc *AnalysisUsecase) GetResult(id string) (*model.TranscriptTask, error) {
	return uc.taskRepo.FindTaskByID(id)
}

// SearchSimilarCourses embeds a free-text query and returns the closest
// catalog entries.
func (uc *AnalysisUsecase) SearchSimilarCourses(ctx context.Context, query string, topK int) ([]model.CourseDifficulty, error) {
	embedding, err := uc.gemini.GenerateEmbedding(ctx, query)
	if err != nil {
		return nil, err
	}
	return uc.catalogRepo.SearchSimilar(pgvector.NewVector(embedding), topK)
}

func (uc *AnalysisUsecase) ListCourses(page, pageSize int) ([]model.CourseDifficulty, int64, error) {
	return uc.catalogRepo.List(page, pageSize)
}

// SeedCatalog loads the built-in difficulty reference data and computes an
// embedding per course for similar-course search.
func (uc *AnalysisUsecase) SeedCatalog(ctx context.Context) error {
	for _, row := range seedCourses() {
		embedding, err := uc.gemini.GenerateEmbedding(ctx,
			fmt.Sprintf("%s %s %s", row.Department, row.Number, row.Name))
		if err != nil {
			return err
		}
		row.Embedding = pgvector.NewVector(embedding)
		row.CreatedAt = time.Now()
		row.UpdatedAt = time.Now()
		if err := uc.catalogRepo.Upsert(&row); err != nil {
			return err
		}
	}
	return nil
}
