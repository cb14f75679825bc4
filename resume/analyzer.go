package resume

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/pivot/backend/llm"
	"github.com/pivot/backend/logger"
	"github.com/pivot/backend/models"
)

var (
	// ErrTargetRequired is returned for an empty target position.
	ErrTargetRequired = errors.New("target position is required")

	// ErrAnalysisFailed wraps every failure to obtain a usable analysis.
	ErrAnalysisFailed = errors.New("failed to analyze resume")
)

const analysisTemperature = 0.7

// Analyzer compares résumé text against a target position.
type Analyzer struct {
	model     llm.ChatModel
	modelName string
}

// NewAnalyzer creates an analyzer that calls modelName on model.
func NewAnalyzer(model llm.ChatModel, modelName string) *Analyzer {
	return &Analyzer{model: model, modelName: modelName}
}

// Analyze runs one JSON-mode completion and returns the parsed result.
// Provider and configuration errors stay matchable through the returned
// error alongside ErrAnalysisFailed.
func (a *Analyzer) Analyze(ctx context.Context, text, targetPosition string) (*models.AnalysisResult, error) {
	targetPosition = strings.TrimSpace(targetPosition)
	if targetPosition == "" {
		return nil, ErrTargetRequired
	}

	reply, err := a.model.Generate(ctx, llm.Request{
		System:      analysisSystemPrompt,
		Prompt:      analysisPrompt(text, targetPosition),
		Model:       a.modelName,
		JSON:        true,
		Temperature: llm.Temperature(analysisTemperature),
	})
	if errors.Is(err, llm.ErrEmptyResponse) {
		return nil, fmt.Errorf("%w: no response from AI", ErrAnalysisFailed)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrAnalysisFailed, err)
	}

	var result models.AnalysisResult
	if err := json.Unmarshal([]byte(llm.CleanJSON(reply)), &result); err != nil {
		logger.Warn(ctx, "analysis reply rejected", "error", err, "reply_bytes", len(reply))
		return nil, fmt.Errorf("%w: invalid JSON: %v", ErrAnalysisFailed, err)
	}
	normalizeAnalysis(&result)

	logger.Info(ctx, "analysis complete",
		"target_position", targetPosition,
		"current_skills", len(result.CurrentSkills),
		"skill_gaps", len(result.SkillGaps))
	return &result, nil
}

func normalizeAnalysis(r *models.AnalysisResult) {
	if r.CurrentSkills == nil {
		r.CurrentSkills = models.FlexibleStringSlice{}
	}
	if r.SkillGaps == nil {
		r.SkillGaps = []models.SkillGap{}
	}
	if r.LearningResources == nil {
		r.LearningResources = []models.LearningResource{}
	}
	if r.Certifications == nil {
		r.Certifications = []models.Certification{}
	}
	if r.Roadmap == nil {
		r.Roadmap = models.FlexibleStringSlice{}
	}

	for i := range r.SkillGaps {
		r.SkillGaps[i].Importance = normalizeImportance(r.SkillGaps[i].Importance)
	}
	for i := range r.LearningResources {
		res := &r.LearningResources[i]
		res.Type = normalizeResourceType(res.Type)
		res.Level = normalizeLevel(res.Level)
	}
}

func canonical(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.NewReplacer(" ", "-", "_", "-").Replace(s)
}

func normalizeImportance(v models.Importance) models.Importance {
	switch i := models.Importance(canonical(string(v))); i {
	case models.ImportanceCritical, models.ImportanceImportant, models.ImportanceNiceToHave:
		return i
	default:
		return models.ImportanceImportant
	}
}

func normalizeResourceType(v models.ResourceType) models.ResourceType {
	switch t := models.ResourceType(canonical(string(v))); t {
	case models.ResourceCourse, models.ResourceDocumentation, models.ResourceTutorial,
		models.ResourceBook, models.ResourceVideo:
		return t
	default:
		return models.ResourceCourse
	}
}

func normalizeLevel(v models.Level) models.Level {
	switch l := models.Level(canonical(string(v))); l {
	case models.LevelBeginner, models.LevelIntermediate, models.LevelAdvanced:
		return l
	default:
		return models.LevelIntermediate
	}
}
