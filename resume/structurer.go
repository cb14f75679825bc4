package resume

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/pivot/backend/llm"
	"github.com/pivot/backend/logger"
	"github.com/pivot/backend/models"
)

// ErrParse is returned when the model's reply is not a usable résumé record.
var ErrParse = errors.New("failed to parse resume structure")

const structuringMaxTokens = 4096

// requiredKeys must be present at the top level of the model's reply
var requiredKeys = []string{"contact", "experience", "education", "skills"}

// Structurer converts résumé text into a ResumeData record.
type Structurer struct {
	model     llm.ChatModel
	modelName string
}

// NewStructurer creates a structurer that calls modelName on model.
func NewStructurer(model llm.ChatModel, modelName string) *Structurer {
	return &Structurer{model: model, modelName: modelName}
}

// Structure runs one JSON-mode completion and validates the top-level
// shape of the reply. Entries without an id get a generated one and
// absent lists become empty.
func (s *Structurer) Structure(ctx context.Context, text string) (*models.ResumeData, error) {
	reply, err := s.model.Generate(ctx, llm.Request{
		System:    structuringSystemPrompt,
		Prompt:    text,
		Model:     s.modelName,
		JSON:      true,
		MaxTokens: structuringMaxTokens,
	})
	if errors.Is(err, llm.ErrEmptyResponse) {
		return nil, fmt.Errorf("%w: empty model response", ErrParse)
	}
	if err != nil {
		return nil, fmt.Errorf("structure resume: %w", err)
	}

	data, err := decodeResume(llm.CleanJSON(reply))
	if err != nil {
		logger.Warn(ctx, "structuring reply rejected", "error", err, "reply_bytes", len(reply))
		return nil, err
	}

	logger.Info(ctx, "resume structured",
		"experience", len(data.Experience),
		"education", len(data.Education),
		"skills", len(data.Skills))
	return data, nil
}

func decodeResume(raw string) (*models.ResumeData, error) {
	var top map[string]json.RawMessage
	if err := json.Unmarshal([]byte(raw), &top); err != nil {
		return nil, fmt.Errorf("%w: invalid JSON: %v", ErrParse, err)
	}
	for _, key := range requiredKeys {
		if _, ok := top[key]; !ok {
			return nil, fmt.Errorf("%w: missing %q", ErrParse, key)
		}
	}
	if string(top["contact"]) == "null" {
		return nil, fmt.Errorf("%w: contact is null", ErrParse)
	}

	var data models.ResumeData
	if err := json.Unmarshal([]byte(raw), &data); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	Normalize(&data)
	return &data, nil
}

// Normalize replaces nil lists with empty ones and assigns ids to
// entries that lack one.
func Normalize(data *models.ResumeData) {
	if data.Experience == nil {
		data.Experience = []models.Experience{}
	}
	if data.Education == nil {
		data.Education = []models.Education{}
	}
	if data.Skills == nil {
		data.Skills = models.FlexibleStringSlice{}
	}
	if data.Certifications == nil {
		data.Certifications = models.FlexibleStringSlice{}
	}
	if data.Languages == nil {
		data.Languages = models.FlexibleStringSlice{}
	}

	for i := range data.Experience {
		exp := &data.Experience[i]
		if exp.ID == "" {
			exp.ID = uuid.New().String()
		}
		if exp.Highlights == nil {
			exp.Highlights = models.FlexibleStringSlice{}
		}
	}
	for i := range data.Education {
		edu := &data.Education[i]
		if edu.ID == "" {
			edu.ID = uuid.New().String()
		}
		if edu.Highlights == nil {
			edu.Highlights = models.FlexibleStringSlice{}
		}
	}
}
