package agent

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/pivot/backend/config"
	"github.com/pivot/backend/extractor"
	"github.com/pivot/backend/llm"
	"github.com/pivot/backend/logger"
	"github.com/pivot/backend/models"
	"github.com/pivot/backend/resume"
	"github.com/pivot/backend/storage"
)

// ErrTextTooShort is returned when the extracted text is below the minimum
// length. No model call is made in that case.
var ErrTextTooShort = errors.New("resume text is empty or too short")

// TextExtractor turns a stored document into plain text
type TextExtractor interface {
	Extract(ctx context.Context, src *extractor.Source) (string, error)
}

// ResumeAnalyzer produces a skill gap analysis
type ResumeAnalyzer interface {
	Analyze(ctx context.Context, text, targetPosition string) (*models.AnalysisResult, error)
}

// ResumeStructurer converts résumé text into a structured record
type ResumeStructurer interface {
	Structure(ctx context.Context, text string) (*models.ResumeData, error)
}

// Options wires a CareerAgent
type Options struct {
	Store         *storage.UploadStore
	Extractor     TextExtractor
	Analyzer      ResumeAnalyzer
	Structurer    ResumeStructurer
	Model         llm.ChatModel
	MinTextLength int
}

// CareerAgent runs the upload pipelines: stored file, text extraction, then
// the analysis or structuring call. Every pipeline deletes its upload before
// returning.
type CareerAgent struct {
	store         *storage.UploadStore
	extractor     TextExtractor
	analyzer      ResumeAnalyzer
	structurer    ResumeStructurer
	model         llm.ChatModel
	minTextLength int
}

// New creates an agent from explicit parts
func New(opts Options) *CareerAgent {
	return &CareerAgent{
		store:         opts.Store,
		extractor:     opts.Extractor,
		analyzer:      opts.Analyzer,
		structurer:    opts.Structurer,
		model:         opts.Model,
		minTextLength: opts.MinTextLength,
	}
}

// NewCareerAgent wires the default extractors and services around one
// chat model, using the model names from cfg.
func NewCareerAgent(cfg *config.Config, model llm.ChatModel, store *storage.UploadStore) *CareerAgent {
	analysisModel, structuringModel, visionModel := cfg.Models()

	return New(Options{
		Store:         store,
		Extractor:     extractor.NewDefault(extractor.NewImage(model, visionModel)),
		Analyzer:      resume.NewAnalyzer(model, analysisModel),
		Structurer:    resume.NewStructurer(model, structuringModel),
		Model:         model,
		MinTextLength: cfg.MinTextLength,
	})
}

// Store returns the upload store the agent cleans up after
func (a *CareerAgent) Store() *storage.UploadStore {
	return a.store
}

// Ready reports whether the chat model has credentials
func (a *CareerAgent) Ready() error {
	return llm.Check(a.model)
}

// Verify confirms the credentials with a live provider call when the model
// supports one
func (a *CareerAgent) Verify(ctx context.Context) error {
	return llm.Probe(ctx, a.model)
}

// Provider names the configured chat model provider
func (a *CareerAgent) Provider() string {
	if a.model == nil {
		return ""
	}
	return a.model.Provider()
}

// AnalyzeResume extracts the upload and runs the skill gap analysis
func (a *CareerAgent) AnalyzeResume(ctx context.Context, upload *storage.Upload, targetPosition string) (*models.AnalysisResult, error) {
	defer a.store.Remove(ctx, upload)

	if strings.TrimSpace(targetPosition) == "" {
		return nil, resume.ErrTargetRequired
	}
	if err := llm.Check(a.model); err != nil {
		return nil, err
	}

	text, err := a.extract(ctx, upload)
	if err != nil {
		return nil, err
	}

	logger.Info(ctx, "analyzing resume", "target_position", targetPosition, "text_chars", utf8.RuneCountInString(text))
	return a.analyzer.Analyze(ctx, text, targetPosition)
}

// ParseResume extracts the upload and structures it. The extracted text is
// attached as RawText.
func (a *CareerAgent) ParseResume(ctx context.Context, upload *storage.Upload) (*models.ResumeData, error) {
	defer a.store.Remove(ctx, upload)

	if err := llm.Check(a.model); err != nil {
		return nil, err
	}

	text, err := a.extract(ctx, upload)
	if err != nil {
		return nil, err
	}

	data, err := a.structurer.Structure(ctx, text)
	if err != nil {
		return nil, err
	}
	data.RawText = text
	return data, nil
}

// ExtractText returns the upload's text without calling a model for
// document formats. Images still need the vision model.
func (a *CareerAgent) ExtractText(ctx context.Context, upload *storage.Upload) (string, error) {
	defer a.store.Remove(ctx, upload)
	return a.extract(ctx, upload)
}

func (a *CareerAgent) extract(ctx context.Context, upload *storage.Upload) (string, error) {
	data, err := a.store.Read(upload)
	if err != nil {
		return "", err
	}

	text, err := a.extractor.Extract(ctx, &extractor.Source{
		Data:     data,
		MIMEType: upload.MIMEType,
		Filename: upload.Filename,
	})
	if err != nil {
		logger.Warn(ctx, "text extraction failed", "file", upload.Filename, "mime_type", upload.MIMEType, "error", err)
		return "", fmt.Errorf("extract %s: %w", upload.Filename, err)
	}

	if n := utf8.RuneCountInString(strings.TrimSpace(text)); n < a.minTextLength {
		logger.Warn(ctx, "extracted text too short", "chars", n, "min", a.minTextLength)
		return "", ErrTextTooShort
	}
	return text, nil
}
