package mcp

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/pivot/backend/catalog"
	"github.com/pivot/backend/export"
	"github.com/pivot/backend/handlers"
	"github.com/pivot/backend/logger"
	"github.com/pivot/backend/models"
	"github.com/pivot/backend/storage"
)

// ErrMissingContent is returned when a tool call carries no document
var ErrMissingContent = errors.New("filename and base64 content are required")

// DocumentInput carries a résumé file inline.
type DocumentInput struct {
	Filename string `json:"filename" jsonschema:"original file name; the extension is used when mimeType is missing or generic"`
	MIMEType string `json:"mimeType,omitempty" jsonschema:"declared MIME type, e.g. application/pdf"`
	Content  string `json:"content" jsonschema:"file bytes, base64 encoded"`
}

// ExtractOutput is the output of extract_resume_text.
type ExtractOutput struct {
	Text       string `json:"text"`
	Characters int    `json:"characters"`
}

// AnalyzeInput is the input of analyze_resume.
type AnalyzeInput struct {
	Filename       string `json:"filename" jsonschema:"original file name; the extension is used when mimeType is missing or generic"`
	MIMEType       string `json:"mimeType,omitempty" jsonschema:"declared MIME type, e.g. application/pdf"`
	Content        string `json:"content" jsonschema:"file bytes, base64 encoded"`
	TargetPosition string `json:"targetPosition" jsonschema:"job title to analyze the résumé against"`
}

func (in AnalyzeInput) document() DocumentInput {
	return DocumentInput{Filename: in.Filename, MIMEType: in.MIMEType, Content: in.Content}
}

// ExportInput is the input of export_resume. Its schema is written by hand
// in exportInputSchema; JSON nulls decode to zero values.
type ExportInput struct {
	ResumeData models.ResumeData `json:"resumeData"`
	Format     string            `json:"format"`
}

// ExportOutput is the rendered file, base64 encoded.
type ExportOutput struct {
	Filename    string `json:"filename"`
	ContentType string `json:"contentType"`
	Content     string `json:"content"`
	Size        int    `json:"size"`
}

// ListPositionsInput filters the position catalog.
type ListPositionsInput struct {
	Department string `json:"department,omitempty" jsonschema:"exact department name"`
	Level      string `json:"level,omitempty" jsonschema:"entry, mid, senior, lead, principal or executive"`
	Remote     *bool  `json:"remote,omitempty" jsonschema:"true for remote positions only, false for on-site only"`
	Query      string `json:"query,omitempty" jsonschema:"case-insensitive search over title, department, description and required skills"`
}

// ListPositionsOutput is the output of list_positions.
type ListPositionsOutput struct {
	Positions   []models.Position `json:"positions"`
	Count       int               `json:"count"`
	Departments []string          `json:"departments"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	readOnly := &mcp.ToolAnnotations{ReadOnlyHint: true}

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "extract_resume_text",
		Description: "Extract plain text from a résumé (PDF, DOC, DOCX, ODT, PNG or JPG). Images are transcribed by the configured vision model.",
		Annotations: readOnly,
	}, s.handleExtract)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "analyze_resume",
		Description: "Compare a résumé against a target position and return current skills, skill gaps, learning resources, certifications and a roadmap.",
		Annotations: readOnly,
	}, s.handleAnalyze)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "parse_resume",
		Description: "Convert a résumé into structured contact, experience, education, skills, certifications and languages.",
		Annotations: readOnly,
	}, s.handleParse)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "export_resume",
		Description: "Render structured résumé data as JSON, Markdown, PDF or ODT. The file is returned base64 encoded.",
		InputSchema: exportInputSchema(),
		Annotations: readOnly,
	}, s.handleExport)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "list_positions",
		Description: "List target positions from the catalog, optionally filtered by department, level, remote or a search query.",
		Annotations: readOnly,
	}, s.handleListPositions)
}

func (s *Server) handleExtract(ctx context.Context, _ *mcp.CallToolRequest, input DocumentInput) (*mcp.CallToolResult, ExtractOutput, error) {
	ctx = logger.WithOperation(ctx, "mcp.extract")

	upload, err := s.store(ctx, input)
	if err != nil {
		return nil, ExtractOutput{}, s.toolError(err, "Failed to extract resume text")
	}

	text, err := s.agent.ExtractText(ctx, upload)
	if err != nil {
		return nil, ExtractOutput{}, s.toolError(err, "Failed to extract resume text")
	}
	return nil, ExtractOutput{Text: text, Characters: utf8.RuneCountInString(text)}, nil
}

func (s *Server) handleAnalyze(ctx context.Context, _ *mcp.CallToolRequest, input AnalyzeInput) (*mcp.CallToolResult, models.AnalysisResult, error) {
	ctx = logger.WithOperation(ctx, "mcp.analyze")

	upload, err := s.store(ctx, input.document())
	if err != nil {
		return nil, models.AnalysisResult{}, s.toolError(err, handlers.MsgAnalysisFailed)
	}

	result, err := s.agent.AnalyzeResume(ctx, upload, input.TargetPosition)
	if err != nil {
		return nil, models.AnalysisResult{}, s.toolError(err, handlers.MsgAnalysisFailed)
	}
	return nil, *result, nil
}

func (s *Server) handleParse(ctx context.Context, _ *mcp.CallToolRequest, input DocumentInput) (*mcp.CallToolResult, models.ResumeData, error) {
	ctx = logger.WithOperation(ctx, "mcp.parse")

	upload, err := s.store(ctx, input)
	if err != nil {
		return nil, models.ResumeData{}, s.toolError(err, handlers.MsgParseFailed)
	}

	data, err := s.agent.ParseResume(ctx, upload)
	if err != nil {
		return nil, models.ResumeData{}, s.toolError(err, handlers.MsgParseFailed)
	}
	return nil, *data, nil
}

func (s *Server) handleExport(ctx context.Context, _ *mcp.CallToolRequest, input ExportInput) (*mcp.CallToolResult, ExportOutput, error) {
	if input.Format == "" {
		return nil, ExportOutput{}, errors.New(handlers.MsgExportFields)
	}

	file, err := export.Export(&input.ResumeData, input.Format)
	if err != nil {
		return nil, ExportOutput{}, s.toolError(err, handlers.MsgExportFailed)
	}

	logger.Info(ctx, "resume exported", "format", input.Format, "bytes", len(file.Content))
	return nil, ExportOutput{
		Filename:    file.Filename,
		ContentType: file.ContentType,
		Content:     base64.StdEncoding.EncodeToString(file.Content),
		Size:        len(file.Content),
	}, nil
}

func (s *Server) handleListPositions(_ context.Context, _ *mcp.CallToolRequest, input ListPositionsInput) (*mcp.CallToolResult, ListPositionsOutput, error) {
	positions := s.catalog.List(catalog.Filter{
		Department: input.Department,
		Level:      input.Level,
		Remote:     input.Remote,
		Query:      input.Query,
	})
	return nil, ListPositionsOutput{
		Positions:   positions,
		Count:       len(positions),
		Departments: s.catalog.Departments(),
	}, nil
}

// store decodes the inline document into the temp upload store. The
// agent removes it once the pipeline finishes.
func (s *Server) store(ctx context.Context, input DocumentInput) (*storage.Upload, error) {
	if input.Filename == "" || input.Content == "" {
		return nil, ErrMissingContent
	}

	data, err := base64.StdEncoding.DecodeString(strings.TrimSpace(input.Content))
	if err != nil {
		return nil, fmt.Errorf("%w: invalid base64: %v", ErrMissingContent, err)
	}
	return s.agent.Store().SaveBytes(ctx, data, input.Filename, input.MIMEType)
}

// toolError converts a pipeline error into the message shown to the caller.
func (s *Server) toolError(err error, fallback string) error {
	if errors.Is(err, ErrMissingContent) {
		return err
	}
	_, msg := s.errors.Classify(err, fallback)
	return errors.New(msg)
}
