package mcp

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pivot/backend/agent"
	"github.com/pivot/backend/catalog"
	"github.com/pivot/backend/config"
	"github.com/pivot/backend/extractor/extractortest"
	"github.com/pivot/backend/llm"
	"github.com/pivot/backend/llm/llmtest"
	"github.com/pivot/backend/models"
	"github.com/pivot/backend/storage"
)

const resumeText = "Jane Doe. Backend engineer with eight years of Go, SQL and distributed systems experience."

const analysisReply = `{"summary": "Good fit", "currentSkills": ["Go"], "skillGaps": [], "learningResources": [], "certifications": [], "roadmap": ["Ship it"]}`

const structureReply = `{"contact": {"fullName": "Jane Doe", "email": "", "phone": "", "location": ""}, "summary": "", "experience": [], "education": [], "skills": ["Go"]}`

func newTestServer(t *testing.T, model llm.ChatModel) (*Server, string) {
	t.Helper()
	dir := filepath.Join(t.TempDir(), "uploads")
	store, err := storage.NewUploadStore(dir, 10<<20)
	require.NoError(t, err)

	cfg := &config.Config{
		LLMProvider:      config.ProviderOpenAI,
		AnalysisModel:    "gpt-4o-mini",
		StructuringModel: "gpt-4o",
		VisionModel:      "gpt-4o",
		MinTextLength:    50,
	}
	positions, err := catalog.Load("")
	require.NoError(t, err)

	return NewServer(agent.NewCareerAgent(cfg, model, store), positions), dir
}

func docx(paragraphs ...string) DocumentInput {
	return DocumentInput{
		Filename: "resume.docx",
		Content:  base64.StdEncoding.EncodeToString(extractortest.DOCX(paragraphs...)),
	}
}

func assertEmptyDir(t *testing.T, dir string) {
	t.Helper()
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestServer_handleExtract(t *testing.T) {
	ctx := context.Background()

	t.Run("returns document text without a model call", func(t *testing.T) {
		model := &llmtest.Model{Unconfigured: true}
		server, dir := newTestServer(t, model)

		_, output, err := server.handleExtract(ctx, nil, docx(resumeText))

		require.NoError(t, err)
		assert.Equal(t, resumeText, output.Text)
		assert.Equal(t, len(resumeText), output.Characters)
		assert.Zero(t, model.Calls())
		assertEmptyDir(t, dir)
	})

	t.Run("rejects missing content", func(t *testing.T) {
		server, _ := newTestServer(t, &llmtest.Model{})

		_, _, err := server.handleExtract(ctx, nil, DocumentInput{Filename: "resume.pdf"})

		assert.ErrorIs(t, err, ErrMissingContent)
	})

	t.Run("rejects invalid base64", func(t *testing.T) {
		server, _ := newTestServer(t, &llmtest.Model{})

		_, _, err := server.handleExtract(ctx, nil, DocumentInput{Filename: "resume.pdf", Content: "not base64!"})

		assert.ErrorIs(t, err, ErrMissingContent)
	})

	t.Run("maps unsupported types to the user message", func(t *testing.T) {
		server, _ := newTestServer(t, &llmtest.Model{})

		_, _, err := server.handleExtract(ctx, nil, DocumentInput{
			Filename: "notes.txt",
			MIMEType: "text/plain",
			Content:  base64.StdEncoding.EncodeToString([]byte(resumeText)),
		})

		require.Error(t, err)
		assert.Equal(t, "Only PDF, DOC, DOCX, ODT, PNG, and JPG files are allowed", err.Error())
	})
}

func TestServer_handleAnalyze(t *testing.T) {
	ctx := context.Background()

	t.Run("returns the analysis", func(t *testing.T) {
		model := &llmtest.Model{Reply: analysisReply}
		server, dir := newTestServer(t, model)

		doc := docx(resumeText)
		_, output, err := server.handleAnalyze(ctx, nil, AnalyzeInput{
			Filename:       doc.Filename,
			Content:        doc.Content,
			TargetPosition: "Staff Engineer",
		})

		require.NoError(t, err)
		assert.Equal(t, "Good fit", output.Summary)
		assert.Contains(t, model.Requests()[0].Prompt, "Staff Engineer")
		assertEmptyDir(t, dir)
	})

	t.Run("surfaces configuration errors", func(t *testing.T) {
		server, dir := newTestServer(t, &llmtest.Model{Name: "OpenAI", Unconfigured: true})

		doc := docx(resumeText)
		_, _, err := server.handleAnalyze(ctx, nil, AnalyzeInput{
			Filename:       doc.Filename,
			Content:        doc.Content,
			TargetPosition: "Staff Engineer",
		})

		require.Error(t, err)
		assert.Equal(t, "OpenAI API key not configured", err.Error())
		assertEmptyDir(t, dir)
	})

	t.Run("rejects short text", func(t *testing.T) {
		model := &llmtest.Model{Reply: analysisReply}
		server, _ := newTestServer(t, model)

		doc := docx("too short")
		_, _, err := server.handleAnalyze(ctx, nil, AnalyzeInput{
			Filename:       doc.Filename,
			Content:        doc.Content,
			TargetPosition: "Staff Engineer",
		})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "too short")
		assert.Zero(t, model.Calls())
	})
}

func TestServer_handleParse(t *testing.T) {
	model := &llmtest.Model{Reply: structureReply}
	server, dir := newTestServer(t, model)

	_, output, err := server.handleParse(context.Background(), nil, docx(resumeText))

	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", output.Contact.FullName)
	assert.Equal(t, resumeText, output.RawText)
	assertEmptyDir(t, dir)
}

func TestServer_handleExport(t *testing.T) {
	server, _ := newTestServer(t, &llmtest.Model{})
	data := models.ResumeData{
		Contact: models.ContactInfo{FullName: "Jane Doe", Email: "jane@example.com"},
		Skills:  models.FlexibleStringSlice{"Go"},
	}

	_, output, err := server.handleExport(context.Background(), nil, ExportInput{ResumeData: data, Format: "md"})
	require.NoError(t, err)

	content, err := base64.StdEncoding.DecodeString(output.Content)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(content), "# Jane Doe\n"))
	assert.Equal(t, "resume.md", output.Filename)
	assert.Equal(t, "text/markdown", output.ContentType)
	assert.Equal(t, len(content), output.Size)

	_, _, err = server.handleExport(context.Background(), nil, ExportInput{ResumeData: data, Format: "rtf"})
	require.Error(t, err)
	assert.Equal(t, "Unsupported export format", err.Error())

	_, _, err = server.handleExport(context.Background(), nil, ExportInput{ResumeData: data})
	require.Error(t, err)
	assert.Equal(t, "Resume data and format are required", err.Error())
}

func TestServer_handleListPositions(t *testing.T) {
	server, _ := newTestServer(t, &llmtest.Model{})
	remote := true

	_, output, err := server.handleListPositions(context.Background(), nil, ListPositionsInput{Department: "Compute", Remote: &remote})

	require.NoError(t, err)
	assert.Equal(t, len(output.Positions), output.Count)
	assert.NotZero(t, output.Count)
	for _, p := range output.Positions {
		assert.Equal(t, "Compute", p.Department)
		assert.True(t, p.Remote)
	}
	assert.Contains(t, output.Departments, "Compute")
}

func TestHandlerServesHTTP(t *testing.T) {
	server, _ := newTestServer(t, &llmtest.Model{})

	req := httptest.NewRequest(http.MethodPost, "/mcp", strings.NewReader("not json-rpc"))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json, text/event-stream")
	w := httptest.NewRecorder()

	server.Handler().ServeHTTP(w, req)

	assert.GreaterOrEqual(t, w.Code, 400, "malformed JSON-RPC is rejected")
}

// connect opens an in-memory client session so calls go through schema
// validation on both input and output.
func connect(t *testing.T, server *Server) *mcp.ClientSession {
	t.Helper()
	ctx := context.Background()

	serverTransport, clientTransport := mcp.NewInMemoryTransports()
	serverSession, err := server.server.Connect(ctx, serverTransport, nil)
	require.NoError(t, err)
	t.Cleanup(func() { serverSession.Close() })

	client := mcp.NewClient(&mcp.Implementation{Name: "test-client", Version: "1.0.0"}, nil)
	session, err := client.Connect(ctx, clientTransport, nil)
	require.NoError(t, err)
	t.Cleanup(func() { session.Close() })
	return session
}

func resultText(t *testing.T, res *mcp.CallToolResult) string {
	t.Helper()
	require.Len(t, res.Content, 1)
	text, ok := res.Content[0].(*mcp.TextContent)
	require.True(t, ok, "content is %T", res.Content[0])
	return text.Text
}

func TestSession_exportResume(t *testing.T) {
	server, _ := newTestServer(t, &llmtest.Model{})
	session := connect(t, server)
	ctx := context.Background()

	t.Run("accepts sparse records with null fields", func(t *testing.T) {
		res, err := session.CallTool(ctx, &mcp.CallToolParams{
			Name: "export_resume",
			Arguments: map[string]any{
				"resumeData": map[string]any{
					"contact": map[string]any{
						"fullName": "Ada Lovelace",
						"email":    "ada@example.com",
						"linkedin": nil,
					},
					"summary": "Analyst",
					"skills":  []string{"Go"},
					"education": []map[string]any{
						{"institution": "University of London", "degree": "BA", "gpa": nil, "highlights": nil},
					},
					"certifications": nil,
				},
				"format": "md",
			},
		})
		require.NoError(t, err)
		require.False(t, res.IsError, resultText(t, res))

		var output ExportOutput
		require.NoError(t, json.Unmarshal([]byte(resultText(t, res)), &output))
		content, err := base64.StdEncoding.DecodeString(output.Content)
		require.NoError(t, err)

		md := string(content)
		assert.True(t, strings.HasPrefix(md, "# Ada Lovelace\n"))
		assert.Contains(t, md, "University of London")
		assert.NotContains(t, md, "## Experience")
		assert.NotContains(t, md, "## Certifications")
		assert.Equal(t, "resume.md", output.Filename)
	})

	t.Run("requires the candidate name", func(t *testing.T) {
		_, err := session.CallTool(ctx, &mcp.CallToolParams{
			Name: "export_resume",
			Arguments: map[string]any{
				"resumeData": map[string]any{"contact": map[string]any{"email": "ada@example.com"}},
				"format":     "md",
			},
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "fullName")
	})

	t.Run("reports unsupported formats as tool errors", func(t *testing.T) {
		res, err := session.CallTool(ctx, &mcp.CallToolParams{
			Name: "export_resume",
			Arguments: map[string]any{
				"resumeData": map[string]any{"contact": map[string]any{"fullName": "Ada Lovelace"}},
				"format":     "rtf",
			},
		})
		require.NoError(t, err)
		assert.True(t, res.IsError)
		assert.Equal(t, "Unsupported export format", resultText(t, res))
	})
}

func TestSession_parseAndListPositions(t *testing.T) {
	server, dir := newTestServer(t, &llmtest.Model{Reply: structureReply})
	session := connect(t, server)
	ctx := context.Background()

	doc := docx(resumeText)
	res, err := session.CallTool(ctx, &mcp.CallToolParams{
		Name:      "parse_resume",
		Arguments: map[string]any{"filename": doc.Filename, "content": doc.Content},
	})
	require.NoError(t, err)
	require.False(t, res.IsError, resultText(t, res))

	var data models.ResumeData
	require.NoError(t, json.Unmarshal([]byte(resultText(t, res)), &data))
	assert.Equal(t, "Jane Doe", data.Contact.FullName)
	assertEmptyDir(t, dir)

	res, err = session.CallTool(ctx, &mcp.CallToolParams{
		Name:      "list_positions",
		Arguments: map[string]any{"department": "Compute"},
	})
	require.NoError(t, err)
	require.False(t, res.IsError, resultText(t, res))

	var positions ListPositionsOutput
	require.NoError(t, json.Unmarshal([]byte(resultText(t, res)), &positions))
	assert.NotZero(t, positions.Count)
}
