package tools

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campushire/platform/cv"
	"github.com/campushire/platform/storage"
)

type stubLLM struct{ text string }

func (s stubLLM) Generate(context.Context, string) (string, error) { return s.text, nil }
func (s stubLLM) Model() string { return "stub" }
func (s stubLLM) Close() error { return nil }

func newService(t *testing.T) *cv.Service {
	t.Helper()
	text := "Email: ada@example.com\n\nObjective\nShip reliable software.\n\nSkills\nGo, SQL"
	return cv.NewService(stubLLM{text: text}, cv.NewRenderer(""), storage.NewLocalStore(t.TempDir()))
}

func decode(t *testing.T, raw json.RawMessage) (ToolResult, map[string]any) {
	t.Helper()
	var result ToolResult
	require.NoError(t, json.Unmarshal(raw, &result))
	var data map[string]any
	if len(result.Data) > 0 {
		require.NoError(t, json.Unmarshal(result.Data, &data))
	}
	return result, data
}

func TestToolRegistry_ListIsSorted(t *testing.T) {
	registry := NewToolRegistry()
	registry.Register(NewSplitSectionsTool())
	registry.Register(NewReadCVTool(nil))
	registry.Register(NewGenerateCVTool(nil))

	var names []string
	for _, tool := range registry.List() {
		names = append(names, tool.Name())
	}
	assert.Equal(t, []string{"generate_cv", "read_cv", "split_cv_sections"}, names)

	_, ok := registry.Get("search_web")
	assert.False(t, ok)
}

func TestGenerateAndReadCV(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	raw, err := NewGenerateCVTool(svc).Execute(ctx, json.RawMessage(`{"user_id": 3, "user_details": {"fname": "Ada", "education": [{"school": "Technion", "degree": "BSc", "fieldOfStudy": "Math"}]}}`))
	require.NoError(t, err)
	result, data := decode(t, raw)
	require.True(t, result.Success, result.Error)
	assert.Equal(t, "student_cv_3.pdf", data["file_name"])
	assert.EqualValues(t, 1, data["pages"])
	assert.EqualValues(t, 3, data["sections"])

	raw, err = NewReadCVTool(svc).Execute(ctx, json.RawMessage(`{"user_id": "3"}`))
	require.NoError(t, err)
	result, data = decode(t, raw)
	require.True(t, result.Success, result.Error)
	assert.Contains(t, data["text"], "Ship reliable software.")
	assert.Contains(t, data["text"], "Ada - BSc in Math at Technion")
}

func TestGenerateCV_InvalidInput(t *testing.T) {
	tool := NewGenerateCVTool(newService(t))

	raw, err := tool.Execute(context.Background(), json.RawMessage(`{"user_details": {}}`))
	require.NoError(t, err)
	result, _ := decode(t, raw)
	assert.False(t, result.Success)
	assert.Equal(t, "user_id is required", result.Error)

	raw, err = tool.Execute(context.Background(), json.RawMessage(`[1,2]`))
	require.NoError(t, err)
	result, _ = decode(t, raw)
	assert.False(t, result.Success)
}

func TestReadCV_Missing(t *testing.T) {
	raw, err := NewReadCVTool(newService(t)).Execute(context.Background(), json.RawMessage(`{"user_id": 99}`))
	require.NoError(t, err)
	result, _ := decode(t, raw)
	assert.False(t, result.Success)
	assert.Equal(t, "no CV for user 99", result.Error)
}

func TestSplitSections(t *testing.T) {
	raw, err := NewSplitSectionsTool().Execute(context.Background(), json.RawMessage(`{"text": "Email: a@b.c\n\nSkills\nGo"}`))
	require.NoError(t, err)

	var result ToolResult
	require.NoError(t, json.Unmarshal(raw, &result))
	require.True(t, result.Success)

	var data struct {
		Sections []SectionOutput `json:"sections"`
	}
	require.NoError(t, json.Unmarshal(result.Data, &data))
	assert.Equal(t, []SectionOutput{
		{Title: "Email: a@b.c", Key: "Email"},
		{Title: "Skills", Key: "Skills", Body: "Go"},
	}, data.Sections)
}
