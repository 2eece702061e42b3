package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/campushire/platform/cv"
	"github.com/campushire/platform/models"
)

// GenerateCVTool runs the CV pipeline for a user
type GenerateCVTool struct {
	service *cv.Service
}

// NewGenerateCVTool creates a new CV generation tool
func NewGenerateCVTool(service *cv.Service) *GenerateCVTool {
	return &GenerateCVTool{service: service}
}

func (t *GenerateCVTool) Name() string {
	return "generate_cv"
}

func (t *GenerateCVTool) Description() string {
	return `Generate a one-page professional CV PDF for a student.
Input is the user id and the user's stored details (education, jobs, description).
Returns the stored file name, its location and the page count.`
}

func (t *GenerateCVTool) InputSchema() map[string]interface{} {
	return objectSchema([]string{"user_id", "user_details"}, map[string]interface{}{
		"user_id": map[string]interface{}{
			"type":        []string{"string", "integer"},
			"description": "Id of the student the CV belongs to",
		},
		"user_details": map[string]interface{}{
			"type":        "object",
			"description": "Student details as returned by the backend's /user_details endpoint",
		},
	})
}

func (t *GenerateCVTool) Execute(ctx context.Context, input json.RawMessage) (json.RawMessage, error) {
	var req models.GenerateCVRequest
	if err := json.Unmarshal(input, &req); err != nil {
		return NewErrorResult(fmt.Sprintf("invalid input: %v", err))
	}
	if req.UserID.IsZero() {
		return NewErrorResult("user_id is required")
	}

	result, err := t.service.Generate(ctx, req.UserID.String(), &req.UserDetails)
	if err != nil {
		return NewErrorResult(fmt.Sprintf("CV generation failed: %v", err))
	}

	return NewSuccessResult(models.GenerateCVResult{
		FileName: result.FileName,
		Location: result.Location,
		Pages:    result.Pages,
		Sections: result.Sections,
	})
}
