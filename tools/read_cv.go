package tools

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/campushire/platform/cv"
	"github.com/campushire/platform/models"
	"github.com/campushire/platform/storage"
	"github.com/campushire/platform/utils"
)

// ReadCVTool returns the text of a stored CV
type ReadCVTool struct {
	service *cv.Service
}

// NewReadCVTool creates a new CV reading tool
func NewReadCVTool(service *cv.Service) *ReadCVTool {
	return &ReadCVTool{service: service}
}

func (t *ReadCVTool) Name() string {
	return "read_cv"
}

func (t *ReadCVTool) Description() string {
	return `Read the plain text of the last CV generated for a user.`
}

func (t *ReadCVTool) InputSchema() map[string]interface{} {
	return objectSchema([]string{"user_id"}, map[string]interface{}{
		"user_id": map[string]interface{}{
			"type":        []string{"string", "integer"},
			"description": "Id of the student",
		},
	})
}

// ReadCVInput represents the input for CV reading
type ReadCVInput struct {
	UserID models.FlexibleID `json:"user_id"`
}

func (t *ReadCVTool) Execute(ctx context.Context, input json.RawMessage) (json.RawMessage, error) {
	var in ReadCVInput
	if err := json.Unmarshal(input, &in); err != nil {
		return NewErrorResult(fmt.Sprintf("invalid input: %v", err))
	}

	data, err := t.service.Open(ctx, in.UserID.String())
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return NewErrorResult(fmt.Sprintf("no CV for user %s", in.UserID))
		}
		return NewErrorResult(fmt.Sprintf("failed to open CV: %v", err))
	}

	text, err := utils.ExtractPDFText(data)
	if err != nil {
		return NewErrorResult(fmt.Sprintf("failed to read CV: %v", err))
	}

	return NewSuccessResult(map[string]interface{}{
		"user_id":   in.UserID.String(),
		"file_name": cv.FileName(in.UserID.String()),
		"text":      text,
	})
}
