package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/campushire/platform/cv"
)

// SplitSectionsTool splits generated CV text into titled sections
type SplitSectionsTool struct{}

// NewSplitSectionsTool creates a new section splitting tool
func NewSplitSectionsTool() *SplitSectionsTool {
	return &SplitSectionsTool{}
}

func (t *SplitSectionsTool) Name() string {
	return "split_cv_sections"
}

func (t *SplitSectionsTool) Description() string {
	return `Split CV text into sections the way the PDF renderer does.
Sections are separated by a blank line; the first line is the title.`
}

func (t *SplitSectionsTool) InputSchema() map[string]interface{} {
	return objectSchema([]string{"text"}, map[string]interface{}{
		"text": map[string]interface{}{
			"type":        "string",
			"description": "Free CV text",
		},
	})
}

// SplitSectionsInput represents the input for section splitting
type SplitSectionsInput struct {
	Text string `json:"text"`
}

// SectionOutput is one section of the split text
type SectionOutput struct {
	Title string `json:"title"`
	Key   string `json:"key"`
	Body  string `json:"body"`
}

func (t *SplitSectionsTool) Execute(ctx context.Context, input json.RawMessage) (json.RawMessage, error) {
	var in SplitSectionsInput
	if err := json.Unmarshal(input, &in); err != nil {
		return NewErrorResult(fmt.Sprintf("invalid input: %v", err))
	}

	sections := cv.ParseSections(in.Text)
	out := make([]SectionOutput, 0, len(sections))
	for _, s := range sections {
		out = append(out, SectionOutput{Title: s.Title, Key: s.Key(), Body: s.Body})
	}

	return NewSuccessResult(map[string]interface{}{
		"sections": out,
	})
}
