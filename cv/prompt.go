package cv

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/campushire/platform/models"
)

const promptIntro = `Hi! we have an application which serves as a job search platform for students.
Here is an information about a student in the system, please generate a professional CV written in native english and the buzzwords HR loves for the following user details, please do not exaggerate and tell lies, and only make it sound better. Another thing that I need is to limit the content into one pdf page (regular size) and i want you to in titles: Email, Objective, Education, Experience, Skills:
`

// BuildPrompt returns the instruction text followed by the user details as
// JSON indented with two spaces. Details decoded from a request are written
// as received.
func BuildPrompt(details *models.UserDetails) (string, error) {
	doc, err := details.Document()
	if err != nil {
		return "", fmt.Errorf("failed to encode user details: %w", err)
	}

	var buf bytes.Buffer
	buf.WriteString(promptIntro)
	if err := json.Indent(&buf, doc, "", "  "); err != nil {
		return "", fmt.Errorf("failed to encode user details: %w", err)
	}

	return buf.String(), nil
}
