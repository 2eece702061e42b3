package cv

import "strings"

// Kind selects how a section body is laid out
type Kind int

const (
	KindPlain Kind = iota
	KindEmail
	KindDetailed
)

// Section is one titled block of the generated CV
type Section struct {
	Title string
	Body  string
}

// Key is the title up to the first colon, used for icon lookup
func (s Section) Key() string {
	key, _, _ := strings.Cut(s.Title, ":")
	return strings.TrimSpace(key)
}

// Kind reports the layout of the section body
func (s Section) Kind() Kind {
	switch {
	case strings.HasPrefix(s.Title, "Email"):
		return KindEmail
	case strings.HasPrefix(s.Title, "Education"), strings.HasPrefix(s.Title, "Experience"):
		return KindDetailed
	default:
		return KindPlain
	}
}

// Lines splits the body on newlines
func (s Section) Lines() []string {
	return strings.Split(s.Body, "\n")
}

// ParseSections slices generated text into sections. Sections are separated
// by a blank line; the first line of each is its title and the rest its body.
// A chunk starting with a newline keeps an empty title.
func ParseSections(text string) []Section {
	text = strings.ReplaceAll(text, "\r\n", "\n")

	var sections []Section
	for _, chunk := range strings.Split(text, "\n\n") {
		if strings.TrimSpace(chunk) == "" {
			continue
		}
		title, body, _ := strings.Cut(chunk, "\n")
		sections = append(sections, Section{Title: title, Body: body})
	}
	return sections
}
