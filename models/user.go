package models

import (
	"bytes"
	"encoding/json"
	"strings"
)

// User roles returned by the backend API
const (
	RoleStudent = "student"
	RoleCompany = "company"
)

// UserDetails is the payload of the backend's /user_details, /student and
// /company endpoints. Students fill the profile fields, companies the
// organisation fields; role tells which half is populated.
type UserDetails struct {
	ID    FlexibleID `json:"id,omitempty"`
	Email string     `json:"email"`
	FName string     `json:"fname"`
	Role  string     `json:"role,omitempty"`

	// Student
	IsCvCreated  string             `json:"is_cv_created,omitempty"`
	CvPath       string             `json:"cv_path,omitempty"`
	Description  string             `json:"description,omitempty"`
	ProfileImage string             `json:"profileImage,omitempty"`
	Jobs         []StudentJob       `json:"jobs,omitempty"`
	Education    []StudentEducation `json:"education,omitempty"`

	// Company
	Name      string `json:"name,omitempty"`
	Size      string `json:"size,omitempty"`
	Address   string `json:"address,omitempty"`
	ImagePath string `json:"image_path,omitempty"`
	VideoPath string `json:"video_path,omitempty"`

	// Raw is the document the details were decoded from, keys the struct
	// does not model included
	Raw json.RawMessage `json:"-" swaggerignore:"true"`
}

// UnmarshalJSON decodes the modelled fields and keeps the whole document in Raw
func (u *UserDetails) UnmarshalJSON(data []byte) error {
	type plain UserDetails
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*u = UserDetails(p)
	if trimmed := bytes.TrimSpace(data); len(trimmed) > 0 && !bytes.Equal(trimmed, []byte("null")) {
		u.Raw = append(json.RawMessage(nil), trimmed...)
	}
	return nil
}

// Document returns the details as they were received, or the modelled
// fields when they were built in code
func (u *UserDetails) Document() (json.RawMessage, error) {
	if len(u.Raw) > 0 {
		return u.Raw, nil
	}
	type plain UserDetails
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode((*plain)(u)); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// StudentJob represents a job entry for a student
type StudentJob struct {
	Title       string `json:"title"`
	Company     string `json:"company"`
	StartDate   string `json:"startDate,omitempty"`
	EndDate     string `json:"endDate,omitempty"`
	Description string `json:"description,omitempty"`
}

// StudentEducation represents an education entry for a student
type StudentEducation struct {
	School       string `json:"school"`
	Degree       string `json:"degree,omitempty"`
	FieldOfStudy string `json:"fieldOfStudy,omitempty"`
	StartDate    string `json:"startDate,omitempty"`
	EndDate      string `json:"endDate,omitempty"`
	Description  string `json:"description,omitempty"`
}

// LatestEducation returns the last education entry, or nil when there is none
func (u *UserDetails) LatestEducation() *StudentEducation {
	if len(u.Education) == 0 {
		return nil
	}
	return &u.Education[len(u.Education)-1]
}

// IsStudent reports whether the details belong to a student account
func (u *UserDetails) IsStudent() bool {
	return u.Role == RoleStudent
}

// IsCompany reports whether the details belong to a company account
func (u *UserDetails) IsCompany() bool {
	return u.Role == RoleCompany
}

// WithPublicPaths rewrites stored media paths so they are relative to the
// static folder, which is how the templates reference them.
func (u *UserDetails) WithPublicPaths() {
	u.ProfileImage = PublicPath(u.ProfileImage)
	u.ImagePath = PublicPath(u.ImagePath)
	u.VideoPath = PublicPath(u.VideoPath)
}

// PublicPath returns the part of path after "/static/", or path unchanged
func PublicPath(path string) string {
	if _, after, found := strings.Cut(path, "/static/"); found {
		return after
	}
	return path
}

// RoleResponse is returned by the backend's /user_role endpoint
type RoleResponse struct {
	Role string `json:"role"`
}
