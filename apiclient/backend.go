package apiclient

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/tidwall/gjson"

	"github.com/campushire/platform/models"
	"github.com/campushire/platform/utils"
)

// Backend is the client for the platform's backend API
type Backend struct {
	client *resty.Client
}

// NewBackend creates a backend client for baseURL
func NewBackend(baseURL string, timeout time.Duration) *Backend {
	client := resty.NewWithClient(utils.NewHTTPClient(timeout)).
		SetBaseURL(baseURL).
		SetHeader("Accept", "application/json")

	return &Backend{client: client}
}

// Jobs lists job posts, newest only when latest is set
func (b *Backend) Jobs(ctx context.Context, latest bool) ([]models.JobPost, error) {
	var jobs []models.JobPost
	req := b.client.R().SetContext(ctx).SetResult(&jobs)
	if latest {
		req.SetQueryParam("latest", "true")
	}

	resp, err := req.Get("/jobs")
	if err := check(resp, err, http.StatusOK); err != nil {
		return nil, err
	}
	return jobs, nil
}

// Job returns a single job post
func (b *Backend) Job(ctx context.Context, jobID string) (*models.JobPost, error) {
	var job models.JobPost
	resp, err := b.client.R().
		SetContext(ctx).
		SetQueryParam("jobID", jobID).
		SetResult(&job).
		Get("/job")
	if err := check(resp, err, http.StatusOK); err != nil {
		return nil, err
	}
	return &job, nil
}

// UserDetails returns the details of any user
func (b *Backend) UserDetails(ctx context.Context, userID string) (*models.UserDetails, error) {
	return b.details(ctx, "/user_details", userID)
}

// Student returns the public details of a student
func (b *Backend) Student(ctx context.Context, userID string) (*models.UserDetails, error) {
	return b.details(ctx, "/student", userID)
}

// Company returns the public details of a company
func (b *Backend) Company(ctx context.Context, userID string) (*models.UserDetails, error) {
	return b.details(ctx, "/company", userID)
}

func (b *Backend) details(ctx context.Context, path, userID string) (*models.UserDetails, error) {
	var details models.UserDetails
	resp, err := b.client.R().
		SetContext(ctx).
		SetQueryParam("userID", userID).
		SetResult(&details).
		Get(path)
	if err := check(resp, err, http.StatusOK); err != nil {
		return nil, err
	}
	return &details, nil
}

// UserRole returns "student", "company" or "" when no role was chosen yet
func (b *Backend) UserRole(ctx context.Context, userID string) (string, error) {
	resp, err := b.client.R().
		SetContext(ctx).
		SetQueryParam("userID", userID).
		Get("/user_role")
	if err := check(resp, err, http.StatusOK); err != nil {
		return "", err
	}
	return gjson.GetBytes(resp.Body(), "role").String(), nil
}

// RegisterStudent completes a student profile
func (b *Backend) RegisterStudent(ctx context.Context, req *models.StudentRegistrationRequest) error {
	resp, err := b.client.R().SetContext(ctx).SetBody(req).Post("/student_registration")
	return check(resp, err, http.StatusOK)
}

// RegisterCompany completes a company profile
func (b *Backend) RegisterCompany(ctx context.Context, req *models.CompanyRegistrationRequest) error {
	resp, err := b.client.R().SetContext(ctx).SetBody(req).Post("/company_registration")
	return check(resp, err, http.StatusOK)
}

// PostJob publishes a job post
func (b *Backend) PostJob(ctx context.Context, job *models.JobPost) error {
	resp, err := b.client.R().SetContext(ctx).SetBody(job).Post("/post_job")
	return check(resp, err, http.StatusCreated)
}

// check turns a transport error or any status other than want into an error
func check(resp *resty.Response, err error, want int) error {
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	if resp.StatusCode() != want {
		return &APIError{StatusCode: resp.StatusCode(), Body: resp.String()}
	}
	return nil
}
