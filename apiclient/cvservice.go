package apiclient

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/campushire/platform/models"
	"github.com/campushire/platform/utils"
)

// CVService is the client for the CV microservice
type CVService struct {
	client *resty.Client
}

// NewCVService creates a CV service client for baseURL
func NewCVService(baseURL string, timeout time.Duration) *CVService {
	client := resty.NewWithClient(utils.NewHTTPClient(timeout)).
		SetBaseURL(baseURL)

	return &CVService{client: client}
}

// GenerateCV asks the service for a new CV and returns the PDF
func (s *CVService) GenerateCV(ctx context.Context, userID string, details *models.UserDetails) ([]byte, error) {
	doc, err := details.Document()
	if err != nil {
		return nil, fmt.Errorf("failed to encode user details: %w", err)
	}

	resp, err := s.client.R().
		SetContext(ctx).
		SetHeader("Accept", "application/pdf").
		SetBody(map[string]interface{}{
			"user_id":      models.FlexibleID(userID),
			"user_details": doc,
		}).
		Post("/generate-cv")
	if err := check(resp, err, http.StatusOK); err != nil {
		return nil, err
	}
	return resp.Body(), nil
}
