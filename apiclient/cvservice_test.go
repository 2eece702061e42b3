package apiclient

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campushire/platform/models"
)

func TestCVService_GenerateCV(t *testing.T) {
	var body map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/generate-cv", r.URL.Path)
		raw, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(raw, &body))

		w.Header().Set("Content-Type", "application/pdf")
		_, _ = w.Write([]byte("%PDF-1.3 fake"))
	}))
	defer server.Close()

	svc := NewCVService(server.URL, 5*time.Second)
	pdf, err := svc.GenerateCV(context.Background(), "42", &models.UserDetails{FName: "Ada"})
	require.NoError(t, err)

	assert.Equal(t, "%PDF-1.3 fake", string(pdf))
	assert.EqualValues(t, 42, body["user_id"])
	assert.Equal(t, "Ada", body["user_details"].(map[string]any)["fname"])
}

func TestCVService_GenerateCVForwardsStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusBadGateway, `{"error":"Text generation failed","code":502}`)
	}))
	defer server.Close()

	svc := NewCVService(server.URL, 5*time.Second)
	_, err := svc.GenerateCV(context.Background(), "42", &models.UserDetails{})
	assert.Equal(t, http.StatusBadGateway, statusOf(err))
}
