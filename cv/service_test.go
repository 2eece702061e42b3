package cv

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campushire/platform/events"
	"github.com/campushire/platform/llm"
	"github.com/campushire/platform/models"
	"github.com/campushire/platform/storage"
)

type fakeLLM struct {
	text    string
	err     error
	prompts []string
}

func (f *fakeLLM) Generate(_ context.Context, prompt string) (string, error) {
	f.prompts = append(f.prompts, prompt)
	return f.text, f.err
}

func (f *fakeLLM) Model() string { return "fake-model" }

func (f *fakeLLM) Close() error { return nil }

type fakeRecorder struct {
	records []*models.CVRecord
	err     error
}

func (f *fakeRecorder) RecordCV(_ context.Context, rec *models.CVRecord) error {
	f.records = append(f.records, rec)
	return f.err
}

type fakePublisher struct {
	events []events.CVGenerated
	err    error
}

func (f *fakePublisher) PublishCVGenerated(_ context.Context, e events.CVGenerated) error {
	f.events = append(f.events, e)
	return f.err
}

func (f *fakePublisher) Close() error { return nil }

const generated = "Email: ada@example.com\n\nObjective\nBuild reliable systems.\n\nSkills\nGo, SQL"

func newTestService(t *testing.T, client llm.Client) (*Service, *storage.LocalStore) {
	t.Helper()
	store := storage.NewLocalStore(t.TempDir())
	return NewService(client, NewRenderer(""), store), store
}

func TestService_Generate(t *testing.T) {
	client := &fakeLLM{text: generated}
	svc, store := newTestService(t, client)
	recorder := &fakeRecorder{}
	publisher := &fakePublisher{}
	svc.SetRecorder(recorder)
	svc.SetPublisher(publisher)

	result, err := svc.Generate(context.Background(), "42", sampleDetails())
	require.NoError(t, err)

	assert.Equal(t, "student_cv_42.pdf", result.FileName)
	assert.Equal(t, 1, result.Pages)
	assert.Equal(t, 3, result.Sections)
	require.Len(t, client.prompts, 1)
	assert.Contains(t, client.prompts[0], `"fname": "Ada"`)

	stored, err := store.Open(context.Background(), "student_cv_42.pdf")
	require.NoError(t, err)
	assert.Equal(t, result.PDF, stored)

	require.Len(t, recorder.records, 1)
	assert.Equal(t, "42", recorder.records[0].UserID)
	assert.Equal(t, "fake-model", recorder.records[0].Model)
	assert.Equal(t, result.Location, recorder.records[0].Location)

	require.Len(t, publisher.events, 1)
	assert.Equal(t, "student_cv_42.pdf", publisher.events[0].FileName)
}

func TestService_GenerateSideEffectFailuresAreIgnored(t *testing.T) {
	svc, _ := newTestService(t, &fakeLLM{text: generated})
	svc.SetRecorder(&fakeRecorder{err: errors.New("firestore down")})
	svc.SetPublisher(&fakePublisher{err: errors.New("broker down")})

	_, err := svc.Generate(context.Background(), "7", sampleDetails())
	assert.NoError(t, err)
}

func TestService_GenerateErrors(t *testing.T) {
	tests := []struct {
		name   string
		client *fakeLLM
		userID string
		want   error
	}{
		{name: "missing user", client: &fakeLLM{text: generated}, userID: "", want: ErrMissingUserID},
		{name: "user id with a path", client: &fakeLLM{text: generated}, userID: "a/b", want: ErrInvalidUserID},
		{name: "upstream failure", client: &fakeLLM{err: errors.New("529 overloaded")}, userID: "1", want: ErrGeneration},
		{name: "empty completion", client: &fakeLLM{err: llm.ErrEmptyCompletion}, userID: "1", want: ErrEmptyResponse},
		{name: "no sections", client: &fakeLLM{text: "\n\n  \n\n"}, userID: "1", want: ErrNoSections},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := newTestService(t, tt.client)
			_, err := svc.Generate(context.Background(), tt.userID, sampleDetails())
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestService_GenerateRejectsBadUserIDBeforeCallingModel(t *testing.T) {
	for _, userID := range []string{"a/b", `a\b`, ""} {
		client := &fakeLLM{text: generated}
		svc, store := newTestService(t, client)

		_, err := svc.Generate(context.Background(), userID, sampleDetails())
		require.Error(t, err, userID)
		assert.Empty(t, client.prompts, userID)

		entries, _ := os.ReadDir(store.Dir())
		assert.Empty(t, entries, userID)
	}
}

func TestService_GeneratePromptKeepsUnmodelledDetails(t *testing.T) {
	client := &fakeLLM{text: generated}
	svc, _ := newTestService(t, client)

	var details models.UserDetails
	require.NoError(t, json.Unmarshal([]byte(`{"fname":"Ada","skills":["Go","Kubernetes"],"description":""}`), &details))

	_, err := svc.Generate(context.Background(), "8", &details)
	require.NoError(t, err)
	require.Len(t, client.prompts, 1)
	assert.Contains(t, client.prompts[0], `"skills": [`)
	assert.Contains(t, client.prompts[0], `"description": ""`)
	assert.NotContains(t, client.prompts[0], `"email"`)
}

type linkingStore struct {
	*storage.LocalStore
	expiry time.Duration
}

func (s *linkingStore) SignedURL(ctx context.Context, name string, expiry time.Duration) (string, error) {
	if _, err := s.Open(ctx, name); err != nil {
		return "", err
	}
	s.expiry = expiry
	return "https://cdn.example.com/" + name + "?sig=1", nil
}

func TestService_Link(t *testing.T) {
	ctx := context.Background()

	plain, _ := newTestService(t, &fakeLLM{text: generated})
	plain.SetLinkTTL(time.Minute)
	link, err := plain.Link(ctx, "5")
	require.NoError(t, err)
	assert.Empty(t, link, "local files are streamed")

	store := &linkingStore{LocalStore: storage.NewLocalStore(t.TempDir())}
	svc := NewService(&fakeLLM{text: generated}, NewRenderer(""), store)

	link, err = svc.Link(ctx, "5")
	require.NoError(t, err)
	assert.Empty(t, link, "links are off until a TTL is set")

	svc.SetLinkTTL(10 * time.Minute)
	_, err = svc.Link(ctx, "5")
	assert.ErrorIs(t, err, storage.ErrNotFound)

	_, err = svc.Generate(ctx, "5", sampleDetails())
	require.NoError(t, err)
	link, err = svc.Link(ctx, "5")
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/student_cv_5.pdf?sig=1", link)
	assert.Equal(t, 10*time.Minute, store.expiry)

	_, err = svc.Link(ctx, "a/b")
	assert.ErrorIs(t, err, ErrInvalidUserID)
}

func TestService_Open(t *testing.T) {
	svc, _ := newTestService(t, &fakeLLM{text: generated})
	ctx := context.Background()

	_, err := svc.Open(ctx, "5")
	assert.ErrorIs(t, err, storage.ErrNotFound)

	result, err := svc.Generate(ctx, "5", sampleDetails())
	require.NoError(t, err)

	data, err := svc.Open(ctx, "5")
	require.NoError(t, err)
	assert.Equal(t, result.PDF, data)
}
