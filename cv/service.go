package cv

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/campushire/platform/events"
	"github.com/campushire/platform/llm"
	"github.com/campushire/platform/models"
	"github.com/campushire/platform/storage"
	"github.com/campushire/platform/utils"
)

// Recorder keeps a record of each generated CV
type Recorder interface {
	RecordCV(ctx context.Context, rec *models.CVRecord) error
}

// Result is a generated and stored CV
type Result struct {
	FileName string
	Location string
	Pages    int
	Sections int
	PDF      []byte
}

// Service runs the CV pipeline: prompt, generate, split, render, store
type Service struct {
	llm       llm.Client
	renderer  *Renderer
	store     storage.Store
	recorder  Recorder
	publisher events.Publisher
	linkTTL   time.Duration
	logger    *logrus.Entry
}

// NewService creates a new CV service
func NewService(client llm.Client, renderer *Renderer, store storage.Store) *Service {
	return &Service{
		llm:       client,
		renderer:  renderer,
		store:     store,
		publisher: events.NopPublisher{},
		logger:    utils.GetLogger().WithField("component", "cv-service"),
	}
}

// SetRecorder enables CV records
func (s *Service) SetRecorder(r Recorder) {
	s.recorder = r
}

// SetPublisher enables cv.generated events
func (s *Service) SetPublisher(p events.Publisher) {
	if p == nil {
		p = events.NopPublisher{}
	}
	s.publisher = p
}

// SetLinkTTL makes Link hand out signed URLs valid for ttl when the store
// supports them. Zero disables links.
func (s *Service) SetLinkTTL(ttl time.Duration) {
	s.linkTTL = ttl
}

// FileName is the stored name of a user's CV
func FileName(userID string) string {
	return fmt.Sprintf("student_cv_%s.pdf", userID)
}

// Generate builds a CV for details and stores it as student_cv_<userID>.pdf,
// replacing any earlier one
func (s *Service) Generate(ctx context.Context, userID string, details *models.UserDetails) (*Result, error) {
	name, err := checkUserID(userID)
	if err != nil {
		return nil, err
	}
	start := time.Now()
	log := s.logger.WithField("user_id", userID)

	prompt, err := BuildPrompt(details)
	if err != nil {
		return nil, err
	}

	text, err := s.llm.Generate(ctx, prompt)
	if err != nil {
		if errors.Is(err, llm.ErrEmptyCompletion) {
			return nil, fmt.Errorf("%w: %w", ErrGeneration, ErrEmptyResponse)
		}
		return nil, fmt.Errorf("%w: %w", ErrGeneration, err)
	}

	sections := ParseSections(text)
	if len(sections) == 0 {
		return nil, ErrNoSections
	}

	var buf bytes.Buffer
	if err := s.renderer.Render(&buf, details, sections); err != nil {
		return nil, err
	}
	pdf := buf.Bytes()

	pages, err := utils.CountPDFPages(pdf)
	if err != nil {
		log.WithError(err).Warn("Could not count CV pages")
	}

	location, err := s.store.Save(ctx, name, pdf)
	if err != nil {
		return nil, fmt.Errorf("failed to store CV: %w", err)
	}

	result := &Result{
		FileName: name,
		Location: location,
		Pages:    pages,
		Sections: len(sections),
		PDF:      pdf,
	}

	s.afterGenerate(ctx, userID, result, log)

	log.WithFields(logrus.Fields{
		"sections": len(sections),
		"pages":    pages,
		"location": location,
		"duration": time.Since(start),
	}).Info("CV generated")

	return result, nil
}

// afterGenerate records and announces the CV. Failures are only logged.
func (s *Service) afterGenerate(ctx context.Context, userID string, result *Result, log *logrus.Entry) {
	now := time.Now().UTC()

	if s.recorder != nil {
		rec := &models.CVRecord{
			UserID:      userID,
			FileName:    result.FileName,
			Location:    result.Location,
			Model:       s.llm.Model(),
			Pages:       result.Pages,
			GeneratedAt: now,
		}
		if err := s.recorder.RecordCV(ctx, rec); err != nil {
			log.WithError(err).Warn("Failed to record CV")
		}
	}

	event := events.CVGenerated{
		UserID:      userID,
		FileName:    result.FileName,
		Location:    result.Location,
		Pages:       result.Pages,
		GeneratedAt: now,
	}
	if err := s.publisher.PublishCVGenerated(ctx, event); err != nil {
		log.WithError(err).Warn("Failed to publish cv.generated event")
	}
}

// Open returns the stored CV of userID
func (s *Service) Open(ctx context.Context, userID string) ([]byte, error) {
	name, err := checkUserID(userID)
	if err != nil {
		return nil, err
	}
	return s.store.Open(ctx, name)
}

// Link returns a temporary download URL for the stored CV of userID, or ""
// when the store cannot sign URLs
func (s *Service) Link(ctx context.Context, userID string) (string, error) {
	name, err := checkUserID(userID)
	if err != nil {
		return "", err
	}

	linker, ok := s.store.(storage.Linker)
	if !ok || s.linkTTL <= 0 {
		return "", nil
	}
	return linker.SignedURL(ctx, name, s.linkTTL)
}

// checkUserID returns the file name of userID's CV
func checkUserID(userID string) (string, error) {
	if userID == "" {
		return "", ErrMissingUserID
	}
	name := FileName(userID)
	if err := storage.ValidateName(name); err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidUserID, err)
	}
	return name, nil
}

// Model returns the text generation model in use
func (s *Service) Model() string {
	return s.llm.Model()
}
