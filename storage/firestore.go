package storage

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/campushire/platform/config"
	"github.com/campushire/platform/models"
)

const cvRecordsCollection = "cv_records"

// FirestoreClient keeps one record per generated CV, keyed by user id
type FirestoreClient struct {
	client *firestore.Client
}

// NewFirestoreClient creates a new Firestore client
func NewFirestoreClient(ctx context.Context, cfg *config.Config) (*FirestoreClient, error) {
	client, err := firestore.NewClient(ctx, cfg.ProjectID)
	if err != nil {
		return nil, fmt.Errorf("failed to create Firestore client: %w", err)
	}

	return &FirestoreClient{client: client}, nil
}

// Close closes the Firestore client
func (f *FirestoreClient) Close() error {
	return f.client.Close()
}

// RecordCV stores rec, replacing the record of an earlier generation
func (f *FirestoreClient) RecordCV(ctx context.Context, rec *models.CVRecord) error {
	if rec.GeneratedAt.IsZero() {
		rec.GeneratedAt = time.Now().UTC()
	}

	docRef := f.client.Collection(cvRecordsCollection).Doc(rec.UserID)
	if _, err := docRef.Set(ctx, rec); err != nil {
		return fmt.Errorf("failed to record CV: %w", err)
	}
	return nil
}

// GetCVRecord returns the record for userID
func (f *FirestoreClient) GetCVRecord(ctx context.Context, userID string) (*models.CVRecord, error) {
	doc, err := f.client.Collection(cvRecordsCollection).Doc(userID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get CV record: %w", err)
	}

	var rec models.CVRecord
	if err := doc.DataTo(&rec); err != nil {
		return nil, fmt.Errorf("failed to parse CV record: %w", err)
	}
	return &rec, nil
}

// ListRecentCVs returns up to limit records, newest first
func (f *FirestoreClient) ListRecentCVs(ctx context.Context, limit int) ([]models.CVRecord, error) {
	iter := f.client.Collection(cvRecordsCollection).
		OrderBy("generatedAt", firestore.Desc).
		Limit(limit).
		Documents(ctx)
	defer iter.Stop()

	var records []models.CVRecord
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to query CV records: %w", err)
		}

		var rec models.CVRecord
		if err := doc.DataTo(&rec); err != nil {
			return nil, fmt.Errorf("failed to parse CV record: %w", err)
		}
		records = append(records, rec)
	}
	return records, nil
}
