package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"

	"stresstrack/internal/config"
	"stresstrack/internal/model"
	"stresstrack/internal/repository"
	"stresstrack/internal/storage"
	"stresstrack/internal/transform"
	"stresstrack/internal/validate"
)

var (
	ErrUserIDRequired = errors.New("userId is required")
	ErrReaderNil      = errors.New("reader is nil")
)

const defaultPageSize = 10

// CreateRecordInput is a stress-level submission before persistence.
// Timestamp is optional and defaults to the moment of creation; Image is an
// optional URL to a previously uploaded photo. A record and its image are two
// separate operations composed by the caller, not an atomic transaction.
type CreateRecordInput struct {
	UserID      string     `json:"userId"`
	StressLevel int        `json:"stressLevel"`
	Image       *string    `json:"image,omitempty"`
	Timestamp   *time.Time `json:"timestamp,omitempty"`
}

// StressTrackingService defines the use cases for stress-level records and
// their photos.
type StressTrackingService interface {
	// Create validates the submission, fills the timestamp if absent, and
	// persists it. The returned record carries the store-assigned id.
	Create(ctx context.Context, in CreateRecordInput) (*model.StressRecord, error)

	// GetAllRecords returns one page of the user's records, newest first.
	GetAllRecords(ctx context.Context, userID string, page, pageSize int) ([]model.StressRecord, error)

	// UploadImage validates the declared MIME type, resizes/re-encodes the
	// image to JPEG, uploads it under a fresh key, and returns the computed
	// public URL.
	UploadImage(ctx context.Context, r io.Reader, mimeType string) (string, error)
}

// stressTrackingService is a concrete implementation of StressTrackingService.
type stressTrackingService struct {
	repo    repository.RecordRepository
	store   storage.Storage
	resizer transform.Resizer
	media   config.MediaConfig
}

// NewStressTrackingService constructs a new StressTrackingService.
func NewStressTrackingService(repo repository.RecordRepository, store storage.Storage, resizer transform.Resizer, media config.MediaConfig) StressTrackingService {
	return &stressTrackingService{repo: repo, store: store, resizer: resizer, media: media}
}

func (s *stressTrackingService) Create(ctx context.Context, in CreateRecordInput) (*model.StressRecord, error) {
	if in.UserID == "" {
		return nil, ErrUserIDRequired
	}
	// The transport boundary already validated this, but the invariant must
	// hold even for internal callers that bypass it.
	if err := validate.StressLevel(in.StressLevel); err != nil {
		return nil, err
	}

	ts := time.Now().UTC()
	if in.Timestamp != nil {
		ts = *in.Timestamp
	}

	rec := &model.StressRecord{
		UserID:      in.UserID,
		StressLevel: in.StressLevel,
		Image:       in.Image,
		Timestamp:   ts,
	}

	stored, err := s.repo.Create(ctx, rec)
	if err != nil {
		// Backend failures propagate unchanged; transient-failure handling
		// belongs to the store client, not here.
		return nil, err
	}
	return stored, nil
}

func (s *stressTrackingService) GetAllRecords(ctx context.Context, userID string, page, pageSize int) ([]model.StressRecord, error) {
	if userID == "" {
		return nil, ErrUserIDRequired
	}
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = defaultPageSize
	}

	return s.repo.ListByUser(ctx, userID, repository.PageQuery{
		Limit:  pageSize,
		Offset: (page - 1) * pageSize,
	})
}

// uploadOutcome is the one-shot completion signal of a single upload: exactly
// one of success-or-error, delivered once, no partial state.
type uploadOutcome struct {
	info storage.ObjectInfo
	err  error
}

func (s *stressTrackingService) UploadImage(ctx context.Context, r io.Reader, mimeType string) (string, error) {
	// Reject unsupported types before any bytes are touched.
	if err := validate.ImageType(mimeType); err != nil {
		return "", err
	}
	if r == nil {
		return "", ErrReaderNil
	}

	// Fresh key per call: concurrent uploads never collide, and a failed
	// upload is retried by the caller from scratch under a new key.
	key := uuid.New().String() + ".jpg"

	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("read image: %w", err)
	}

	resized, err := s.resizer.Resize(data)
	if err != nil {
		return "", fmt.Errorf("resize image: %w", err)
	}

	done := make(chan uploadOutcome, 1)
	go func() {
		info, err := s.store.Put(ctx, key, bytes.NewReader(resized), storage.PutObjectOptions{
			Size:        int64(len(resized)),
			ContentType: "image/jpeg",
		})
		done <- uploadOutcome{info: info, err: err}
	}()

	out := <-done
	if out.err != nil {
		return "", fmt.Errorf("failed to upload image: %w", out.err)
	}

	// The URL is computed from known components, never read back from the
	// store, and only after the upload completion signal arrived.
	return fmt.Sprintf("%s/%s/%s", s.media.PublicHost, s.media.Bucket, key), nil
}
