package study

//go:generate mockgen -source=interfaces.go -destination=mock/study_mock.go -package=mock_study

import (
	"context"
	"time"

	"github.com/example/engstudy/pkg/models"
)

// CatalogProvider supplies the ordered word catalog
type CatalogProvider interface {
	Catalog(ctx context.Context) ([]models.Word, error)
	GetByKey(ctx context.Context, key string) (*models.Word, error)
}

// RecordStore persists per-user review records keyed by word
type RecordStore interface {
	LoadRecords(ctx context.Context, userID int64) (map[string]models.ReviewRecord, error)
	SaveRecord(ctx context.Context, userID int64, word string, rec models.ReviewRecord) error
	ReplaceRecords(ctx context.Context, userID int64, records map[string]models.ReviewRecord) error
	// CountDue counts records of catalog words due at or before now
	CountDue(ctx context.Context, userID int64, now time.Time) (int, error)
}

// ReviewLogStore keeps the review history
type ReviewLogStore interface {
	AppendReviewLog(ctx context.Context, entry models.ReviewLog) error
	CountReviewsSince(ctx context.Context, userID int64, since time.Time) (int, error)
}

// UserStore looks up learners
type UserStore interface {
	GetByID(ctx context.Context, id int64) (*models.User, error)
}
