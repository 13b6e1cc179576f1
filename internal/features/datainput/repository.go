package datainput

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"livpulse/internal/common/models"
	"livpulse/internal/database"

	"go.uber.org/zap"
)

var (
	ErrSubmissionNotFound = errors.New("submission not found")
	ErrAlreadyReviewed    = errors.New("submission already reviewed")
)

// SubmissionRepository stores data-input submissions.
type SubmissionRepository interface {
	Insert(ctx context.Context, submissions []Submission) error
	ListByUser(ctx context.Context, userID string, limit int) ([]Submission, error)
	ListByCategory(ctx context.Context, category string, page, limit int) ([]Submission, int, error)
	// Review transitions a pending submission to approved or rejected.
	// A submission that has already been decided returns ErrAlreadyReviewed.
	Review(ctx context.Context, id string, status models.SubmissionStatus, reviewer, comments string, at time.Time) (Submission, error)
}

// NewSubmissionRepository picks the backing store: MongoDB when the
// database handle is connected, the in-memory store otherwise.
func NewSubmissionRepository(db *database.MongodbDB, log *zap.Logger) SubmissionRepository {
	if db.Enabled() {
		log.Info("submission repository using mongodb backend")
		return NewMongoSubmissionRepository(db)
	}
	return NewMemorySubmissionRepository()
}

// MemorySubmissionRepository keeps submissions in process memory.
type MemorySubmissionRepository struct {
	mu          sync.RWMutex
	submissions []Submission
}

func NewMemorySubmissionRepository() *MemorySubmissionRepository {
	return &MemorySubmissionRepository{}
}

func (r *MemorySubmissionRepository) Insert(_ context.Context, submissions []Submission) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.submissions = append(r.submissions, submissions...)
	return nil
}

func (r *MemorySubmissionRepository) ListByUser(_ context.Context, userID string, limit int) ([]Submission, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Submission, 0, limit)
	for _, s := range r.submissions {
		if s.SubmittedBy == userID {
			out = append(out, s)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].SubmittedAt.After(out[j].SubmittedAt)
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *MemorySubmissionRepository) ListByCategory(_ context.Context, category string, page, limit int) ([]Submission, int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var matched []Submission
	for _, s := range r.submissions {
		if s.Category == category {
			matched = append(matched, s)
		}
	}

	total := len(matched)
	start := (page - 1) * limit
	if start >= total {
		return []Submission{}, total, nil
	}
	end := start + limit
	if end > total {
		end = total
	}
	return matched[start:end], total, nil
}

func (r *MemorySubmissionRepository) Review(_ context.Context, id string, status models.SubmissionStatus, reviewer, comments string, at time.Time) (Submission, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.submissions {
		if r.submissions[i].ID != id {
			continue
		}
		if r.submissions[i].Status != models.SubmissionPending {
			return Submission{}, ErrAlreadyReviewed
		}
		r.submissions[i].Status = status
		r.submissions[i].ReviewedBy = reviewer
		r.submissions[i].ReviewedAt = &at
		r.submissions[i].ReviewComments = comments
		return r.submissions[i], nil
	}
	return Submission{}, ErrSubmissionNotFound
}
