package review

import (
	"context"
	"errors"
	"time"

	"cloud.google.com/go/firestore"

	applog "github.com/janisto/promarket/internal/platform/logging"
)

const reviewsCollection = "reviews"

// categorizeError converts errors to audit-safe categories.
func categorizeError(err error) string {
	switch {
	case errors.Is(err, ErrInvalidScore):
		return "invalid_score"
	case errors.Is(err, ErrUnknownOffering):
		return "unknown_offering"
	default:
		return "internal_error"
	}
}

// firestoreReview maps to Firestore document structure.
type firestoreReview struct {
	ReviewerID     string    `firestore:"reviewer_id"`
	ProfessionalID string    `firestore:"professional_id"`
	ProfessionID   int64     `firestore:"profession_id"`
	Score          int       `firestore:"score"`
	Comment        string    `firestore:"comment"`
	CreatedAt      time.Time `firestore:"created_at"`
}

// FirestoreStore implements Service using Firestore. Each review is its own
// document with an auto-generated ID; nothing is ever rewritten.
type FirestoreStore struct {
	client   *firestore.Client
	settings settings
}

// NewFirestoreStore creates a new Firestore-backed ledger.
func NewFirestoreStore(client *firestore.Client, opts ...Option) *FirestoreStore {
	s := &FirestoreStore{client: client}
	for _, opt := range opts {
		opt(&s.settings)
	}
	return s
}

// Record appends a review.
func (s *FirestoreStore) Record(ctx context.Context, params RecordParams) (*Review, error) {
	if err := validateScore(params.Score); err != nil {
		applog.LogAuditEvent(ctx, "create", params.ReviewerID, "review", "", "failure",
			map[string]any{"error": categorizeError(err)})
		return nil, err
	}
	if err := s.settings.checkOffering(ctx, params.ProfessionalID, params.ProfessionID); err != nil {
		applog.LogAuditEvent(ctx, "create", params.ReviewerID, "review", "", "failure",
			map[string]any{"error": categorizeError(err)})
		return nil, err
	}

	docRef := s.client.Collection(reviewsCollection).NewDoc()
	now := time.Now().UTC()

	fr := firestoreReview{
		ReviewerID:     params.ReviewerID,
		ProfessionalID: params.ProfessionalID,
		ProfessionID:   params.ProfessionID,
		Score:          params.Score,
		Comment:        params.Comment,
		CreatedAt:      now,
	}
	if _, err := docRef.Create(ctx, fr); err != nil {
		applog.LogAuditEvent(ctx, "create", params.ReviewerID, "review", docRef.ID, "failure",
			map[string]any{"error": categorizeError(err)})
		return nil, err
	}

	applog.LogAuditEvent(ctx, "create", params.ReviewerID, "review", docRef.ID, "success",
		map[string]any{"professional_id": params.ProfessionalID, "profession_id": params.ProfessionID})

	return &Review{
		ID:             docRef.ID,
		ReviewerID:     params.ReviewerID,
		ProfessionalID: params.ProfessionalID,
		ProfessionID:   params.ProfessionID,
		Score:          params.Score,
		Comment:        params.Comment,
		CreatedAt:      now,
	}, nil
}

// ScoreFor returns the most recent review's score for the pair, 0 when none.
func (s *FirestoreStore) ScoreFor(ctx context.Context, professionalID string, professionID int64) (int, error) {
	docs, err := s.client.Collection(reviewsCollection).
		Where("professional_id", "==", professionalID).
		Where("profession_id", "==", professionID).
		OrderBy("created_at", firestore.Desc).
		Limit(1).
		Documents(ctx).GetAll()
	if err != nil {
		return 0, err
	}
	if len(docs) == 0 {
		return 0, nil
	}

	var fr firestoreReview
	if err := docs[0].DataTo(&fr); err != nil {
		return 0, err
	}
	return fr.Score, nil
}

// ScoresFor returns the representative score per requested profession in a
// single query over the professional's review history.
func (s *FirestoreStore) ScoresFor(ctx context.Context, professionalID string, professionIDs []int64) (map[int64]int, error) {
	wanted := make(map[int64]bool, len(professionIDs))
	for _, id := range professionIDs {
		wanted[id] = true
	}

	docs, err := s.client.Collection(reviewsCollection).
		Where("professional_id", "==", professionalID).
		OrderBy("created_at", firestore.Asc).
		Documents(ctx).GetAll()
	if err != nil {
		return nil, err
	}

	// Ascending order means later documents overwrite earlier ones,
	// leaving the newest score per profession.
	scores := make(map[int64]int)
	for _, doc := range docs {
		var fr firestoreReview
		if err := doc.DataTo(&fr); err != nil {
			return nil, err
		}
		if wanted[fr.ProfessionID] {
			scores[fr.ProfessionID] = fr.Score
		}
	}
	return scores, nil
}

// Compile-time interface check
var _ Service = (*FirestoreStore)(nil)
