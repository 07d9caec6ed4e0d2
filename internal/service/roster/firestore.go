package roster

import (
	"context"
	"errors"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	applog "github.com/janisto/promarket/internal/platform/logging"
	"github.com/janisto/promarket/internal/service/catalog"
)

const offeringsCollection = "offerings"

// categorizeError converts errors to audit-safe categories.
func categorizeError(err error) string {
	switch {
	case errors.Is(err, ErrAlreadyOffered):
		return "already_offered"
	case errors.Is(err, ErrUnknownProfession):
		return "unknown_profession"
	default:
		return "internal_error"
	}
}

// firestoreOffering maps to Firestore document structure.
type firestoreOffering struct {
	UserID       string    `firestore:"user_id"`
	ProfessionID int64     `firestore:"profession_id"`
	Status       string    `firestore:"status"`
	CreatedAt    time.Time `firestore:"created_at"`
}

// FirestoreStore implements Service using Firestore with transactions.
//
// The document ID encodes the (user, profession) pair, so the composite
// uniqueness constraint falls out of document identity.
type FirestoreStore struct {
	client  *firestore.Client
	catalog catalog.Service
}

// NewFirestoreStore creates a new Firestore-backed roster.
// Profession IDs are validated against the given catalog before insertion.
func NewFirestoreStore(client *firestore.Client, cat catalog.Service) *FirestoreStore {
	return &FirestoreStore{client: client, catalog: cat}
}

func offeringDocID(userID string, professionID int64) string {
	return fmt.Sprintf("%s_%d", userID, professionID)
}

// Add records a new offering for the user.
func (s *FirestoreStore) Add(ctx context.Context, userID string, professionID int64) (*Offering, error) {
	resourceID := offeringDocID(userID, professionID)

	if _, err := s.catalog.GetByID(ctx, professionID); err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			err = ErrUnknownProfession
		}
		applog.LogAuditEvent(ctx, "create", userID, "offering", resourceID, "failure",
			map[string]any{"error": categorizeError(err)})
		return nil, err
	}

	docRef := s.client.Collection(offeringsCollection).Doc(resourceID)
	now := time.Now().UTC()

	var result *Offering

	err := s.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		doc, err := tx.Get(docRef)
		if err == nil && doc.Exists() {
			return ErrAlreadyOffered
		}
		if err != nil && status.Code(err) != codes.NotFound {
			return err
		}

		fo := firestoreOffering{
			UserID:       userID,
			ProfessionID: professionID,
			Status:       string(OfferingActive),
			CreatedAt:    now,
		}
		if err := tx.Set(docRef, fo); err != nil {
			return err
		}

		result = &Offering{
			UserID:       userID,
			ProfessionID: professionID,
			Status:       OfferingActive,
			CreatedAt:    now,
		}
		return nil
	})
	if err != nil {
		applog.LogAuditEvent(ctx, "create", userID, "offering", resourceID, "failure",
			map[string]any{"error": categorizeError(err)})
		return nil, err
	}

	applog.LogAuditEvent(ctx, "create", userID, "offering", resourceID, "success", nil)

	return result, nil
}

// ListForUser returns the user's offerings in creation order.
func (s *FirestoreStore) ListForUser(ctx context.Context, userID string) ([]Offering, error) {
	docs, err := s.client.Collection(offeringsCollection).
		Where("user_id", "==", userID).
		OrderBy("created_at", firestore.Asc).
		Documents(ctx).GetAll()
	if err != nil {
		return nil, err
	}
	return offeringsFromDocs(docs)
}

// ListForProfession returns every offering of the profession, any status.
func (s *FirestoreStore) ListForProfession(ctx context.Context, professionID int64) ([]Offering, error) {
	docs, err := s.client.Collection(offeringsCollection).
		Where("profession_id", "==", professionID).
		Documents(ctx).GetAll()
	if err != nil {
		return nil, err
	}
	return offeringsFromDocs(docs)
}

func offeringsFromDocs(docs []*firestore.DocumentSnapshot) ([]Offering, error) {
	offerings := make([]Offering, 0, len(docs))
	for _, doc := range docs {
		var fo firestoreOffering
		if err := doc.DataTo(&fo); err != nil {
			return nil, err
		}
		offerings = append(offerings, Offering{
			UserID:       fo.UserID,
			ProfessionID: fo.ProfessionID,
			Status:       OfferingStatus(fo.Status),
			CreatedAt:    fo.CreatedAt,
		})
	}
	return offerings, nil
}

// Compile-time interface check
var _ Service = (*FirestoreStore)(nil)
