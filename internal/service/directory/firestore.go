package directory

import (
	"context"
	"errors"
	"strings"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	applog "github.com/janisto/promarket/internal/platform/logging"
)

const usersCollection = "users"

// categorizeError converts errors to audit-safe categories.
func categorizeError(err error) string {
	switch {
	case errors.Is(err, ErrAlreadyExists):
		return "already_exists"
	case errors.Is(err, ErrNotFound):
		return "not_found"
	default:
		return "internal_error"
	}
}

// firestoreUser maps to Firestore document structure.
type firestoreUser struct {
	Name      string    `firestore:"name"`
	Email     string    `firestore:"email"`
	Phone     string    `firestore:"phone"`
	StateUF   string    `firestore:"state_uf"`
	CityID    int64     `firestore:"city_id"`
	District  string    `firestore:"district"`
	Status    string    `firestore:"status"`
	CreatedAt time.Time `firestore:"created_at"`
	UpdatedAt time.Time `firestore:"updated_at"`
}

func (fu *firestoreUser) toUser(id string) *User {
	return &User{
		ID:        id,
		Name:      fu.Name,
		Email:     fu.Email,
		Phone:     fu.Phone,
		StateUF:   fu.StateUF,
		CityID:    fu.CityID,
		District:  fu.District,
		Status:    AccountStatus(fu.Status),
		CreatedAt: fu.CreatedAt,
		UpdatedAt: fu.UpdatedAt,
	}
}

// FirestoreStore implements Service using Firestore with transactions.
// Documents are keyed by the Firebase UID.
type FirestoreStore struct {
	client *firestore.Client
}

// NewFirestoreStore creates a new Firestore-backed store.
func NewFirestoreStore(client *firestore.Client) *FirestoreStore {
	return &FirestoreStore{client: client}
}

// Create registers a user using a transaction to prevent duplicates.
func (s *FirestoreStore) Create(ctx context.Context, userID string, params CreateParams) (*User, error) {
	docRef := s.client.Collection(usersCollection).Doc(userID)
	now := time.Now().UTC()

	var result *User

	err := s.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		doc, err := tx.Get(docRef)
		if err == nil && doc.Exists() {
			return ErrAlreadyExists
		}
		if err != nil && status.Code(err) != codes.NotFound {
			return err
		}

		fu := firestoreUser{
			Name:      strings.TrimSpace(params.Name),
			Email:     strings.ToLower(strings.TrimSpace(params.Email)),
			Phone:     strings.TrimSpace(params.Phone),
			StateUF:   strings.ToUpper(strings.TrimSpace(params.StateUF)),
			CityID:    params.CityID,
			District:  strings.TrimSpace(params.District),
			Status:    string(StatusUnverified),
			CreatedAt: now,
			UpdatedAt: now,
		}

		if err := tx.Set(docRef, fu); err != nil {
			return err
		}

		result = fu.toUser(userID)
		return nil
	})
	if err != nil {
		applog.LogAuditEvent(ctx, "create", userID, "user", userID, "failure",
			map[string]any{"error": categorizeError(err)})
		return nil, err
	}

	applog.LogAuditEvent(ctx, "create", userID, "user", userID, "success", nil)

	return result, nil
}

// GetByID retrieves a user by Firebase UID.
func (s *FirestoreStore) GetByID(ctx context.Context, userID string) (*User, error) {
	doc, err := s.client.Collection(usersCollection).Doc(userID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, ErrNotFound
		}
		return nil, err
	}

	var fu firestoreUser
	if err := doc.DataTo(&fu); err != nil {
		return nil, err
	}
	return fu.toUser(doc.Ref.ID), nil
}

// GetByEmail retrieves a user by normalized email address.
func (s *FirestoreStore) GetByEmail(ctx context.Context, email string) (*User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	docs, err := s.client.Collection(usersCollection).
		Where("email", "==", email).
		Limit(1).
		Documents(ctx).GetAll()
	if err != nil {
		return nil, err
	}
	if len(docs) == 0 {
		return nil, ErrNotFound
	}

	var fu firestoreUser
	if err := docs[0].DataTo(&fu); err != nil {
		return nil, err
	}
	return fu.toUser(docs[0].Ref.ID), nil
}

// Update updates a user using a transaction for atomicity.
func (s *FirestoreStore) Update(ctx context.Context, userID string, params UpdateParams) (*User, error) {
	docRef := s.client.Collection(usersCollection).Doc(userID)

	var result *User

	err := s.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		doc, err := tx.Get(docRef)
		if err != nil {
			if status.Code(err) == codes.NotFound {
				return ErrNotFound
			}
			return err
		}

		var fu firestoreUser
		if err := doc.DataTo(&fu); err != nil {
			return err
		}

		if params.Name != nil {
			fu.Name = strings.TrimSpace(*params.Name)
		}
		if params.Phone != nil {
			fu.Phone = strings.TrimSpace(*params.Phone)
		}
		if params.StateUF != nil {
			fu.StateUF = strings.ToUpper(strings.TrimSpace(*params.StateUF))
		}
		if params.CityID != nil {
			fu.CityID = *params.CityID
		}
		if params.District != nil {
			fu.District = strings.TrimSpace(*params.District)
		}
		fu.UpdatedAt = time.Now().UTC()

		if err := tx.Set(docRef, fu); err != nil {
			return err
		}

		result = fu.toUser(userID)
		return nil
	})
	if err != nil {
		applog.LogAuditEvent(ctx, "update", userID, "user", userID, "failure",
			map[string]any{"error": categorizeError(err)})
		return nil, err
	}

	applog.LogAuditEvent(ctx, "update", userID, "user", userID, "success", nil)

	return result, nil
}

// Compile-time interface check
var _ Service = (*FirestoreStore)(nil)
