package catalog

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"cloud.google.com/go/firestore"
	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	applog "github.com/janisto/promarket/internal/platform/logging"
)

const (
	professionsCollection = "professions"
	countersCollection    = "counters"
	professionsCounterDoc = "professions"
)

// firestoreProfession maps to Firestore document structure.
type firestoreProfession struct {
	ID        int64     `firestore:"id"`
	Name      string    `firestore:"name"`
	CreatedAt time.Time `firestore:"created_at"`
}

// firestoreCounter holds the last allocated sequential ID.
type firestoreCounter struct {
	Last int64 `firestore:"last"`
}

// FirestoreStore implements Service using Firestore with transactions.
//
// Sequential IDs come from a counter document; name uniqueness is enforced
// by querying inside the allocation transaction, so concurrent creates of
// the same name cannot both commit.
type FirestoreStore struct {
	client *firestore.Client
}

// NewFirestoreStore creates a new Firestore-backed catalog.
func NewFirestoreStore(client *firestore.Client) *FirestoreStore {
	return &FirestoreStore{client: client}
}

// Create registers a profession, allocating the next sequential ID.
func (s *FirestoreStore) Create(ctx context.Context, name string) (*Profession, error) {
	name = strings.TrimSpace(name)
	counterRef := s.client.Collection(countersCollection).Doc(professionsCounterDoc)
	now := time.Now().UTC()

	var result *Profession

	err := s.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		dup := s.client.Collection(professionsCollection).
			Where("name", "==", name).Limit(1)
		docs, err := tx.Documents(dup).GetAll()
		if err != nil {
			return err
		}
		if len(docs) > 0 {
			return ErrDuplicateName
		}

		var counter firestoreCounter
		counterDoc, err := tx.Get(counterRef)
		switch {
		case err == nil:
			if err := counterDoc.DataTo(&counter); err != nil {
				return err
			}
		case status.Code(err) == codes.NotFound:
			// first profession ever
		default:
			return err
		}

		id := counter.Last + 1
		fp := firestoreProfession{
			ID:        id,
			Name:      name,
			CreatedAt: now,
		}

		docRef := s.client.Collection(professionsCollection).Doc(strconv.FormatInt(id, 10))
		if err := tx.Set(docRef, fp); err != nil {
			return err
		}
		if err := tx.Set(counterRef, firestoreCounter{Last: id}); err != nil {
			return err
		}

		result = &Profession{ID: id, Name: name, CreatedAt: now}
		return nil
	})
	if err != nil {
		if !errors.Is(err, ErrDuplicateName) {
			applog.LogError(ctx, "profession create failed", err, zap.String("name", name))
		}
		return nil, err
	}

	applog.LogInfo(ctx, "profession created",
		zap.Int64("professionId", result.ID), zap.String("name", result.Name))

	return result, nil
}

// GetByID returns the profession with the given ID.
func (s *FirestoreStore) GetByID(ctx context.Context, id int64) (*Profession, error) {
	doc, err := s.client.Collection(professionsCollection).Doc(strconv.FormatInt(id, 10)).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return professionFromDoc(doc)
}

// GetByName returns the profession with the given exact name.
func (s *FirestoreStore) GetByName(ctx context.Context, name string) (*Profession, error) {
	name = strings.TrimSpace(name)
	docs, err := s.client.Collection(professionsCollection).
		Where("name", "==", name).Limit(1).Documents(ctx).GetAll()
	if err != nil {
		return nil, err
	}
	if len(docs) == 0 {
		return nil, ErrNotFound
	}
	return professionFromDoc(docs[0])
}

// List returns all professions ordered by ID.
func (s *FirestoreStore) List(ctx context.Context) ([]Profession, error) {
	docs, err := s.client.Collection(professionsCollection).
		OrderBy("id", firestore.Asc).Documents(ctx).GetAll()
	if err != nil {
		return nil, err
	}
	professions := make([]Profession, 0, len(docs))
	for _, doc := range docs {
		p, err := professionFromDoc(doc)
		if err != nil {
			return nil, err
		}
		professions = append(professions, *p)
	}
	return professions, nil
}

func professionFromDoc(doc *firestore.DocumentSnapshot) (*Profession, error) {
	var fp firestoreProfession
	if err := doc.DataTo(&fp); err != nil {
		return nil, err
	}
	return &Profession{ID: fp.ID, Name: fp.Name, CreatedAt: fp.CreatedAt}, nil
}

// Compile-time interface check
var _ Service = (*FirestoreStore)(nil)
