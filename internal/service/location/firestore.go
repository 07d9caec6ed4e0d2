package location

import (
	"context"
	"strconv"
	"strings"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const citiesCollection = "cities"

// firestoreCity maps to Firestore document structure. The document ID is
// the decimal IBGE code.
type firestoreCity struct {
	ID      int64  `firestore:"id"`
	Name    string `firestore:"name"`
	StateUF string `firestore:"state_uf"`
}

// FirestoreStore implements Service against the cities collection. The
// collection is seeded out of band; this store only reads.
type FirestoreStore struct {
	client *firestore.Client
}

// NewFirestoreStore creates a new Firestore-backed city registry.
func NewFirestoreStore(client *firestore.Client) *FirestoreStore {
	return &FirestoreStore{client: client}
}

func (s *FirestoreStore) GetCity(ctx context.Context, id int64) (*City, error) {
	doc, err := s.client.Collection(citiesCollection).Doc(strconv.FormatInt(id, 10)).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, ErrNotFound
		}
		return nil, err
	}

	var fc firestoreCity
	if err := doc.DataTo(&fc); err != nil {
		return nil, err
	}
	return &City{ID: fc.ID, Name: fc.Name, StateUF: fc.StateUF}, nil
}

func (s *FirestoreStore) CitiesForState(ctx context.Context, uf string) ([]City, error) {
	uf = strings.ToUpper(strings.TrimSpace(uf))
	if !ValidUF(uf) {
		return nil, ErrNotFound
	}

	docs, err := s.client.Collection(citiesCollection).
		Where("state_uf", "==", uf).
		OrderBy("name", firestore.Asc).
		Documents(ctx).GetAll()
	if err != nil {
		return nil, err
	}

	cities := make([]City, 0, len(docs))
	for _, doc := range docs {
		var fc firestoreCity
		if err := doc.DataTo(&fc); err != nil {
			return nil, err
		}
		cities = append(cities, City{ID: fc.ID, Name: fc.Name, StateUF: fc.StateUF})
	}
	return cities, nil
}

// SeedCities upserts city documents in bulk. It is used by the seeding tool
// and is deliberately not part of Service; the API surface only reads cities.
func (s *FirestoreStore) SeedCities(ctx context.Context, cities []City) error {
	bw := s.client.BulkWriter(ctx)

	jobs := make([]*firestore.BulkWriterJob, 0, len(cities))
	for _, c := range cities {
		ref := s.client.Collection(citiesCollection).Doc(strconv.FormatInt(c.ID, 10))
		job, err := bw.Set(ref, firestoreCity{ID: c.ID, Name: c.Name, StateUF: c.StateUF})
		if err != nil {
			bw.End()
			return err
		}
		jobs = append(jobs, job)
	}
	bw.End()

	for _, job := range jobs {
		if _, err := job.Results(); err != nil {
			return err
		}
	}
	return nil
}

// Compile-time interface check
var _ Service = (*FirestoreStore)(nil)
