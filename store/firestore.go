package store

import (
	"context"
	"encoding/base64"
	"fmt"
	"log"
	"os"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type firestoreStore struct {
	client *firestore.Client
}

// Init connects Records to Firestore using the service-account credentials
// from the environment. When no credentials are present it falls back to the
// in-memory store so local development works without a cloud project, the
// same way auth verification is skipped in dev mode.
func Init(ctx context.Context) error {
	opt, ok := credentialOption()
	if !ok {
		log.Println("No Firebase credentials found, using in-memory record store (dev mode)")
		Records = NewMemoryStore()
		return nil
	}

	projectID := os.Getenv("FIREBASE_PROJECT_ID")
	if projectID == "" {
		projectID = "genco-farm-hub"
	}

	app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: projectID}, opt)
	if err != nil {
		return fmt.Errorf("failed to initialize Firebase app: %w", err)
	}

	client, err := app.Firestore(ctx)
	if err != nil {
		return fmt.Errorf("failed to create Firestore client: %w", err)
	}

	log.Printf("Connected to Firestore project %s", projectID)
	Records = &firestoreStore{client: client}
	return nil
}

// Close releases the Firestore connection. Safe to call when running on the
// in-memory store.
func Close() {
	if fs, ok := Records.(*firestoreStore); ok && fs.client != nil {
		if err := fs.client.Close(); err != nil {
			log.Printf("Error closing Firestore client: %v", err)
		}
	}
}

// credentialOption resolves service-account credentials from the environment,
// trying direct JSON, then base64, then a credentials file path.
func credentialOption() (option.ClientOption, bool) {
	if creds := os.Getenv("FIREBASE_SERVICE_ACCOUNT_JSON"); creds != "" {
		return option.WithCredentialsJSON([]byte(creds)), true
	}
	if encoded := os.Getenv("FIREBASE_SERVICE_ACCOUNT_BASE64"); encoded != "" {
		credBytes, err := base64.StdEncoding.DecodeString(encoded)
		if err != nil {
			log.Printf("Error decoding base64 Firebase credentials: %v", err)
			return nil, false
		}
		return option.WithCredentialsJSON(credBytes), true
	}
	if path := os.Getenv("GOOGLE_APPLICATION_CREDENTIALS"); path != "" {
		return option.WithCredentialsFile(path), true
	}
	return nil, false
}

func (s *firestoreStore) FetchAll(ctx context.Context, collection string) ([]Doc, error) {
	iter := s.client.Collection(collection).Documents(ctx)
	defer iter.Stop()

	var docs []Doc
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to fetch collection %s: %w", collection, err)
		}
		docs = append(docs, Doc{ID: snap.Ref.ID, Data: snap.Data()})
	}
	return docs, nil
}

func (s *firestoreStore) Get(ctx context.Context, collection, id string) (Doc, error) {
	snap, err := s.client.Collection(collection).Doc(id).Get(ctx)
	if status.Code(err) == codes.NotFound {
		return Doc{}, fmt.Errorf("document %s/%s: %w", collection, id, ErrNotFound)
	}
	if err != nil {
		return Doc{}, fmt.Errorf("failed to get %s/%s: %w", collection, id, err)
	}
	return Doc{ID: snap.Ref.ID, Data: snap.Data()}, nil
}

func (s *firestoreStore) Create(ctx context.Context, collection, id string, data map[string]interface{}) error {
	_, err := s.client.Collection(collection).Doc(id).Create(ctx, data)
	if err != nil {
		return fmt.Errorf("failed to create %s/%s: %w", collection, id, err)
	}
	return nil
}

// Update merges a field subset into an existing document. Doc.Update (unlike
// Set with a merge) fails when the document does not exist, so a stale edit
// can never resurrect a deleted record as a partial phantom.
func (s *firestoreStore) Update(ctx context.Context, collection, id string, data map[string]interface{}) error {
	updates := make([]firestore.Update, 0, len(data))
	for field, value := range data {
		updates = append(updates, firestore.Update{Path: field, Value: value})
	}
	_, err := s.client.Collection(collection).Doc(id).Update(ctx, updates)
	if status.Code(err) == codes.NotFound {
		return fmt.Errorf("document %s/%s: %w", collection, id, ErrNotFound)
	}
	if err != nil {
		return fmt.Errorf("failed to update %s/%s: %w", collection, id, err)
	}
	return nil
}

func (s *firestoreStore) Delete(ctx context.Context, collection, id string) error {
	// Exists precondition: deleting a missing document is an error, matching
	// the in-memory store.
	_, err := s.client.Collection(collection).Doc(id).Delete(ctx, firestore.Exists)
	if status.Code(err) == codes.NotFound || status.Code(err) == codes.FailedPrecondition {
		return fmt.Errorf("document %s/%s: %w", collection, id, ErrNotFound)
	}
	if err != nil {
		return fmt.Errorf("failed to delete %s/%s: %w", collection, id, err)
	}
	return nil
}

// BatchDelete issues all deletions through one BulkWriter so a bulk action is
// a single batched request, then reconciles per-id outcomes.
func (s *firestoreStore) BatchDelete(ctx context.Context, collection string, ids []string) ([]string, []string, error) {
	bw := s.client.BulkWriter(ctx)
	jobs := make(map[string]*firestore.BulkWriterJob, len(ids))

	var failed []string
	for _, id := range ids {
		job, err := bw.Delete(s.client.Collection(collection).Doc(id))
		if err != nil {
			log.Printf("Failed to enqueue delete for %s/%s: %v", collection, id, err)
			failed = append(failed, id)
			continue
		}
		jobs[id] = job
	}
	bw.End()

	var deleted []string
	for _, id := range ids {
		job, ok := jobs[id]
		if !ok {
			continue
		}
		if _, err := job.Results(); err != nil {
			log.Printf("Delete rejected for %s/%s: %v", collection, id, err)
			failed = append(failed, id)
		} else {
			deleted = append(deleted, id)
		}
	}
	return deleted, failed, nil
}
