package store

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Get, Update, and Delete when the document does
// not exist. Every RecordStore implementation wraps it so handlers can map a
// missing record to a 404 regardless of backend.
var ErrNotFound = errors.New("record not found")

// RecordStore is the boundary to the document database. The service fetches
// whole collections and filters locally, so there is no query surface beyond
// fetch-all; writes are keyed by id.
type RecordStore interface {
	FetchAll(ctx context.Context, collection string) ([]Doc, error)
	Get(ctx context.Context, collection, id string) (Doc, error)
	Create(ctx context.Context, collection, id string, data map[string]interface{}) error
	Update(ctx context.Context, collection, id string, data map[string]interface{}) error
	Delete(ctx context.Context, collection, id string) error
	// BatchDelete issues one batched request and reports per-id outcomes:
	// deletions that the store confirmed and deletions it rejected.
	BatchDelete(ctx context.Context, collection string, ids []string) (deleted, failed []string, err error)
}

// Records is the store the handlers talk to. main sets it to the Firestore
// implementation; dev mode and tests swap in the in-memory one.
var Records RecordStore
