package profile

import "context"

// Repository port for the share record store. Append never overwrites an
// existing row; FindByShareID returns ErrRecordNotFound when no row matches.
type Repository interface {
	Append(ctx context.Context, rec *ShareRecord) error
	FindByShareID(ctx context.Context, id ShareID) (*ShareRecord, error)
}

// SnapshotStore port for shareable result exports.
type SnapshotStore interface {
	Put(ctx context.Context, key string, data []byte, contentType string) (string, error)
}
