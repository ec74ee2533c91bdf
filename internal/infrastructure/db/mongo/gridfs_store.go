package mongo

import (
	"context"
	"io"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/gridfs"

	"github.com/cardinal-capital/club-system/internal/core/domain"
)

// GridFSStore implements ports.FileStore on a GridFS bucket in the same
// database as the content collections.
type GridFSStore struct {
	bucket *gridfs.Bucket
}

func NewGridFSStore(db *mongo.Database) (*GridFSStore, error) {
	bucket, err := gridfs.NewBucket(db)
	if err != nil {
		return nil, err
	}
	return &GridFSStore{bucket: bucket}, nil
}

// Save streams the file into GridFS and returns the hex id of the stored blob.
func (s *GridFSStore) Save(ctx context.Context, filename string, r io.Reader) (string, error) {
	if deadline, ok := ctx.Deadline(); ok {
		_ = s.bucket.SetWriteDeadline(deadline)
	}
	id, err := s.bucket.UploadFromStream(filename, r)
	if err != nil {
		return "", err
	}
	return id.Hex(), nil
}

// Open returns a read stream over the stored blob. Opening resolves the file
// document first, so a missing blob fails here rather than mid-stream.
func (s *GridFSStore) Open(ctx context.Context, id string) (io.ReadCloser, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrNotFound
	}
	if deadline, ok := ctx.Deadline(); ok {
		_ = s.bucket.SetReadDeadline(deadline)
	}
	stream, err := s.bucket.OpenDownloadStream(oid)
	if err != nil {
		if err == gridfs.ErrFileNotFound {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return stream, nil
}

// Delete removes the blob and its chunks.
func (s *GridFSStore) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrNotFound
	}
	if deadline, ok := ctx.Deadline(); ok {
		_ = s.bucket.SetWriteDeadline(deadline)
	}
	return s.bucket.Delete(oid)
}
