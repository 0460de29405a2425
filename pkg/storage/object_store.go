package storage

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"

	pkgerrors "github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/ryanuber/go-glob"

	"github.com/imgdot/imgdot-go/pkg/storage/connections"
)

type objectStore struct {
	conn   connections.Connection
	logger zerolog.Logger
}

var _ ObjectStore = (*objectStore)(nil)

func NewObjectStore(conn connections.Connection, logger zerolog.Logger) ObjectStore {
	return &objectStore{conn, logger}
}

func (s *objectStore) Read(ctx context.Context, key string) ([]byte, error) {
	reader, err := s.conn.GetObject(ctx, key)
	if err != nil {
		return nil, s.convertToKnownError(err)
	}
	defer reader.Close()

	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, pkgerrors.Wrapf(s.convertToKnownError(err), "reading %q", key)
	}

	return data, nil
}

func (s *objectStore) Write(ctx context.Context, key string, data []byte) (WriteResult, error) {
	info, err := s.conn.PutObject(ctx, key, int64(len(data)), http.DetectContentType(data), bytes.NewReader(data))
	if err != nil {
		return WriteResult{}, pkgerrors.Wrapf(err, "writing %q", key)
	}

	s.logger.Debug().Str("key", key).Int64("size", info.Size).Msg("object written")
	return WriteResult{Key: key, ETag: info.ETag, Size: info.Size}, nil
}

func (s *objectStore) Delete(ctx context.Context, key string) error {
	if err := s.conn.DeleteObject(ctx, key); err != nil {
		return pkgerrors.Wrapf(err, "deleting %q", key)
	}

	return nil
}

func (s *objectStore) Exists(ctx context.Context, key string) (bool, error) {
	exists, err := s.conn.ObjectExists(ctx, key)
	if err != nil {
		s.logger.Debug().Err(err).Str("key", key).Msg("existence check failed")
		return false, pkgerrors.Wrapf(err, "checking %q", key)
	}

	return exists, nil
}

// List starts a new listing on every call. The iterator must be closed when
// the caller stops before the end.
func (s *objectStore) List(ctx context.Context, prefix string, recursive bool) *EntryIterator {
	ctx, cancel := context.WithCancel(ctx)
	return &EntryIterator{
		objects: s.conn.ListObjects(ctx, prefix, recursive),
		cancel:  cancel,
	}
}

// ListAll returns objects only; common prefixes of a non recursive listing
// are left out.
func (s *objectStore) ListAll(ctx context.Context, prefix string, recursive bool) ([]Entry, error) {
	return s.collect(s.List(ctx, prefix, recursive), func(entry Entry) bool { return !entry.IsPrefix })
}

// ListMatching lists recursively under prefix and keeps the keys matching
// pattern, where * stands for any run of characters.
func (s *objectStore) ListMatching(ctx context.Context, prefix, pattern string) ([]Entry, error) {
	return s.collect(s.List(ctx, prefix, true), func(entry Entry) bool {
		return glob.Glob(pattern, entry.Key)
	})
}

func (s *objectStore) collect(it *EntryIterator, keep func(Entry) bool) ([]Entry, error) {
	defer it.Close()

	entries := []Entry{}
	for it.Next() {
		if entry := it.Entry(); keep(entry) {
			entries = append(entries, entry)
		}
	}

	if err := it.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}

func (s *objectStore) convertToKnownError(err error) error {
	if connections.IsNotFound(err) {
		return ErrObjectNotFound
	}

	return err
}

var (
	ErrObjectNotFound = errors.New("object not found")
)
