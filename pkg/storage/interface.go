package storage

import (
	"context"
	"time"
)

type Entry struct {
	Key          string
	Size         int64
	ETag         string
	LastModified time.Time
	// IsPrefix marks a common prefix returned by a non recursive listing.
	IsPrefix bool
}

type WriteResult struct {
	Key  string
	ETag string
	Size int64
}

type ObjectStore interface {
	Read(ctx context.Context, key string) ([]byte, error)
	Write(ctx context.Context, key string, data []byte) (WriteResult, error)
	Delete(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
	List(ctx context.Context, prefix string, recursive bool) *EntryIterator
	ListAll(ctx context.Context, prefix string, recursive bool) ([]Entry, error)
	ListMatching(ctx context.Context, prefix, pattern string) ([]Entry, error)
}
