package storage

import (
	"context"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/pkg/errors"
)

// EntryIterator walks a listing one entry at a time. Pages are requested from
// the storage only as the iterator advances.
type EntryIterator struct {
	objects <-chan minio.ObjectInfo
	cancel  context.CancelFunc

	current Entry
	err     error
	done    bool
}

func (it *EntryIterator) Next() bool {
	if it.done {
		return false
	}

	object, ok := <-it.objects
	if !ok {
		it.finish()
		return false
	}

	if object.Err != nil {
		it.err = errors.Wrap(object.Err, "listing objects")
		it.finish()
		return false
	}

	it.current = Entry{
		Key:          object.Key,
		Size:         object.Size,
		ETag:         object.ETag,
		LastModified: object.LastModified,
		IsPrefix:     isCommonPrefix(object),
	}
	return true
}

func (it *EntryIterator) Entry() Entry {
	return it.current
}

func (it *EntryIterator) Err() error {
	return it.err
}

// Close stops the listing. It is safe to call more than once.
func (it *EntryIterator) Close() {
	it.finish()
}

func (it *EntryIterator) finish() {
	it.done = true
	if it.cancel != nil {
		it.cancel()
	}
}

func isCommonPrefix(object minio.ObjectInfo) bool {
	return strings.HasSuffix(object.Key, "/") && object.ETag == "" && object.Size == 0
}
