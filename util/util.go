// Package util contains various general utility functions used throughout
// the project
package util

import (
	"crypto/md5"
	"encoding/hex"
)

// WrapError wraps error types to create compound error chains
func WrapError(text string, err error) error {
	return wrappedError{
		text:  text,
		inner: err,
	}
}

type wrappedError struct {
	text  string
	inner error
}

func (e wrappedError) Error() string {
	text := e.text
	if e.inner != nil {
		text += ": " + e.inner.Error()
	}
	return text
}

func (e wrappedError) Unwrap() error {
	return e.inner
}

// Waterfall executes a slice of functions until the first error returned.
// This error, if any, is returned to the caller.
func Waterfall(fns ...func() error) (err error) {
	for _, fn := range fns {
		err = fn()
		if err != nil {
			break
		}
	}
	return
}

// HashBuffer computes the MD5 content digest of a buffer as lowercase hex.
// Used as the deduplication key for stored files.
func HashBuffer(buf []byte) string {
	hash := md5.Sum(buf)
	return hex.EncodeToString(hash[:])
}
