// Package storage abstracts where product images live.
//
// Two drivers are available:
//   - "local" — local filesystem, served under /storage (default)
//   - "s3"    — S3-compatible object storage (AWS S3, MinIO, R2)
//
// Boot once in internal/server, then:
//
//	storage.Put("products/42/cover.jpg", data)
//	url := storage.URL("products/42/cover.jpg")
package storage

import "io"

// Disk is the driver interface. Paths use forward slashes and are
// relative to the disk root.
type Disk interface {
	// Put writes content to path, creating parents as needed.
	Put(path string, content []byte) error

	// PutStream writes from r to path.
	PutStream(path string, r io.Reader) error

	// Get returns the full content of the file at path.
	Get(path string) ([]byte, error)

	// GetStream returns a ReadCloser for the file. Caller must close it.
	GetStream(path string) (io.ReadCloser, error)

	// Exists reports whether a file exists at path.
	Exists(path string) bool

	// Delete removes a file. Returns nil if the file did not exist.
	Delete(path string) error

	// URL returns the public URL the dashboard can load path from.
	URL(path string) string
}
