// Package migrations contains the schema migration files. Each file
// registers itself in an init(), so importing this package (done by
// cmd/moday) is enough to make every migration known to the runner.
package migrations
