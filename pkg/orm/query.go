// Package orm wraps the shared *gorm.DB behind a small fluent query
// API with pagination and optional read-through caching.
package orm

import (
	"time"

	"gorm.io/gorm"

	"github.com/fabiogif/moday-backoffice/pkg/database"
)

// Cacher is the cache interface the ORM reads through. It is assigned at
// boot by the server package so orm and cache never import each other.
type Cacher interface {
	Get(key string, dest interface{}) bool
	Set(key string, value interface{}, ttl time.Duration) error
}

// CacheStore is nil until the server wires the Redis cache in.
var CacheStore Cacher

// Pagination describes one page of a listing.
type Pagination struct {
	Page     int   `json:"page"`
	Limit    int   `json:"limit"`
	Total    int64 `json:"total"`
	LastPage int   `json:"last_page"`
}

// Query is a chainable wrapper over gorm.DB. Each method returns a new
// Query, so partially built queries can be reused safely.
type Query struct {
	db *gorm.DB
}

// DB starts a query on the shared connection.
func DB() *Query {
	return &Query{db: database.DB}
}

// WithDB starts a query on an explicit connection (tests, transactions).
func WithDB(db *gorm.DB) *Query {
	return &Query{db: db}
}

func (q *Query) Model(v interface{}) *Query {
	return &Query{db: q.db.Model(v)}
}

func (q *Query) Where(query string, args ...interface{}) *Query {
	return &Query{db: q.db.Where(query, args...)}
}

func (q *Query) Order(clause string) *Query {
	return &Query{db: q.db.Order(clause)}
}

func (q *Query) Preload(association string) *Query {
	return &Query{db: q.db.Preload(association)}
}

// Get loads all matching rows into dest.
func (q *Query) Get(dest interface{}) error {
	return q.db.Find(dest).Error
}

// First loads the first matching row. Returns gorm.ErrRecordNotFound
// when nothing matches.
func (q *Query) First(dest interface{}) error {
	return q.db.First(dest).Error
}

// Count returns the number of matching rows.
func (q *Query) Count() (int64, error) {
	var n int64
	err := q.db.Count(&n).Error
	return n, err
}

// Create inserts v.
func (q *Query) Create(v interface{}) error {
	return q.db.Create(v).Error
}

// Save upserts v (all fields).
func (q *Query) Save(v interface{}) error {
	return q.db.Save(v).Error
}

// Delete removes v (soft delete when the model embeds gorm.DeletedAt).
func (q *Query) Delete(v interface{}) error {
	return q.db.Delete(v).Error
}

// Updates applies a column map to every matching row.
func (q *Query) Updates(values map[string]interface{}) error {
	return q.db.Updates(values).Error
}

// GetWithPagination loads one page of results and its metadata.
// page starts at 1; limit is clamped to 1–100.
func (q *Query) GetWithPagination(dest interface{}, page, limit int) (Pagination, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 15
	}
	if limit > 100 {
		limit = 100
	}

	var total int64
	if err := q.db.Count(&total).Error; err != nil {
		return Pagination{}, err
	}

	offset := (page - 1) * limit
	if err := q.db.Offset(offset).Limit(limit).Find(dest).Error; err != nil {
		return Pagination{}, err
	}

	last := int((total + int64(limit) - 1) / int64(limit))
	if last < 1 {
		last = 1
	}

	return Pagination{Page: page, Limit: limit, Total: total, LastPage: last}, nil
}

// Cache loads dest from the cache under key, falling back to the query
// and storing the result for ttl. A nil CacheStore degrades to a plain
// query.
func (q *Query) Cache(key string, ttl time.Duration, dest interface{}) error {
	if CacheStore != nil && CacheStore.Get(key, dest) {
		return nil
	}

	if err := q.db.Find(dest).Error; err != nil {
		return err
	}

	if CacheStore != nil {
		_ = CacheStore.Set(key, dest, ttl)
	}
	return nil
}
