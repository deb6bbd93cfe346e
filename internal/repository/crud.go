package repository

import (
	"context"
	"errors"
	"log"

	"gorm.io/gorm"
)

// Gateway is the single transactional primitive every repository is built
// on. Reads log failures and degrade to empty results; mutations run in
// their own transaction and roll back on any error, releasing the session
// on every exit path. Each call uses an independent gorm session, so
// concurrent callers never share statement state.
type Gateway struct {
	db *gorm.DB
}

func NewGateway(db *gorm.DB) *Gateway {
	return &Gateway{db: db}
}

// Query runs the read-only query assembled by build and decodes all rows
// into a slice of T. Any failure is logged and an empty slice returned:
// read errors degrade to "nothing found".
func Query[T any](ctx context.Context, g *Gateway, build func(*gorm.DB) *gorm.DB) []T {
	var out []T
	if err := build(g.db.WithContext(ctx)).Find(&out).Error; err != nil {
		log.Printf("gateway query: %v", err)
		return []T{}
	}
	if out == nil {
		out = []T{}
	}
	return out
}

// Optional expects at most one row. The second result reports whether a
// row was found; no-match is silent, other failures are logged.
func Optional[T any](ctx context.Context, g *Gateway, build func(*gorm.DB) *gorm.DB) (T, bool) {
	var out T
	err := build(g.db.WithContext(ctx)).First(&out).Error
	if err == nil {
		return out, true
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Printf("gateway optional: %v", err)
	}
	var zero T
	return zero, false
}

// Run executes fn inside a transaction: commit when fn returns nil,
// rollback when it returns an error or panics.
func (g *Gateway) Run(ctx context.Context, fn func(tx *gorm.DB) error) error {
	return g.db.WithContext(ctx).Transaction(fn)
}

// UpdateQuery executes a bulk mutation in its own transaction and reports
// whether at least one row was affected. Failures roll the transaction
// back, get logged and yield false.
func (g *Gateway) UpdateQuery(ctx context.Context, fn func(tx *gorm.DB) (int64, error)) bool {
	var affected int64
	err := g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		n, err := fn(tx)
		affected = n
		return err
	})
	if err != nil {
		log.Printf("gateway update: %v", err)
		return false
	}
	return affected > 0
}
