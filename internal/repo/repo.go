package repo

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type GormRepo struct {
	DB *gorm.DB
}

// Transaction runs fn against a repo bound to one database transaction.
// Nested calls reuse gorm savepoints.
func (r *GormRepo) Transaction(ctx context.Context, fn func(tx *GormRepo) error) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&GormRepo{DB: tx})
	})
}

// forUpdate adds a row lock on dialects that support it. The in-memory
// sqlite test database has a single writer and no FOR UPDATE syntax.
func (r *GormRepo) forUpdate(q *gorm.DB, table string) *gorm.DB {
	if r.DB.Dialector.Name() != "postgres" {
		return q
	}
	lock := clause.Locking{Strength: "UPDATE"}
	if table != "" {
		lock.Table = clause.Table{Name: table}
	}
	return q.Clauses(lock)
}
