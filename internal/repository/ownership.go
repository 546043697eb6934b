// Package repository implements the data access layer for the application.
//
// Every read and write is scoped to the owning user at the query level: a row
// owned by someone else behaves exactly like a row that does not exist.
package repository

import (
	"context"
	"fmt"

	"synthlab/internal/models"

	"gorm.io/gorm"
)

// ownedResource describes how one resource kind participates in
// ownership-scoped listings. Listing behavior differs between resource kinds
// only through this descriptor; the filter logic itself lives in one place.
type ownedResource struct {
	table     string // entity table, e.g. "tags"
	joinTable string // synthesize m2m join table, e.g. "synthesize_tags"
	joinKey   string // FK column in the join table pointing at the entity
	orderBy   string // load-bearing list ordering, e.g. "name DESC"
}

// listOwned returns the rows of res.table owned by userID, in the resource's
// canonical order. With assignedOnly set it narrows the result to rows
// referenced by at least one synthesize record, de-duplicating rows the join
// would otherwise repeat. Read-only.
func listOwned[T any](ctx context.Context, db *gorm.DB, userID uint, assignedOnly bool, res ownedResource) ([]T, error) {
	q := db.WithContext(ctx).
		Where(res.table+".user_id = ?", userID).
		Order(res.table + "." + res.orderBy)

	if assignedOnly {
		q = q.
			Joins(fmt.Sprintf("JOIN %s ON %s.%s = %s.id",
				res.joinTable, res.joinTable, res.joinKey, res.table)).
			Distinct(res.table + ".*")
	}

	var out []T
	if err := q.Find(&out).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return out, nil
}
