package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"
)

// Keyed is a row whose generated primary key is populated by the insert.
type Keyed interface {
	Key() int64
}

// Link builds a dependent row from the generated key of its parent.
type Link func(parentID int64) any

// createLinked inserts parent and then every row produced by links, in one transaction.
// Statements run in order on the transaction's connection; any failure rolls back
// everything, so either all rows are committed or none are.
func createLinked(ctx context.Context, db *gorm.DB, parent Keyed, links ...Link) error {
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(parent).Error; err != nil {
			return fmt.Errorf("%w: %w", ErrCreateParent, err)
		}

		for _, link := range links {
			if err := tx.Create(link(parent.Key())).Error; err != nil {
				return fmt.Errorf("%w: %w", ErrCreateLink, err)
			}
		}

		return nil
	})
}

// insertLinks inserts membership rows between existing records in one transaction.
func insertLinks(ctx context.Context, db *gorm.DB, rows ...any) error {
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, row := range rows {
			if err := tx.Create(row).Error; err != nil {
				return fmt.Errorf("%w: %w", ErrCreateLink, err)
			}
		}
		return nil
	})
}
