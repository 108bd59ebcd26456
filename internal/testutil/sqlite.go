// Package testutil provides an in-memory database with the board schema for tests.
package testutil

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Schema mirrors the Postgres tables in SQLite syntax, foreign keys included.
const Schema = `
CREATE TABLE "user" (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	name TEXT NOT NULL,
	email TEXT NOT NULL
);
CREATE TABLE board (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	name TEXT NOT NULL
);
CREATE TABLE boarduser (
	board_id INTEGER NOT NULL REFERENCES board(id),
	user_id INTEGER NOT NULL REFERENCES "user"(id),
	is_admin BOOLEAN NOT NULL DEFAULT false,
	PRIMARY KEY (board_id, user_id)
);
CREATE TABLE list (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	name TEXT NOT NULL,
	board_id INTEGER NOT NULL REFERENCES board(id)
);
CREATE TABLE card (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	title TEXT NOT NULL,
	description TEXT NOT NULL,
	due_date DATETIME NOT NULL,
	list_id INTEGER NOT NULL REFERENCES list(id),
	created_by INTEGER REFERENCES "user"(id)
);
CREATE TABLE carduser (
	card_id INTEGER NOT NULL REFERENCES card(id),
	user_id INTEGER NOT NULL REFERENCES "user"(id),
	is_owner BOOLEAN NOT NULL DEFAULT false,
	PRIMARY KEY (card_id, user_id)
);
`

// SetupTestDB opens a private in-memory database, creates the schema and closes it
// when the test ends.
func SetupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?_foreign_keys=on"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// every new connection would get its own empty in-memory database
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	require.NoError(t, db.Exec(Schema).Error)
	return db
}

// Count returns the number of rows in table matching the optional condition.
func Count(t *testing.T, db *gorm.DB, table string, query string, args ...any) int64 {
	t.Helper()

	var n int64
	q := db.Table(table)
	if query != "" {
		q = q.Where(query, args...)
	}
	require.NoError(t, q.Count(&n).Error)
	return n
}

// RejectInserts installs a trigger that aborts every insert into table.
func RejectInserts(t *testing.T, db *gorm.DB, table string) {
	t.Helper()

	stmt := fmt.Sprintf(`CREATE TRIGGER reject_%[1]s BEFORE INSERT ON "%[1]s"
BEGIN
	SELECT RAISE(ABORT, 'inserts into %[1]s rejected');
END;`, table)
	require.NoError(t, db.Exec(stmt).Error)
}
