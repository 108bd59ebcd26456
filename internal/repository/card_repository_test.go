package repository_test

import (
	"context"
	"testing"
	"time"

	"taskboard/internal/model"
	"taskboard/internal/repository"
	"taskboard/internal/testutil"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestCardRepository_Create_CommitsCardAndOwner(t *testing.T) {
	// Arrange
	gormDB, mock := setupMockDB(t)
	cardRepo := repository.NewCardRepository(gormDB)

	due := time.Date(2026, 11, 1, 0, 0, 0, 0, time.UTC)
	card := &model.Card{Title: "Write docs", Description: "API reference", DueDate: due, ListID: 4}

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "card"`).
		WithArgs("Write docs", "API reference", due, int64(4), int64(8)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(21))
	mock.ExpectExec(`INSERT INTO "carduser"`).
		WithArgs(int64(21), int64(8), true).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	// Act
	err := cardRepo.Create(context.Background(), card, 8)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, int64(21), card.ID)
	require.NotNil(t, card.CreatedBy)
	assert.Equal(t, int64(8), *card.CreatedBy)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCardRepository_Create_RollsBackWhenOwnerFails(t *testing.T) {
	// Arrange
	gormDB, mock := setupMockDB(t)
	cardRepo := repository.NewCardRepository(gormDB)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "card"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(21))
	mock.ExpectExec(`INSERT INTO "carduser"`).WillReturnError(assert.AnError)
	mock.ExpectRollback()

	// Act
	err := cardRepo.Create(context.Background(), &model.Card{Title: "t", Description: "d", ListID: 4}, 8)

	// Assert
	assert.ErrorIs(t, err, repository.ErrCreateLink)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCardRepository_OwnerName_NotFound(t *testing.T) {
	// Arrange
	gormDB, mock := setupMockDB(t)
	cardRepo := repository.NewCardRepository(gormDB)

	mock.ExpectQuery(`SELECT u.name\s+FROM carduser cu`).
		WithArgs(int64(5)).
		WillReturnRows(sqlmock.NewRows([]string{"name"}))

	// Act
	name, err := cardRepo.OwnerName(context.Background(), 5)

	// Assert
	assert.ErrorIs(t, err, repository.ErrOwnerNotFound)
	assert.Empty(t, name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCardRepository_CreatorName_Error(t *testing.T) {
	// Arrange
	gormDB, mock := setupMockDB(t)
	cardRepo := repository.NewCardRepository(gormDB)

	mock.ExpectQuery(`SELECT u.name\s+FROM card c`).
		WithArgs(int64(5)).
		WillReturnError(assert.AnError)

	// Act
	_, err := cardRepo.CreatorName(context.Background(), 5)

	// Assert
	assert.ErrorIs(t, err, assert.AnError)
	assert.NoError(t, mock.ExpectationsWereMet())
}

type cardFixture struct {
	db    *gorm.DB
	repo  *repository.CardRepository
	owner *model.User
	other *model.User
	list  *model.List
}

func setupCardFixture(t *testing.T) cardFixture {
	t.Helper()

	db := testutil.SetupTestDB(t)
	owner := &model.User{Name: "Ada", Email: "ada@x.com"}
	other := &model.User{Name: "Grace", Email: "grace@x.com"}
	board := &model.Board{Name: "Sprint1"}
	require.NoError(t, db.Create(owner).Error)
	require.NoError(t, db.Create(other).Error)
	require.NoError(t, db.Create(board).Error)

	list := &model.List{Name: "Backlog", BoardID: board.ID}
	require.NoError(t, db.Create(list).Error)

	return cardFixture{db: db, repo: repository.NewCardRepository(db), owner: owner, other: other, list: list}
}

func TestCardRepository_Sqlite_CreateAndLookups(t *testing.T) {
	f := setupCardFixture(t)
	ctx := context.Background()

	card := &model.Card{Title: "Write docs", Description: "API reference", DueDate: time.Now().UTC(), ListID: f.list.ID}
	require.NoError(t, f.repo.Create(ctx, card, f.owner.ID))

	assert.Equal(t, int64(1), testutil.Count(t, f.db, "carduser",
		"card_id = ? AND user_id = ? AND is_owner = ?", card.ID, f.owner.ID, true))

	cards, err := f.repo.GetByListID(ctx, f.list.ID)
	require.NoError(t, err)
	require.Len(t, cards, 1)
	assert.Equal(t, "Write docs", cards[0].Title)

	owner, err := f.repo.OwnerName(ctx, card.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ada", owner)

	creator, err := f.repo.CreatorName(ctx, card.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ada", creator)

	_, err = f.repo.CreatorName(ctx, 9999)
	assert.ErrorIs(t, err, repository.ErrCreatorNotFound)

	cardUser := &model.CardUser{CardID: card.ID, UserID: f.other.ID}
	require.NoError(t, f.repo.AddUser(ctx, cardUser))
	assert.Equal(t, int64(2), testutil.Count(t, f.db, "carduser", "card_id = ?", card.ID))

	// still the original owner
	owner, err = f.repo.OwnerName(ctx, card.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ada", owner)
}

func TestCardRepository_Sqlite_CreateIsAtomic(t *testing.T) {
	f := setupCardFixture(t)
	// the card row goes in, the owner membership does not
	testutil.RejectInserts(t, f.db, "carduser")

	err := f.repo.Create(context.Background(),
		&model.Card{Title: "Orphan", Description: "d", DueDate: time.Now().UTC(), ListID: f.list.ID}, f.owner.ID)

	assert.ErrorIs(t, err, repository.ErrCreateLink)
	assert.NotErrorIs(t, err, repository.ErrCreateParent)
	assert.Zero(t, testutil.Count(t, f.db, "card", ""))
	assert.Zero(t, testutil.Count(t, f.db, "carduser", ""))
}

func TestCardRepository_Sqlite_UnknownOwnerInsertsNothing(t *testing.T) {
	f := setupCardFixture(t)

	err := f.repo.Create(context.Background(),
		&model.Card{Title: "Orphan", Description: "d", DueDate: time.Now().UTC(), ListID: f.list.ID}, 9999)

	assert.ErrorIs(t, err, repository.ErrCreateParent)
	assert.Zero(t, testutil.Count(t, f.db, "card", ""))
	assert.Zero(t, testutil.Count(t, f.db, "carduser", ""))
}

func TestCardRepository_Sqlite_EmptyList(t *testing.T) {
	f := setupCardFixture(t)

	cards, err := f.repo.GetByListID(context.Background(), f.list.ID)
	require.NoError(t, err)
	assert.Empty(t, cards)
}
