package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/11930018-user/Backend/internal/model"
)

func newMenuRepoWithMock(t *testing.T) (*MenuItemRepo, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewMenuItemRepo(db), mock
}

func TestMenuItemListActive(t *testing.T) {
	repo, mock := newMenuRepoWithMock(t)

	created := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	mock.ExpectQuery("SELECT id, name, description, price, category, is_active, created_at").
		WillReturnRows(sqlmock.NewRows(
			[]string{"id", "name", "description", "price", "category", "is_active", "created_at"}).
			AddRow(1, "Margherita", "classic", "9.50", "pizza", true, created).
			AddRow(2, "Cola", "", "2.75", "drinks", true, created))

	items, err := repo.ListActive(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "Margherita", items[0].Name)
	assert.True(t, items[0].Price.Equal(decimal.RequireFromString("9.50")))
	assert.Equal(t, "drinks", items[1].Category)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestMenuItemCreatePopulatesID(t *testing.T) {
	repo, mock := newMenuRepoWithMock(t)

	mock.ExpectExec("INSERT INTO menu_items").
		WillReturnResult(sqlmock.NewResult(12, 1))

	m := model.MenuItem{
		Name:     "Margherita",
		Price:    decimal.RequireFromString("9.50"),
		Category: "pizza",
		IsActive: true,
	}
	require.NoError(t, repo.Create(context.Background(), &m))
	assert.Equal(t, uint64(12), m.ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestMenuItemUpdateNotFound(t *testing.T) {
	repo, mock := newMenuRepoWithMock(t)

	mock.ExpectExec("UPDATE menu_items").
		WillReturnResult(sqlmock.NewResult(0, 0))

	m := model.MenuItem{ID: 99, Name: "Gone", Price: decimal.RequireFromString("1.00"), Category: "x"}
	err := repo.Update(context.Background(), &m)
	assert.ErrorIs(t, err, ErrMenuItemNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestMenuItemDeleteNotFound(t *testing.T) {
	repo, mock := newMenuRepoWithMock(t)

	mock.ExpectExec("DELETE FROM menu_items").
		WithArgs(uint64(99)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Delete(context.Background(), 99)
	assert.ErrorIs(t, err, ErrMenuItemNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}
