package repository // repository defines data access for restaurant tables

import (
	"context"
	"database/sql"

	"github.com/11930018-user/Backend/internal/model"
)

// TableRepo provides CRUD operations for the restaurant_tables table plus
// the transactional status write used by the order flow. Only the order
// handlers drive the status column between "available" and "reserved";
// the plain Update below exists for manual table administration.
type TableRepo struct {
	db *sql.DB
}

// NewTableRepo constructs a TableRepo with the given DB handle.
func NewTableRepo(db *sql.DB) *TableRepo {
	return &TableRepo{db: db}
}

// List returns all restaurant tables.
func (r *TableRepo) List(ctx context.Context) ([]model.RestaurantTable, error) {
	const q = `SELECT id, table_number, capacity, status, zone FROM restaurant_tables`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make([]model.RestaurantTable, 0)
	for rows.Next() {
		var t model.RestaurantTable
		var zone sql.NullString
		if err := rows.Scan(&t.ID, &t.TableNumber, &t.Capacity, &t.Status, &zone); err != nil {
			return nil, err
		}
		if zone.Valid {
			z := zone.String
			t.Zone = &z
		}
		result = append(result, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// Create inserts a table. On success the table's ID is populated.
func (r *TableRepo) Create(ctx context.Context, t *model.RestaurantTable) error {
	const q = `INSERT INTO restaurant_tables (table_number, capacity, status, zone)
	           VALUES (?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, q, t.TableNumber, t.Capacity, t.Status, t.Zone)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	t.ID = uint64(id)
	return nil
}

// Update overwrites all columns of a table. Returns ErrTableNotFound when
// no row matches the ID.
func (r *TableRepo) Update(ctx context.Context, t *model.RestaurantTable) error {
	const q = `UPDATE restaurant_tables
	           SET table_number = ?, capacity = ?, status = ?, zone = ?
	           WHERE id = ?`
	res, err := r.db.ExecContext(ctx, q, t.TableNumber, t.Capacity, t.Status, t.Zone, t.ID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrTableNotFound
	}
	return nil
}

// Delete removes a table by ID. Returns ErrTableNotFound when no row
// matches.
func (r *TableRepo) Delete(ctx context.Context, id uint64) error {
	const q = `DELETE FROM restaurant_tables WHERE id = ?`
	res, err := r.db.ExecContext(ctx, q, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrTableNotFound
	}
	return nil
}

// SetStatusTx unconditionally overwrites a table's status within the scope
// of an existing transaction. The caller must commit or rollback. This is
// the persistence half of the table state machine: the status to write
// comes from model.NextTableStatus for the order event being processed.
func (r *TableRepo) SetStatusTx(ctx context.Context, tx *sql.Tx, tableID uint64, status string) error {
	const q = `UPDATE restaurant_tables SET status = ? WHERE id = ?`
	_, err := tx.ExecContext(ctx, q, status, tableID)
	return err
}
