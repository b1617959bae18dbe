package repository // repository defines data access for employees

import (
	"context"
	"database/sql"
	"errors"

	"github.com/11930018-user/Backend/internal/model"
)

// EmployeeRepo provides access to the employees table. Employees are
// referenced by dine-in orders as the order creator and authenticate via
// their employee code at the login endpoint.
type EmployeeRepo struct {
	db *sql.DB
}

// NewEmployeeRepo constructs an EmployeeRepo with the given DB handle.
func NewEmployeeRepo(db *sql.DB) *EmployeeRepo {
	return &EmployeeRepo{db: db}
}

// List returns all employees, password hashes included; callers must not
// serialize the hash (the model hides it from JSON).
func (r *EmployeeRepo) List(ctx context.Context) ([]model.Employee, error) {
	const q = `SELECT id, first_name, last_name, employee_code, password_hash, created_at
	           FROM employees`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make([]model.Employee, 0)
	for rows.Next() {
		var e model.Employee
		if err := rows.Scan(
			&e.ID, &e.FirstName, &e.LastName, &e.EmployeeCode,
			&e.PasswordHash, &e.CreatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// Create inserts a new employee. PasswordHash must already be a bcrypt
// hash; hashing happens in the handler before this call. On success the
// employee's ID is populated.
func (r *EmployeeRepo) Create(ctx context.Context, e *model.Employee) error {
	const q = `INSERT INTO employees (first_name, last_name, employee_code, password_hash)
	           VALUES (?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, q, e.FirstName, e.LastName, e.EmployeeCode, e.PasswordHash)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	e.ID = uint64(id)
	return nil
}

// GetByCode retrieves an employee by their unique employee code. Returns
// ErrEmployeeNotFound when no employee matches.
func (r *EmployeeRepo) GetByCode(ctx context.Context, code string) (*model.Employee, error) {
	const q = `SELECT id, first_name, last_name, employee_code, password_hash, created_at
	           FROM employees WHERE employee_code = ?`
	var e model.Employee
	err := r.db.QueryRowContext(ctx, q, code).
		Scan(&e.ID, &e.FirstName, &e.LastName, &e.EmployeeCode, &e.PasswordHash, &e.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrEmployeeNotFound
		}
		return nil, err
	}
	return &e, nil
}
