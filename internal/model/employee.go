package model

import "time"

// Employee represents a row of the `employees` table. Only the bcrypt hash
// of the password is stored; the hash never leaves the repository layer in
// API responses.
//
// Fields:
//  ID           – primary key identifier.
//  FirstName    – given name.
//  LastName     – family name.
//  EmployeeCode – unique short code used to log in.
//  PasswordHash – bcrypt hash of the login password.
//  CreatedAt    – creation timestamp.
type Employee struct {
	ID           uint64    `json:"id"`            // employees.id
	FirstName    string    `json:"first_name"`    // employees.first_name
	LastName     string    `json:"last_name"`     // employees.last_name
	EmployeeCode string    `json:"employee_code"` // employees.employee_code
	PasswordHash string    `json:"-"`             // employees.password_hash (never serialized)
	CreatedAt    time.Time `json:"created_at"`    // employees.created_at
}
