// Package repository implements data access for the POS store. Not-found
// sentinels defined here let handlers translate repository failures into
// HTTP statuses without inspecting SQL errors. Transactional (…Tx) methods
// surface sql.ErrNoRows directly when an update or delete affects zero
// rows, matching the zero-affected-rows contract of the order endpoints.
package repository

import "errors"

// ErrMenuItemNotFound is returned when a menu item lookup, update or
// delete matches no row. Handlers translate this into HTTP 404.
var ErrMenuItemNotFound = errors.New("menu item not found")

// ErrEmployeeNotFound is returned when no employee matches the given
// employee code. The login handler translates this into HTTP 401 so that
// unknown codes and wrong passwords are indistinguishable to callers.
var ErrEmployeeNotFound = errors.New("employee not found")

// ErrTableNotFound is returned when a restaurant table lookup, update or
// delete matches no row. Handlers translate this into HTTP 404.
var ErrTableNotFound = errors.New("table not found")
