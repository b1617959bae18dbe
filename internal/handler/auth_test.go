package handler

import (
	"net/http"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/11930018-user/Backend/internal/config"
	"github.com/11930018-user/Backend/internal/repository"
)

func newAuthHandlerWithMock(t *testing.T) (*AuthHandler, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	cfg := config.Config{JWTSecret: "test-secret", AccessTTLMin: 15, BcryptCost: 4}
	return NewAuthHandler(cfg, repository.NewEmployeeRepo(db)), mock
}

func employeeRow(t *testing.T, password string) *sqlmock.Rows {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), 4)
	require.NoError(t, err)
	return sqlmock.NewRows(
		[]string{"id", "first_name", "last_name", "employee_code", "password_hash", "created_at"}).
		AddRow(5, "Ann", "Lee", "EMP005", string(hash), time.Now())
}

func TestLoginSuccess(t *testing.T) {
	h, mock := newAuthHandlerWithMock(t)

	mock.ExpectQuery("SELECT id, first_name, last_name, employee_code, password_hash").
		WithArgs("EMP005").
		WillReturnRows(employeeRow(t, "pass123"))

	rec := doJSON(t, h.Login, http.MethodPost, "/api/auth/login",
		`{"employee_code":"EMP005","password":"pass123"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	got := decodeBody(t, rec)
	assert.NotEmpty(t, got["token"])
	emp, ok := got["employee"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, float64(5), emp["id"])
	assert.Equal(t, "EMP005", emp["employee_code"])
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestLoginWrongPassword(t *testing.T) {
	h, mock := newAuthHandlerWithMock(t)

	mock.ExpectQuery("SELECT id, first_name, last_name, employee_code, password_hash").
		WithArgs("EMP005").
		WillReturnRows(employeeRow(t, "pass123"))

	rec := doJSON(t, h.Login, http.MethodPost, "/api/auth/login",
		`{"employee_code":"EMP005","password":"nope"}`)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Invalid credentials", decodeBody(t, rec)["message"])
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestLoginUnknownCode(t *testing.T) {
	h, mock := newAuthHandlerWithMock(t)

	mock.ExpectQuery("SELECT id, first_name, last_name, employee_code, password_hash").
		WithArgs("NOPE").
		WillReturnRows(sqlmock.NewRows(
			[]string{"id", "first_name", "last_name", "employee_code", "password_hash", "created_at"}))

	rec := doJSON(t, h.Login, http.MethodPost, "/api/auth/login",
		`{"employee_code":"NOPE","password":"pass123"}`)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Invalid credentials", decodeBody(t, rec)["message"])
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestLoginMissingFields(t *testing.T) {
	h, mock := newAuthHandlerWithMock(t)

	rec := doJSON(t, h.Login, http.MethodPost, "/api/auth/login", `{"employee_code":" "}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "employee_code and password required", decodeBody(t, rec)["message"])
	require.NoError(t, mock.ExpectationsWereMet())
}
