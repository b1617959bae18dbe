package handler

import (
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/11930018-user/Backend/internal/queue"
	"github.com/11930018-user/Backend/internal/repository"
)

func newOrderHandlerWithMock(t *testing.T) (*OrderHandler, sqlmock.Sqlmock, *[]queue.OrderPlacedEvent) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	h := NewOrderHandler(repository.NewOrderRepo(db), repository.NewTableRepo(db))
	published := &[]queue.OrderPlacedEvent{}
	h.publish = func(c echo.Context, ev queue.OrderPlacedEvent) {
		*published = append(*published, ev)
	}
	return h, mock, published
}

func doJSON(t *testing.T, h echo.HandlerFunc, method, target, body string, params ...string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	for i := 0; i+1 < len(params); i += 2 {
		c.SetParamNames(params[i])
		c.SetParamValues(params[i+1])
	}
	require.NoError(t, h(c))
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var m map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &m))
	return m
}

func TestCreateOrderValidation(t *testing.T) {
	h, mock, _ := newOrderHandlerWithMock(t)

	cases := []struct {
		name string
		body string
	}{
		{"missing table", `{"employee_id":2,"items":[{"menu_item_id":1,"quantity":1,"price":"5.00"}]}`},
		{"missing employee", `{"table_id":3,"items":[{"menu_item_id":1,"quantity":1,"price":"5.00"}]}`},
		{"no items", `{"table_id":3,"employee_id":2,"items":[]}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := doJSON(t, h.Create, http.MethodPost, "/api/orders", tc.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, "table_id, employee_id and at least one item are required", decodeBody(t, rec)["message"])
		})
	}

	t.Run("zero quantity", func(t *testing.T) {
		body := `{"table_id":3,"employee_id":2,"items":[{"menu_item_id":1,"quantity":0,"price":"5.00"}]}`
		rec := doJSON(t, h.Create, http.MethodPost, "/api/orders", body)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	// No transaction may be opened for rejected input.
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateOrderCommitsOrderItemsAndTable(t *testing.T) {
	h, mock, published := newOrderHandlerWithMock(t)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO orders").
		WithArgs(uint64(3), uint64(2), sqlmock.AnyArg(), "open").
		WillReturnResult(sqlmock.NewResult(41, 1))
	mock.ExpectExec("INSERT INTO order_items").
		WillReturnResult(sqlmock.NewResult(1, 2))
	mock.ExpectExec("UPDATE restaurant_tables SET status").
		WithArgs("reserved", uint64(3)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	body := `{"table_id":3,"employee_id":2,"items":[
		{"menu_item_id":10,"quantity":2,"price":"9.50"},
		{"menu_item_id":11,"quantity":1,"price":"6.00"}]}`
	rec := doJSON(t, h.Create, http.MethodPost, "/api/orders", body)

	require.Equal(t, http.StatusCreated, rec.Code)
	got := decodeBody(t, rec)
	assert.Equal(t, float64(41), got["order_id"])
	assert.Equal(t, "25", got["subtotal"])
	assert.Equal(t, "1.31", got["tax"])
	assert.Equal(t, "26.31", got["total_amount"])
	assert.Equal(t, "open", got["status"])
	assert.Equal(t, "reserved", got["table_status"])

	require.Len(t, *published, 1)
	ev := (*published)[0]
	assert.Equal(t, uint64(41), ev.OrderID)
	assert.Equal(t, queue.ChannelDineIn, ev.Channel)
	assert.Equal(t, "26.31", ev.TotalAmount)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateOrderRollsBackOnItemFailure(t *testing.T) {
	h, mock, published := newOrderHandlerWithMock(t)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO orders").
		WillReturnResult(sqlmock.NewResult(41, 1))
	mock.ExpectExec("INSERT INTO order_items").
		WillReturnError(sql.ErrConnDone)
	mock.ExpectRollback()

	body := `{"table_id":3,"employee_id":2,"items":[{"menu_item_id":10,"quantity":2,"price":"9.50"}]}`
	rec := doJSON(t, h.Create, http.MethodPost, "/api/orders", body)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Empty(t, *published)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateOrderStatusDoneFreesTable(t *testing.T) {
	h, mock, _ := newOrderHandlerWithMock(t)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT table_id FROM orders").
		WithArgs(uint64(41)).
		WillReturnRows(sqlmock.NewRows([]string{"table_id"}).AddRow(3))
	mock.ExpectExec("UPDATE orders SET status").
		WithArgs("done", uint64(41)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE restaurant_tables SET status").
		WithArgs("available", uint64(3)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	rec := doJSON(t, h.UpdateStatus, http.MethodPut, "/api/orders/41", `{"status":"done"}`, "id", "41")

	require.Equal(t, http.StatusOK, rec.Code)
	got := decodeBody(t, rec)
	assert.Equal(t, "done", got["status"])
	assert.Equal(t, float64(3), got["table_id"])
	assert.Equal(t, "available", got["table_status"])
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateOrderStatusNonDoneLeavesTable(t *testing.T) {
	h, mock, _ := newOrderHandlerWithMock(t)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT table_id FROM orders").
		WillReturnRows(sqlmock.NewRows([]string{"table_id"}).AddRow(3))
	mock.ExpectExec("UPDATE orders SET status").
		WithArgs("preparing", uint64(41)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	rec := doJSON(t, h.UpdateStatus, http.MethodPut, "/api/orders/41", `{"status":"preparing"}`, "id", "41")

	require.Equal(t, http.StatusOK, rec.Code)
	got := decodeBody(t, rec)
	assert.Equal(t, "preparing", got["status"])
	_, hasTableStatus := got["table_status"]
	assert.False(t, hasTableStatus)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateOrderStatusMissingOrder(t *testing.T) {
	h, mock, _ := newOrderHandlerWithMock(t)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT table_id FROM orders").
		WillReturnError(sql.ErrNoRows)
	mock.ExpectRollback()

	rec := doJSON(t, h.UpdateStatus, http.MethodPut, "/api/orders/99", `{"status":"done"}`, "id", "99")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Order not found", decodeBody(t, rec)["message"])
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateOrderStatusRequiresStatus(t *testing.T) {
	h, mock, _ := newOrderHandlerWithMock(t)

	rec := doJSON(t, h.UpdateStatus, http.MethodPut, "/api/orders/41", `{}`, "id", "41")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "status is required", decodeBody(t, rec)["message"])
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteOrderFreesTable(t *testing.T) {
	h, mock, _ := newOrderHandlerWithMock(t)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT table_id FROM orders").
		WithArgs(uint64(41)).
		WillReturnRows(sqlmock.NewRows([]string{"table_id"}).AddRow(3))
	mock.ExpectExec("DELETE FROM orders").
		WithArgs(uint64(41)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE restaurant_tables SET status").
		WithArgs("available", uint64(3)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	rec := doJSON(t, h.Delete, http.MethodDelete, "/api/orders/41", "", "id", "41")

	require.Equal(t, http.StatusOK, rec.Code)
	got := decodeBody(t, rec)
	assert.Equal(t, "Order deleted", got["message"])
	assert.Equal(t, "available", got["table_status"])
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteOrderMissing(t *testing.T) {
	h, mock, _ := newOrderHandlerWithMock(t)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT table_id FROM orders").
		WillReturnError(sql.ErrNoRows)
	mock.ExpectRollback()

	rec := doJSON(t, h.Delete, http.MethodDelete, "/api/orders/99", "", "id", "99")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestOrderInvalidID(t *testing.T) {
	h, mock, _ := newOrderHandlerWithMock(t)

	rec := doJSON(t, h.Delete, http.MethodDelete, "/api/orders/abc", "", "id", "abc")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(t, h.UpdateStatus, http.MethodPut, "/api/orders/0", `{"status":"done"}`, "id", "0")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	require.NoError(t, mock.ExpectationsWereMet())
}
