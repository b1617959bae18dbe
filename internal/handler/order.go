package handler

import (
	"database/sql"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"github.com/11930018-user/Backend/internal/database"
	"github.com/11930018-user/Backend/internal/model"
	"github.com/11930018-user/Backend/internal/pricing"
	"github.com/11930018-user/Backend/internal/queue"
	"github.com/11930018-user/Backend/internal/repository"
	"github.com/11930018-user/Backend/internal/service"
)

// OrderHandler coordinates the dine-in order lifecycle. Creation, status
// updates and deletion each run as one transaction covering the order
// rows and the table status, so a failure in any step leaves both
// untouched. Line item prices are taken from the request as the snapshot
// of record; the menu is not re-read at order time.
type OrderHandler struct {
	Orders *repository.OrderRepo
	Tables *repository.TableRepo

	// publish sends the post-commit event; swapped out in tests.
	publish func(c echo.Context, ev queue.OrderPlacedEvent)
}

// NewOrderHandler constructs an OrderHandler.
func NewOrderHandler(orders *repository.OrderRepo, tables *repository.TableRepo) *OrderHandler {
	if orders == nil || tables == nil {
		panic("nil repository passed to NewOrderHandler")
	}
	return &OrderHandler{
		Orders:  orders,
		Tables:  tables,
		publish: func(c echo.Context, ev queue.OrderPlacedEvent) {
			// Best effort: the order is already committed, a broker
			// outage must not fail the request.
			_ = service.PublishOrderPlaced(c.Request().Context(), ev)
		},
	}
}

type orderItemReq struct {
	MenuItemID uint64          `json:"menu_item_id"`
	Quantity   uint32          `json:"quantity"`
	Price      decimal.Decimal `json:"price"`
}

type createOrderReq struct {
	TableID    uint64         `json:"table_id"`
	EmployeeID uint64         `json:"employee_id"`
	Items      []orderItemReq `json:"items"`
}

// List handles GET /api/orders. Orders are joined with their creator and
// table, newest first.
func (h *OrderHandler) List(c echo.Context) error {
	orders, err := h.Orders.ListWithDetails(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, orders)
}

// Items handles GET /api/orders/:id/items.
func (h *OrderHandler) Items(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid order id"})
	}
	items, err := h.Orders.ItemsByOrder(c.Request().Context(), id)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, items)
}

// Create handles POST /api/orders. One transaction inserts the order,
// bulk-inserts its items and reserves the table; the total is derived
// from the submitted price snapshots at the dine-in tax rate.
func (h *OrderHandler) Create(c echo.Context) error {
	var req createOrderReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid request body"})
	}
	if req.TableID == 0 || req.EmployeeID == 0 || len(req.Items) == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "table_id, employee_id and at least one item are required"})
	}

	lines := make([]pricing.LineItem, 0, len(req.Items))
	items := make([]model.OrderItem, 0, len(req.Items))
	for _, it := range req.Items {
		if it.MenuItemID == 0 || it.Quantity == 0 {
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "each item needs menu_item_id and quantity greater than 0"})
		}
		lines = append(lines, pricing.LineItem{Price: it.Price, Quantity: it.Quantity})
		items = append(items, model.OrderItem{
			MenuItemID: it.MenuItemID,
			Quantity:   it.Quantity,
			Price:      it.Price,
		})
	}
	totals := pricing.Calculate(lines, pricing.DineInRate)

	ctx, cancel := database.TxContext(c.Request().Context())
	defer cancel()

	tx, err := h.Orders.DB().BeginTx(ctx, nil)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "database error"})
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	order := model.Order{
		TableID:     req.TableID,
		EmployeeID:  req.EmployeeID,
		TotalAmount: totals.Total,
		Status:      model.OrderStatusOpen,
	}
	if err := h.Orders.CreateTx(ctx, tx, &order); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "failed to create order"})
	}
	if err := h.Orders.CreateItemsBulkTx(ctx, tx, order.ID, items); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "failed to create order items"})
	}
	tableStatus, _ := model.NextTableStatus(model.OrderCreated)
	if err := h.Tables.SetStatusTx(ctx, tx, req.TableID, tableStatus); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "failed to reserve table"})
	}
	if err := tx.Commit(); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "failed to commit order"})
	}
	committed = true

	h.publish(c, queue.OrderPlacedEvent{
		OrderID:     order.ID,
		Channel:     queue.ChannelDineIn,
		TableID:     req.TableID,
		EmployeeID:  req.EmployeeID,
		ItemCount:   len(items),
		Subtotal:    totals.Subtotal.StringFixed(2),
		Tax:         totals.Tax.StringFixed(2),
		TotalAmount: totals.Total.StringFixed(2),
		PlacedAt:    time.Now().UTC().Format(time.RFC3339),
	})

	return c.JSON(http.StatusCreated, echo.Map{
		"order_id":     order.ID,
		"table_id":     req.TableID,
		"employee_id":  req.EmployeeID,
		"subtotal":     totals.Subtotal,
		"tax":          totals.Tax,
		"total_amount": totals.Total,
		"status":       order.Status,
		"table_status": tableStatus,
	})
}

type updateOrderStatusReq struct {
	Status string `json:"status"`
}

// UpdateStatus handles PUT /api/orders/:id. The order's table is looked
// up first so a missing order becomes 404 before anything is written.
// Moving to "done" frees the table in the same transaction.
func (h *OrderHandler) UpdateStatus(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid order id"})
	}
	var req updateOrderStatusReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid request body"})
	}
	if req.Status == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "status is required"})
	}

	ctx, cancel := database.TxContext(c.Request().Context())
	defer cancel()

	tx, err := h.Orders.DB().BeginTx(ctx, nil)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "database error"})
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	tableID, err := h.Orders.TableIDTx(ctx, tx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "Order not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "database error"})
	}
	if err := h.Orders.UpdateStatusTx(ctx, tx, id, req.Status); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "Order not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "failed to update order"})
	}

	freed := false
	tableStatus := ""
	if req.Status == model.OrderStatusDone && tableID != 0 {
		tableStatus, _ = model.NextTableStatus(model.OrderCompleted)
		if err := h.Tables.SetStatusTx(ctx, tx, tableID, tableStatus); err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"message": "failed to free table"})
		}
		freed = true
	}
	if err := tx.Commit(); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "failed to commit update"})
	}
	committed = true

	if freed {
		return c.JSON(http.StatusOK, echo.Map{
			"id":           id,
			"status":       req.Status,
			"table_id":     tableID,
			"table_status": tableStatus,
		})
	}
	return c.JSON(http.StatusOK, echo.Map{"id": id, "status": req.Status})
}

// Delete handles DELETE /api/orders/:id. The order and its items go in
// one transaction and the table is freed alongside; a missing order is a
// 404 with nothing written.
func (h *OrderHandler) Delete(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid order id"})
	}

	ctx, cancel := database.TxContext(c.Request().Context())
	defer cancel()

	tx, err := h.Orders.DB().BeginTx(ctx, nil)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "database error"})
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	tableID, err := h.Orders.TableIDTx(ctx, tx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "Order not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "database error"})
	}
	if err := h.Orders.DeleteTx(ctx, tx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "Order not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "failed to delete order"})
	}
	tableStatus, _ := model.NextTableStatus(model.OrderDeleted)
	if tableID != 0 {
		if err := h.Tables.SetStatusTx(ctx, tx, tableID, tableStatus); err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"message": "failed to free table"})
		}
	}
	if err := tx.Commit(); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "failed to commit delete"})
	}
	committed = true

	return c.JSON(http.StatusOK, echo.Map{
		"message":      "Order deleted",
		"table_id":     tableID,
		"table_status": tableStatus,
	})
}
