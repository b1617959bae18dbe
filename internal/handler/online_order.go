package handler

import (
	"database/sql"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/11930018-user/Backend/internal/database"
	"github.com/11930018-user/Backend/internal/model"
	"github.com/11930018-user/Backend/internal/pricing"
	"github.com/11930018-user/Backend/internal/queue"
	"github.com/11930018-user/Backend/internal/repository"
	"github.com/11930018-user/Backend/internal/service"
)

// OnlineOrderHandler coordinates the online order lifecycle. There is no
// table coupling here, but item replacement and deletion still touch two
// tables, so those paths run as a single transaction. The existence
// check on replacement happens last: the parent update reporting zero
// affected rows rolls back the item rewrite that already ran.
type OnlineOrderHandler struct {
	Orders *repository.OnlineOrderRepo

	// publish sends the post-commit event; swapped out in tests.
	publish func(c echo.Context, ev queue.OrderPlacedEvent)
}

// NewOnlineOrderHandler constructs an OnlineOrderHandler.
func NewOnlineOrderHandler(orders *repository.OnlineOrderRepo) *OnlineOrderHandler {
	if orders == nil {
		panic("nil repository passed to NewOnlineOrderHandler")
	}
	return &OnlineOrderHandler{
		Orders: orders,
		publish: func(c echo.Context, ev queue.OrderPlacedEvent) {
			_ = service.PublishOrderPlaced(c.Request().Context(), ev)
		},
	}
}

type createOnlineOrderReq struct {
	FirstName    string         `json:"first_name"`
	LastName     string         `json:"last_name"`
	Phone        string         `json:"phone"`
	Location     string         `json:"location"`
	DeliveryType string         `json:"delivery_type"`
	Items        []orderItemReq `json:"items"`
}

// List handles GET /api/online_orders, newest first.
func (h *OnlineOrderHandler) List(c echo.Context) error {
	orders, err := h.Orders.List(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, orders)
}

// Items handles GET /api/online_orders/:id/items.
func (h *OnlineOrderHandler) Items(c echo.Context) error {
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

// ListItems handles GET /api/online_order_items, every line across all
// online orders.
func (h *OnlineOrderHandler) ListItems(c echo.Context) error {
	items, err := h.Orders.ListItems(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, items)
}

// Create handles POST /api/online_orders. One transaction inserts the
// order and bulk-inserts its items; the total is derived from the
// submitted price snapshots at the online tax rate. delivery_type falls
// back to "delivery" when omitted.
func (h *OnlineOrderHandler) Create(c echo.Context) error {
	var req createOnlineOrderReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid request body"})
	}
	if req.FirstName == "" || req.LastName == "" || req.Phone == "" || req.Location == "" || len(req.Items) == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "first_name, last_name, phone, location and at least one item are required"})
	}

	lines, items, bad := buildOnlineItems(req.Items)
	if bad {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "each item needs menu_item_id and quantity greater than 0"})
	}
	totals := pricing.Calculate(lines, pricing.OnlineRate)

	deliveryType := req.DeliveryType
	if deliveryType == "" {
		deliveryType = model.DeliveryTypeDefault
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

	order := model.OnlineOrder{
		FirstName:     req.FirstName,
		LastName:      req.LastName,
		Phone:         req.Phone,
		Location:      req.Location,
		Status:        model.OnlineOrderStatusPending,
		TotalAmount:   totals.Total,
		TaxAmount:     totals.Tax,
		PaymentStatus: model.PaymentStatusUnpaid,
		DeliveryType:  deliveryType,
	}
	if err := h.Orders.CreateTx(ctx, tx, &order); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "failed to create online order"})
	}
	if err := h.Orders.CreateItemsBulkTx(ctx, tx, order.ID, items); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "failed to create order items"})
	}
	if err := tx.Commit(); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "failed to commit order"})
	}
	committed = true

	h.publish(c, queue.OrderPlacedEvent{
		OrderID:      order.ID,
		Channel:      queue.ChannelOnline,
		CustomerName: order.FirstName + " " + order.LastName,
		DeliveryType: deliveryType,
		ItemCount:    len(items),
		Subtotal:     totals.Subtotal.StringFixed(2),
		Tax:          totals.Tax.StringFixed(2),
		TotalAmount:  totals.Total.StringFixed(2),
		PlacedAt:     time.Now().UTC().Format(time.RFC3339),
	})

	return c.JSON(http.StatusCreated, echo.Map{
		"id":             order.ID,
		"subtotal":       totals.Subtotal,
		"tax":            totals.Tax,
		"total_amount":   totals.Total,
		"status":         order.Status,
		"payment_status": order.PaymentStatus,
		"delivery_type":  order.DeliveryType,
	})
}

type replaceItemsReq struct {
	Items []orderItemReq `json:"items"`
}

// ReplaceItems handles PUT /api/online_orders/:id/items. The old lines
// are deleted and the new ones inserted, then the parent totals are
// recomputed; all three steps share one transaction, so an unknown order
// id undoes the rewrite.
func (h *OnlineOrderHandler) ReplaceItems(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid order id"})
	}
	var req replaceItemsReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid request body"})
	}
	if len(req.Items) == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "items array (non-empty) is required"})
	}
	lines, items, bad := buildOnlineItems(req.Items)
	if bad {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "each item needs menu_item_id and quantity greater than 0"})
	}
	totals := pricing.Calculate(lines, pricing.OnlineRate)

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

	if err := h.Orders.DeleteItemsTx(ctx, tx, id); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "failed to replace items"})
	}
	if err := h.Orders.CreateItemsBulkTx(ctx, tx, id, items); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "failed to replace items"})
	}
	if err := h.Orders.UpdateTotalsTx(ctx, tx, id, totals.Total, totals.Tax); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "Online order not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "failed to update totals"})
	}
	if err := tx.Commit(); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "failed to commit update"})
	}
	committed = true

	return c.JSON(http.StatusOK, echo.Map{
		"id":           id,
		"subtotal":     totals.Subtotal,
		"tax":          totals.Tax,
		"total_amount": totals.Total,
	})
}

type updateOnlineOrderReq struct {
	Status        *string `json:"status"`
	PaymentStatus *string `json:"payment_status"`
}

// UpdateStatus handles PUT /api/online_orders/:id, a partial update of
// status and/or payment_status. Empty strings count as absent.
func (h *OnlineOrderHandler) UpdateStatus(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid order id"})
	}
	var req updateOnlineOrderReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid request body"})
	}
	if req.Status != nil && *req.Status == "" {
		req.Status = nil
	}
	if req.PaymentStatus != nil && *req.PaymentStatus == "" {
		req.PaymentStatus = nil
	}
	if req.Status == nil && req.PaymentStatus == nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Provide status and/or payment_status to update"})
	}

	if err := h.Orders.UpdateStatusFields(c.Request().Context(), id, req.Status, req.PaymentStatus); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "Online order not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "failed to update online order"})
	}

	resp := echo.Map{"id": id}
	if req.Status != nil {
		resp["status"] = *req.Status
	}
	if req.PaymentStatus != nil {
		resp["payment_status"] = *req.PaymentStatus
	}
	return c.JSON(http.StatusOK, resp)
}

// Delete handles DELETE /api/online_orders/:id. Items are removed before
// the parent in the same transaction; an unknown id surfaces on the
// parent delete and rolls back the item removal.
func (h *OnlineOrderHandler) Delete(c echo.Context) error {
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

	if err := h.Orders.DeleteItemsTx(ctx, tx, id); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "failed to delete order items"})
	}
	if err := h.Orders.DeleteTx(ctx, tx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "Online order not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "failed to delete online order"})
	}
	if err := tx.Commit(); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "failed to commit delete"})
	}
	committed = true

	return c.JSON(http.StatusOK, echo.Map{"message": "Online order deleted", "id": id})
}

// buildOnlineItems converts request lines into pricing input and storage
// records. bad is true when any line is missing its menu item or has a
// zero quantity.
func buildOnlineItems(reqItems []orderItemReq) ([]pricing.LineItem, []model.OnlineOrderItem, bool) {
	lines := make([]pricing.LineItem, 0, len(reqItems))
	items := make([]model.OnlineOrderItem, 0, len(reqItems))
	for _, it := range reqItems {
		if it.MenuItemID == 0 || it.Quantity == 0 {
			return nil, nil, true
		}
		lines = append(lines, pricing.LineItem{Price: it.Price, Quantity: it.Quantity})
		items = append(items, model.OnlineOrderItem{
			MenuItemID: it.MenuItemID,
			Quantity:   it.Quantity,
			Price:      it.Price,
		})
	}
	return lines, items, false
}
