package httpserver

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/healthbridge/backend/internal/service"
	"github.com/healthbridge/backend/internal/session"
	"github.com/healthbridge/backend/internal/transport"
	"github.com/healthbridge/backend/pkg/logging"
)

type OrderHTTP struct {
	Svc    *service.OrderService
	Minter *session.Minter
}

func (h *OrderHTTP) Checkout(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "order.checkout")

	var req transport.CheckoutRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("checkout_error", "status", 400, "error", err)
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if !h.Minter.Verify(req.SessionID) {
		l.Warn("checkout_error", "status", 401)
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid session id"})
	}

	order, err := h.Svc.Checkout(ctx, req.SessionID, req.CustomerName, req.Phone, req.Address)
	if err != nil {
		var oos *service.OutOfStockError
		switch {
		case errors.Is(err, service.ErrValidation):
			l.Warn("checkout_error", "status", 400, "error", err)
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		case errors.Is(err, service.ErrEmptyCart):
			l.Warn("checkout_error", "status", 400, "error", err)
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "cart is empty"})
		case errors.As(err, &oos):
			l.Warn("checkout_error", "status", 409, "medicine_id", oos.MedicineID)
			return c.JSON(http.StatusConflict, echo.Map{
				"error":       "insufficient stock",
				"medicine_id": oos.MedicineID,
			})
		default:
			l.Error("checkout_error", "status", 500, "error", err)
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "internal error"})
		}
	}

	l.Info("order_created", "order_id", order.ID, "total_price", order.TotalPrice)
	return c.JSON(http.StatusCreated, order)
}

func (h *OrderHTTP) OrdersByPhone(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "order.by_phone")

	orders, err := h.Svc.OrdersByPhone(ctx, c.Param("phone"))
	if err != nil {
		if errors.Is(err, service.ErrValidation) {
			l.Warn("orders_by_phone_error", "status", 400, "error", err)
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		l.Error("orders_by_phone_error", "status", 500, "error", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "internal error"})
	}

	return c.JSON(http.StatusOK, orders)
}
