package httpserver

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/healthbridge/backend/internal/service"
	"github.com/healthbridge/backend/internal/session"
	"github.com/healthbridge/backend/internal/transport"
	"github.com/healthbridge/backend/pkg/logging"
)

type CartHTTP struct {
	Svc    *service.CartService
	Minter *session.Minter
}

// NewSession mints a signed cart session id. Clients cannot fabricate
// their own, every cart endpoint checks the signature.
func (h *CartHTTP) NewSession(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "cart.session")

	id := h.Minter.Mint()
	l.Info("session_minted")
	return c.JSON(http.StatusCreated, echo.Map{"session_id": id})
}

func (h *CartHTTP) GetCart(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "cart.get")

	sessionID := c.Param("sessionID")
	if !h.Minter.Verify(sessionID) {
		l.Warn("get_cart_error", "status", 401)
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid session id"})
	}

	view, err := h.Svc.GetCart(ctx, sessionID)
	if err != nil {
		l.Error("get_cart_error", "status", 500, "error", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "internal error"})
	}
	return c.JSON(http.StatusOK, view)
}

func (h *CartHTTP) AddToCart(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "cart.add")

	var req transport.AddToCartRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("add_to_cart_error", "status", 400, "error", err)
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if !h.Minter.Verify(req.SessionID) {
		l.Warn("add_to_cart_error", "status", 401)
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid session id"})
	}

	view, err := h.Svc.AddToCart(ctx, req.SessionID, req.MedicineID, req.Quantity)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrValidation):
			l.Warn("add_to_cart_error", "status", 400, "error", err)
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		case errors.Is(err, service.ErrNotFound):
			l.Warn("add_to_cart_error", "status", 404, "error", err)
			return c.JSON(http.StatusNotFound, echo.Map{"error": "medicine not found"})
		default:
			l.Error("add_to_cart_error", "status", 500, "error", err)
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "internal error"})
		}
	}

	l.Info("item_added", "medicine_id", req.MedicineID, "quantity", req.Quantity)
	return c.JSON(http.StatusOK, view)
}

func (h *CartHTTP) UpdateItem(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "cart.update")

	itemID, err := strconv.ParseUint(c.Param("itemID"), 10, 32)
	if err != nil {
		l.Warn("update_cart_error", "status", 400, "error", err)
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid item id"})
	}
	quantity, err := strconv.Atoi(c.QueryParam("quantity"))
	if err != nil {
		l.Warn("update_cart_error", "status", 400, "error", err)
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "quantity query parameter required"})
	}

	view, err := h.Svc.UpdateItem(ctx, uint(itemID), quantity)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			l.Warn("update_cart_error", "status", 404, "error", err)
			return c.JSON(http.StatusNotFound, echo.Map{"error": "cart item not found"})
		}
		l.Error("update_cart_error", "status", 500, "error", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "internal error"})
	}

	return c.JSON(http.StatusOK, view)
}

func (h *CartHTTP) RemoveItem(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "cart.remove")

	itemID, err := strconv.ParseUint(c.Param("itemID"), 10, 32)
	if err != nil {
		l.Warn("remove_cart_error", "status", 400, "error", err)
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid item id"})
	}

	view, err := h.Svc.RemoveItem(ctx, uint(itemID))
	if err != nil {
		l.Error("remove_cart_error", "status", 500, "error", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "internal error"})
	}

	return c.JSON(http.StatusOK, view)
}

func (h *CartHTTP) ClearCart(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "cart.clear")

	sessionID := c.Param("sessionID")
	if !h.Minter.Verify(sessionID) {
		l.Warn("clear_cart_error", "status", 401)
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid session id"})
	}

	if err := h.Svc.ClearCart(ctx, sessionID); err != nil {
		l.Error("clear_cart_error", "status", 500, "error", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "internal error"})
	}

	l.Info("cart_cleared")
	return c.JSON(http.StatusOK, echo.Map{"message": "cart cleared"})
}
