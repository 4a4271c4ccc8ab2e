package httpserver

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/healthbridge/backend/internal/transport"
)

func TestNewSessionHandler(t *testing.T) {
	env := newTestEnv(t)

	rec, c := env.doJSONRequest(http.MethodPost, "/api/cart/session", nil)
	require.NoError(t, env.Cart.NewSession(c))
	requireStatus(t, rec, http.StatusCreated)

	resp := decodeBody[map[string]string](t, rec)
	require.True(t, env.Minter.Verify(resp["session_id"]))
}

func TestGetCartHandler(t *testing.T) {
	env := newTestEnv(t)
	sessionID := env.mintSession()

	rec, c := env.doJSONRequest(http.MethodGet, "/api/cart/"+sessionID, nil)
	c.SetParamNames("sessionID")
	c.SetParamValues(sessionID)
	require.NoError(t, env.Cart.GetCart(c))
	requireStatus(t, rec, http.StatusOK)

	view := decodeBody[transport.CartView](t, rec)
	require.Equal(t, sessionID, view.SessionID)
	require.Empty(t, view.Items)
}

func TestGetCartHandlerForgedSession(t *testing.T) {
	env := newTestEnv(t)

	forged := "11111111-1111-1111-1111-111111111111.deadbeef"
	rec, c := env.doJSONRequest(http.MethodGet, "/api/cart/"+forged, nil)
	c.SetParamNames("sessionID")
	c.SetParamValues(forged)
	require.NoError(t, env.Cart.GetCart(c))
	requireStatus(t, rec, http.StatusUnauthorized)
}

func TestAddToCartHandler(t *testing.T) {
	env := newTestEnv(t)
	sessionID := env.mintSession()
	med := env.createMedicine("Paracetamol 500mg", 5990, 120)

	rec, c := env.doJSONRequest(http.MethodPost, "/api/cart/add", transport.AddToCartRequest{
		SessionID:  sessionID,
		MedicineID: med.ID,
		Quantity:   2,
	})
	require.NoError(t, env.Cart.AddToCart(c))
	requireStatus(t, rec, http.StatusOK)

	view := decodeBody[transport.CartView](t, rec)
	require.Len(t, view.Items, 1)
	require.Equal(t, uint(2), view.Items[0].Quantity)
	require.Equal(t, int64(11980), view.TotalPrice)
}

func TestAddToCartHandlerUnknownMedicine(t *testing.T) {
	env := newTestEnv(t)
	sessionID := env.mintSession()

	rec, c := env.doJSONRequest(http.MethodPost, "/api/cart/add", transport.AddToCartRequest{
		SessionID:  sessionID,
		MedicineID: 999,
		Quantity:   1,
	})
	require.NoError(t, env.Cart.AddToCart(c))
	requireStatus(t, rec, http.StatusNotFound)
}

func TestAddToCartHandlerZeroQuantity(t *testing.T) {
	env := newTestEnv(t)
	sessionID := env.mintSession()
	med := env.createMedicine("Paracetamol 500mg", 5990, 120)

	rec, c := env.doJSONRequest(http.MethodPost, "/api/cart/add", transport.AddToCartRequest{
		SessionID:  sessionID,
		MedicineID: med.ID,
		Quantity:   0,
	})
	require.NoError(t, env.Cart.AddToCart(c))
	requireStatus(t, rec, http.StatusBadRequest)
}

func TestUpdateCartItemHandler(t *testing.T) {
	env := newTestEnv(t)
	sessionID := env.mintSession()
	med := env.createMedicine("Paracetamol 500mg", 5990, 120)

	_, addC := env.doJSONRequest(http.MethodPost, "/api/cart/add", transport.AddToCartRequest{
		SessionID: sessionID, MedicineID: med.ID, Quantity: 1,
	})
	require.NoError(t, env.Cart.AddToCart(addC))

	rec, c := env.doJSONRequest(http.MethodPut, "/api/cart/update/1?quantity=5", nil)
	c.SetParamNames("itemID")
	c.SetParamValues("1")
	require.NoError(t, env.Cart.UpdateItem(c))
	requireStatus(t, rec, http.StatusOK)

	view := decodeBody[transport.CartView](t, rec)
	require.Equal(t, uint(5), view.Items[0].Quantity)
}

func TestRemoveCartItemHandler(t *testing.T) {
	env := newTestEnv(t)
	sessionID := env.mintSession()
	med := env.createMedicine("Paracetamol 500mg", 5990, 120)

	_, addC := env.doJSONRequest(http.MethodPost, "/api/cart/add", transport.AddToCartRequest{
		SessionID: sessionID, MedicineID: med.ID, Quantity: 1,
	})
	require.NoError(t, env.Cart.AddToCart(addC))

	rec, c := env.doJSONRequest(http.MethodDelete, "/api/cart/remove/1", nil)
	c.SetParamNames("itemID")
	c.SetParamValues("1")
	require.NoError(t, env.Cart.RemoveItem(c))
	requireStatus(t, rec, http.StatusOK)

	view := decodeBody[transport.CartView](t, rec)
	require.Empty(t, view.Items)
}

func TestClearCartHandler(t *testing.T) {
	env := newTestEnv(t)
	sessionID := env.mintSession()
	med := env.createMedicine("Paracetamol 500mg", 5990, 120)

	_, addC := env.doJSONRequest(http.MethodPost, "/api/cart/add", transport.AddToCartRequest{
		SessionID: sessionID, MedicineID: med.ID, Quantity: 3,
	})
	require.NoError(t, env.Cart.AddToCart(addC))

	rec, c := env.doJSONRequest(http.MethodDelete, fmt.Sprintf("/api/cart/clear/%s", sessionID), nil)
	c.SetParamNames("sessionID")
	c.SetParamValues(sessionID)
	require.NoError(t, env.Cart.ClearCart(c))
	requireStatus(t, rec, http.StatusOK)

	getRec, getC := env.doJSONRequest(http.MethodGet, "/api/cart/"+sessionID, nil)
	getC.SetParamNames("sessionID")
	getC.SetParamValues(sessionID)
	require.NoError(t, env.Cart.GetCart(getC))
	view := decodeBody[transport.CartView](t, getRec)
	require.Empty(t, view.Items)
}
