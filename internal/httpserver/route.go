package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	authmw "github.com/healthbridge/backend/internal/middleware/auth"
)

type Deps struct {
	CartHandler     *CartHTTP
	OrderHandler    *OrderHTTP
	MedicineHandler *MedicineHTTP
	DiseaseHandler  *DiseaseHTTP
	AuthHandler     *AuthHTTP
	AdminHandler    *AdminHTTP
	JWTSecret       []byte
}

func Register(e *echo.Echo, d *Deps) {
	e.GET("/health/live", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.GET("/health/ready", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	mw := authmw.NewBearerAuth(d.JWTSecret)

	api := e.Group("/api")

	cart := api.Group("/cart")
	cart.POST("/session", d.CartHandler.NewSession)
	cart.GET("/:sessionID", d.CartHandler.GetCart)
	cart.POST("/add", d.CartHandler.AddToCart)
	cart.PUT("/update/:itemID", d.CartHandler.UpdateItem)
	cart.DELETE("/remove/:itemID", d.CartHandler.RemoveItem)
	cart.DELETE("/clear/:sessionID", d.CartHandler.ClearCart)

	api.POST("/order/checkout", d.OrderHandler.Checkout)
	api.GET("/orders/:phone", d.OrderHandler.OrdersByPhone)

	medicines := api.Group("/medicines")
	medicines.GET("", d.MedicineHandler.List)
	medicines.GET("/search", d.MedicineHandler.Search)
	medicines.GET("/category/:category", d.MedicineHandler.ByCategory)
	medicines.GET("/:id", d.MedicineHandler.Get)

	diseases := api.Group("/diseases")
	diseases.GET("", d.DiseaseHandler.List)
	diseases.GET("/search", d.DiseaseHandler.Search)
	diseases.GET("/:id", d.DiseaseHandler.Get)

	auth := api.Group("/auth")
	auth.POST("/register", d.AuthHandler.Register)
	auth.POST("/login", d.AuthHandler.Login)
	auth.GET("/me", d.AuthHandler.Me, mw.RequireAuth)

	admin := api.Group("/admin")
	admin.Use(mw.RequireAdmin)
	admin.GET("/dashboard", d.AdminHandler.Dashboard)
	admin.GET("/orders", d.AdminHandler.ListOrders)
	admin.PUT("/orders/:id", d.AdminHandler.UpdateOrderStatus)
	admin.GET("/users", d.AdminHandler.ListUsers)
	admin.GET("/medicines", d.MedicineHandler.List)
	admin.POST("/medicines", d.MedicineHandler.Create)
	admin.PUT("/medicines/:id", d.MedicineHandler.Update)
	admin.DELETE("/medicines/:id", d.MedicineHandler.Delete)
}
