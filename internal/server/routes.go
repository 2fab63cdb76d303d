package server

import (
	"app/internal/handler"
	"app/internal/repository"

	"github.com/labstack/echo/v4"
)

// Deps はルート登録に必要な部品一式。
type Deps struct {
	JWTSecret string
	Users     repository.UserRepository

	Auth    *handler.AuthHandler
	Product *handler.ProductHandler
	Cart    *handler.CartHandler
	Order   *handler.OrderHandler
	Health  *handler.HealthHandler
}

func registerRoutes(e *echo.Echo, d Deps) {
	d.Auth.RegisterRoutes(e, d.JWTSecret, d.Users)
	d.Product.RegisterRoutes(e)
	d.Cart.RegisterRoutes(e, d.JWTSecret, d.Users)
	d.Order.RegisterRoutes(e, d.JWTSecret, d.Users)
	d.Health.RegisterRoutes(e)
}
