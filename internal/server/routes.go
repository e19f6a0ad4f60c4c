package server

import (
	"barkmart/internal/config"

	"github.com/labstack/echo/v4"
)

// RegisterRoutes は各handlerのルートをまとめて登録する
func RegisterRoutes(e *echo.Echo, cfg config.Config, h Handlers) {
	//公開
	h.Product.RegisterRoutes(e)
	h.Auth.RegisterRoutes(e, cfg)

	//要ログイン
	h.Cart.RegisterRoutes(e, cfg)
	h.Checkout.RegisterRoutes(e, cfg)
	h.Order.RegisterRoutes(e, cfg)
	h.Address.RegisterRoutes(e, cfg)

	//ADMINのみ
	h.AdminDashboard.RegisterRoutes(e, cfg)
	h.AdminProduct.RegisterRoutes(e, cfg)
	h.AdminOrder.RegisterRoutes(e, cfg)
}
