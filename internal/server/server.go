package server

import (
	"barkmart/internal/config"
	"barkmart/internal/handler"
	"barkmart/internal/middleware"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// Handlers はルーティングに必要なhandler一式
type Handlers struct {
	Product        *handler.ProductHandler
	Auth           *handler.AuthHandler
	Cart           *handler.CartHandler
	Checkout       *handler.CheckoutHandler
	Order          *handler.OrderHandler
	Address        *handler.AddressHandler
	AdminDashboard *handler.AdminDashboardHandler
	AdminProduct   *handler.AdminProductHandler
	AdminOrder     *handler.AdminOrderHandler
}

// New はechoを組み立てて返す。起動はしない
func New(cfg config.Config, log *zap.Logger, h Handlers) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	e.Use(middleware.RequestLogger(log))
	e.Use(middleware.FlashBag())

	//アップロード画像の配信
	e.Static("/uploads", cfg.UploadDir)

	RegisterRoutes(e, cfg, h)

	return e
}

// Start はサーバーを起動する
func Start(e *echo.Echo, cfg config.Config) error {
	return e.Start(":" + cfg.Port)
}
