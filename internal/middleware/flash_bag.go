package middleware

import (
	"barkmart/internal/flash"

	"github.com/labstack/echo/v4"
)

// FlashBag はリクエストごとに空のBagをcontextへ載せる。
// handlerがAddしたメッセージはレスポンス組み立て時にTakeで回収する
func FlashBag() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			ctx := flash.WithBag(req.Context(), flash.NewBag())
			c.SetRequest(req.WithContext(ctx))
			return next(c)
		}
	}
}
