package handler

import (
	"errors"
	"net/http"

	"barkmart/internal/flash"
	"barkmart/internal/usecase"

	"github.com/labstack/echo/v4"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

// usecaseのエラー種別をHTTPステータスへ写す
func writeError(c echo.Context, err error) error {
	if err == nil {
		return nil
	}

	var (
		ve    *usecase.ValidationError
		ec    *usecase.EmptyCartError
		stock *usecase.InsufficientStockError
		nf    *usecase.NotFoundError
	)

	switch {
	case errors.Is(err, usecase.ErrUnauthorized):
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	case errors.As(err, &ve):
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: ve.Message})
	case errors.As(err, &ec):
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: ec.Error()})
	case errors.As(err, &stock):
		return c.JSON(http.StatusConflict, ErrorResponse{Error: stock.Error()})
	case errors.As(err, &nf):
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: nf.Error()})
	}

	//500
	return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
}

func getUserIDFromContext(c echo.Context) (int64, bool) {
	v := c.Get("user_id")
	if v == nil {
		return 0, false
	}

	id, ok := v.(int64)
	if !ok {
		return 0, false
	}

	return id, true
}

// 通知メッセージ付きのレスポンス。
// bagはTakeで必ず空にしてから返す
type flashEnvelope struct {
	Data     interface{}     `json:"data"`
	Messages []flash.Message `json:"messages,omitempty"`
}

func withFlash(c echo.Context, data interface{}) flashEnvelope {
	bag := flash.FromContext(c.Request().Context())
	return flashEnvelope{Data: data, Messages: bag.Take()}
}
