package handler

import (
	"net/http"

	"barkmart/internal/config"
	"barkmart/internal/flash"
	"barkmart/internal/middleware"
	"barkmart/internal/usecase"

	"github.com/labstack/echo/v4"
)

// /checkoutのHTTP
type CheckoutHandler struct {
	uc *usecase.CheckoutUsecase
}

// DI
func NewCheckoutHandler(uc *usecase.CheckoutUsecase) *CheckoutHandler {
	return &CheckoutHandler{uc: uc}
}

type NewAddressRequest struct {
	StreetAddress string `json:"street_address"`
	City          string `json:"city"`
	State         string `json:"state"`
	ZipCode       string `json:"zip_code"`
	Country       string `json:"country"`
}

type PlaceOrderRequest struct {
	AddressID     int64              `json:"address_id"`
	NewAddress    *NewAddressRequest `json:"new_address"`
	PaymentMethod string             `json:"payment_method"`
	Notes         string             `json:"notes"`
}

// /checkout を登録
func (h *CheckoutHandler) RegisterRoutes(e *echo.Echo, cfg config.Config) {
	g := e.Group("/checkout")
	g.Use(middleware.AuthJWT(cfg))

	g.POST("", h.placeOrder)
	g.GET("/success/:orderNumber", h.success)
}

func (h *CheckoutHandler) placeOrder(c echo.Context) error {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	var req PlaceOrderRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	in := usecase.PlaceOrderInput{
		AddressID:     req.AddressID,
		PaymentMethod: req.PaymentMethod,
		Notes:         req.Notes,
	}
	if req.NewAddress != nil {
		in.NewAddress = &usecase.NewAddressInput{
			StreetAddress: req.NewAddress.StreetAddress,
			City:          req.NewAddress.City,
			State:         req.NewAddress.State,
			ZipCode:       req.NewAddress.ZipCode,
			Country:       req.NewAddress.Country,
		}
	}

	out, err := h.uc.PlaceOrder(c.Request().Context(), userID, in)
	if err != nil {
		return writeError(c, err)
	}

	flash.FromContext(c.Request().Context()).Add(flash.KindSuccess, "order placed")
	return c.JSON(http.StatusCreated, withFlash(c, out))
}

func (h *CheckoutHandler) success(c echo.Context) error {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	out, err := h.uc.GetOrderByNumber(c.Request().Context(), userID, c.Param("orderNumber"))
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}
