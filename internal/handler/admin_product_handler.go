package handler

import (
	"errors"
	"net/http"
	"strconv"

	"barkmart/internal/config"
	"barkmart/internal/middleware"
	"barkmart/internal/pagination"
	"barkmart/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// /admin/productsのHTTP
type AdminProductHandler struct {
	uc *usecase.AdminProductUsecase
}

// DI
func NewAdminProductHandler(uc *usecase.AdminProductUsecase) *AdminProductHandler {
	return &AdminProductHandler{uc: uc}
}

// /admin/products を登録（ADMINのみ）
func (h *AdminProductHandler) RegisterRoutes(e *echo.Echo, cfg config.Config) {
	g := e.Group("/admin/products")
	g.Use(middleware.AuthJWT(cfg))
	g.Use(middleware.AdminRoleGuard())

	g.GET("", h.list)
	g.GET("/:id", h.detail)
	g.POST("", h.create)
	g.PUT("/:id", h.update)
	g.DELETE("/:id", h.remove)
}

func (h *AdminProductHandler) list(c echo.Context) error {
	out, err := h.uc.List(c.Request().Context(), pagination.ParsePage(c.QueryParam("page")))
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}

func (h *AdminProductHandler) detail(c echo.Context) error {
	productID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	out, err := h.uc.Get(c.Request().Context(), productID)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}

func (h *AdminProductHandler) create(c echo.Context) error {
	in, err := bindProductForm(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	}

	out, err := h.uc.Create(c.Request().Context(), in)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusCreated, out)
}

func (h *AdminProductHandler) update(c echo.Context) error {
	productID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	in, err := bindProductForm(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	}

	out, err := h.uc.Update(c.Request().Context(), productID, in)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}

func (h *AdminProductHandler) remove(c echo.Context) error {
	productID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	if err := h.uc.Delete(c.Request().Context(), productID); err != nil {
		return writeError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// multipart/form-dataから商品入力を組み立てる。
// 画像は任意（imageフィールド）
func bindProductForm(c echo.Context) (usecase.AdminProductInput, error) {
	categoryID, err := strconv.ParseInt(c.FormValue("category_id"), 10, 64)
	if err != nil {
		return usecase.AdminProductInput{}, errors.New("invalid category_id")
	}

	price, err := decimal.NewFromString(c.FormValue("price"))
	if err != nil {
		return usecase.AdminProductInput{}, errors.New("invalid price")
	}

	stock, err := strconv.ParseInt(c.FormValue("stock_quantity"), 10, 64)
	if err != nil {
		return usecase.AdminProductInput{}, errors.New("invalid stock_quantity")
	}

	isActive := c.FormValue("is_active") != "false"

	in := usecase.AdminProductInput{
		CategoryID:    categoryID,
		Name:          c.FormValue("name"),
		Description:   c.FormValue("description"),
		Price:         price,
		StockQuantity: stock,
		IsActive:      isActive,
	}

	// 画像が付いていれば読み込み用のReaderを渡す
	fh, err := c.FormFile("image")
	if err == nil && fh != nil {
		f, err := fh.Open()
		if err != nil {
			return usecase.AdminProductInput{}, errors.New("invalid image")
		}
		in.Image = &usecase.ImageUpload{
			Filename: fh.Filename,
			Data:     f,
		}
	}

	return in, nil
}
