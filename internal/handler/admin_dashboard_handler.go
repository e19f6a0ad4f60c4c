package handler

import (
	"net/http"

	"barkmart/internal/config"
	"barkmart/internal/middleware"
	"barkmart/internal/pagination"
	"barkmart/internal/usecase"

	"github.com/labstack/echo/v4"
)

// /admin トップと /admin/users のHTTP
type AdminDashboardHandler struct {
	uc *usecase.AdminDashboardUsecase
}

// DI
func NewAdminDashboardHandler(uc *usecase.AdminDashboardUsecase) *AdminDashboardHandler {
	return &AdminDashboardHandler{uc: uc}
}

// /admin を登録（ADMINのみ）
func (h *AdminDashboardHandler) RegisterRoutes(e *echo.Echo, cfg config.Config) {
	g := e.Group("/admin")
	g.Use(middleware.AuthJWT(cfg))
	g.Use(middleware.AdminRoleGuard())

	g.GET("/dashboard", h.dashboard)
	g.GET("/users", h.users)
}

func (h *AdminDashboardHandler) dashboard(c echo.Context) error {
	out, err := h.uc.Dashboard(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}

func (h *AdminDashboardHandler) users(c echo.Context) error {
	out, err := h.uc.ListUsers(c.Request().Context(), pagination.ParsePage(c.QueryParam("page")))
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}
