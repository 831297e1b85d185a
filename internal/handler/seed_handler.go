package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"leavedesk/internal/errors"
	"leavedesk/internal/model"
	"leavedesk/internal/seed"
	"leavedesk/internal/service"
)

// SeedHandler exposes a development endpoint that loads demo data.
type SeedHandler struct {
	authService  service.AuthService
	leaveService service.LeaveService
}

// NewSeedHandler creates a new seed handler.
func NewSeedHandler(authService service.AuthService, leaveService service.LeaveService) *SeedHandler {
	return &SeedHandler{authService: authService, leaveService: leaveService}
}

// SeedDemoResponse reports what the seed created.
type SeedDemoResponse struct {
	Message string `json:"message"`
	Users   int    `json:"users"`
	Leaves  int    `json:"leaves"`
}

// SeedDemo godoc
// @Summary Load demo employees and sample leave requests
// @Tags seed
// @Produce json
// @Success 200 {object} SeedDemoResponse
// @Failure 500 {object} map[string]string
// @Router /seed/demo [get]
func (h *SeedHandler) SeedDemo(c echo.Context) error {
	ctx := c.Request().Context()

	users := 0
	leaves := 0
	for _, demo := range seed.DemoEmployees() {
		user, err := h.authService.Register(ctx, demo.Name, demo.Email, demo.Password, model.RoleEmployee)
		if err == errors.ErrEmailTaken {
			continue // already seeded
		}
		if err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, map[string]string{
				"error": "failed to seed users",
			})
		}
		users++

		for _, req := range demo.Leaves {
			if _, err := h.leaveService.Create(ctx, user.ID, req); err != nil {
				return echo.NewHTTPError(http.StatusInternalServerError, map[string]string{
					"error": "failed to seed leave requests",
				})
			}
			leaves++
		}
	}

	return c.JSON(http.StatusOK, SeedDemoResponse{
		Message: "demo data seeded successfully",
		Users:   users,
		Leaves:  leaves,
	})
}
