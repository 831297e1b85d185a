package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"leavedesk/internal/errors"
	"leavedesk/internal/model"
	"leavedesk/internal/service"
)

// LeaveHandler handles leave request endpoints.
type LeaveHandler struct {
	leaveService service.LeaveService
}

// NewLeaveHandler creates a new leave handler.
func NewLeaveHandler(leaveService service.LeaveService) *LeaveHandler {
	return &LeaveHandler{leaveService: leaveService}
}

// CreateLeaveRequest represents a leave submission.
type CreateLeaveRequest struct {
	StartDate string `json:"start_date" validate:"required"`
	EndDate   string `json:"end_date" validate:"required"`
	Reason    string `json:"reason" validate:"required"`
}

// UpdateStatusRequest represents an admin decision on a leave request.
type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// ListLeavesResponse wraps the leave request listing.
type ListLeavesResponse struct {
	LeaveRequests []model.LeaveRequest `json:"leave_requests"`
}

// Create godoc
// @Summary Submit a leave request
// @Tags leaves
// @Accept json
// @Produce json
// @Param request body CreateLeaveRequest true "Leave request"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /leaves [post]
func (h *LeaveHandler) Create(c echo.Context) error {
	claims, err := currentClaims(c)
	if err != nil {
		return err
	}

	var req CreateLeaveRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	startDate, err := model.ParseDateOnly(req.StartDate)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid date format, expected YYYY-MM-DD",
			Code:  "INVALID_DATE",
		})
	}
	endDate, err := model.ParseDateOnly(req.EndDate)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid date format, expected YYYY-MM-DD",
			Code:  "INVALID_DATE",
		})
	}

	leave, err := h.leaveService.Create(c.Request().Context(), claims.UserID, service.CreateLeaveInput{
		StartDate: startDate,
		EndDate:   endDate,
		Reason:    req.Reason,
	})
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusCreated, map[string]interface{}{
		"message":       "leave request created successfully",
		"leave_request": leave,
	})
}

// List godoc
// @Summary List leave requests visible to the caller
// @Tags leaves
// @Produce json
// @Success 200 {object} ListLeavesResponse
// @Failure 401 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /leaves [get]
func (h *LeaveHandler) List(c echo.Context) error {
	claims, err := currentClaims(c)
	if err != nil {
		return err
	}

	leaves, err := h.leaveService.List(c.Request().Context(), claims.UserID, claims.Role)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	if leaves == nil {
		leaves = []model.LeaveRequest{}
	}
	return c.JSON(http.StatusOK, ListLeavesResponse{LeaveRequests: leaves})
}

// UpdateStatus godoc
// @Summary Approve or reject a leave request
// @Tags leaves
// @Accept json
// @Produce json
// @Param id path int true "Leave request ID"
// @Param request body UpdateStatusRequest true "Decision"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /leaves/{id}/status [patch]
func (h *LeaveHandler) UpdateStatus(c echo.Context) error {
	claims, err := currentClaims(c)
	if err != nil {
		return err
	}

	// Authorization comes before payload handling: a non-admin is refused
	// no matter how malformed the id or body is.
	if !claims.Role.IsAdmin() {
		httpErr := errors.MapErrorToHTTP(errors.ErrAdminOnly)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	var req UpdateStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	leave, err := h.leaveService.UpdateStatus(c.Request().Context(), claims.Role, uint(id), req.Status)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message":       "leave request " + string(leave.Status) + " successfully",
		"leave_request": leave,
	})
}
