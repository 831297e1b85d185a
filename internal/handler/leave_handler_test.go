package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"leavedesk/internal/auth"
	apperrors "leavedesk/internal/errors"
	"leavedesk/internal/model"
	"leavedesk/internal/service"
)

type stubLeaveService struct {
	createFn       func(ctx context.Context, userID uint, input service.CreateLeaveInput) (*model.LeaveRequest, error)
	listFn         func(ctx context.Context, userID uint, role model.Role) ([]model.LeaveRequest, error)
	updateStatusFn func(ctx context.Context, actorRole model.Role, leaveID uint, status string) (*model.LeaveRequest, error)
}

func (s stubLeaveService) Create(ctx context.Context, userID uint, input service.CreateLeaveInput) (*model.LeaveRequest, error) {
	if s.createFn == nil {
		return &model.LeaveRequest{}, nil
	}
	return s.createFn(ctx, userID, input)
}

func (s stubLeaveService) List(ctx context.Context, userID uint, role model.Role) ([]model.LeaveRequest, error) {
	if s.listFn == nil {
		return nil, nil
	}
	return s.listFn(ctx, userID, role)
}

func (s stubLeaveService) UpdateStatus(ctx context.Context, actorRole model.Role, leaveID uint, status string) (*model.LeaveRequest, error) {
	if s.updateStatusFn == nil {
		return &model.LeaveRequest{}, nil
	}
	return s.updateStatusFn(ctx, actorRole, leaveID, status)
}

type testValidator struct {
	validator *validator.Validate
}

func (v *testValidator) Validate(i interface{}) error {
	return v.validator.Struct(i)
}

// newContext builds an echo context carrying the claims the JWT middleware
// would have attached.
func newContext(t *testing.T, method, path, body string, claims *auth.Claims) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = &testValidator{validator: validator.New()}

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if claims != nil {
		c.Set("user", &jwt.Token{Claims: claims, Valid: true})
	}
	return c, rec
}

func employeeClaims() *auth.Claims {
	return &auth.Claims{UserID: 3, Email: "emp@example.com", Role: model.RoleEmployee}
}

func adminClaims() *auth.Claims {
	return &auth.Claims{UserID: 1, Email: "admin@example.com", Role: model.RoleAdmin}
}

func TestLeaveHandler_Create(t *testing.T) {
	t.Run("returns 201 with created record", func(t *testing.T) {
		h := NewLeaveHandler(stubLeaveService{
			createFn: func(ctx context.Context, userID uint, input service.CreateLeaveInput) (*model.LeaveRequest, error) {
				assert.Equal(t, uint(3), userID)
				assert.Equal(t, "Vacation", input.Reason)
				return &model.LeaveRequest{ID: 1, UserID: userID, Reason: input.Reason, Status: model.LeaveStatusPending}, nil
			},
		})

		c, rec := newContext(t, http.MethodPost, "/leaves",
			`{"start_date":"2024-11-10","end_date":"2024-11-15","reason":"Vacation"}`, employeeClaims())

		err := h.Create(c)
		assert.NoError(t, err)
		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Contains(t, rec.Body.String(), `"status":"pending"`)
	})

	t.Run("returns 400 on malformed date", func(t *testing.T) {
		called := false
		h := NewLeaveHandler(stubLeaveService{
			createFn: func(ctx context.Context, userID uint, input service.CreateLeaveInput) (*model.LeaveRequest, error) {
				called = true
				return nil, nil
			},
		})

		c, _ := newContext(t, http.MethodPost, "/leaves",
			`{"start_date":"11/10/2024","end_date":"2024-11-15","reason":"Vacation"}`, employeeClaims())

		err := h.Create(c)
		httpErr, ok := err.(*echo.HTTPError)
		assert.True(t, ok)
		assert.Equal(t, http.StatusBadRequest, httpErr.Code)
		assert.False(t, called, "service must not be reached on malformed input")
	})

	t.Run("returns 400 on missing fields", func(t *testing.T) {
		h := NewLeaveHandler(stubLeaveService{})

		c, _ := newContext(t, http.MethodPost, "/leaves", `{"reason":"Vacation"}`, employeeClaims())

		err := h.Create(c)
		httpErr, ok := err.(*echo.HTTPError)
		assert.True(t, ok)
		assert.Equal(t, http.StatusBadRequest, httpErr.Code)
	})

	t.Run("maps inverted date range to 400", func(t *testing.T) {
		h := NewLeaveHandler(stubLeaveService{
			createFn: func(ctx context.Context, userID uint, input service.CreateLeaveInput) (*model.LeaveRequest, error) {
				return nil, apperrors.ErrInvalidDateRange
			},
		})

		c, _ := newContext(t, http.MethodPost, "/leaves",
			`{"start_date":"2024-11-15","end_date":"2024-11-10","reason":"Vacation"}`, employeeClaims())

		err := h.Create(c)
		httpErr, ok := err.(*echo.HTTPError)
		assert.True(t, ok)
		assert.Equal(t, http.StatusBadRequest, httpErr.Code)
	})

	t.Run("returns 401 without claims", func(t *testing.T) {
		h := NewLeaveHandler(stubLeaveService{})

		c, _ := newContext(t, http.MethodPost, "/leaves",
			`{"start_date":"2024-11-10","end_date":"2024-11-15","reason":"Vacation"}`, nil)

		err := h.Create(c)
		httpErr, ok := err.(*echo.HTTPError)
		assert.True(t, ok)
		assert.Equal(t, http.StatusUnauthorized, httpErr.Code)
	})
}

func TestLeaveHandler_List(t *testing.T) {
	h := NewLeaveHandler(stubLeaveService{
		listFn: func(ctx context.Context, userID uint, role model.Role) ([]model.LeaveRequest, error) {
			assert.Equal(t, uint(3), userID)
			assert.Equal(t, model.RoleEmployee, role)
			return []model.LeaveRequest{{ID: 1, UserID: 3}}, nil
		},
	})

	c, rec := newContext(t, http.MethodGet, "/leaves", "", employeeClaims())

	err := h.List(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp ListLeavesResponse
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Len(t, resp.LeaveRequests, 1)
}

func TestLeaveHandler_ListEmptyIsArray(t *testing.T) {
	h := NewLeaveHandler(stubLeaveService{})

	c, rec := newContext(t, http.MethodGet, "/leaves", "", employeeClaims())

	assert.NoError(t, h.List(c))
	assert.Contains(t, rec.Body.String(), `"leave_requests":[]`)
}

func TestLeaveHandler_UpdateStatus(t *testing.T) {
	t.Run("forwards admin decision", func(t *testing.T) {
		h := NewLeaveHandler(stubLeaveService{
			updateStatusFn: func(ctx context.Context, actorRole model.Role, leaveID uint, status string) (*model.LeaveRequest, error) {
				assert.Equal(t, model.RoleAdmin, actorRole)
				assert.Equal(t, uint(5), leaveID)
				assert.Equal(t, "approved", status)
				return &model.LeaveRequest{ID: 5, Status: model.LeaveStatusApproved}, nil
			},
		})

		c, rec := newContext(t, http.MethodPatch, "/leaves/5/status", `{"status":"approved"}`, adminClaims())
		c.SetParamNames("id")
		c.SetParamValues("5")

		err := h.UpdateStatus(c)
		assert.NoError(t, err)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"status":"approved"`)
	})

	t.Run("maps non-admin to 403", func(t *testing.T) {
		h := NewLeaveHandler(stubLeaveService{
			updateStatusFn: func(ctx context.Context, actorRole model.Role, leaveID uint, status string) (*model.LeaveRequest, error) {
				return nil, apperrors.ErrAdminOnly
			},
		})

		c, _ := newContext(t, http.MethodPatch, "/leaves/5/status", `{"status":"approved"}`, employeeClaims())
		c.SetParamNames("id")
		c.SetParamValues("5")

		err := h.UpdateStatus(c)
		httpErr, ok := err.(*echo.HTTPError)
		assert.True(t, ok)
		assert.Equal(t, http.StatusForbidden, httpErr.Code)
	})

	t.Run("maps missing record to 404", func(t *testing.T) {
		h := NewLeaveHandler(stubLeaveService{
			updateStatusFn: func(ctx context.Context, actorRole model.Role, leaveID uint, status string) (*model.LeaveRequest, error) {
				return nil, apperrors.ErrLeaveNotFound
			},
		})

		c, _ := newContext(t, http.MethodPatch, "/leaves/99/status", `{"status":"approved"}`, adminClaims())
		c.SetParamNames("id")
		c.SetParamValues("99")

		err := h.UpdateStatus(c)
		httpErr, ok := err.(*echo.HTTPError)
		assert.True(t, ok)
		assert.Equal(t, http.StatusNotFound, httpErr.Code)
	})

	t.Run("non-admin refused before body validation", func(t *testing.T) {
		called := false
		h := NewLeaveHandler(stubLeaveService{
			updateStatusFn: func(ctx context.Context, actorRole model.Role, leaveID uint, status string) (*model.LeaveRequest, error) {
				called = true
				return nil, apperrors.ErrAdminOnly
			},
		})

		// Missing status would normally be a 400, but the role check wins.
		c, _ := newContext(t, http.MethodPatch, "/leaves/5/status", `{}`, employeeClaims())
		c.SetParamNames("id")
		c.SetParamValues("5")

		err := h.UpdateStatus(c)
		httpErr, ok := err.(*echo.HTTPError)
		assert.True(t, ok)
		assert.Equal(t, http.StatusForbidden, httpErr.Code)
		assert.False(t, called, "service must not be reached for non-admin callers")
	})

	t.Run("non-admin refused before id parsing", func(t *testing.T) {
		h := NewLeaveHandler(stubLeaveService{})

		c, _ := newContext(t, http.MethodPatch, "/leaves/abc/status", `{"status":"approved"}`, employeeClaims())
		c.SetParamNames("id")
		c.SetParamValues("abc")

		err := h.UpdateStatus(c)
		httpErr, ok := err.(*echo.HTTPError)
		assert.True(t, ok)
		assert.Equal(t, http.StatusForbidden, httpErr.Code)
	})

	t.Run("rejects non-numeric id", func(t *testing.T) {
		h := NewLeaveHandler(stubLeaveService{})

		c, _ := newContext(t, http.MethodPatch, "/leaves/abc/status", `{"status":"approved"}`, adminClaims())
		c.SetParamNames("id")
		c.SetParamValues("abc")

		err := h.UpdateStatus(c)
		httpErr, ok := err.(*echo.HTTPError)
		assert.True(t, ok)
		assert.Equal(t, http.StatusBadRequest, httpErr.Code)
	})
}
