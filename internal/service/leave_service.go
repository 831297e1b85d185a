package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	apperrors "leavedesk/internal/errors"
	"leavedesk/internal/model"
	"leavedesk/internal/repository"
)

// CreateLeaveInput carries the fields of a new leave request.
type CreateLeaveInput struct {
	StartDate model.DateOnly
	EndDate   model.DateOnly
	Reason    string
}

// LeaveService implements the leave request workflow.
type LeaveService interface {
	Create(ctx context.Context, userID uint, input CreateLeaveInput) (*model.LeaveRequest, error)
	List(ctx context.Context, userID uint, role model.Role) ([]model.LeaveRequest, error)
	UpdateStatus(ctx context.Context, actorRole model.Role, leaveID uint, status string) (*model.LeaveRequest, error)
}

type leaveService struct {
	leaveRepo repository.LeaveRepository
}

// NewLeaveService creates a new leave workflow service.
func NewLeaveService(leaveRepo repository.LeaveRepository) LeaveService {
	return &leaveService{leaveRepo: leaveRepo}
}

// Create validates and persists a pending leave request owned by userID.
func (s *leaveService) Create(ctx context.Context, userID uint, input CreateLeaveInput) (*model.LeaveRequest, error) {
	reason := strings.TrimSpace(input.Reason)
	if reason == "" {
		return nil, apperrors.ErrEmptyReason
	}
	if input.EndDate.Before(input.StartDate) {
		return nil, apperrors.ErrInvalidDateRange
	}

	leave := &model.LeaveRequest{
		UserID:    userID,
		StartDate: input.StartDate,
		EndDate:   input.EndDate,
		Reason:    reason,
		Status:    model.LeaveStatusPending,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.leaveRepo.Create(ctx, leave); err != nil {
		return nil, fmt.Errorf("create leave request: %w", err)
	}

	// Re-read so the response carries the owner's name.
	created, err := s.leaveRepo.FindByID(ctx, leave.ID)
	if err != nil {
		return nil, fmt.Errorf("load created leave request: %w", err)
	}
	return created, nil
}

// List returns leave requests visible to the caller, newest first. Admins see
// everything; employees only their own.
func (s *leaveService) List(ctx context.Context, userID uint, role model.Role) ([]model.LeaveRequest, error) {
	switch role {
	case model.RoleAdmin:
		return s.leaveRepo.ListAll(ctx)
	case model.RoleEmployee:
		return s.leaveRepo.ListByUser(ctx, userID)
	default:
		return s.leaveRepo.ListByUser(ctx, userID)
	}
}

// UpdateStatus decides a pending leave request. Only admins may decide, the
// decision must be approved or rejected, and an already-decided request stays
// decided.
func (s *leaveService) UpdateStatus(ctx context.Context, actorRole model.Role, leaveID uint, status string) (*model.LeaveRequest, error) {
	switch actorRole {
	case model.RoleAdmin:
	case model.RoleEmployee:
		return nil, apperrors.ErrAdminOnly
	default:
		return nil, apperrors.ErrAdminOnly
	}

	decision, ok := model.ParseDecision(status)
	if !ok {
		return nil, apperrors.ErrInvalidStatus
	}

	leave, err := s.leaveRepo.FindByID(ctx, leaveID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrLeaveNotFound
		}
		return nil, fmt.Errorf("find leave request: %w", err)
	}

	if leave.Status.Decided() {
		return nil, apperrors.ErrLeaveAlreadyDecided
	}

	if err := s.leaveRepo.UpdateStatus(ctx, leaveID, decision); err != nil {
		return nil, fmt.Errorf("update leave status: %w", err)
	}

	leave.Status = decision
	return leave, nil
}
