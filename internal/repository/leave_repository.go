package repository

import (
	"context"

	"gorm.io/gorm"

	"leavedesk/internal/model"
)

// LeaveRepository defines leave request persistence operations.
type LeaveRepository interface {
	Create(ctx context.Context, leave *model.LeaveRequest) error
	FindByID(ctx context.Context, id uint) (*model.LeaveRequest, error)
	ListAll(ctx context.Context) ([]model.LeaveRequest, error)
	ListByUser(ctx context.Context, userID uint) ([]model.LeaveRequest, error)
	UpdateStatus(ctx context.Context, id uint, status model.LeaveStatus) error
}

type leaveRepository struct {
	db *gorm.DB
}

// NewLeaveRepository builds a GORM-backed leave repository.
func NewLeaveRepository(db *gorm.DB) LeaveRepository {
	return &leaveRepository{db: db}
}

// withOwnerName selects leave rows with the owner's name joined in, so
// serialization never depends on association loading.
func (r *leaveRepository) withOwnerName(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Model(&model.LeaveRequest{}).
		Select("leave_requests.*, users.name AS user_name").
		Joins("JOIN users ON users.id = leave_requests.user_id")
}

func (r *leaveRepository) Create(ctx context.Context, leave *model.LeaveRequest) error {
	return r.db.WithContext(ctx).Create(leave).Error
}

func (r *leaveRepository) FindByID(ctx context.Context, id uint) (*model.LeaveRequest, error) {
	var leave model.LeaveRequest
	if err := r.withOwnerName(ctx).Where("leave_requests.id = ?", id).First(&leave).Error; err != nil {
		return nil, err
	}
	return &leave, nil
}

func (r *leaveRepository) ListAll(ctx context.Context) ([]model.LeaveRequest, error) {
	var leaves []model.LeaveRequest
	if err := r.withOwnerName(ctx).
		Order("leave_requests.created_at DESC").
		Find(&leaves).Error; err != nil {
		return nil, err
	}
	return leaves, nil
}

func (r *leaveRepository) ListByUser(ctx context.Context, userID uint) ([]model.LeaveRequest, error) {
	var leaves []model.LeaveRequest
	if err := r.withOwnerName(ctx).
		Where("leave_requests.user_id = ?", userID).
		Order("leave_requests.created_at DESC").
		Find(&leaves).Error; err != nil {
		return nil, err
	}
	return leaves, nil
}

func (r *leaveRepository) UpdateStatus(ctx context.Context, id uint, status model.LeaveStatus) error {
	return r.db.WithContext(ctx).
		Model(&model.LeaveRequest{}).
		Where("id = ?", id).
		Update("status", status).Error
}
