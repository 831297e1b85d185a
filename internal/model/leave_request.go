package model

import "time"

// LeaveStatus is the closed set of leave request states.
type LeaveStatus string

const (
	// LeaveStatusPending is the initial state of every request.
	LeaveStatusPending LeaveStatus = "pending"
	// LeaveStatusApproved is a terminal state set by an admin.
	LeaveStatusApproved LeaveStatus = "approved"
	// LeaveStatusRejected is a terminal state set by an admin.
	LeaveStatusRejected LeaveStatus = "rejected"
)

// ParseDecision converts input into a decision status. Only approved and
// rejected are decisions; pending is not a value an admin may set.
func ParseDecision(s string) (LeaveStatus, bool) {
	switch LeaveStatus(s) {
	case LeaveStatusApproved:
		return LeaveStatusApproved, true
	case LeaveStatusRejected:
		return LeaveStatusRejected, true
	}
	return "", false
}

// Decided reports whether the status is terminal.
func (s LeaveStatus) Decided() bool {
	return s == LeaveStatusApproved || s == LeaveStatusRejected
}

// LeaveRequest represents an employee's ask for time off over a date range.
type LeaveRequest struct {
	ID        uint        `json:"id" gorm:"primaryKey"`
	UserID    uint        `json:"user_id" gorm:"not null;index"`
	UserName  string      `json:"user_name" gorm:"->;-:migration"` // joined from users at query time
	StartDate DateOnly    `json:"start_date" gorm:"type:date;not null"`
	EndDate   DateOnly    `json:"end_date" gorm:"type:date;not null"`
	Reason    string      `json:"reason" gorm:"type:text;not null"`
	Status    LeaveStatus `json:"status" gorm:"size:20;not null;default:'pending';index"`
	CreatedAt time.Time   `json:"created_at"`
}

// TableName pins the table name used by queries that join users.
func (LeaveRequest) TableName() string {
	return "leave_requests"
}
