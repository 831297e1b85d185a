// Package seed holds the demo fixtures shared by the seed command and the
// /seed/demo endpoint.
package seed

import (
	"time"

	"leavedesk/internal/model"
	"leavedesk/internal/service"
)

// DemoEmployee is a seedable employee with optional leave requests.
type DemoEmployee struct {
	Name     string
	Email    string
	Password string
	Leaves   []service.CreateLeaveInput
}

// DemoEmployees returns the demo data set. Dates are relative to today so the
// listing always shows upcoming leave.
func DemoEmployees() []DemoEmployee {
	today := time.Now().UTC()
	in := func(days int) model.DateOnly {
		return model.NewDateOnly(today.AddDate(0, 0, days))
	}

	return []DemoEmployee{
		{
			Name:     "Alice Carter",
			Email:    "alice@example.com",
			Password: "password123",
			Leaves: []service.CreateLeaveInput{
				{StartDate: in(7), EndDate: in(11), Reason: "Family vacation"},
			},
		},
		{
			Name:     "Bob Singh",
			Email:    "bob@example.com",
			Password: "password123",
			Leaves: []service.CreateLeaveInput{
				{StartDate: in(3), EndDate: in(3), Reason: "Medical appointment"},
				{StartDate: in(21), EndDate: in(25), Reason: "Conference travel"},
			},
		},
		{
			Name:     "Carol Mensah",
			Email:    "carol@example.com",
			Password: "password123",
		},
	}
}
