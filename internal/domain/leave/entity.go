package leave

import "time"

type RequestStatus string

const (
	RequestApproved RequestStatus = "APPROVED"
	RequestPending  RequestStatus = "PENDING"
	RequestRejected RequestStatus = "REJECTED"
)

// Request is one leave row as ingested. LeaveID is not unique across
// rows; duplicates for the same (leave_id, date) are reconciled
// first-wins by the service layer.
type Request struct {
	ID         int64         `json:"id"`
	LeaveID    string        `json:"leave_id"`
	EmployeeID int           `json:"employee_id"`
	Date       time.Time     `json:"date"`
	StartTime  *time.Time    `json:"start_time"`
	EndTime    *time.Time    `json:"end_time"`
	Status     RequestStatus `json:"status"`
	CreatedAt  time.Time     `json:"created_at"`
}

// Credits tracks an employee's leave allowance in hours.
type Credits struct {
	EmployeeID  int       `json:"employee_id"`
	LastName    string    `json:"last_name"`
	FirstName   string    `json:"first_name"`
	CreditHours float64   `json:"credit_hours"`
	TakenHours  float64   `json:"taken_hours"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Remaining never reports a negative balance even when taken hours
// exceed credits.
func (c *Credits) Remaining() float64 {
	remaining := c.CreditHours - c.TakenHours
	if remaining < 0 {
		return 0
	}
	return remaining
}
