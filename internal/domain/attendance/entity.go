package attendance

import "time"

// Entry is one daily time record. TimeIn and TimeOut are nil when the
// employee has no punch for that side of the day.
type Entry struct {
	ID         int64      `json:"id"`
	EmployeeID int        `json:"employee_id"`
	Date       time.Time  `json:"date"`
	TimeIn     *time.Time `json:"time_in"`
	TimeOut    *time.Time `json:"time_out"`
	CreatedAt  time.Time  `json:"created_at"`
}

// HasCompletePunches reports whether the entry has both an in and an out punch.
func (e *Entry) HasCompletePunches() bool {
	return e.TimeIn != nil && e.TimeOut != nil
}
