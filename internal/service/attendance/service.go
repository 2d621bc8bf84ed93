package attendance

import (
	"context"
	"fmt"
	"time"

	"github.com/nimbushr/payroll-backend-go/internal/domain/attendance"
	"github.com/nimbushr/payroll-backend-go/internal/domain/employee"
)

type AttendanceServiceImpl struct {
	attendanceRepo attendance.Repository
	employeeRepo   employee.Repository
}

func NewAttendanceService(attendanceRepo attendance.Repository, employeeRepo employee.Repository) attendance.Service {
	return &AttendanceServiceImpl{
		attendanceRepo: attendanceRepo,
		employeeRepo:   employeeRepo,
	}
}

func (s *AttendanceServiceImpl) IngestEntry(ctx context.Context, entry *attendance.Entry) error {
	if _, err := s.employeeRepo.FindByID(ctx, entry.EmployeeID); err != nil {
		return fmt.Errorf("ingest attendance: %w", err)
	}

	// Punches on the wrong side of midnight are ingestion bugs, not
	// payroll inputs.
	if entry.HasCompletePunches() && entry.TimeOut.Before(*entry.TimeIn) {
		return attendance.ErrInvalidTimeSpan
	}

	return s.attendanceRepo.Create(ctx, entry)
}

func (s *AttendanceServiceImpl) EntriesForPeriod(ctx context.Context, employeeID int, start, end time.Time) ([]*attendance.Entry, error) {
	return s.attendanceRepo.EntriesForPeriod(ctx, employeeID, start, end)
}
