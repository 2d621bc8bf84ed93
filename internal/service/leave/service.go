package leave

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/nimbushr/payroll-backend-go/internal/domain/audit"
	"github.com/nimbushr/payroll-backend-go/internal/domain/leave"
	"github.com/nimbushr/payroll-backend-go/internal/domain/period"
	auditsvc "github.com/nimbushr/payroll-backend-go/internal/service/audit"
)

const (
	lunchThresholdMinutes = 240
	lunchBreakMinutes     = 60
	maxDailyLeaveHours    = 8.0
)

type LeaveServiceImpl struct {
	leaveRepo   leave.Repository
	creditsRepo leave.CreditsRepository
	auditor     *auditsvc.Recorder
}

func NewLeaveService(
	leaveRepo leave.Repository,
	creditsRepo leave.CreditsRepository,
	auditor *auditsvc.Recorder,
) leave.Service {
	return &LeaveServiceImpl{
		leaveRepo:   leaveRepo,
		creditsRepo: creditsRepo,
		auditor:     auditor,
	}
}

func (s *LeaveServiceImpl) LeaveHoursUsed(ctx context.Context, employeeID int, p period.PayPeriod) (float64, error) {
	rows, err := s.leaveRepo.RequestsForPeriod(ctx, employeeID, p.StartDate, p.EndDate)
	if err != nil {
		return 0, fmt.Errorf("load leave requests: %w", err)
	}

	total := 0.0
	seen := make(map[string]struct{})

	for _, row := range rows {
		// Rows without a usable id cannot be deduplicated, so they are
		// dropped rather than double-counted.
		leaveID := strings.TrimSpace(row.LeaveID)
		if leaveID == "" {
			continue
		}

		// First occurrence wins; later rows with the same id are
		// ingestion duplicates.
		if _, dup := seen[leaveID]; dup {
			continue
		}
		seen[leaveID] = struct{}{}

		if isWeekend(row.Date) {
			continue
		}

		total += leaveHours(row.StartTime, row.EndTime)
	}

	return total, nil
}

func (s *LeaveServiceImpl) LeaveTakenYearToDate(ctx context.Context, employeeID int, p period.PayPeriod) (float64, error) {
	yearStart := time.Date(p.EndDate.Year(), time.January, 1, 0, 0, 0, 0, time.UTC)
	ytd, err := period.New(yearStart, p.EndDate)
	if err != nil {
		return 0, err
	}
	return s.LeaveHoursUsed(ctx, employeeID, ytd)
}

func (s *LeaveServiceImpl) RemainingCredits(ctx context.Context, employeeID int, p period.PayPeriod) (float64, error) {
	credits, err := s.creditsRepo.FindByEmployee(ctx, employeeID)
	if err != nil {
		if errors.Is(err, leave.ErrCreditsNotFound) {
			return 0, nil
		}
		return 0, fmt.Errorf("load leave credits: %w", err)
	}

	takenYtd, err := s.LeaveTakenYearToDate(ctx, employeeID, p)
	if err != nil {
		return 0, err
	}

	remaining := credits.CreditHours - takenYtd
	if remaining < 0 {
		return 0, nil
	}
	return remaining, nil
}

func (s *LeaveServiceImpl) SyncLeaveTakenYearToDate(ctx context.Context, employeeID int, p period.PayPeriod) error {
	takenYtd, err := s.LeaveTakenYearToDate(ctx, employeeID, p)
	if err != nil {
		return err
	}

	if err := s.creditsRepo.UpdateTakenHours(ctx, employeeID, takenYtd); err != nil {
		return fmt.Errorf("sync taken hours: %w", err)
	}

	s.auditor.Record(ctx, strconv.Itoa(employeeID), audit.EventLeaveCreditsSynced,
		fmt.Sprintf("employee %d through %s: %.2f hours", employeeID, p.Key(), takenYtd))
	return nil
}

// leaveHours converts a leave time span to work hours: lunch excluded
// from spans over four hours, capped at a standard workday. Missing or
// inverted times consume nothing.
func leaveHours(start, end *time.Time) float64 {
	if start == nil || end == nil {
		return 0
	}

	startMin := start.Hour()*60 + start.Minute()
	endMin := end.Hour()*60 + end.Minute()
	if endMin < startMin {
		return 0
	}

	minutes := endMin - startMin
	if minutes > lunchThresholdMinutes {
		minutes -= lunchBreakMinutes
	}

	hours := float64(minutes) / 60.0
	if hours > maxDailyLeaveHours {
		return maxDailyLeaveHours
	}
	return hours
}

func isWeekend(date time.Time) bool {
	dow := date.Weekday()
	return dow == time.Saturday || dow == time.Sunday
}
