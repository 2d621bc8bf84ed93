package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/nimbushr/payroll-backend-go/internal/domain/employee"
	"github.com/nimbushr/payroll-backend-go/internal/pkg/database"
)

type employeeRepository struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.Repository {
	return &employeeRepository{db: db}
}

func (r *employeeRepository) FindByID(ctx context.Context, employeeID int) (*employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT employee_id, last_name, first_name, basic_salary, rice_allowance,
			   phone_allowance, clothing_allowance, gross_semi_monthly_rate,
			   hourly_rate, created_at, updated_at
		FROM employees
		WHERE employee_id = $1
	`

	var e employee.Employee
	err := q.QueryRow(ctx, query, employeeID).Scan(
		&e.EmployeeID, &e.LastName, &e.FirstName, &e.BasicSalary, &e.RiceAllowance,
		&e.PhoneAllowance, &e.ClothingAllowance, &e.GrossSemiMonthlyRate,
		&e.HourlyRate, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, employee.ErrEmployeeNotFound
		}
		return nil, fmt.Errorf("failed to get employee: %w", err)
	}

	return &e, nil
}

func (r *employeeRepository) FindAll(ctx context.Context) ([]*employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT employee_id, last_name, first_name, basic_salary, rice_allowance,
			   phone_allowance, clothing_allowance, gross_semi_monthly_rate,
			   hourly_rate, created_at, updated_at
		FROM employees
		ORDER BY employee_id
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	var employees []*employee.Employee
	for rows.Next() {
		var e employee.Employee
		err := rows.Scan(
			&e.EmployeeID, &e.LastName, &e.FirstName, &e.BasicSalary, &e.RiceAllowance,
			&e.PhoneAllowance, &e.ClothingAllowance, &e.GrossSemiMonthlyRate,
			&e.HourlyRate, &e.CreatedAt, &e.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, &e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate employees: %w", err)
	}

	return employees, nil
}
