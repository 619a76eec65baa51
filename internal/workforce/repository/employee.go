package repository

import (
	"context"

	"github.com/fixpoint/fixpoint-backend/internal/workforce/domain"
	"github.com/fixpoint/fixpoint-backend/pkg/database"
)

// EmployeeRepository reads employee profiles maintained by the host
// application.
type EmployeeRepository struct {
	db *database.DB
}

// NewEmployeeRepository creates a new employee repository
func NewEmployeeRepository(db *database.DB) *EmployeeRepository {
	return &EmployeeRepository{db: db}
}

// ListActive returns all active employee profiles
func (r *EmployeeRepository) ListActive(ctx context.Context) ([]domain.EmployeeProfile, error) {
	query := `
		SELECT id, full_name, role, hourly_rate, is_active, created_at
		FROM employees
		WHERE is_active = TRUE
		ORDER BY full_name ASC
	`

	var employees []domain.EmployeeProfile
	if err := r.db.SelectContext(ctx, &employees, query); err != nil {
		return nil, err
	}
	return employees, nil
}
