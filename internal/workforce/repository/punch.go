package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/fixpoint/fixpoint-backend/internal/workforce/domain"
	"github.com/fixpoint/fixpoint-backend/internal/workforce/service"
	"github.com/fixpoint/fixpoint-backend/pkg/database"
	"github.com/google/uuid"
)

// PunchRepository handles punch persistence
type PunchRepository struct {
	db *database.DB
}

// NewPunchRepository creates a new punch repository
func NewPunchRepository(db *database.DB) *PunchRepository {
	return &PunchRepository{db: db}
}

const punchColumns = `id, employee_id, employee_name, clock_in, clock_out, edited_at, created_at`

// Filter returns punches matching the filter, ordered by sort, capped at limit.
func (r *PunchRepository) Filter(ctx context.Context, filter domain.PunchFilter, sort string, limit int) ([]domain.PunchRecord, error) {
	query := `SELECT ` + punchColumns + ` FROM punches WHERE 1=1`
	args := []interface{}{}

	if filter.EmployeeID != "" {
		args = append(args, filter.EmployeeID)
		query += fmt.Sprintf(" AND employee_id = $%d", len(args))
	}
	if filter.OpenOnly {
		query += " AND clock_out IS NULL"
	}
	if filter.ClockInFrom != nil {
		args = append(args, *filter.ClockInFrom)
		query += fmt.Sprintf(" AND clock_in >= $%d", len(args))
	}
	if filter.ClockInTo != nil {
		args = append(args, *filter.ClockInTo)
		query += fmt.Sprintf(" AND clock_in < $%d", len(args))
	}

	order, err := orderClause(sort)
	if err != nil {
		return nil, err
	}
	query += order

	if limit > 0 {
		args = append(args, limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
	}

	var punches []domain.PunchRecord
	if err := r.db.SelectContext(ctx, &punches, query, args...); err != nil {
		return nil, err
	}
	return punches, nil
}

// GetByID gets a punch by ID. Returns nil without error when no row matches.
func (r *PunchRepository) GetByID(ctx context.Context, id string) (*domain.PunchRecord, error) {
	var punch domain.PunchRecord
	query := `SELECT ` + punchColumns + ` FROM punches WHERE id = $1`

	err := r.db.GetContext(ctx, &punch, query, id)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &punch, nil
}

// Create creates a new punch
func (r *PunchRepository) Create(ctx context.Context, punch *domain.PunchRecord) error {
	if punch.ID == "" {
		punch.ID = uuid.New().String()
	}

	query := `
		INSERT INTO punches (id, employee_id, employee_name, clock_in, clock_out)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at
	`
	return r.db.QueryRowxContext(ctx, query,
		punch.ID, punch.EmployeeID, punch.EmployeeName, punch.ClockIn, punch.ClockOut,
	).Scan(&punch.CreatedAt)
}

// Update applies a patch to an existing punch and returns the updated row.
func (r *PunchRepository) Update(ctx context.Context, id string, patch domain.PunchPatch) (*domain.PunchRecord, error) {
	var punch domain.PunchRecord
	query := `
		UPDATE punches
		SET clock_in = $2, clock_out = $3, edited_at = COALESCE($4, edited_at)
		WHERE id = $1
		RETURNING ` + punchColumns

	err := r.db.GetContext(ctx, &punch, query, id, patch.ClockIn, patch.ClockOut, patch.EditedAt)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("punch %s does not exist", id)
	}
	if err != nil {
		return nil, err
	}
	return &punch, nil
}

func orderClause(sort string) (string, error) {
	switch sort {
	case service.SortClockInDesc, "":
		return " ORDER BY clock_in DESC", nil
	case service.SortClockInAsc:
		return " ORDER BY clock_in ASC", nil
	default:
		return "", fmt.Errorf("unsupported sort order %q", sort)
	}
}
