package assignment

import (
	"context"
	"database/sql"
	"errors"

	assignmenterrors "go-payroll/internal/assignment/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Service interface {
	Create(ctx context.Context, req CreateAssignmentRequest) (AssignmentResponse, error)
	GetAllByEmployee(ctx context.Context, employeeID string) ([]AssignmentResponse, error)
	Update(ctx context.Context, id string, req UpdateAssignmentRequest) (AssignmentResponse, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	db     *sql.DB
	repo   Repository
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("assignment.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("assignment.service")
	}
	return &service{db: db, repo: repo, logger: l}
}

func (s *service) Create(ctx context.Context, req CreateAssignmentRequest) (AssignmentResponse, error) {
	if !req.Amount.IsPositive() {
		return AssignmentResponse{}, assignmenterrors.ErrInvalidAmount
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return AssignmentResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	exists, err := qtx.EmployeeExists(ctx, req.EmployeeID)
	if err != nil {
		return AssignmentResponse{}, err
	}
	if !exists {
		return AssignmentResponse{}, assignmenterrors.ErrEmployeeNotFound
	}

	exists, err = qtx.ComponentExists(ctx, req.SalaryComponentID)
	if err != nil {
		return AssignmentResponse{}, err
	}
	if !exists {
		return AssignmentResponse{}, assignmenterrors.ErrComponentNotFound
	}

	assignment := &EmployeeSalaryComponent{
		ID:                uuid.New(),
		EmployeeID:        uuid.MustParse(req.EmployeeID),
		SalaryComponentID: uuid.MustParse(req.SalaryComponentID),
		Amount:            req.Amount,
	}

	if err := qtx.Create(ctx, assignment); err != nil {
		return AssignmentResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		return AssignmentResponse{}, err
	}

	return mapToResponse(*assignment), nil
}

func (s *service) GetAllByEmployee(ctx context.Context, employeeID string) ([]AssignmentResponse, error) {
	exists, err := s.repo.EmployeeExists(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, assignmenterrors.ErrEmployeeNotFound
	}

	assignments, err := s.repo.FindAllByEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	resp := make([]AssignmentResponse, len(assignments))
	for i, a := range assignments {
		resp[i] = AssignmentResponse{
			ID:                a.ID.String(),
			EmployeeID:        a.EmployeeID.String(),
			SalaryComponentID: a.SalaryComponentID.String(),
			ComponentName:     a.ComponentName,
			ComponentType:     a.ComponentType,
			Amount:            a.Amount.StringFixed(2),
		}
	}
	return resp, nil
}

// Update hanya mengubah amount. Mengubah amount tidak pernah menyentuh
// payroll_records yang sudah dihitung: histori payroll immutable.
func (s *service) Update(ctx context.Context, id string, req UpdateAssignmentRequest) (AssignmentResponse, error) {
	if !req.Amount.IsPositive() {
		return AssignmentResponse{}, assignmenterrors.ErrInvalidAmount
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return AssignmentResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	assignment, err := qtx.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return AssignmentResponse{}, assignmenterrors.ErrAssignmentNotFound
		}
		return AssignmentResponse{}, err
	}

	assignment.Amount = req.Amount

	if err := qtx.Update(ctx, assignment); err != nil {
		return AssignmentResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		return AssignmentResponse{}, err
	}

	return mapToResponse(*assignment), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	_, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return assignmenterrors.ErrAssignmentNotFound
		}
		return err
	}

	return s.repo.Delete(ctx, id)
}

func mapToResponse(assignment EmployeeSalaryComponent) AssignmentResponse {
	return AssignmentResponse{
		ID:                assignment.ID.String(),
		EmployeeID:        assignment.EmployeeID.String(),
		SalaryComponentID: assignment.SalaryComponentID.String(),
		Amount:            assignment.Amount.StringFixed(2),
	}
}
