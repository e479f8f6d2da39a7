package assignment

import (
	"context"
	"database/sql"
	"testing"

	assignmenterrors "go-payroll/internal/assignment/errors"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type fakeRepo struct {
	withTxFn            func(tx *sql.Tx) Repository
	createFn            func(ctx context.Context, assignment *EmployeeSalaryComponent) error
	findByIDFn          func(ctx context.Context, id string) (*EmployeeSalaryComponent, error)
	findAllByEmployeeFn func(ctx context.Context, employeeID string) ([]AssignmentWithComponent, error)
	updateFn            func(ctx context.Context, assignment *EmployeeSalaryComponent) error
	deleteFn            func(ctx context.Context, id string) error
	employeeExistsFn    func(ctx context.Context, employeeID string) (bool, error)
	componentExistsFn   func(ctx context.Context, componentID string) (bool, error)
}

func (f *fakeRepo) WithTx(tx *sql.Tx) Repository { return f.withTxFn(tx) }
func (f *fakeRepo) Create(ctx context.Context, assignment *EmployeeSalaryComponent) error {
	return f.createFn(ctx, assignment)
}
func (f *fakeRepo) FindByID(ctx context.Context, id string) (*EmployeeSalaryComponent, error) {
	return f.findByIDFn(ctx, id)
}
func (f *fakeRepo) FindAllByEmployee(ctx context.Context, employeeID string) ([]AssignmentWithComponent, error) {
	return f.findAllByEmployeeFn(ctx, employeeID)
}
func (f *fakeRepo) Update(ctx context.Context, assignment *EmployeeSalaryComponent) error {
	return f.updateFn(ctx, assignment)
}
func (f *fakeRepo) Delete(ctx context.Context, id string) error { return f.deleteFn(ctx, id) }
func (f *fakeRepo) EmployeeExists(ctx context.Context, employeeID string) (bool, error) {
	return f.employeeExistsFn(ctx, employeeID)
}
func (f *fakeRepo) ComponentExists(ctx context.Context, componentID string) (bool, error) {
	return f.componentExistsFn(ctx, componentID)
}

func newFakeRepo() *fakeRepo {
	repo := &fakeRepo{}
	repo.withTxFn = func(tx *sql.Tx) Repository { return repo }
	repo.createFn = func(ctx context.Context, assignment *EmployeeSalaryComponent) error { return nil }
	repo.updateFn = func(ctx context.Context, assignment *EmployeeSalaryComponent) error { return nil }
	repo.deleteFn = func(ctx context.Context, id string) error { return nil }
	repo.employeeExistsFn = func(ctx context.Context, employeeID string) (bool, error) { return true, nil }
	repo.componentExistsFn = func(ctx context.Context, componentID string) (bool, error) { return true, nil }
	return repo
}

func TestService_Create(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	repo := newFakeRepo()
	svc := NewService(db, repo)

	mock.ExpectBegin()
	mock.ExpectCommit()
	resp, err := svc.Create(context.Background(), CreateAssignmentRequest{
		EmployeeID:        uuid.New().String(),
		SalaryComponentID: uuid.New().String(),
		Amount:            decimal.NewFromInt(5000000),
	})

	assert.NoError(t, err)
	assert.Equal(t, "5000000.00", resp.Amount)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestService_Create_InvalidAmount(t *testing.T) {
	db, _, _ := sqlmock.New()
	defer db.Close()

	svc := NewService(db, newFakeRepo())

	for _, v := range []int64{0, -100} {
		_, err := svc.Create(context.Background(), CreateAssignmentRequest{
			EmployeeID:        uuid.New().String(),
			SalaryComponentID: uuid.New().String(),
			Amount:            decimal.NewFromInt(v),
		})
		assert.ErrorIs(t, err, assignmenterrors.ErrInvalidAmount)
	}
}

func TestService_Create_EmployeeMissing(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	repo := newFakeRepo()
	repo.employeeExistsFn = func(ctx context.Context, employeeID string) (bool, error) { return false, nil }

	svc := NewService(db, repo)

	mock.ExpectBegin()
	mock.ExpectRollback()
	_, err := svc.Create(context.Background(), CreateAssignmentRequest{
		EmployeeID:        uuid.New().String(),
		SalaryComponentID: uuid.New().String(),
		Amount:            decimal.NewFromInt(100000),
	})

	assert.ErrorIs(t, err, assignmenterrors.ErrEmployeeNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestService_Update(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	stored := &EmployeeSalaryComponent{
		ID:                uuid.New(),
		EmployeeID:        uuid.New(),
		SalaryComponentID: uuid.New(),
		Amount:            decimal.NewFromInt(5000000),
	}

	repo := newFakeRepo()
	repo.findByIDFn = func(ctx context.Context, id string) (*EmployeeSalaryComponent, error) { return stored, nil }

	svc := NewService(db, repo)

	mock.ExpectBegin()
	mock.ExpectCommit()
	resp, err := svc.Update(context.Background(), stored.ID.String(), UpdateAssignmentRequest{
		Amount: decimal.NewFromInt(5500000),
	})

	assert.NoError(t, err)
	assert.Equal(t, "5500000.00", resp.Amount)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestService_Delete_NotFound(t *testing.T) {
	db, _, _ := sqlmock.New()
	defer db.Close()

	repo := newFakeRepo()
	repo.findByIDFn = func(ctx context.Context, id string) (*EmployeeSalaryComponent, error) {
		return nil, gorm.ErrRecordNotFound
	}

	svc := NewService(db, repo)

	err := svc.Delete(context.Background(), uuid.New().String())

	assert.ErrorIs(t, err, assignmenterrors.ErrAssignmentNotFound)
}
