package report

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	reporterrors "go-payroll/internal/report/errors"

	"github.com/go-redis/redismock/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

type fakeRepo struct {
	summarizeFn    func(ctx context.Context, year, month int, department string) ([]DepartmentRollup, error)
	periodExistsFn func(ctx context.Context, year, month int) (bool, error)
	summarizeCalls int
}

func (f *fakeRepo) SummarizeByDepartment(ctx context.Context, year, month int, department string) ([]DepartmentRollup, error) {
	f.summarizeCalls++
	return f.summarizeFn(ctx, year, month, department)
}

func (f *fakeRepo) PeriodExists(ctx context.Context, year, month int) (bool, error) {
	return f.periodExistsFn(ctx, year, month)
}

func amount(v int64) decimal.Decimal {
	return decimal.NewFromInt(v)
}

func sampleRollups() []DepartmentRollup {
	return []DepartmentRollup{
		{
			Department:      "Engineering",
			EmployeeCount:   2,
			TotalBaseSalary: amount(10000000),
			TotalAllowances: amount(2000000),
			TotalDeductions: amount(1000000),
			TotalOvertime:   amount(0),
			TotalBonus:      amount(0),
			TotalGross:      amount(12000000),
			TotalNet:        amount(11000000),
		},
		{
			Department:      "Finance",
			EmployeeCount:   1,
			TotalBaseSalary: amount(6000000),
			TotalAllowances: amount(500000),
			TotalDeductions: amount(300000),
			TotalOvertime:   amount(0),
			TotalBonus:      amount(0),
			TotalGross:      amount(6500000),
			TotalNet:        amount(6200000),
		},
	}
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		summarizeFn: func(ctx context.Context, year, month int, department string) ([]DepartmentRollup, error) {
			return sampleRollups(), nil
		},
		periodExistsFn: func(ctx context.Context, year, month int) (bool, error) { return true, nil },
	}
}

func TestService_Summarize(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo, nil)

	resp, err := svc.Summarize(context.Background(), SummaryRequest{Year: 2024, Month: 1})

	assert.NoError(t, err)
	assert.Len(t, resp.Departments, 2)
	assert.Equal(t, "Engineering", resp.Departments[0].Department)
	assert.Equal(t, "12000000.00", resp.Departments[0].TotalGross)
	assert.Equal(t, 3, resp.GrandTotal.EmployeeCount)
	assert.Equal(t, "18500000.00", resp.GrandTotal.TotalGross)
	assert.Equal(t, "17200000.00", resp.GrandTotal.TotalNet)
}

func TestService_Summarize_PeriodMissing(t *testing.T) {
	repo := newFakeRepo()
	repo.periodExistsFn = func(ctx context.Context, year, month int) (bool, error) { return false, nil }

	svc := NewService(repo, nil)

	_, err := svc.Summarize(context.Background(), SummaryRequest{Year: 2030, Month: 12})

	assert.ErrorIs(t, err, reporterrors.ErrPeriodNotFound)
}

func TestService_Summarize_CacheHit(t *testing.T) {
	rdb, mock := redismock.NewClientMock()

	cached := SummaryResponse{
		Year:  2024,
		Month: 1,
		GrandTotal: GrandTotal{
			EmployeeCount: 3,
			TotalGross:    "18500000.00",
			TotalNet:      "17200000.00",
		},
	}
	payload, _ := json.Marshal(cached)
	mock.ExpectGet("report:summary:2024:1:").SetVal(string(payload))

	repo := newFakeRepo()
	svc := NewService(repo, rdb)

	resp, err := svc.Summarize(context.Background(), SummaryRequest{Year: 2024, Month: 1})

	assert.NoError(t, err)
	assert.Equal(t, cached, resp)
	// Cache hit tidak menyentuh database
	assert.Equal(t, 0, repo.summarizeCalls)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestService_Summarize_CacheMissStoresResult(t *testing.T) {
	rdb, mock := redismock.NewClientMock()

	repo := newFakeRepo()
	svc := NewService(repo, rdb)

	// Hitung dulu response yang diharapkan untuk mencocokkan payload Set
	expected, err := svc.(*service).buildSummary(context.Background(), SummaryRequest{Year: 2024, Month: 1})
	assert.NoError(t, err)
	payload, _ := json.Marshal(expected)

	mock.ExpectGet("report:summary:2024:1:").RedisNil()
	mock.ExpectSet("report:summary:2024:1:", payload, 10*time.Minute).SetVal("OK")

	resp, err := svc.Summarize(context.Background(), SummaryRequest{Year: 2024, Month: 1})

	assert.NoError(t, err)
	assert.Equal(t, expected, resp)
	assert.NoError(t, mock.ExpectationsWereMet())
}
