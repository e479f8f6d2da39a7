package report

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	reporterrors "go-payroll/internal/report/errors"
	"go-payroll/internal/shared/contextutil"

	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const summaryCacheTTL = 10 * time.Minute

type Service interface {
	Summarize(ctx context.Context, req SummaryRequest) (SummaryResponse, error)
}

type service struct {
	repo   Repository
	rdb    *redis.Client
	group  singleflight.Group
	logger *zap.Logger
}

func NewService(repo Repository, rdb *redis.Client, logger ...*zap.Logger) Service {
	l := zap.L().Named("report.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("report.service")
	}
	return &service{repo: repo, rdb: rdb, logger: l}
}

// Summarize menghitung rekap payroll per departemen untuk satu bulan.
// Hasilnya dicache di Redis; singleflight mencegah cache stampede saat
// beberapa request menghitung kunci yang sama bersamaan.
func (s *service) Summarize(ctx context.Context, req SummaryRequest) (SummaryResponse, error) {
	cacheKey := fmt.Sprintf("report:summary:%d:%d:%s", req.Year, req.Month, req.Department)

	if s.rdb != nil {
		if val, err := s.rdb.Get(ctx, cacheKey).Result(); err == nil {
			var cached SummaryResponse
			if err := json.Unmarshal([]byte(val), &cached); err == nil {
				return cached, nil
			}
		}
	}

	result, err, _ := s.group.Do(cacheKey, func() (any, error) {
		return s.buildSummary(ctx, req)
	})
	if err != nil {
		return SummaryResponse{}, err
	}

	resp := result.(SummaryResponse)

	if s.rdb != nil {
		if payload, err := json.Marshal(resp); err == nil {
			if err := s.rdb.Set(ctx, cacheKey, payload, summaryCacheTTL).Err(); err != nil {
				// Cache gagal bukan alasan menolak request
				s.logger.Warn("report cache write failed",
					zap.String("request_id", contextutil.GetRequestID(ctx)),
					zap.String("cache_key", cacheKey),
					zap.Error(err),
				)
			}
		}
	}

	return resp, nil
}

func (s *service) buildSummary(ctx context.Context, req SummaryRequest) (SummaryResponse, error) {
	exists, err := s.repo.PeriodExists(ctx, req.Year, req.Month)
	if err != nil {
		return SummaryResponse{}, err
	}
	if !exists {
		return SummaryResponse{}, reporterrors.ErrPeriodNotFound
	}

	rollups, err := s.repo.SummarizeByDepartment(ctx, req.Year, req.Month, req.Department)
	if err != nil {
		return SummaryResponse{}, err
	}

	resp := SummaryResponse{
		Year:        req.Year,
		Month:       req.Month,
		Departments: make([]DepartmentSummary, len(rollups)),
	}

	totalGross := decimal.Zero
	totalNet := decimal.Zero
	totalEmployees := 0

	for i, r := range rollups {
		resp.Departments[i] = DepartmentSummary{
			Department:      r.Department,
			EmployeeCount:   r.EmployeeCount,
			TotalBaseSalary: r.TotalBaseSalary.StringFixed(2),
			TotalAllowances: r.TotalAllowances.StringFixed(2),
			TotalDeductions: r.TotalDeductions.StringFixed(2),
			TotalOvertime:   r.TotalOvertime.StringFixed(2),
			TotalBonus:      r.TotalBonus.StringFixed(2),
			TotalGross:      r.TotalGross.StringFixed(2),
			TotalNet:        r.TotalNet.StringFixed(2),
		}
		totalGross = totalGross.Add(r.TotalGross)
		totalNet = totalNet.Add(r.TotalNet)
		totalEmployees += r.EmployeeCount
	}

	resp.GrandTotal = GrandTotal{
		EmployeeCount: totalEmployees,
		TotalGross:    totalGross.StringFixed(2),
		TotalNet:      totalNet.StringFixed(2),
	}

	return resp, nil
}
