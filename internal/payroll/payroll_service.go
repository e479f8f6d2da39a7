package payroll

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"go-payroll/internal/events"
	"go-payroll/internal/messaging/kafka"
	payrollerrors "go-payroll/internal/payroll/errors"
	"go-payroll/internal/shared/contextutil"
	"go-payroll/internal/shared/patch"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Service interface {
	CreateRecord(ctx context.Context, req CreateRecordRequest) (RecordResponse, error)
	UpdateRecord(ctx context.Context, id string, req UpdateRecordRequest) (RecordResponse, error)
	ProcessPeriod(ctx context.Context, periodID string) ([]RecordResponse, error)
	GetAll(ctx context.Context, periodID string) ([]RecordResponse, error)
	GetWithDetails(ctx context.Context, id string) (RecordWithDetailsResponse, error)
	GetEmployeeHistory(ctx context.Context, employeeID string) ([]RecordResponse, error)
}

type service struct {
	db     *sql.DB
	repo   Repository
	outbox kafka.OutboxRepository
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, logger ...*zap.Logger) Service {
	return NewServiceWithOutbox(db, repo, nil, logger...)
}

func NewServiceWithOutbox(
	db *sql.DB,
	repo Repository,
	outboxRepo kafka.OutboxRepository,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("payroll.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("payroll.service")
	}
	return &service{db: db, repo: repo, outbox: outboxRepo, logger: l}
}

func (s *service) CreateRecord(ctx context.Context, req CreateRecordRequest) (RecordResponse, error) {
	if err := validateAdjustments(req.OvertimeHours, req.OvertimeAmount, req.BonusAmount); err != nil {
		return RecordResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return RecordResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	record, err := s.buildRecord(ctx, qtx, req)
	if err != nil {
		return RecordResponse{}, err
	}

	if err := s.persistRecord(ctx, tx, qtx, record); err != nil {
		return RecordResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		return RecordResponse{}, err
	}

	s.logger.Info("payroll record created",
		zap.String("request_id", contextutil.GetRequestID(ctx)),
		zap.String("record_id", record.ID.String()),
		zap.String("employee_id", record.EmployeeID.String()),
		zap.String("period_id", record.PayrollPeriodID.String()),
		zap.String("net_salary", record.NetSalary.String()),
	)

	return mapRecordToResponse(*record), nil
}

// buildRecord memvalidasi karyawan + periode lalu menyusun record dari
// snapshot assignment. Harus dipanggil di dalam transaksi supaya
// pemeriksaan duplikat dan insert berjalan atomik.
func (s *service) buildRecord(ctx context.Context, qtx Repository, req CreateRecordRequest) (*PayrollRecord, error) {
	exists, err := qtx.EmployeeExists(ctx, req.EmployeeID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, payrollerrors.ErrEmployeeNotFound
	}

	period, err := qtx.FindPeriodByID(ctx, req.PayrollPeriodID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, payrollerrors.ErrPeriodNotFound
		}
		return nil, err
	}
	if period.IsClosed {
		return nil, payrollerrors.ErrPeriodClosed
	}

	duplicate, err := qtx.HasRecord(ctx, req.EmployeeID, req.PayrollPeriodID)
	if err != nil {
		return nil, err
	}
	if duplicate {
		return nil, payrollerrors.ErrDuplicateRecord
	}

	components, err := qtx.FindEmployeeComponents(ctx, req.EmployeeID)
	if err != nil {
		return nil, err
	}

	breakdown := AggregateComponents(components)

	record := &PayrollRecord{
		ID:              uuid.New(),
		EmployeeID:      uuid.MustParse(req.EmployeeID),
		PayrollPeriodID: uuid.MustParse(req.PayrollPeriodID),
		BaseSalary:      breakdown.BaseSalary,
		TotalAllowances: breakdown.TotalAllowances,
		TotalDeductions: breakdown.TotalDeductions,
		OvertimeHours:   toNullDecimal(req.OvertimeHours),
		OvertimeAmount:  toNullDecimal(req.OvertimeAmount),
		BonusAmount:     toNullDecimal(req.BonusAmount),
		AttendanceDays:  req.AttendanceDays,
	}
	computeTotals(record)

	record.Details = make([]PayrollDetail, len(breakdown.Components))
	for i, c := range breakdown.Components {
		record.Details[i] = PayrollDetail{
			ID:                uuid.New(),
			PayrollRecordID:   record.ID,
			SalaryComponentID: c.SalaryComponentID,
			Amount:            c.Amount,
		}
	}

	return record, nil
}

func (s *service) persistRecord(ctx context.Context, tx *sql.Tx, qtx Repository, record *PayrollRecord) error {
	if err := qtx.CreateRecord(ctx, record); err != nil {
		return mapRepositoryError(err)
	}

	if err := qtx.CreateDetails(ctx, record.Details); err != nil {
		return err
	}

	if s.outbox != nil {
		if err := s.queueCreatedEvent(ctx, tx, record); err != nil {
			return err
		}
	}

	return nil
}

// UpdateRecord mengubah penyesuaian variabel dan menghitung ulang
// gross/net. Snapshot base/allowances/deductions tidak pernah disentuh.
func (s *service) UpdateRecord(ctx context.Context, id string, req UpdateRecordRequest) (RecordResponse, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return RecordResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	record, err := qtx.FindRecordByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return RecordResponse{}, payrollerrors.ErrRecordNotFound
		}
		return RecordResponse{}, err
	}

	period, err := qtx.FindPeriodByID(ctx, record.PayrollPeriodID.String())
	if err != nil {
		return RecordResponse{}, err
	}
	if period.IsClosed {
		return RecordResponse{}, payrollerrors.ErrPeriodClosed
	}

	if err := applyPatch(record, req); err != nil {
		return RecordResponse{}, err
	}
	computeTotals(record)

	if err := qtx.UpdateRecord(ctx, record); err != nil {
		return RecordResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		return RecordResponse{}, err
	}

	s.logger.Info("payroll record updated",
		zap.String("request_id", contextutil.GetRequestID(ctx)),
		zap.String("record_id", record.ID.String()),
		zap.String("net_salary", record.NetSalary.String()),
	)

	return mapRecordToResponse(*record), nil
}

// ProcessPeriod membuat record untuk semua karyawan yang belum punya
// record di periode tersebut. Tiap karyawan diproses dalam transaksinya
// sendiri: kegagalan di tengah menghentikan sisa batch tetapi record
// yang sudah commit tetap utuh, dan pemanggilan ulang hanya memproses
// karyawan yang tersisa.
func (s *service) ProcessPeriod(ctx context.Context, periodID string) ([]RecordResponse, error) {
	period, err := s.repo.FindPeriodByID(ctx, periodID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, payrollerrors.ErrPeriodNotFound
		}
		return nil, err
	}
	if period.IsClosed {
		return nil, payrollerrors.ErrPeriodClosed
	}

	eligible, err := s.repo.FindEligibleEmployees(ctx, periodID)
	if err != nil {
		return nil, err
	}

	processed := make([]RecordResponse, 0, len(eligible))
	for _, employee := range eligible {
		resp, err := s.processEmployee(ctx, employee.ID.String(), periodID)
		if err != nil {
			// Record yang dibuat sebelum kegagalan sudah commit;
			// pemanggilan ulang melanjutkan dari karyawan tersisa.
			s.logger.Error("bulk payroll aborted",
				zap.String("request_id", contextutil.GetRequestID(ctx)),
				zap.String("period_id", periodID),
				zap.String("employee_id", employee.ID.String()),
				zap.Int("processed", len(processed)),
				zap.Error(err),
			)
			return processed, err
		}
		processed = append(processed, resp)
	}

	s.logger.Info("bulk payroll processed",
		zap.String("request_id", contextutil.GetRequestID(ctx)),
		zap.String("period_id", periodID),
		zap.Int("processed", len(processed)),
	)

	return processed, nil
}

func (s *service) processEmployee(ctx context.Context, employeeID string, periodID string) (RecordResponse, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return RecordResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	// Periode divalidasi ulang per transaksi: close yang terjadi di
	// tengah batch menghentikan proses, bukan menyelinapkan record.
	record, err := s.buildRecord(ctx, qtx, CreateRecordRequest{
		EmployeeID:      employeeID,
		PayrollPeriodID: periodID,
	})
	if err != nil {
		return RecordResponse{}, err
	}

	if err := s.persistRecord(ctx, tx, qtx, record); err != nil {
		return RecordResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		return RecordResponse{}, err
	}

	return mapRecordToResponse(*record), nil
}

func (s *service) GetAll(ctx context.Context, periodID string) ([]RecordResponse, error) {
	records, err := s.repo.FindAllRecords(ctx, periodID)
	if err != nil {
		return nil, err
	}

	resp := make([]RecordResponse, len(records))
	for i, record := range records {
		resp[i] = mapRecordToResponse(record)
	}
	return resp, nil
}

func (s *service) GetWithDetails(ctx context.Context, id string) (RecordWithDetailsResponse, error) {
	record, err := s.repo.FindRecordByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return RecordWithDetailsResponse{}, payrollerrors.ErrRecordNotFound
		}
		return RecordWithDetailsResponse{}, err
	}

	employee, err := s.repo.FindEmployeeSummary(ctx, record.EmployeeID.String())
	if err != nil {
		return RecordWithDetailsResponse{}, err
	}

	period, err := s.repo.FindPeriodByID(ctx, record.PayrollPeriodID.String())
	if err != nil {
		return RecordWithDetailsResponse{}, err
	}

	details, err := s.repo.FindDetailsByRecord(ctx, record.ID.String())
	if err != nil {
		return RecordWithDetailsResponse{}, err
	}

	detailResp := make([]DetailResponse, len(details))
	for i, d := range details {
		detailResp[i] = DetailResponse{
			ID:                d.ID.String(),
			SalaryComponentID: d.SalaryComponentID.String(),
			ComponentName:     d.ComponentName,
			ComponentType:     d.ComponentType,
			Amount:            d.Amount.StringFixed(2),
		}
	}

	return RecordWithDetailsResponse{
		Record:   mapRecordToResponse(*record),
		Employee: *employee,
		Period: PeriodSummary{
			ID:          period.ID.String(),
			Year:        period.Year,
			Month:       period.Month,
			PeriodStart: period.PeriodStart.Format("2006-01-02"),
			PeriodEnd:   period.PeriodEnd.Format("2006-01-02"),
			IsClosed:    period.IsClosed,
		},
		Details: detailResp,
	}, nil
}

func (s *service) GetEmployeeHistory(ctx context.Context, employeeID string) ([]RecordResponse, error) {
	exists, err := s.repo.EmployeeExists(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, payrollerrors.ErrEmployeeNotFound
	}

	records, err := s.repo.FindRecordsByEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	resp := make([]RecordResponse, len(records))
	for i, record := range records {
		resp[i] = mapRecordToResponse(record)
	}
	return resp, nil
}

func (s *service) queueCreatedEvent(ctx context.Context, tx *sql.Tx, record *PayrollRecord) error {
	event := events.PayrollRecordCreatedEvent{
		EventType:       "payroll.record.created",
		PayrollRecordID: record.ID.String(),
		EmployeeID:      record.EmployeeID.String(),
		PayrollPeriodID: record.PayrollPeriodID.String(),
		GrossSalary:     record.GrossSalary.StringFixed(2),
		NetSalary:       record.NetSalary.StringFixed(2),
		OccurredAt:      time.Now().UTC(),
	}

	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return s.outbox.WithTx(tx).Create(ctx, kafka.OutboxEvent{
		ID:            uuid.New().String(),
		RequestID:     contextutil.GetRequestID(ctx),
		AggregateType: "payroll_record",
		AggregateID:   record.ID.String(),
		EventType:     event.EventType,
		Topic:         events.PayrollRecordCreatedTopic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	})
}

func applyPatch(record *PayrollRecord, req UpdateRecordRequest) error {
	if req.OvertimeHours.IsSet() {
		record.OvertimeHours = patchToNullDecimal(req.OvertimeHours)
	}
	if req.OvertimeAmount.IsSet() {
		record.OvertimeAmount = patchToNullDecimal(req.OvertimeAmount)
	}
	if req.BonusAmount.IsSet() {
		record.BonusAmount = patchToNullDecimal(req.BonusAmount)
	}
	if req.AttendanceDays.IsSet() {
		if days, ok := req.AttendanceDays.Value(); ok {
			record.AttendanceDays = &days
		} else {
			record.AttendanceDays = nil
		}
	}

	if record.OvertimeHours.Valid && record.OvertimeHours.Decimal.IsNegative() {
		return payrollerrors.ErrInvalidMoneyValue
	}
	if record.OvertimeAmount.Valid && record.OvertimeAmount.Decimal.IsNegative() {
		return payrollerrors.ErrInvalidMoneyValue
	}
	if record.BonusAmount.Valid && record.BonusAmount.Decimal.IsNegative() {
		return payrollerrors.ErrInvalidMoneyValue
	}
	return nil
}

func validateAdjustments(values ...*decimal.Decimal) error {
	for _, v := range values {
		if v != nil && v.IsNegative() {
			return payrollerrors.ErrInvalidMoneyValue
		}
	}
	return nil
}

func toNullDecimal(v *decimal.Decimal) decimal.NullDecimal {
	if v == nil {
		return decimal.NullDecimal{}
	}
	return decimal.NullDecimal{Decimal: *v, Valid: true}
}

func patchToNullDecimal(f patch.Field[decimal.Decimal]) decimal.NullDecimal {
	v, ok := f.Value()
	if !ok {
		return decimal.NullDecimal{}
	}
	return decimal.NullDecimal{Decimal: v, Valid: true}
}

func nullDecimalString(v decimal.NullDecimal) *string {
	if !v.Valid {
		return nil
	}
	s := v.Decimal.StringFixed(2)
	return &s
}

func mapRecordToResponse(record PayrollRecord) RecordResponse {
	return RecordResponse{
		ID:              record.ID.String(),
		EmployeeID:      record.EmployeeID.String(),
		PayrollPeriodID: record.PayrollPeriodID.String(),
		BaseSalary:      record.BaseSalary.StringFixed(2),
		TotalAllowances: record.TotalAllowances.StringFixed(2),
		TotalDeductions: record.TotalDeductions.StringFixed(2),
		OvertimeHours:   nullDecimalString(record.OvertimeHours),
		OvertimeAmount:  nullDecimalString(record.OvertimeAmount),
		BonusAmount:     nullDecimalString(record.BonusAmount),
		AttendanceDays:  record.AttendanceDays,
		GrossSalary:     record.GrossSalary.StringFixed(2),
		NetSalary:       record.NetSalary.StringFixed(2),
		CreatedAt:       record.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       record.UpdatedAt.Format(time.RFC3339),
	}
}
