package period

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"go-payroll/internal/events"
	"go-payroll/internal/messaging/kafka"
	perioderrors "go-payroll/internal/period/errors"
	"go-payroll/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Service interface {
	Create(ctx context.Context, req CreatePeriodRequest) (PeriodResponse, error)
	GetAll(ctx context.Context) ([]PeriodResponse, error)
	GetByID(ctx context.Context, id string) (PeriodResponse, error)
	Close(ctx context.Context, id string) (PeriodResponse, error)
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
	l := zap.L().Named("period.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("period.service")
	}
	return &service{db: db, repo: repo, outbox: outboxRepo, logger: l}
}

func (s *service) Create(ctx context.Context, req CreatePeriodRequest) (PeriodResponse, error) {
	periodStart, err := parseDate(req.PeriodStart)
	if err != nil {
		return PeriodResponse{}, err
	}
	periodEnd, err := parseDate(req.PeriodEnd)
	if err != nil {
		return PeriodResponse{}, err
	}
	if !periodStart.Before(periodEnd) {
		return PeriodResponse{}, perioderrors.ErrInvalidPeriodRange
	}

	// Check-then-insert harus satu transaksi supaya dua create yang
	// bersamaan tidak sama-sama lolos pemeriksaan overlap.
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return PeriodResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	overlap, err := qtx.HasOverlappingPeriod(ctx, periodStart, periodEnd)
	if err != nil {
		return PeriodResponse{}, err
	}
	if overlap {
		return PeriodResponse{}, perioderrors.ErrPeriodOverlap
	}

	period := &PayrollPeriod{
		ID:          uuid.New(),
		Year:        req.Year,
		Month:       req.Month,
		PeriodStart: periodStart,
		PeriodEnd:   periodEnd,
		IsClosed:    false,
	}

	if err := qtx.Create(ctx, period); err != nil {
		return PeriodResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		return PeriodResponse{}, err
	}

	s.logger.Info("payroll period created",
		zap.String("request_id", contextutil.GetRequestID(ctx)),
		zap.String("period_id", period.ID.String()),
		zap.Int("year", period.Year),
		zap.Int("month", period.Month),
	)

	return mapToResponse(*period), nil
}

func (s *service) GetAll(ctx context.Context) ([]PeriodResponse, error) {
	periods, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	resp := make([]PeriodResponse, len(periods))
	for i, p := range periods {
		resp[i] = mapToResponse(p)
	}
	return resp, nil
}

func (s *service) GetByID(ctx context.Context, id string) (PeriodResponse, error) {
	period, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return PeriodResponse{}, perioderrors.ErrPeriodNotFound
		}
		return PeriodResponse{}, err
	}
	return mapToResponse(*period), nil
}

// Close menutup periode secara permanen. Pemanggilan kedua ditolak dengan
// ErrPeriodAlreadyClosed, bukan diterima diam-diam.
func (s *service) Close(ctx context.Context, id string) (PeriodResponse, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return PeriodResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	period, err := qtx.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return PeriodResponse{}, perioderrors.ErrPeriodNotFound
		}
		return PeriodResponse{}, err
	}

	if period.IsClosed {
		return PeriodResponse{}, perioderrors.ErrPeriodAlreadyClosed
	}

	period.IsClosed = true

	if err := qtx.Update(ctx, period); err != nil {
		return PeriodResponse{}, err
	}

	if s.outbox != nil {
		if err := s.queueClosedEvent(ctx, tx, period); err != nil {
			return PeriodResponse{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		return PeriodResponse{}, err
	}

	s.logger.Info("payroll period closed",
		zap.String("request_id", contextutil.GetRequestID(ctx)),
		zap.String("period_id", period.ID.String()),
	)

	return mapToResponse(*period), nil
}

func (s *service) queueClosedEvent(ctx context.Context, tx *sql.Tx, period *PayrollPeriod) error {
	event := events.PayrollPeriodClosedEvent{
		EventType:       "payroll.period.closed",
		PayrollPeriodID: period.ID.String(),
		Year:            period.Year,
		Month:           period.Month,
		OccurredAt:      time.Now().UTC(),
	}

	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return s.outbox.WithTx(tx).Create(ctx, kafka.OutboxEvent{
		ID:            uuid.New().String(),
		RequestID:     contextutil.GetRequestID(ctx),
		AggregateType: "payroll_period",
		AggregateID:   period.ID.String(),
		EventType:     event.EventType,
		Topic:         events.PayrollPeriodClosedTopic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	})
}

func parseDate(v string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", v)
	if err != nil {
		return time.Time{}, perioderrors.ErrInvalidDateFormat
	}
	return t, nil
}

func mapToResponse(period PayrollPeriod) PeriodResponse {
	return PeriodResponse{
		ID:          period.ID.String(),
		Year:        period.Year,
		Month:       period.Month,
		PeriodStart: period.PeriodStart.Format("2006-01-02"),
		PeriodEnd:   period.PeriodEnd.Format("2006-01-02"),
		IsClosed:    period.IsClosed,
		CreatedAt:   period.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   period.UpdatedAt.Format(time.RFC3339),
	}
}
