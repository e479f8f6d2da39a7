package salarycomponent

import (
	"context"
	"database/sql"
	"errors"
	"time"

	salarycomponenterrors "go-payroll/internal/salarycomponent/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Service interface {
	Create(ctx context.Context, req CreateComponentRequest) (ComponentResponse, error)
	GetAll(ctx context.Context) ([]ComponentResponse, error)
	GetByID(ctx context.Context, id string) (ComponentResponse, error)
	Update(ctx context.Context, id string, req UpdateComponentRequest) (ComponentResponse, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	db     *sql.DB
	repo   Repository
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("salarycomponent.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("salarycomponent.service")
	}
	return &service{db: db, repo: repo, logger: l}
}

func (s *service) Create(ctx context.Context, req CreateComponentRequest) (ComponentResponse, error) {
	if !ValidType(req.Type) {
		return ComponentResponse{}, salarycomponenterrors.ErrInvalidComponentType
	}

	component := &SalaryComponent{
		ID:          uuid.New(),
		Name:        req.Name,
		Type:        req.Type,
		Description: req.Description,
	}

	if err := s.repo.Create(ctx, component); err != nil {
		return ComponentResponse{}, err
	}

	return mapToResponse(*component), nil
}

func (s *service) GetAll(ctx context.Context) ([]ComponentResponse, error) {
	components, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	resp := make([]ComponentResponse, len(components))
	for i, c := range components {
		resp[i] = mapToResponse(c)
	}
	return resp, nil
}

func (s *service) GetByID(ctx context.Context, id string) (ComponentResponse, error) {
	component, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ComponentResponse{}, salarycomponenterrors.ErrComponentNotFound
		}
		return ComponentResponse{}, err
	}
	return mapToResponse(*component), nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateComponentRequest) (ComponentResponse, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return ComponentResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	component, err := qtx.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ComponentResponse{}, salarycomponenterrors.ErrComponentNotFound
		}
		return ComponentResponse{}, err
	}

	if req.Name != "" {
		component.Name = req.Name
	}
	if req.Type != "" {
		if !ValidType(req.Type) {
			return ComponentResponse{}, salarycomponenterrors.ErrInvalidComponentType
		}
		component.Type = req.Type
	}
	if req.Description.IsSet() {
		if req.Description.IsNull() {
			component.Description = nil
		} else if v, ok := req.Description.Value(); ok {
			component.Description = &v
		}
	}

	if err := qtx.Update(ctx, component); err != nil {
		return ComponentResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		return ComponentResponse{}, err
	}

	return mapToResponse(*component), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	component, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return salarycomponenterrors.ErrComponentNotFound
		}
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info("salary component deleted",
		zap.String("component_id", id),
		zap.String("type", component.Type),
	)
	return nil
}

func mapToResponse(component SalaryComponent) ComponentResponse {
	return ComponentResponse{
		ID:          component.ID.String(),
		Name:        component.Name,
		Type:        component.Type,
		Description: component.Description,
		CreatedAt:   component.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   component.UpdatedAt.Format(time.RFC3339),
	}
}
