package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"kd_cleaning/internal/domain/entities"
	"kd_cleaning/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrInvalidWorkerID    = errors.New("invalid worker id")
	ErrWorkerNotFound     = errors.New("worker not found")
	ErrWorkerNameRequired = errors.New("worker name is required")
	ErrNegativeRate       = errors.New("rates must not be negative")
)

type IWorkerUseCase interface {
	Create(ctx context.Context, userID string, w entities.Worker) (entities.Worker, error)
	Update(ctx context.Context, userID string, w entities.Worker) (entities.Worker, error)
	GetByID(ctx context.Context, id string) (entities.Worker, error)
	ListByUserID(ctx context.Context, userID string) ([]entities.Worker, error)
	Delete(ctx context.Context, id string) error
}

type WorkerUseCase struct {
	repo interfaces.IWorkerRepository
}

var _ IWorkerUseCase = (*WorkerUseCase)(nil)

func NewWorkerUseCase(repo interfaces.IWorkerRepository) *WorkerUseCase {
	return &WorkerUseCase{repo: repo}
}

func (u *WorkerUseCase) Create(ctx context.Context, userID string, w entities.Worker) (entities.Worker, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return entities.Worker{}, ErrInvalidUserID
	}
	if err := validateWorkerInput(w); err != nil {
		return entities.Worker{}, err
	}

	now := time.Now().UTC()
	w.ID = uuid.NewString()
	w.UserID = userID
	w.Name = strings.TrimSpace(w.Name)
	w.CreatedAt = now
	w.UpdatedAt = now
	return u.repo.Create(ctx, w)
}

func (u *WorkerUseCase) Update(ctx context.Context, userID string, w entities.Worker) (entities.Worker, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return entities.Worker{}, ErrInvalidUserID
	}
	if strings.TrimSpace(w.ID) == "" {
		return entities.Worker{}, ErrInvalidWorkerID
	}
	if err := validateWorkerInput(w); err != nil {
		return entities.Worker{}, err
	}

	stored, err := u.repo.GetByID(ctx, w.ID)
	if err != nil {
		return entities.Worker{}, err
	}
	if stored.ID == "" {
		return entities.Worker{}, ErrWorkerNotFound
	}

	w.UserID = stored.UserID
	w.Name = strings.TrimSpace(w.Name)
	w.CreatedAt = stored.CreatedAt
	w.UpdatedAt = time.Now().UTC()
	return u.repo.Update(ctx, w)
}

func (u *WorkerUseCase) GetByID(ctx context.Context, id string) (entities.Worker, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Worker{}, ErrInvalidWorkerID
	}
	w, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Worker{}, err
	}
	if w.ID == "" {
		return entities.Worker{}, ErrWorkerNotFound
	}
	return w, nil
}

func (u *WorkerUseCase) ListByUserID(ctx context.Context, userID string) ([]entities.Worker, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, ErrInvalidUserID
	}
	return u.repo.ListByUserID(ctx, userID)
}

func (u *WorkerUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidWorkerID
	}
	return u.repo.Delete(ctx, id)
}

func validateWorkerInput(w entities.Worker) error {
	if strings.TrimSpace(w.Name) == "" {
		return ErrWorkerNameRequired
	}
	if w.HourlyRate.IsNegative() {
		return ErrNegativeRate
	}
	for _, rate := range w.UnitRates {
		if rate.IsNegative() {
			return ErrNegativeRate
		}
	}
	for _, byType := range w.CrossRates {
		for _, rate := range byType {
			if rate.IsNegative() {
				return ErrNegativeRate
			}
		}
	}
	return nil
}
