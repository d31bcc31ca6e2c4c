package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/ledgerline/expense-service/internal/domain"
	"github.com/ledgerline/expense-service/internal/ports"
	"gorm.io/gorm"
)

type cashflowRepository struct {
	db *gorm.DB
}

func (r *cashflowRepository) Insert(ctx context.Context, flow domain.Cashflow) (domain.Cashflow, error) {
	rec := cashflowModel{
		UserID:      flow.UserID,
		Value:       flow.Amount,
		Description: flow.Description,
		Time:        flow.OccurredAt,
		CreatedAt:   flow.CreatedAt,
	}
	if err := r.db.WithContext(ctx).Create(&rec).Error; err != nil {
		return domain.Cashflow{}, err
	}
	return toDomainCashflow(rec), nil
}

func (r *cashflowRepository) GetByID(ctx context.Context, userID, cashflowID uuid.UUID) (domain.Cashflow, error) {
	var rec cashflowModel
	err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", cashflowID, userID).
		Take(&rec).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Cashflow{}, domain.ErrNotFound
		}
		return domain.Cashflow{}, err
	}
	return toDomainCashflow(rec), nil
}

func (r *cashflowRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Cashflow, error) {
	var recs []cashflowModel
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("time DESC").
		Find(&recs).Error
	if err != nil {
		return nil, err
	}

	flows := make([]domain.Cashflow, 0, len(recs))
	for _, rec := range recs {
		flows = append(flows, toDomainCashflow(rec))
	}
	return flows, nil
}

func (r *cashflowRepository) SumByUser(ctx context.Context, userID uuid.UUID) (float64, error) {
	var sum *float64
	err := r.db.WithContext(ctx).
		Model(&cashflowModel{}).
		Where("user_id = ?", userID).
		Select("SUM(value)").
		Scan(&sum).Error
	if err != nil {
		return 0, err
	}
	if sum == nil {
		return 0, nil
	}
	return *sum, nil
}

func (r *cashflowRepository) Update(ctx context.Context, userID, cashflowID uuid.UUID, update ports.CashflowUpdate, updatedAt time.Time) (domain.Cashflow, error) {
	changes := map[string]any{}
	if update.Amount != nil {
		changes["value"] = *update.Amount
	}
	if update.Description != nil {
		changes["description"] = *update.Description
	}
	if update.OccurredAt != nil {
		changes["time"] = update.OccurredAt.UTC()
	}
	if len(changes) == 0 {
		return r.GetByID(ctx, userID, cashflowID)
	}

	res := r.db.WithContext(ctx).
		Model(&cashflowModel{}).
		Where("id = ? AND user_id = ?", cashflowID, userID).
		Updates(changes)
	if res.Error != nil {
		return domain.Cashflow{}, res.Error
	}
	if res.RowsAffected == 0 {
		return domain.Cashflow{}, domain.ErrNotFound
	}
	return r.GetByID(ctx, userID, cashflowID)
}

func (r *cashflowRepository) Delete(ctx context.Context, userID, cashflowID uuid.UUID) error {
	res := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", cashflowID, userID).
		Delete(&cashflowModel{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
