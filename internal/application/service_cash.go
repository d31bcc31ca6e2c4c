package application

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/ledgerline/expense-service/internal/domain"
	"github.com/ledgerline/expense-service/internal/ports"
)

func (s *Service) ListCashflows(ctx context.Context, userID uuid.UUID) (CashflowListResponse, error) {
	flows, err := s.cashflows.ListByUser(ctx, userID)
	if err != nil {
		return CashflowListResponse{}, err
	}
	sum, err := s.cashflows.SumByUser(ctx, userID)
	if err != nil {
		return CashflowListResponse{}, err
	}

	rows := make([]CashflowItem, 0, len(flows))
	for _, flow := range flows {
		rows = append(rows, toCashflowItem(flow))
	}
	return CashflowListResponse{Rows: rows, Sum: sum}, nil
}

func (s *Service) GetCashflow(ctx context.Context, userID, cashflowID uuid.UUID) (CashflowItem, error) {
	flow, err := s.cashflows.GetByID(ctx, userID, cashflowID)
	if err != nil {
		return CashflowItem{}, err
	}
	return toCashflowItem(flow), nil
}

func (s *Service) AddCashflow(ctx context.Context, userID uuid.UUID, req CashflowAddRequest) (CashflowItem, error) {
	if req.Amount == 0 {
		return CashflowItem{}, fmt.Errorf("%w: amount is required", domain.ErrInvalidInput)
	}

	now := s.nowFn()
	occurredAt := now
	if req.Date != nil {
		occurredAt = req.Date.UTC()
	}

	flow, err := s.cashflows.Insert(ctx, domain.Cashflow{
		UserID:      userID,
		Amount:      req.Amount,
		Description: req.Description,
		OccurredAt:  occurredAt,
		CreatedAt:   now,
	})
	if err != nil {
		return CashflowItem{}, err
	}
	return toCashflowItem(flow), nil
}

func (s *Service) UpdateCashflow(ctx context.Context, userID uuid.UUID, req CashflowUpdateRequest) (CashflowItem, error) {
	if req.CashflowID == uuid.Nil {
		return CashflowItem{}, fmt.Errorf("%w: cashflowId is required", domain.ErrInvalidInput)
	}
	if req.Amount != nil && *req.Amount == 0 {
		return CashflowItem{}, fmt.Errorf("%w: amount must be non-zero", domain.ErrInvalidInput)
	}

	update := ports.CashflowUpdate{
		Amount:      req.Amount,
		Description: req.Description,
		OccurredAt:  req.Date,
	}
	flow, err := s.cashflows.Update(ctx, userID, req.CashflowID, update, s.nowFn())
	if err != nil {
		return CashflowItem{}, err
	}
	return toCashflowItem(flow), nil
}

func (s *Service) DeleteCashflow(ctx context.Context, userID, cashflowID uuid.UUID) error {
	if cashflowID == uuid.Nil {
		return fmt.Errorf("%w: cashflowId is required", domain.ErrInvalidInput)
	}
	return s.cashflows.Delete(ctx, userID, cashflowID)
}

func toCashflowItem(flow domain.Cashflow) CashflowItem {
	return CashflowItem{
		ID:          flow.ID,
		Amount:      flow.Amount,
		Description: flow.Description,
		Date:        flow.OccurredAt,
	}
}
