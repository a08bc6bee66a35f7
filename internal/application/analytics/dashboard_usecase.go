// Package analytics contiene los indicadores del tablero de entregas.
package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/agrilconnect-api/internal/application/checkout"
	"github.com/jhoicas/agrilconnect-api/internal/application/dto"
	"github.com/jhoicas/agrilconnect-api/internal/application/session"
	"github.com/jhoicas/agrilconnect-api/internal/application/usecase"
	"github.com/jhoicas/agrilconnect-api/internal/domain/entity"
	"github.com/jhoicas/agrilconnect-api/internal/domain/rbac"
	"github.com/jhoicas/agrilconnect-api/internal/domain/repository"
)

// DeliverySummaryUseCase contadores del día para el panel de entregas.
//
// Fuente de datos: OrderRepository (consultas read-only).
type DeliverySummaryUseCase struct {
	orders repository.OrderRepository
	loc    *time.Location
	now    func() time.Time
}

// NewDeliverySummaryUseCase construye el caso de uso. loc es la zona horaria de la tienda.
func NewDeliverySummaryUseCase(orders repository.OrderRepository, loc *time.Location, now func() time.Time) *DeliverySummaryUseCase {
	if loc == nil {
		loc = time.UTC
	}
	if now == nil {
		now = time.Now
	}
	return &DeliverySummaryUseCase{orders: orders, loc: loc, now: now}
}

// GetSummary para el día date (YYYY-MM-DD; vacío = hoy).
//
// Tres consultas en paralelo:
//  1. confirmados con entrega en el día  → Scheduled
//  2. en preparación con entrega en el día → InProgress
//  3. marcados entregados en el día      → Delivered
func (uc *DeliverySummaryUseCase) GetSummary(ctx context.Context, s session.Session, date string) (*dto.DeliverySummaryResponse, error) {
	if err := s.Permissions().Authorize(rbac.ActionRead, rbac.ResourceOrders); err != nil {
		return nil, err
	}
	now := uc.now()
	day, err := usecase.ParseDay(date, uc.loc, now)
	if err != nil {
		return nil, err
	}

	// ── Rangos de fecha ────────────────────────────────────────────────────────
	from, to := checkout.DayBounds(day, uc.loc)

	// ── Goroutines para paralelizar las consultas ──────────────────────────────
	type countResult struct {
		n   int
		err error
	}
	scheduledCh := make(chan countResult, 1)
	inProgressCh := make(chan countResult, 1)
	deliveredCh := make(chan countResult, 1)

	go func() {
		list, err := uc.orders.ListByDeliveryWindow(ctx, entity.OrderStatusConfirmed, from, to)
		scheduledCh <- countResult{len(list), err}
	}()
	go func() {
		list, err := uc.orders.ListByDeliveryWindow(ctx, entity.OrderStatusProcessing, from, to)
		inProgressCh <- countResult{len(list), err}
	}()
	go func() {
		n, err := uc.orders.CountByStatusBetween(ctx, entity.OrderStatusDelivered, from, to)
		deliveredCh <- countResult{n, err}
	}()

	scheduled := <-scheduledCh
	inProgress := <-inProgressCh
	delivered := <-deliveredCh

	if scheduled.err != nil {
		return nil, fmt.Errorf("entregas: programadas: %w", scheduled.err)
	}
	if inProgress.err != nil {
		return nil, fmt.Errorf("entregas: en preparación: %w", inProgress.err)
	}
	if delivered.err != nil {
		return nil, fmt.Errorf("entregas: entregadas: %w", delivered.err)
	}

	return &dto.DeliverySummaryResponse{
		Date:       day.Format("2006-01-02"),
		Scheduled:  scheduled.n,
		InProgress: inProgress.n,
		Delivered:  delivered.n,
	}, nil
}
