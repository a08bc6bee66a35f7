package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/agrilconnect-api/internal/application/auth"
	"github.com/jhoicas/agrilconnect-api/internal/application/checkout"
	"github.com/jhoicas/agrilconnect-api/internal/domain/repository"
)

var _ auth.TxRunner = (*TxRunner)(nil)
var _ checkout.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// RunSignUp crea cuenta y perfil en la misma transacción.
func (r *TxRunner) RunSignUp(ctx context.Context, fn func(
	userRepo repository.UserRepository,
	profileRepo repository.ProfileRepository,
) error) error {
	return r.run(ctx, func(q Querier) error {
		return fn(NewUserRepository(q), NewProfileRepository(q))
	})
}

// RunCheckout inserta pedido y líneas de forma atómica.
func (r *TxRunner) RunCheckout(ctx context.Context, fn func(orderRepo repository.OrderRepository) error) error {
	return r.run(ctx, func(q Querier) error {
		return fn(NewOrderRepository(q))
	})
}

// run inicia una transacción, ejecuta fn con la tx y hace Commit o Rollback.
func (r *TxRunner) run(ctx context.Context, fn func(q Querier) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(tx); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
