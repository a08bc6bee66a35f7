package checkout

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
)

// ExpireStalePayments cancela los pedidos en línea que siguen pending después de maxAge
// (el cliente cerró la ventana de pago o la pasarela nunca respondió).
func (uc *CheckoutUseCase) ExpireStalePayments(ctx context.Context, maxAge time.Duration) (int, error) {
	if maxAge <= 0 {
		return 0, nil
	}
	cutoff := uc.cfg.Now().Add(-maxAge)
	n, err := uc.orders.CancelStalePending(ctx, cutoff)
	if err != nil {
		return 0, fmt.Errorf("expirar pagos: %w", err)
	}
	if n > 0 {
		uc.log.Info().Int("cancelled", n).Time("cutoff", cutoff).Msg("pedidos con pago vencido cancelados")
	}
	return n, nil
}

// ScheduleExpiry registra ExpireStalePayments en un cron con la expresión de 5 campos dada.
// El llamador hace Start/Stop.
func (uc *CheckoutUseCase) ScheduleExpiry(ctx context.Context, expr string, maxAge time.Duration) (*cron.Cron, error) {
	parser := cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow)
	schedule, err := parser.Parse(expr)
	if err != nil {
		return nil, fmt.Errorf("expresión cron %q: %w", expr, err)
	}
	c := cron.New(cron.WithParser(parser))
	c.Schedule(schedule, cron.FuncJob(func() {
		if ctx.Err() != nil {
			return
		}
		jobCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
		defer cancel()
		if _, err := uc.ExpireStalePayments(jobCtx, maxAge); err != nil {
			uc.log.Error().Err(err).Msg("barrido de pagos pendientes")
		}
	}))
	return c, nil
}
