package redis

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

// ThrottleConfig límites del freno de login.
type ThrottleConfig struct {
	IPLimit      int           // intentos por IP dentro de Window
	Window       time.Duration // ventana de conteo por IP
	FailLimit    int           // fallos consecutivos por identificador antes de bloquear
	LockDuration time.Duration
}

// DefaultThrottleConfig 10 intentos/min por IP; 5 fallos bloquean el identificador 15 min.
var DefaultThrottleConfig = ThrottleConfig{
	IPLimit:      10,
	Window:       time.Minute,
	FailLimit:    5,
	LockDuration: 15 * time.Minute,
}

// LoginThrottle cuenta intentos de login por IP y fallos por identificador (email o nombre de negocio).
type LoginThrottle struct {
	rdb redis.Cmdable
	cfg ThrottleConfig
}

// NewLoginThrottle construye el freno con la configuración dada.
func NewLoginThrottle(rdb redis.Cmdable, cfg ThrottleConfig) *LoginThrottle {
	return &LoginThrottle{rdb: rdb, cfg: cfg}
}

// Allow registra un intento y devuelve false si la IP superó el límite o el identificador está bloqueado.
func (l *LoginThrottle) Allow(ctx context.Context, ip, identifier string) (bool, error) {
	if id := normalize(identifier); id != "" {
		locked, err := l.rdb.Exists(ctx, "login:lock:"+id).Result()
		if err != nil {
			return false, fmt.Errorf("check login lock: %w", err)
		}
		if locked > 0 {
			return false, nil
		}
	}
	n, err := l.incr(ctx, "login:rate:ip:"+ip, l.cfg.Window)
	if err != nil {
		return false, err
	}
	return n <= int64(l.cfg.IPLimit), nil
}

// RecordFailure suma un fallo; al llegar a FailLimit bloquea el identificador por LockDuration.
func (l *LoginThrottle) RecordFailure(ctx context.Context, identifier string) error {
	id := normalize(identifier)
	if id == "" {
		return nil
	}
	n, err := l.incr(ctx, "login:fail:"+id, l.cfg.LockDuration)
	if err != nil {
		return err
	}
	if n >= int64(l.cfg.FailLimit) {
		if err := l.rdb.Set(ctx, "login:lock:"+id, "1", l.cfg.LockDuration).Err(); err != nil {
			return fmt.Errorf("set login lock: %w", err)
		}
	}
	return nil
}

// Reset limpia los fallos tras un login correcto.
func (l *LoginThrottle) Reset(ctx context.Context, identifier string) error {
	id := normalize(identifier)
	if id == "" {
		return nil
	}
	if err := l.rdb.Del(ctx, "login:fail:"+id).Err(); err != nil {
		return fmt.Errorf("reset login failures: %w", err)
	}
	return nil
}

// incr suma 1 y fija el TTL en la misma transacción; EXPIRE NX no renueva una ventana abierta
// y una clave nunca queda sin expiración.
func (l *LoginThrottle) incr(ctx context.Context, key string, ttl time.Duration) (int64, error) {
	var (
		n      *redis.IntCmd
		expire *redis.BoolCmd
	)
	_, err := l.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		n = pipe.Incr(ctx, key)
		expire = pipe.ExpireNX(ctx, key, ttl)
		return nil
	})
	if err == nil {
		err = errors.Join(n.Err(), expire.Err())
	}
	if err != nil {
		return 0, fmt.Errorf("incr %s: %w", key, err)
	}
	return n.Val(), nil
}

func normalize(identifier string) string {
	return strings.ToLower(strings.TrimSpace(identifier))
}
