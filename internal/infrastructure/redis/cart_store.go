package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/jhoicas/agrilconnect-api/internal/domain"
	"github.com/jhoicas/agrilconnect-api/internal/domain/cart"
	"github.com/jhoicas/agrilconnect-api/internal/domain/repository"
)

var _ repository.CartStore = (*CartStore)(nil)

const (
	cartKeyPrefix = "cart:"
	// Reintentos de Update cuando otra escritura toca la clave entre WATCH y EXEC.
	cartUpdateRetries = 5
)

// CartStore guarda cada carrito como JSON bajo cart:<user_id>. Cada escritura renueva el TTL.
type CartStore struct {
	rdb redis.UniversalClient
	ttl time.Duration
}

type stringGetter interface {
	Get(ctx context.Context, key string) *redis.StringCmd
}

// NewCartStore ttl <= 0 deja las claves sin expiración.
func NewCartStore(rdb redis.UniversalClient, ttl time.Duration) *CartStore {
	return &CartStore{rdb: rdb, ttl: ttl}
}

func cartKey(userID string) string { return cartKeyPrefix + userID }

// Load devuelve un carrito vacío si la clave no existe o expiró.
func (s *CartStore) Load(ctx context.Context, userID string) (*cart.Cart, error) {
	return s.load(ctx, s.rdb, userID)
}

func (s *CartStore) load(ctx context.Context, rdb stringGetter, userID string) (*cart.Cart, error) {
	raw, err := rdb.Get(ctx, cartKey(userID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return cart.New(userID), nil
		}
		return nil, fmt.Errorf("load cart: %w", err)
	}
	c := cart.New(userID)
	if err := json.Unmarshal(raw, c); err != nil {
		return nil, fmt.Errorf("decode cart: %w", err)
	}
	c.UserID = userID
	if c.Lines == nil {
		c.Lines = []cart.Line{}
	}
	return c, nil
}

// Save un carrito vacío borra la clave.
func (s *CartStore) Save(ctx context.Context, c *cart.Cart) error {
	return s.write(ctx, s.rdb, c)
}

// Update lee, modifica con fn y escribe el carrito bajo WATCH: si otra petición cambió
// la clave entretanto, EXEC se descarta y se vuelve a leer. Los errores de fn se devuelven tal cual.
func (s *CartStore) Update(ctx context.Context, userID string, fn func(*cart.Cart) error) (*cart.Cart, error) {
	key := cartKey(userID)
	var out *cart.Cart
	txf := func(tx *redis.Tx) error {
		c, err := s.load(ctx, tx, userID)
		if err != nil {
			return err
		}
		if err := fn(c); err != nil {
			return err
		}
		if _, err := tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			return s.write(ctx, pipe, c)
		}); err != nil {
			return err
		}
		out = c
		return nil
	}

	for i := 0; i < cartUpdateRetries; i++ {
		err := s.rdb.Watch(ctx, txf, key)
		if err == nil {
			return out, nil
		}
		if !errors.Is(err, redis.TxFailedErr) {
			return nil, err
		}
	}
	return nil, fmt.Errorf("update cart %s: %w", userID, domain.ErrConflict)
}

// write encola SET o DEL sobre rdb; dentro de un pipeline los errores llegan en EXEC.
func (s *CartStore) write(ctx context.Context, rdb redis.Cmdable, c *cart.Cart) error {
	if c.IsEmpty() {
		if err := rdb.Del(ctx, cartKey(c.UserID)).Err(); err != nil {
			return fmt.Errorf("delete cart: %w", err)
		}
		return nil
	}
	raw, err := json.Marshal(c)
	if err != nil {
		return fmt.Errorf("encode cart: %w", err)
	}
	if err := rdb.Set(ctx, cartKey(c.UserID), raw, s.ttl).Err(); err != nil {
		return fmt.Errorf("save cart: %w", err)
	}
	return nil
}

func (s *CartStore) Delete(ctx context.Context, userID string) error {
	if err := s.rdb.Del(ctx, cartKey(userID)).Err(); err != nil {
		return fmt.Errorf("delete cart: %w", err)
	}
	return nil
}
