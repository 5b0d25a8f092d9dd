package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/jhoicas/Empleos-api/internal/application/usecase"
	"github.com/jhoicas/Empleos-api/pkg/config"
	"github.com/jhoicas/Empleos-api/pkg/logger"
)

var _ usecase.ListCache = (*Redis)(nil)

// Redis implementa el cache del listado sobre go-redis. Si Redis no está
// disponible al arrancar (o se cae después), el adaptador degrada a no-op:
// todos los Get fallan y los Set se descartan, y la API sigue sirviendo
// directo desde PostgreSQL.
type Redis struct {
	client *redis.Client
	log    *logger.Logger

	warnedUnavailable atomic.Bool
}

// NewRedis construye el adaptador y hace un ping de 2 s. Un ping fallido no es
// fatal: devuelve un adaptador en modo bypass.
func NewRedis(cfg config.RedisConfig, log *logger.Logger) *Redis {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr(),
		Password: cfg.Password,
		DB:       0,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		if log != nil {
			log.Warn().Err(err).Msg("Redis no disponible, cache en modo bypass")
		}
		_ = client.Close()
		return &Redis{client: nil, log: log}
	}

	return &Redis{client: client, log: log}
}

func (r *Redis) isUnavailable() bool {
	return r == nil || r.client == nil
}

func (r *Redis) warnUnavailableOnce(err error) {
	if r == nil || r.log == nil {
		return
	}
	if r.warnedUnavailable.CompareAndSwap(false, true) {
		r.log.Warn().Err(err).Msg("Redis no disponible, cache en modo bypass")
	}
}

// Ping verifica la conexión (para el health check).
func (r *Redis) Ping(ctx context.Context) error {
	if r.isUnavailable() {
		return errors.New("redis no disponible")
	}
	return r.client.Ping(ctx).Err()
}

// GetJSON lee y deserializa una clave. (false, nil) = miss o bypass.
func (r *Redis) GetJSON(ctx context.Context, key string, out any) (bool, error) {
	if r.isUnavailable() {
		return false, nil
	}
	b, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		r.warnUnavailableOnce(err)
		return false, err
	}
	if len(b) == 0 {
		return false, nil
	}
	if err := json.Unmarshal(b, out); err != nil {
		return false, err
	}
	return true, nil
}

// SetJSON serializa y guarda una clave con TTL.
func (r *Redis) SetJSON(ctx context.Context, key string, v any, ttl time.Duration) error {
	if r.isUnavailable() {
		return nil
	}
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("cache: serializar valor: %w", err)
	}
	if err := r.client.Set(ctx, key, b, ttl).Err(); err != nil {
		r.warnUnavailableOnce(err)
		return err
	}
	return nil
}

// Incr incrementa el contador de versión del namespace.
func (r *Redis) Incr(ctx context.Context, key string) (int64, error) {
	if r.isUnavailable() {
		return 0, nil
	}
	v, err := r.client.Incr(ctx, key).Result()
	if err != nil {
		r.warnUnavailableOnce(err)
		return 0, err
	}
	return v, nil
}

// Get devuelve el valor crudo de una clave ("" si no existe).
func (r *Redis) Get(ctx context.Context, key string) (string, error) {
	if r.isUnavailable() {
		return "", nil
	}
	v, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", nil
		}
		r.warnUnavailableOnce(err)
		return "", err
	}
	return v, nil
}

// Close cierra la conexión al servidor.
func (r *Redis) Close() error {
	if r.isUnavailable() {
		return nil
	}
	return r.client.Close()
}
