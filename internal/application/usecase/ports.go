package usecase

import (
	"context"
	"time"
)

// Nombres de los eventos emitidos al despachador externo, que programa (y
// cancela) la expiración de los avisos fuera de este proceso.
const (
	EventJobCreated          = "job/created"
	EventJobCancelExpiration = "job/cancel.expiration"
)

// EventDispatcher define el puerto de salida hacia el despachador de eventos.
// Send solo entrega el evento; la ejecución del efecto es asunto del
// despachador y nunca se espera.
type EventDispatcher interface {
	Send(ctx context.Context, name string, data map[string]any) error
}

// ListCache cache del listado público de avisos. Una implementación nil-safe
// que siempre falla el Get equivale a no tener cache.
type ListCache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, v any, ttl time.Duration) error
	// Incr incrementa el contador de versión del namespace; invalida de un
	// golpe todas las páginas cacheadas.
	Incr(ctx context.Context, key string) (int64, error)
	// Get devuelve el valor crudo de una clave ("" si no existe).
	Get(ctx context.Context, key string) (string, error)
}
