package events

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/jhoicas/Empleos-api/internal/application/usecase"
	"github.com/jhoicas/Empleos-api/pkg/config"
)

var _ usecase.EventDispatcher = (*HTTPDispatcher)(nil)

// HTTPDispatcher implementa EventDispatcher contra la API HTTP del despachador
// de eventos, que programa la expiración diferida de los avisos. Usa net/http
// de la stdlib; el protocolo es un POST JSON con la clave de envío en la URL.
type HTTPDispatcher struct {
	url        string
	httpClient *http.Client
}

// NewHTTPDispatcher construye el cliente. La URL final es
// <DispatcherURL>/e/<EventKey>, el endpoint de ingestión del despachador.
func NewHTTPDispatcher(cfg config.EventsConfig) *HTTPDispatcher {
	return &HTTPDispatcher{
		url:        strings.TrimRight(cfg.DispatcherURL, "/") + "/e/" + cfg.EventKey,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

type eventPayload struct {
	Name string         `json:"name"`
	Data map[string]any `json:"data"`
}

// Send entrega un evento al despachador. Un error aquí aborta la operación
// que lo emitió: sin el evento registrado el aviso nunca expiraría.
func (d *HTTPDispatcher) Send(ctx context.Context, name string, data map[string]any) error {
	body, err := json.Marshal(eventPayload{Name: name, Data: data})
	if err != nil {
		return fmt.Errorf("events: serializar evento %s: %w", name, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, d.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("events: crear request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := d.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return fmt.Errorf("events: timeout o cancelación: %w", ctx.Err())
		}
		return fmt.Errorf("events: llamada HTTP fallida: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		rawBody, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
		return fmt.Errorf("events: despachador respondió %d para %s: %s",
			resp.StatusCode, name, string(rawBody))
	}
	return nil
}
