package events

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Empleos-api/pkg/config"
)

func TestSend_EntregaElEvento(t *testing.T) {
	var gotPath string
	var gotBody eventPayload

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		raw, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(raw, &gotBody))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	d := NewHTTPDispatcher(config.EventsConfig{DispatcherURL: srv.URL, EventKey: "clave-123"})
	err := d.Send(context.Background(), "job/created", map[string]any{
		"jobId":          "job-1",
		"expirationDays": 30,
	})
	require.NoError(t, err)

	assert.Equal(t, "/e/clave-123", gotPath, "la clave de envío va en la URL de ingestión")
	assert.Equal(t, "job/created", gotBody.Name)
	assert.Equal(t, "job-1", gotBody.Data["jobId"])
	assert.EqualValues(t, 30, gotBody.Data["expirationDays"])
}

func TestSend_RespuestaNo2xx_RetornaError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "clave inválida", http.StatusUnauthorized)
	}))
	defer srv.Close()

	d := NewHTTPDispatcher(config.EventsConfig{DispatcherURL: srv.URL, EventKey: "clave-mala"})
	err := d.Send(context.Background(), "job/cancel.expiration", map[string]any{"jobId": "job-1"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "401")
}

func TestSend_ServidorCaido_RetornaError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // cerrado a propósito

	d := NewHTTPDispatcher(config.EventsConfig{DispatcherURL: srv.URL, EventKey: "clave"})
	err := d.Send(context.Background(), "job/created", nil)
	assert.Error(t, err)
}
