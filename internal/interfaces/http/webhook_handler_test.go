package http_test

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Empleos-api/internal/application/billing"
	"github.com/jhoicas/Empleos-api/internal/domain/entity"
	apphttp "github.com/jhoicas/Empleos-api/internal/interfaces/http"
	"github.com/jhoicas/Empleos-api/pkg/logger"
)

const testWebhookSecret = "whsec_test_secret"

// emptyUserRepo no resuelve ningún cliente: todo evento termina irresoluble.
type emptyUserRepo struct{}

func (emptyUserRepo) Create(*entity.User) error { return nil }
func (emptyUserRepo) GetByID(string) (*entity.User, error) { return nil, nil }
func (emptyUserRepo) GetByEmail(string) (*entity.User, error) { return nil, nil }
func (emptyUserRepo) GetByPaymentCustomerID(string) (*entity.User, error) { return nil, nil }
func (emptyUserRepo) Update(*entity.User) error { return nil }
func (emptyUserRepo) SetPaymentCustomerID(string, string) error { return nil }
func (emptyUserRepo) CompleteOnboarding(string, string) error { return nil }

func buildWebhookApp() *fiber.App {
	log := logger.New(logger.Config{Env: "test", Level: "error"})
	uc := billing.NewPaymentWebhookUseCase(emptyUserRepo{}, nil, nil, nil)
	handler := apphttp.NewWebhookHandler(uc, testWebhookSecret, log)

	app := fiber.New()
	app.Post("/api/webhook/payment", handler.HandleEvent)
	return app
}

func signWebhook(timestamp string, body []byte) string {
	mac := hmac.New(sha256.New, []byte(testWebhookSecret))
	mac.Write([]byte(timestamp + "."))
	mac.Write(body)
	return hex.EncodeToString(mac.Sum(nil))
}

func postWebhook(t *testing.T, app *fiber.App, body []byte, signature, timestamp string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/webhook/payment", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if signature != "" {
		req.Header.Set(apphttp.HeaderPaymentSignature, signature)
	}
	if timestamp != "" {
		req.Header.Set(apphttp.HeaderPaymentTimestamp, timestamp)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func TestWebhook_FirmaInvalida_Retorna400(t *testing.T) {
	app := buildWebhookApp()
	body := []byte(`{"type":"checkout.session.completed"}`)

	resp := postWebhook(t, app, body, "deadbeef", "1724800000")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	raw, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(raw), "INVALID_SIGNATURE")
}

func TestWebhook_SinFirma_Retorna400(t *testing.T) {
	app := buildWebhookApp()
	body := []byte(`{"type":"checkout.session.completed"}`)

	resp := postWebhook(t, app, body, "", "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestWebhook_EventoIgnorado_Retorna200(t *testing.T) {
	app := buildWebhookApp()
	body := []byte(`{"id":"evt_1","type":"invoice.paid","data":{"object":{}}}`)
	ts := "1724800000"

	resp := postWebhook(t, app, body, signWebhook(ts, body), ts)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode,
		"un tipo de evento desconocido se acepta y se ignora")
}

func TestWebhook_SinJobID_Retorna400(t *testing.T) {
	app := buildWebhookApp()
	body := []byte(`{"id":"evt_2","type":"checkout.session.completed","data":{"object":{"customer":"cus_1","metadata":{}}}}`)
	ts := "1724800000"

	resp := postWebhook(t, app, body, signWebhook(ts, body), ts)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	raw, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(raw), "MISSING_JOB_ID")
}

// Un evento auténtico cuyo cliente no resuelve se descarta con 200 para que
// el proveedor no lo reintente indefinidamente.
func TestWebhook_ClienteIrresoluble_Retorna200(t *testing.T) {
	app := buildWebhookApp()
	body := []byte(`{"id":"evt_3","type":"checkout.session.completed","data":{"object":{"customer":"cus_fantasma","metadata":{"jobId":"job-1"}}}}`)
	ts := "1724800000"

	resp := postWebhook(t, app, body, signWebhook(ts, body), ts)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
