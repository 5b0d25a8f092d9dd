package payments

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/jhoicas/Empleos-api/internal/application/billing"
	"github.com/jhoicas/Empleos-api/pkg/config"
)

var _ billing.PaymentGateway = (*RESTClient)(nil)

// RESTClient implementa PaymentGateway contra la API REST del proveedor de
// pagos. Usa net/http de la stdlib; el proveedor no publica SDK de Go y su
// API acepta cuerpos form-urlencoded con autenticación Bearer.
type RESTClient struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewRESTClient construye el cliente con un timeout de red generoso (30 s):
// la creación de sesiones de checkout puede tardar varios segundos.
func NewRESTClient(cfg config.PaymentsConfig) *RESTClient {
	return &RESTClient{
		baseURL:    strings.TrimRight(cfg.APIBaseURL, "/"),
		apiKey:     cfg.APIKey,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// ── Respuestas del proveedor ──────────────────────────────────────────────────

type customerResponse struct {
	ID string `json:"id"`
}

type checkoutSessionResponse struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}

type apiError struct {
	Error struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	} `json:"error"`
}

// ── Operaciones ───────────────────────────────────────────────────────────────

// CreateCustomer registra un cliente en el proveedor y devuelve su ID.
func (c *RESTClient) CreateCustomer(ctx context.Context, email, name string) (string, error) {
	form := url.Values{}
	form.Set("email", email)
	form.Set("name", name)

	var out customerResponse
	if err := c.post(ctx, "/v1/customers", form, &out); err != nil {
		return "", fmt.Errorf("payments: crear cliente: %w", err)
	}
	return out.ID, nil
}

// CreateCheckoutSession crea una sesión de pago único y devuelve su URL.
// El monto se convierte a unidades menores (centavos) como exige el proveedor.
func (c *RESTClient) CreateCheckoutSession(ctx context.Context, in billing.CheckoutSessionInput) (*billing.CheckoutSessionResult, error) {
	form := url.Values{}
	form.Set("customer", in.CustomerID)
	form.Set("mode", "payment")
	form.Set("success_url", in.SuccessURL)
	form.Set("cancel_url", in.CancelURL)
	form.Set("line_items[0][quantity]", "1")
	form.Set("line_items[0][price_data][currency]", strings.ToLower(in.Currency))
	form.Set("line_items[0][price_data][unit_amount]", strconv.FormatInt(in.UnitAmount.Shift(2).IntPart(), 10))
	form.Set("line_items[0][price_data][product_data][name]", in.ProductName)
	if in.Description != "" {
		form.Set("line_items[0][price_data][product_data][description]", in.Description)
	}
	for k, v := range in.Metadata {
		form.Set(fmt.Sprintf("metadata[%s]", k), v)
	}

	var out checkoutSessionResponse
	if err := c.post(ctx, "/v1/checkout/sessions", form, &out); err != nil {
		return nil, fmt.Errorf("payments: crear sesión de checkout: %w", err)
	}
	return &billing.CheckoutSessionResult{ID: out.ID, URL: out.URL}, nil
}

// post ejecuta un POST form-urlencoded y deserializa la respuesta JSON en out.
func (c *RESTClient) post(ctx context.Context, path string, form url.Values, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path,
		strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("crear request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return fmt.Errorf("timeout o cancelación: %w", ctx.Err())
		}
		return fmt.Errorf("llamada HTTP fallida: %w", err)
	}
	defer resp.Body.Close()

	rawBody, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20)) // max 1 MB
	if err != nil {
		return fmt.Errorf("leer respuesta: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var apiErr apiError
		if json.Unmarshal(rawBody, &apiErr) == nil && apiErr.Error.Message != "" {
			return fmt.Errorf("proveedor respondió %d [%s]: %s",
				resp.StatusCode, apiErr.Error.Type, apiErr.Error.Message)
		}
		return fmt.Errorf("proveedor respondió %d: %s", resp.StatusCode, string(rawBody))
	}

	if err := json.Unmarshal(rawBody, out); err != nil {
		return fmt.Errorf("parsear respuesta: %w", err)
	}
	return nil
}
