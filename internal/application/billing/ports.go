package billing

import (
	"context"

	"github.com/shopspring/decimal"
)

// CheckoutSessionInput parámetros para crear una sesión de checkout.
// UnitAmount va en unidades mayores; el adaptador convierte a centavos.
type CheckoutSessionInput struct {
	CustomerID  string
	ProductName string
	Description string
	Currency    string
	UnitAmount  decimal.Decimal
	Metadata    map[string]string
	SuccessURL  string
	CancelURL   string
}

// CheckoutSessionResult sesión creada en el proveedor.
type CheckoutSessionResult struct {
	ID  string
	URL string // URL a la que se redirige a la empresa para pagar
}

// PaymentGateway define el puerto de salida hacia el proveedor de pagos.
// La implementación concreta usa su API REST; para tests se inyecta un fake.
type PaymentGateway interface {
	// CreateCustomer registra un cliente en el proveedor y devuelve su ID.
	CreateCustomer(ctx context.Context, email, name string) (string, error)
	CreateCheckoutSession(ctx context.Context, in CheckoutSessionInput) (*CheckoutSessionResult, error)
}

// ListingCacheInvalidator invalida el cache del listado público tras una
// mutación de avisos. La activación por webhook es una mutación más: el aviso
// recién pagado debe aparecer en el listado sin esperar el TTL.
type ListingCacheInvalidator interface {
	Invalidate(ctx context.Context)
}

// ReceiptData datos del recibo de pago de una publicación.
type ReceiptData struct {
	JobID       string
	JobTitle    string
	CompanyName string
	Days        int
	Description string
	Price       decimal.Decimal
	Currency    string
	IssuedAt    string // fecha de emisión ya formateada
}

// ReceiptPDFGenerator define el puerto para la generación del recibo en PDF.
type ReceiptPDFGenerator interface {
	GenerateReceiptPDF(ctx context.Context, data *ReceiptData) ([]byte, error)
}
