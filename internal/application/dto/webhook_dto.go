package dto

// PaymentEvent evento entrante del proveedor de pagos. Solo se modelan los
// campos que el handler necesita; el resto del payload se ignora.
type PaymentEvent struct {
	ID   string           `json:"id"`
	Type string           `json:"type"`
	Data PaymentEventData `json:"data"`
}

// PaymentEventData contenedor del objeto del evento.
type PaymentEventData struct {
	Object CheckoutSession `json:"object"`
}

// CheckoutSession sesión de checkout referida por el evento. Metadata debe
// traer el jobId que se pagó.
type CheckoutSession struct {
	ID       string            `json:"id"`
	Customer string            `json:"customer"`
	Metadata map[string]string `json:"metadata"`
}
