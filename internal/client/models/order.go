package models

import "time"

// ShippingAddress is the checkout address form. All fields are required;
// no format validation is applied beyond presence.
type ShippingAddress struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	PinCode string `json:"pinCode"`
	Phone   string `json:"phone"`
}

// PaymentInfo is the payment acknowledgment attached to an order request.
// This client only ever sends the fixed mock acknowledgment; real payment
// processing lives behind the API.
type PaymentInfo struct {
	ID     string `json:"id"`
	Status string `json:"status"`
	Type   string `json:"type"`
}

// MockPayment is the acknowledgment sent with every order.
var MockPayment = PaymentInfo{ID: "mock-payment-id", Status: "success", Type: "card"}

// OrderLine references a product and quantity inside an order request.
type OrderLine struct {
	Product  string `json:"product"`
	Quantity int    `json:"quantity"`
}

// OrderDraft is assembled from the cart mirror at submission time and
// discarded afterwards. Subtotal is computed client-side for display only;
// shipping is free, so it equals the order total.
type OrderDraft struct {
	Items           []OrderLine     `json:"items"`
	ShippingAddress ShippingAddress `json:"shippingAddress"`
	PaymentInfo     PaymentInfo     `json:"paymentInfo"`
	Subtotal        float64         `json:"-"`
}

// OrderItem is a resolved line of a placed order.
type OrderItem struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}

// Order is the order resource returned by the API.
type Order struct {
	ID          string      `json:"_id"`
	TotalAmount float64     `json:"totalAmount"`
	Status      string      `json:"status"`
	PaidAt      time.Time   `json:"paidAt"`
	Items       []OrderItem `json:"items,omitempty"`
}
