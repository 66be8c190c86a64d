package api

import "encoding/json"

// envelope is the JSON wrapper the storefront API puts around every
// response. Only the keys relevant to a given call are populated; the rest
// stay nil. Message carries the human-readable error text on failures.
type envelope struct {
	Message      string          `json:"message,omitempty"`
	Token        string          `json:"token,omitempty"`
	ProfileImage string          `json:"profileImage,omitempty"`
	User         json.RawMessage `json:"user,omitempty"`
	Data         json.RawMessage `json:"data,omitempty"`
	Cart         json.RawMessage `json:"cart,omitempty"`
	Order        json.RawMessage `json:"order,omitempty"`
	Orders       json.RawMessage `json:"orders,omitempty"`
	Product      json.RawMessage `json:"product,omitempty"`
	Products     json.RawMessage `json:"products,omitempty"`
	Reviews      json.RawMessage `json:"reviews,omitempty"`
}

// cartPayload is the shape under the "cart" key.
type cartPayload struct {
	Items []json.RawMessage `json:"items"`
}

// productsPayload is the shape under "data" for wishlist responses.
type productsPayload struct {
	Products json.RawMessage `json:"products"`
}
