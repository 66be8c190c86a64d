// Package models defines the client-side projections of the storefront API's
// resources. Field tags follow the wire names of the remote service; these
// are point-in-time snapshots, not authoritative state.
package models

// ProductImage is a reference to a hosted product picture.
type ProductImage struct {
	URL string `json:"url"`
}

// Product is the catalog item as returned by the product endpoints.
type Product struct {
	ID          string         `json:"_id"`
	Name        string         `json:"name"`
	Description string         `json:"description,omitempty"`
	Category    string         `json:"category,omitempty"`
	Price       float64        `json:"price"`
	Stock       int            `json:"stock"`
	Ratings     float64        `json:"ratings"`
	Images      []ProductImage `json:"productImages,omitempty"`
	// DownloadURL is set for digital goods; checkout redirects to it
	// after a successful order.
	DownloadURL string `json:"download_url,omitempty"`
}

// ProductInput is the payload for the admin product-creation endpoint.
type ProductInput struct {
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Category    string  `json:"category,omitempty"`
	Price       float64 `json:"price"`
	Stock       int     `json:"stock"`
	DownloadURL string  `json:"download_url,omitempty"`
}
