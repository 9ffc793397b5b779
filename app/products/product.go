package products

// Product is the catalog entity served by the sample API.
// Image carries raw bytes; encoding/json transports it as base64.
type Product struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       int64  `json:"price"` // minor currency units
	Image       []byte `json:"image,omitempty"`
}

// CreateProductRequest is the JSON body of POST /products.
// The description rule rejects the discontinued product line by substring.
type CreateProductRequest struct {
	Name        string `json:"name" validate:"required;min:2;max:120"`
	Description string `json:"description" validate:"max:2000;not_contains:XYZ Widget"`
	Price       int64  `json:"price" validate:"positive"`
	Image       []byte `json:"image,omitempty"`
}

// ListProductsRequest holds the query parameters of GET /products.
type ListProductsRequest struct {
	Page     int `query:"page"`
	PageSize int `query:"page_size"`
}

// StreamProductsRequest holds the path parameter of GET /products/page/{pageSize}.
type StreamProductsRequest struct {
	PageSize int `path:"pageSize"`
}
