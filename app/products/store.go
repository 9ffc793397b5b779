package products

import (
	"context"
	"errors"
)

// ErrProductNotFound is returned by stores when a well-formed id matches no record.
var ErrProductNotFound = errors.New("product not found")

// Store is the data source collaborator for the products API. Consistency,
// caching and transaction semantics belong to the implementation; callers
// only rely on the contract below.
//
// FetchByID reports absence with ErrProductNotFound. FetchPage uses 1-based
// page numbers and returns an empty slice past the last page.
type Store interface {
	FetchByID(ctx context.Context, id int64) (Product, error)
	FetchPage(ctx context.Context, page, pageSize int) ([]Product, error)
	Create(ctx context.Context, p Product) (Product, error)
}
