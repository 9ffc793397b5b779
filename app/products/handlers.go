package products

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/bindkit/core/binder"
	"github.com/dmitrymomot/bindkit/core/handler"
	"github.com/dmitrymomot/bindkit/core/outcome"
	"github.com/dmitrymomot/bindkit/core/response"
	"github.com/dmitrymomot/bindkit/core/validator"
)

const defaultPageSize = 20

// Handlers holds the products API handlers and their collaborators.
type Handlers struct {
	store    Store
	registry *binder.Registry

	bindJSON  binder.Binder
	bindQuery binder.Binder
	bindPath  binder.Binder
}

// NewHandlers builds the handler set over the given store. The binder
// registry is assembled here and frozen before any request is served: the
// keyed-entity binder is registered ahead of the built-ins so it wins
// first-match resolution for Product parameters.
func NewHandlers(store Store) *Handlers {
	lookup := func(ctx context.Context, id int64) (Product, error) {
		p, err := store.FetchByID(ctx, id)
		if errors.Is(err, ErrProductNotFound) {
			return Product{}, binder.ErrEntityNotFound
		}
		return p, err
	}

	registry := binder.NewRegistry()
	// Registration order matters: first match wins.
	if err := registry.Register(
		binder.Entity[Product](lookup),
		binder.ByteSlice(),
	); err != nil {
		panic(err)
	}
	registry.Freeze()

	return &Handlers{
		store:     store,
		registry:  registry,
		bindJSON:  binder.JSON(),
		bindQuery: binder.Query(),
		bindPath:  binder.Path(chi.URLParam),
	}
}

// GetProduct handles GET /products/{id}. The id parameter is declared as a
// Product, so registry resolution selects the keyed-entity binder and the
// handler receives the fetched entity directly. Absence surfaces as a 404
// through outcome resolution, not from the binder.
func (h *Handlers) GetProduct(ctx handler.Context) handler.Response {
	desc := binder.Param[Product]("id", binder.SourcePath)

	raw, err := binder.Raw(ctx.Request(), desc, chi.URLParam)
	if err != nil {
		return response.Error(err)
	}

	bv, err := h.registry.BindValue(ctx, raw, desc)
	if err != nil {
		// Data source fault, not a binding failure
		return response.Error(err)
	}
	if !bv.OK() {
		return outcome.Resolve(outcome.BindFailure(*bv.Invalid))
	}

	return outcome.Resolve(outcome.Value(bv.Value.(Product)))
}

// ListProducts handles GET /products with optional page/page_size query
// parameters.
func (h *Handlers) ListProducts(ctx handler.Context) handler.Response {
	var req ListProductsRequest
	if err := h.bindQuery(ctx.Request(), &req); err != nil {
		return outcome.Resolve(outcome.InvalidFields(map[string][]string{
			"query": {"malformed query parameters"},
		}))
	}
	if req.Page < 1 {
		req.Page = 1
	}
	if req.PageSize < 1 {
		req.PageSize = defaultPageSize
	}

	page, err := h.store.FetchPage(ctx, req.Page, req.PageSize)
	if err != nil {
		return response.Error(err)
	}

	return outcome.Resolve(outcome.Value(page))
}

// StreamProducts handles GET /products/page/{pageSize}. Products are fetched
// page by page and streamed element by element, so memory use is bounded by
// the page size regardless of catalog length. Production stops when the
// client disconnects.
func (h *Handlers) StreamProducts(ctx handler.Context) handler.Response {
	var req StreamProductsRequest
	if err := h.bindPath(ctx.Request(), &req); err != nil {
		return outcome.Resolve(outcome.InvalidFields(map[string][]string{
			"pageSize": {"must be a positive integer"},
		}))
	}
	if req.PageSize < 1 {
		req.PageSize = defaultPageSize
	}

	items := make(chan any)
	go func() {
		defer close(items)

		for page := 1; ; page++ {
			batch, err := h.store.FetchPage(ctx, page, req.PageSize)
			if err != nil {
				// Headers are already written once streaming starts; the
				// stream simply ends early on a data source fault.
				return
			}
			if len(batch) == 0 {
				return
			}

			for _, p := range batch {
				select {
				case items <- p:
				case <-ctx.Done():
					return
				}
			}

			if len(batch) < req.PageSize {
				return
			}
		}
	}()

	return outcome.Resolve(outcome.Stream(items))
}

// CreateProduct handles POST /products. The JSON body is bound and validated;
// an optional base64 "image" query parameter demonstrates byte-array binding
// through the registry. Success resolves to 201 with a Location header
// pointing at the created resource.
func (h *Handlers) CreateProduct(ctx handler.Context) handler.Response {
	var req CreateProductRequest
	if err := h.bindJSON(ctx.Request(), &req); err != nil {
		return outcome.Resolve(outcome.InvalidFields(map[string][]string{
			"body": {"malformed JSON body"},
		}))
	}

	if err := validator.ValidateStruct(&req); err != nil {
		return outcome.Resolve(outcome.Invalid(validator.ExtractValidationErrors(err)))
	}

	image := req.Image
	if len(image) == 0 {
		desc := binder.Param[[]byte]("image", binder.SourceQuery)
		raw, err := binder.Raw(ctx.Request(), desc, nil)
		if err != nil {
			return response.Error(err)
		}
		if raw.Present {
			bv, err := h.registry.BindValue(ctx, raw, desc)
			if err != nil {
				return response.Error(err)
			}
			if !bv.OK() {
				return outcome.Resolve(outcome.BindFailure(*bv.Invalid))
			}
			image = bv.Value.([]byte)
		}
	}

	created, err := h.store.Create(ctx, Product{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Image:       image,
	})
	if err != nil {
		return response.Error(err)
	}

	location := fmt.Sprintf("/products/%d", created.ID)
	return outcome.Resolve(outcome.Created(location, created))
}
