package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"

	"github.com/Avinya-Software/Avinya-AI-CRM-Web-sub001/internal/core/domain"
	"github.com/Avinya-Software/Avinya-AI-CRM-Web-sub001/internal/core/ports"
)

// productWire is a product as the API sends it.
type productWire struct {
	ProductID     flexID  `json:"productID"`
	ProductName   string  `json:"productName"`
	ProductCode   string  `json:"productCode"`
	CategoryID    flexID  `json:"categoryID"`
	CategoryName  string  `json:"categoryName"`
	UnitTypeID    flexID  `json:"unitTypeID"`
	UnitTypeName  string  `json:"unitTypeName"`
	Price         float64 `json:"price"`
	TaxPercentage float64 `json:"taxPercentage"`
	Description   string  `json:"description"`
	IsActive      bool    `json:"isActive"`
}

func (w productWire) toDomain() domain.Product {
	return domain.Product{
		ID:          string(w.ProductID),
		Name:        w.ProductName,
		Code:        w.ProductCode,
		CategoryID:  string(w.CategoryID),
		Category:    w.CategoryName,
		UnitTypeID:  string(w.UnitTypeID),
		UnitType:    w.UnitTypeName,
		Price:       w.Price,
		TaxPercent:  w.TaxPercentage,
		Description: w.Description,
		IsActive:    w.IsActive,
	}
}

// productBody is the request body of create and update.
type productBody struct {
	ProductID     flexID  `json:"productID,omitempty"`
	ProductName   string  `json:"productName"`
	ProductCode   string  `json:"productCode,omitempty"`
	CategoryID    flexID  `json:"categoryID"`
	UnitTypeID    flexID  `json:"unitTypeID"`
	Price         float64 `json:"price"`
	TaxPercentage float64 `json:"taxPercentage"`
	Description   string  `json:"description,omitempty"`
	IsActive      bool    `json:"isActive"`
}

func newProductBody(id string, in domain.ProductInput) productBody {
	return productBody{
		ProductID:     flexID(id),
		ProductName:   in.Name,
		ProductCode:   in.Code,
		CategoryID:    flexID(in.CategoryID),
		UnitTypeID:    flexID(in.UnitTypeID),
		Price:         in.Price,
		TaxPercentage: in.TaxPercent,
		Description:   in.Description,
		IsActive:      in.IsActive,
	}
}

type statusBody struct {
	IsActive bool `json:"isActive"`
}

// Products implements ports.ProductGateway.
type Products struct {
	client *Client
}

// NewProducts returns the products gateway.
func NewProducts(client *Client) *Products {
	return &Products{client: client}
}

var _ ports.ProductGateway = (*Products)(nil)

// Resource returns domain.ResourceProducts.
func (g *Products) Resource() domain.Resource {
	return domain.ResourceProducts
}

// List calls GET /Product/filter.
func (g *Products) List(ctx context.Context, d domain.Descriptor) (*domain.Page[domain.Product], error) {
	cl := call{
		resource: domain.ResourceProducts,
		op:       "list",
		method:   http.MethodGet,
		path:     "/Product/filter",
		query:    d.QueryValues(),
		want:     shapeWrapped,
	}
	return listPage(ctx, g.client, cl, productWire.toDomain)
}

// Lookup fetches a product dropdown.
func (g *Products) Lookup(ctx context.Context, name string) ([]domain.LookupItem, error) {
	return g.client.lookup(ctx, domain.ResourceProducts, name)
}

// Create calls POST /Product.
func (g *Products) Create(ctx context.Context, fields domain.ProductInput) (*domain.Product, error) {
	cl := call{
		resource: domain.ResourceProducts,
		op:       "create",
		method:   http.MethodPost,
		path:     "/Product",
		body:     newProductBody("", fields),
		want:     shapeEmpty,
	}
	return writeRecord(ctx, g.client, cl, productWire.toDomain, productFallback("", fields))
}

// Update calls PATCH /Product/{id}.
func (g *Products) Update(ctx context.Context, id string, fields domain.ProductInput) (*domain.Product, error) {
	cl := call{
		resource: domain.ResourceProducts,
		op:       "update",
		method:   http.MethodPatch,
		path:     pathID("/Product/%s", id),
		body:     newProductBody(id, fields),
		want:     shapeEmpty,
	}
	return writeRecord(ctx, g.client, cl, productWire.toDomain, productFallback(id, fields))
}

// Delete calls DELETE /Product/{id}.
func (g *Products) Delete(ctx context.Context, id string) error {
	_, err := g.client.do(ctx, call{
		resource: domain.ResourceProducts,
		op:       "delete",
		method:   http.MethodDelete,
		path:     pathID("/Product/%s", id),
		want:     shapeEmpty,
	})
	return err
}

// SetStatus calls PATCH /Product/{id} with only the active flag.
func (g *Products) SetStatus(ctx context.Context, id string, active bool) error {
	_, err := g.client.do(ctx, call{
		resource: domain.ResourceProducts,
		op:       "status",
		method:   http.MethodPatch,
		path:     pathID("/Product/%s", id),
		body:     statusBody{IsActive: active},
		want:     shapeEmpty,
	})
	return err
}

// productFallback is returned when a write succeeds without echoing the record.
func productFallback(id string, in domain.ProductInput) domain.Product {
	return domain.Product{
		ID:          id,
		Name:        in.Name,
		Code:        in.Code,
		CategoryID:  in.CategoryID,
		UnitTypeID:  in.UnitTypeID,
		Price:       in.Price,
		TaxPercent:  in.TaxPercent,
		Description: in.Description,
		IsActive:    in.IsActive,
	}
}

// listPage decodes a paginated list envelope and enforces the page invariants.
func listPage[W, T any](ctx context.Context, c *Client, cl call, toDomain func(W) T) (*domain.Page[T], error) {
	env, err := c.do(ctx, cl)
	if err != nil {
		return nil, err
	}

	var wp wirePage[W]
	if err := c.decodeInto(cl, env, &wp); err != nil {
		return nil, err
	}

	items := make([]T, 0, len(wp.Data))
	for _, w := range wp.Data {
		items = append(items, toDomain(w))
	}

	totalPages := 0
	if wp.TotalPages != nil {
		totalPages = *wp.TotalPages
	}
	page, err := domain.NewPage(items, wp.PageNumber, wp.PageSize, wp.TotalRecords, totalPages)
	if err != nil {
		return nil, c.transportErr(cl, http.StatusOK, err)
	}
	return page, nil
}

// writeRecord decodes the record echoed by a create or update, or returns fallback when none is sent.
func writeRecord[W, T any](ctx context.Context, c *Client, cl call, toDomain func(W) T, fallback T) (*T, error) {
	env, err := c.do(ctx, cl)
	if err != nil {
		return nil, err
	}
	data := bytes.TrimSpace(env.data)
	if env.shape != shapeWrapped || len(data) == 0 || data[0] != '{' {
		return &fallback, nil
	}

	// The write is confirmed at this point; an echo we cannot read does not undo it.
	var w W
	if err := json.Unmarshal(data, &w); err != nil {
		return &fallback, nil //nolint:nilerr // see above
	}
	record := toDomain(w)
	return &record, nil
}
