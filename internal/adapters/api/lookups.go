package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/Avinya-Software/Avinya-AI-CRM-Web-sub001/internal/core/domain"
	"go.trai.ch/zerr"
)

// lookupEndpoint declares where a dropdown lives and how its items are named.
type lookupEndpoint struct {
	path       string
	shape      shape
	idField    string
	labelField string
}

var lookupEndpoints = map[domain.Resource]map[string]lookupEndpoint{
	domain.ResourceProducts: {
		"unit-types": {path: "/Product/get-UnitType-dropdown", shape: shapeWrapped, idField: "unitTypeID", labelField: "unitTypeName"},
		"categories": {path: "/products/ProductCategorydropdown", shape: shapeWrapped, idField: "categoryID", labelField: "categoryName"},
		"products":   {path: "/Product/get-Product-dropdown", shape: shapeWrapped, idField: "productID", labelField: "productName"},
	},
	domain.ResourceUsers: {
		"roles":       {path: "/User/roles", shape: shapeBare, idField: "roleID", labelField: "roleName"},
		"tenants":     {path: "/User/tenants", shape: shapeBare, idField: "tenantID", labelField: "tenantName"},
		"companies":   {path: "/users/companies", shape: shapeWrapped, idField: "companyID", labelField: "companyName"},
		"permissions": {path: "/permission/list", shape: shapeWrapped, idField: "permissionID", labelField: "permissionName"},
	},
}

var (
	idFallbacks    = []string{"id", "value"}
	labelFallbacks = []string{"name", "label", "text"}
)

// lookup fetches one dropdown of resource and maps it to (id, label) pairs.
func (c *Client) lookup(ctx context.Context, resource domain.Resource, name string) ([]domain.LookupItem, error) {
	ep, ok := lookupEndpoints[resource][name]
	if !ok {
		err := zerr.With(zerr.Wrap(domain.ErrUnknownLookup, "lookup"), "lookup", name)
		return nil, zerr.With(err, "resource", resource.String())
	}

	cl := call{
		resource: resource,
		op:       "lookup." + name,
		method:   http.MethodGet,
		path:     ep.path,
		want:     ep.shape,
	}
	env, err := c.do(ctx, cl)
	if err != nil {
		return nil, err
	}

	var raw []map[string]json.RawMessage
	if err := c.decodeInto(cl, env, &raw); err != nil {
		return nil, err
	}

	items := make([]domain.LookupItem, 0, len(raw))
	for _, obj := range raw {
		item := domain.LookupItem{
			ID:    stringField(obj, ep.idField, idFallbacks),
			Label: stringField(obj, ep.labelField, labelFallbacks),
		}
		if item.Label == "" {
			item.Label = item.ID
		}
		items = append(items, item)
	}
	return items, nil
}

// stringField reads the first present member of name and fallbacks as a string or number.
func stringField(obj map[string]json.RawMessage, name string, fallbacks []string) string {
	for _, key := range append([]string{name}, fallbacks...) {
		raw, ok := fieldValue(obj, key)
		if !ok {
			continue
		}
		var v flexID
		if err := json.Unmarshal(raw, &v); err == nil && v != "" {
			return string(v)
		}
	}
	return ""
}
