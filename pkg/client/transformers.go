package feedonomics

import (
	"context"
	"fmt"
	"net/http"
)

// GetTransformers lists the transformers of the active database. Requires the
// active database identifier to be set.
func (c *Client) GetTransformers(ctx context.Context) Result[[]Transformer] {
	if c.dbID == "" {
		return missingDbID[[]Transformer]()
	}
	path := fmt.Sprintf("/dbs/%s/transformers", c.dbID)
	return request[[]Transformer](ctx, c, http.MethodGet, path, nil)
}

// CreateTransformer creates a transformer in the active database. Requires
// the active database identifier to be set.
func (c *Client) CreateTransformer(ctx context.Context, t Transformer) Result[Transformer] {
	if c.dbID == "" {
		return missingDbID[Transformer]()
	}
	path := fmt.Sprintf("/dbs/%s/transformers", c.dbID)
	return request[Transformer](ctx, c, http.MethodPost, path, t)
}

// UpdateTransformer replaces an existing transformer in the active database.
// Requires the active database identifier to be set.
func (c *Client) UpdateTransformer(ctx context.Context, transformerID string, t Transformer) Result[Transformer] {
	if c.dbID == "" {
		return missingDbID[Transformer]()
	}
	path := fmt.Sprintf("/dbs/%s/transformers/%s", c.dbID, transformerID)
	return request[Transformer](ctx, c, http.MethodPut, path, t)
}

// GetDbFields lists the fields of the active database. Requires the active
// database identifier to be set.
func (c *Client) GetDbFields(ctx context.Context) Result[[]DbField] {
	if c.dbID == "" {
		return missingDbID[[]DbField]()
	}
	path := fmt.Sprintf("/dbs/%s/fields", c.dbID)
	return request[[]DbField](ctx, c, http.MethodGet, path, nil)
}

// UpdateDbFields replaces the field definitions of the active database.
// Requires the active database identifier to be set.
func (c *Client) UpdateDbFields(ctx context.Context, fields []DbField) Result[[]DbField] {
	if c.dbID == "" {
		return missingDbID[[]DbField]()
	}
	path := fmt.Sprintf("/dbs/%s/fields", c.dbID)
	return request[[]DbField](ctx, c, http.MethodPut, path, fields)
}

// DeleteDbField deletes one field of the active database. Requires the active
// database identifier to be set.
func (c *Client) DeleteDbField(ctx context.Context, fieldID string) Result[struct{}] {
	if c.dbID == "" {
		return missingDbID[struct{}]()
	}
	path := fmt.Sprintf("/dbs/%s/fields/%s", c.dbID, fieldID)
	return request[struct{}](ctx, c, http.MethodDelete, path, nil)
}
