package feedonomics

import (
	"context"
	"fmt"
	"net/http"
)

// GetImports lists the imports of the active database. Requires the active
// database identifier to be set.
func (c *Client) GetImports(ctx context.Context) Result[[]Import] {
	if c.dbID == "" {
		return missingDbID[[]Import]()
	}
	path := fmt.Sprintf("/dbs/%s/imports", c.dbID)
	return request[[]Import](ctx, c, http.MethodGet, path, nil)
}

// CreateImport creates an import in the active database. Requires the active
// database identifier to be set.
func (c *Client) CreateImport(ctx context.Context, imp Import) Result[Import] {
	if c.dbID == "" {
		return missingDbID[Import]()
	}
	path := fmt.Sprintf("/dbs/%s/imports", c.dbID)
	return request[Import](ctx, c, http.MethodPost, path, imp)
}

// UpdateImport replaces an existing import in the active database. Requires
// the active database identifier to be set.
func (c *Client) UpdateImport(ctx context.Context, importID string, imp Import) Result[Import] {
	if c.dbID == "" {
		return missingDbID[Import]()
	}
	path := fmt.Sprintf("/dbs/%s/imports/%s", c.dbID, importID)
	return request[Import](ctx, c, http.MethodPut, path, imp)
}

// SetImportSchedule sets the cron trigger of an import. Requires the active
// database identifier to be set.
func (c *Client) SetImportSchedule(ctx context.Context, importID string, sched Schedule) Result[Schedule] {
	if c.dbID == "" {
		return missingDbID[Schedule]()
	}
	path := fmt.Sprintf("/dbs/%s/imports/%s/schedule", c.dbID, importID)
	return request[Schedule](ctx, c, http.MethodPut, path, sched)
}

// RunImport triggers an import run. Requires the active database identifier
// to be set.
func (c *Client) RunImport(ctx context.Context, importID string) Result[struct{}] {
	if c.dbID == "" {
		return missingDbID[struct{}]()
	}
	path := fmt.Sprintf("/dbs/%s/imports/%s/run", c.dbID, importID)
	return request[struct{}](ctx, c, http.MethodPost, path, nil)
}

// GetJoinImports lists the join imports of the active database. Requires the
// active database identifier to be set.
func (c *Client) GetJoinImports(ctx context.Context) Result[[]Import] {
	if c.dbID == "" {
		return missingDbID[[]Import]()
	}
	path := fmt.Sprintf("/dbs/%s/join_imports", c.dbID)
	return request[[]Import](ctx, c, http.MethodGet, path, nil)
}

// CreateJoinImport creates a join import in the active database. Requires the
// active database identifier to be set.
func (c *Client) CreateJoinImport(ctx context.Context, imp Import) Result[Import] {
	if c.dbID == "" {
		return missingDbID[Import]()
	}
	path := fmt.Sprintf("/dbs/%s/join_imports", c.dbID)
	return request[Import](ctx, c, http.MethodPost, path, imp)
}
