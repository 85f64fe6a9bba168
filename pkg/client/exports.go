package feedonomics

import (
	"context"
	"fmt"
	"net/http"
)

// GetExports lists the exports of the active database. Requires the active
// database identifier to be set.
func (c *Client) GetExports(ctx context.Context) Result[[]Export] {
	if c.dbID == "" {
		return missingDbID[[]Export]()
	}
	path := fmt.Sprintf("/dbs/%s/exports", c.dbID)
	return request[[]Export](ctx, c, http.MethodGet, path, nil)
}

// CreateExport creates an export in the active database. Requires the active
// database identifier to be set.
func (c *Client) CreateExport(ctx context.Context, exp Export) Result[Export] {
	if c.dbID == "" {
		return missingDbID[Export]()
	}
	path := fmt.Sprintf("/dbs/%s/exports", c.dbID)
	return request[Export](ctx, c, http.MethodPost, path, exp)
}

// UpdateExport replaces an existing export in the active database. Requires
// the active database identifier to be set.
func (c *Client) UpdateExport(ctx context.Context, exportID string, exp Export) Result[Export] {
	if c.dbID == "" {
		return missingDbID[Export]()
	}
	path := fmt.Sprintf("/dbs/%s/exports/%s", c.dbID, exportID)
	return request[Export](ctx, c, http.MethodPut, path, exp)
}

// SetExportSchedule sets the trigger of an export. Requires the active
// database identifier to be set.
func (c *Client) SetExportSchedule(ctx context.Context, exportID string, sched Schedule) Result[Schedule] {
	if c.dbID == "" {
		return missingDbID[Schedule]()
	}
	path := fmt.Sprintf("/dbs/%s/exports/%s/schedule", c.dbID, exportID)
	return request[Schedule](ctx, c, http.MethodPost, path, sched)
}

// RunExport triggers an export run. Requires the active database identifier
// to be set.
func (c *Client) RunExport(ctx context.Context, exportID string) Result[struct{}] {
	if c.dbID == "" {
		return missingDbID[struct{}]()
	}
	path := fmt.Sprintf("/dbs/%s/exports/%s/run", c.dbID, exportID)
	return request[struct{}](ctx, c, http.MethodPost, path, nil)
}
