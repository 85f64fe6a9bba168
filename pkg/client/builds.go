package feedonomics

import (
	"context"
	"fmt"
	"net/http"
)

// GetBuild fetches one feed build of the active database. Requires the active
// database identifier to be set.
func (c *Client) GetBuild(ctx context.Context, buildID string) Result[Build] {
	if c.dbID == "" {
		return missingDbID[Build]()
	}
	path := fmt.Sprintf("/dbs/%s/builds/%s", c.dbID, buildID)
	return request[Build](ctx, c, http.MethodGet, path, nil)
}

// CancelBuild cancels a running feed build. Requires the active database
// identifier to be set.
func (c *Client) CancelBuild(ctx context.Context, buildID string) Result[Build] {
	if c.dbID == "" {
		return missingDbID[Build]()
	}
	path := fmt.Sprintf("/dbs/%s/builds/%s/cancel", c.dbID, buildID)
	return request[Build](ctx, c, http.MethodPost, path, nil)
}

// ApplyBuildTemplate applies a named automate build template to the active
// database. Requires the active database identifier to be set.
func (c *Client) ApplyBuildTemplate(ctx context.Context, template string) Result[struct{}] {
	if c.dbID == "" {
		return missingDbID[struct{}]()
	}
	path := fmt.Sprintf("/dbs/%s/apply_automate_build_template", c.dbID)
	body := map[string]string{"template_name": template}
	return request[struct{}](ctx, c, http.MethodPost, path, body)
}
