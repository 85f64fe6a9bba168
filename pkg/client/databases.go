package feedonomics

import (
	"context"
	"fmt"
	"net/http"
)

// GetDatabases lists the databases under an account.
func (c *Client) GetDatabases(ctx context.Context, accountID string) Result[[]Database] {
	path := fmt.Sprintf("/accounts/%s/dbs", accountID)
	return request[[]Database](ctx, c, http.MethodGet, path, nil)
}

// CreateDatabase creates a database under an account.
func (c *Client) CreateDatabase(ctx context.Context, accountID, name string) Result[Database] {
	path := fmt.Sprintf("/accounts/%s/dbs", accountID)
	return request[Database](ctx, c, http.MethodPost, path, map[string]string{"name": name})
}

// DeleteDatabase deletes a database by identifier.
func (c *Client) DeleteDatabase(ctx context.Context, dbID string) Result[struct{}] {
	path := fmt.Sprintf("/dbs/%s", dbID)
	return request[struct{}](ctx, c, http.MethodDelete, path, nil)
}

// GetGroups lists the database groups under an account.
func (c *Client) GetGroups(ctx context.Context, accountID string) Result[[]Group] {
	path := fmt.Sprintf("/accounts/%s/groups", accountID)
	return request[[]Group](ctx, c, http.MethodGet, path, nil)
}

// CreateGroup creates a database group.
func (c *Client) CreateGroup(ctx context.Context, accountID, name string) Result[Group] {
	body := map[string]string{"account_id": accountID, "name": name}
	return request[Group](ctx, c, http.MethodPost, "/groups", body)
}

// AddDatabaseToGroup attaches a database to a group.
func (c *Client) AddDatabaseToGroup(ctx context.Context, groupID, dbID string) Result[Database] {
	path := fmt.Sprintf("/groups/%s/dbs", groupID)
	return request[Database](ctx, c, http.MethodPost, path, map[string]string{"db_id": dbID})
}

// MoveDatabaseToGroup moves a database into a group, detaching it from its
// current one.
func (c *Client) MoveDatabaseToGroup(ctx context.Context, dbID, groupID string) Result[Database] {
	path := fmt.Sprintf("/dbs/%s/move_db_to_db_group", dbID)
	return request[Database](ctx, c, http.MethodPost, path, map[string]string{"db_group_id": groupID})
}
