package feedonomics

import (
	"context"
	"fmt"
	"net/http"
)

// GetVaultEntries lists the vault entries visible to the authenticated user.
func (c *Client) GetVaultEntries(ctx context.Context) Result[[]VaultEntry] {
	return request[[]VaultEntry](ctx, c, http.MethodGet, "/vault", nil)
}

// CreateVaultEntry stores a new credential blob in the vault.
func (c *Client) CreateVaultEntry(ctx context.Context, entry VaultEntry) Result[VaultEntry] {
	return request[VaultEntry](ctx, c, http.MethodPost, "/vault", entry)
}

// UpdateVaultEntry replaces an existing vault entry.
func (c *Client) UpdateVaultEntry(ctx context.Context, entryID string, entry VaultEntry) Result[VaultEntry] {
	path := fmt.Sprintf("/vault/%s", entryID)
	return request[VaultEntry](ctx, c, http.MethodPut, path, entry)
}

// DeleteVaultEntry deletes a vault entry by identifier.
func (c *Client) DeleteVaultEntry(ctx context.Context, entryID string) Result[struct{}] {
	path := fmt.Sprintf("/vault/%s", entryID)
	return request[struct{}](ctx, c, http.MethodDelete, path, nil)
}

// CreateDbVaultEntry stores a credential blob scoped to the active database.
// Requires the active database identifier to be set.
func (c *Client) CreateDbVaultEntry(ctx context.Context, entry VaultEntry) Result[VaultEntry] {
	if c.dbID == "" {
		return missingDbID[VaultEntry]()
	}
	path := fmt.Sprintf("/dbs/%s/vault", c.dbID)
	return request[VaultEntry](ctx, c, http.MethodPost, path, entry)
}

// GetFtpAccounts lists the FTP credentials of the active database. Requires
// the active database identifier to be set.
func (c *Client) GetFtpAccounts(ctx context.Context) Result[[]FtpAccount] {
	if c.dbID == "" {
		return missingDbID[[]FtpAccount]()
	}
	path := fmt.Sprintf("/dbs/%s/ftp", c.dbID)
	return request[[]FtpAccount](ctx, c, http.MethodGet, path, nil)
}

// CreateFtpAccount provisions FTP credentials for the active database.
// Requires the active database identifier to be set.
func (c *Client) CreateFtpAccount(ctx context.Context, acct FtpAccount) Result[FtpAccount] {
	if c.dbID == "" {
		return missingDbID[FtpAccount]()
	}
	path := fmt.Sprintf("/dbs/%s/ftp", c.dbID)
	return request[FtpAccount](ctx, c, http.MethodPost, path, acct)
}
