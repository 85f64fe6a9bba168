package feedonomics

import (
	"context"
	"fmt"
	"net/http"
)

// GetAccounts lists the accounts visible to the authenticated user.
func (c *Client) GetAccounts(ctx context.Context) Result[[]Account] {
	return request[[]Account](ctx, c, http.MethodGet, "/user/accounts", nil)
}

// InviteUser grants a user a permission entry on an account.
func (c *Client) InviteUser(ctx context.Context, accountID string, invite UserInvite) Result[UserInvite] {
	path := fmt.Sprintf("/accounts/%s/user_account_permissions", accountID)
	return request[UserInvite](ctx, c, http.MethodPost, path, invite)
}

// Login exchanges user credentials for an API token.
func (c *Client) Login(ctx context.Context, username, password string) Result[LoginResponse] {
	body := map[string]string{"username": username, "password": password}
	return request[LoginResponse](ctx, c, http.MethodPost, "/login", body)
}

// CreateBigCommerceAccount provisions an account through the vendor-specific
// BigCommerce creation endpoint.
func (c *Client) CreateBigCommerceAccount(ctx context.Context, req BigCommerceAccountRequest) Result[Account] {
	return request[Account](ctx, c, http.MethodPost, "/bigcommerce/account", req)
}
