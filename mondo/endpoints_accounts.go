// mondo/endpoints_accounts.go
package mondo

import (
	"context"
	"net/http"
	"net/url"

	"github.com/deploymenttheory/go-api-sdk-mondo/params"
)

const (
	uriAccounts = "/accounts"
	uriBalance  = "/balance"
)

// BalanceRequest selects the account whose balance is read.
type BalanceRequest struct {
	AccountID string `json:"account_id" validate:"required"`
}

// NewBalanceRequest builds a BalanceRequest from loosely typed parameters.
func NewBalanceRequest(p params.Params) *BalanceRequest {
	return &BalanceRequest{AccountID: p.String("account_id")}
}

// Accounts lists the accounts of the authenticated user.
//
// Parameters:
//   - access_token (string): Access token.
func (c *Client) Accounts(ctx context.Context, accessToken string) ([]Account, error) {
	r, err := authenticated(accessToken, http.MethodGet, uriAccounts)
	if err != nil {
		return nil, err
	}

	var out struct {
		Accounts []Account `json:"accounts"`
	}
	if err := c.do(ctx, "accounts", r, &out); err != nil {
		return nil, err
	}
	return out.Accounts, nil
}

// Balance returns the balance of an account.
//
// Parameters:
//   - access_token (string): Access token.
//   - account_id (string): Account to query.
func (c *Client) Balance(ctx context.Context, accessToken string, req *BalanceRequest) (*Balance, error) {
	if err := c.validateRequest("balance", req); err != nil {
		return nil, err
	}
	r, err := authenticated(accessToken, http.MethodGet, uriBalance)
	if err != nil {
		return nil, err
	}
	r.Query = url.Values{"account_id": {req.AccountID}}

	var out Balance
	if err := c.do(ctx, "balance", r, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
