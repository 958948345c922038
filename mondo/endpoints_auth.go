// mondo/endpoints_auth.go
package mondo

import (
	"context"
	"net/http"
	"net/url"

	"github.com/deploymenttheory/go-api-sdk-mondo/httpclient"
	"github.com/deploymenttheory/go-api-sdk-mondo/params"
)

const (
	uriToken  = "/oauth2/token"
	uriWhoAmI = "/ping/whoami"

	grantTypePassword     = "password"
	grantTypeRefreshToken = "refresh_token"
)

// TokenRequest holds the credentials for a password grant.
type TokenRequest struct {
	ClientID     string `json:"client_id" validate:"required"`
	ClientSecret string `json:"client_secret" validate:"required"`
	Username     string `json:"username" validate:"required"`
	Password     string `json:"password" validate:"required"`
}

// NewTokenRequest builds a TokenRequest from loosely typed parameters.
func NewTokenRequest(p params.Params) *TokenRequest {
	return &TokenRequest{
		ClientID:     p.String("client_id"),
		ClientSecret: p.String("client_secret"),
		Username:     p.String("username"),
		Password:     p.String("password"),
	}
}

// RefreshTokenRequest holds a refresh token and the client credentials it was issued to.
type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
	ClientID     string `json:"client_id" validate:"required"`
	ClientSecret string `json:"client_secret" validate:"required"`
}

// NewRefreshTokenRequest builds a RefreshTokenRequest. A bare string is taken as the refresh token.
func NewRefreshTokenRequest(v any) *RefreshTokenRequest {
	switch v := v.(type) {
	case string:
		return &RefreshTokenRequest{RefreshToken: v}
	case params.Params:
		return &RefreshTokenRequest{
			RefreshToken: v.String("refresh_token"),
			ClientID:     v.String("client_id"),
			ClientSecret: v.String("client_secret"),
		}
	case map[string]any:
		return NewRefreshTokenRequest(params.Params(v))
	default:
		return &RefreshTokenRequest{}
	}
}

// withClientCredentials fills missing client credentials from the remembered ones.
func (c *Client) withClientCredentials(clientID, clientSecret string) (string, string) {
	rememberedID, rememberedSecret := c.ClientCredentials()
	if clientID == "" {
		clientID = rememberedID
	}
	if clientSecret == "" {
		clientSecret = rememberedSecret
	}
	return clientID, clientSecret
}

// Token acquires an access token with the password grant. Client credentials left empty fall back
// to the last pair sent to the API.
//
// Parameters:
//   - client_id (string): OAuth client id.
//   - client_secret (string): OAuth client secret.
//   - username (string): Account holder username.
//   - password (string): Account holder password.
func (c *Client) Token(ctx context.Context, req *TokenRequest) (*TokenResponse, error) {
	if req == nil {
		req = &TokenRequest{}
	}
	filled := *req
	filled.ClientID, filled.ClientSecret = c.withClientCredentials(req.ClientID, req.ClientSecret)
	if err := c.validateRequest("token", &filled); err != nil {
		return nil, err
	}

	r := &httpclient.Request{
		Method:   http.MethodPost,
		Endpoint: uriToken,
		Form: url.Values{
			"grant_type":    {grantTypePassword},
			"client_id":     {filled.ClientID},
			"client_secret": {filled.ClientSecret},
			"username":      {filled.Username},
			"password":      {filled.Password},
		},
	}

	var out TokenResponse
	if err := c.do(ctx, "token", r, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// RefreshToken exchanges a refresh token for a new access token.
//
// Parameters:
//   - refresh_token (string): Refresh token from a previous token response.
//   - [client_id] (string): OAuth client id, defaults to the last one used.
//   - [client_secret] (string): OAuth client secret, defaults to the last one used.
func (c *Client) RefreshToken(ctx context.Context, req *RefreshTokenRequest) (*TokenResponse, error) {
	if req == nil {
		req = &RefreshTokenRequest{}
	}
	filled := *req
	filled.ClientID, filled.ClientSecret = c.withClientCredentials(req.ClientID, req.ClientSecret)
	if err := c.validateRequest("refreshToken", &filled); err != nil {
		return nil, err
	}

	r := &httpclient.Request{
		Method:   http.MethodPost,
		Endpoint: uriToken,
		Form: url.Values{
			"grant_type":    {grantTypeRefreshToken},
			"client_id":     {filled.ClientID},
			"client_secret": {filled.ClientSecret},
			"refresh_token": {filled.RefreshToken},
		},
	}

	var out TokenResponse
	if err := c.do(ctx, "refreshToken", r, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Authenticate checks an access token and returns what it grants access to.
//
// Parameters:
//   - access_token (string): Access token.
func (c *Client) Authenticate(ctx context.Context, accessToken string) (*WhoAmI, error) {
	return c.whoAmI(ctx, "authenticate", accessToken)
}

// TokenInfo returns information about an access token.
//
// Parameters:
//   - access_token (string): Access token.
func (c *Client) TokenInfo(ctx context.Context, accessToken string) (*WhoAmI, error) {
	return c.whoAmI(ctx, "tokenInfo", accessToken)
}

func (c *Client) whoAmI(ctx context.Context, name, accessToken string) (*WhoAmI, error) {
	r, err := authenticated(accessToken, http.MethodGet, uriWhoAmI)
	if err != nil {
		return nil, err
	}

	var out WhoAmI
	if err := c.do(ctx, name, r, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
