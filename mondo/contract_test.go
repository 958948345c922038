// mondo/contract_test.go
package mondo

import (
	"context"
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestEndpointContracts checks the exact method, path, query, form and auth header each endpoint sends.
func TestEndpointContracts(t *testing.T) {
	tests := []struct {
		name      string
		call      func(ctx context.Context, c *Client) error
		method    string
		path      string
		query     url.Values
		form      url.Values
		wantToken bool
	}{
		{
			name: "token",
			call: func(ctx context.Context, c *Client) error {
				_, err := c.Token(ctx, &TokenRequest{ClientID: "cid", ClientSecret: "cs", Username: "u", Password: "p"})
				return err
			},
			method: http.MethodPost,
			path:   "/oauth2/token",
			query:  url.Values{},
			form: url.Values{
				"grant_type":    {"password"},
				"client_id":     {"cid"},
				"client_secret": {"cs"},
				"username":      {"u"},
				"password":      {"p"},
			},
		},
		{
			name: "refresh token",
			call: func(ctx context.Context, c *Client) error {
				_, err := c.RefreshToken(ctx, &RefreshTokenRequest{RefreshToken: "rt", ClientID: "cid", ClientSecret: "cs"})
				return err
			},
			method: http.MethodPost,
			path:   "/oauth2/token",
			query:  url.Values{},
			form: url.Values{
				"grant_type":    {"refresh_token"},
				"refresh_token": {"rt"},
				"client_id":     {"cid"},
				"client_secret": {"cs"},
			},
		},
		{
			name: "authenticate",
			call: func(ctx context.Context, c *Client) error {
				_, err := c.Authenticate(ctx, "tok")
				return err
			},
			method: http.MethodGet, path: "/ping/whoami", query: url.Values{}, form: url.Values{}, wantToken: true,
		},
		{
			name: "token info",
			call: func(ctx context.Context, c *Client) error {
				_, err := c.TokenInfo(ctx, "tok")
				return err
			},
			method: http.MethodGet, path: "/ping/whoami", query: url.Values{}, form: url.Values{}, wantToken: true,
		},
		{
			name: "accounts",
			call: func(ctx context.Context, c *Client) error {
				_, err := c.Accounts(ctx, "tok")
				return err
			},
			method: http.MethodGet, path: "/accounts", query: url.Values{}, form: url.Values{}, wantToken: true,
		},
		{
			name: "balance",
			call: func(ctx context.Context, c *Client) error {
				_, err := c.Balance(ctx, "tok", &BalanceRequest{AccountID: "acc_1"})
				return err
			},
			method: http.MethodGet, path: "/balance", query: url.Values{"account_id": {"acc_1"}}, form: url.Values{}, wantToken: true,
		},
		{
			name: "transactions",
			call: func(ctx context.Context, c *Client) error {
				_, err := c.Transactions(ctx, "tok", &TransactionsRequest{
					AccountID: "acc_1",
					Limit:     10,
					Since:     "2015-12-25T00:00:00.000Z",
					Expand:    []string{"merchant"},
				})
				return err
			},
			method: http.MethodGet,
			path:   "/transactions",
			query: url.Values{
				"account_id": {"acc_1"},
				"limit":      {"10"},
				"since":      {"2015-12-25T00:00:00.000Z"},
				"expand[]":   {"merchant"},
			},
			form:      url.Values{},
			wantToken: true,
		},
		{
			name: "transaction expanded",
			call: func(ctx context.Context, c *Client) error {
				_, err := c.Transaction(ctx, "tok", &TransactionRequest{TransactionID: "tx_1", Expand: true})
				return err
			},
			method: http.MethodGet, path: "/transactions/tx_1", query: url.Values{"expand[]": {"merchant"}}, form: url.Values{}, wantToken: true,
		},
		{
			name: "annotate transaction",
			call: func(ctx context.Context, c *Client) error {
				_, err := c.AnnotateTransaction(ctx, "tok", &AnnotateTransactionRequest{
					TransactionID: "tx_1",
					Metadata:      map[string]string{"foo": "bar", "baz": ""},
				})
				return err
			},
			method:    http.MethodPatch,
			path:      "/transactions/tx_1",
			query:     url.Values{},
			form:      url.Values{"metadata[foo]": {"bar"}, "metadata[baz]": {""}},
			wantToken: true,
		},
		{
			name: "create feed item",
			call: func(ctx context.Context, c *Client) error {
				return c.CreateFeedItem(ctx, "tok", &CreateFeedItemRequest{
					AccountID: "acc_1",
					URL:       "http://foo.com/bar",
					Params:    map[string]string{"title": "Hello world!", "image_url": "https://robohash.org/1.png"},
				})
			},
			method: http.MethodPost,
			path:   "/feed",
			query:  url.Values{},
			form: url.Values{
				"account_id":        {"acc_1"},
				"type":              {"basic"},
				"url":               {"http://foo.com/bar"},
				"params[title]":     {"Hello world!"},
				"params[image_url]": {"https://robohash.org/1.png"},
			},
			wantToken: true,
		},
		{
			name: "register webhook",
			call: func(ctx context.Context, c *Client) error {
				_, err := c.RegisterWebhook(ctx, "tok", &RegisterWebhookRequest{AccountID: "acc_1", URL: "http://foo.com/hook"})
				return err
			},
			method:    http.MethodPost,
			path:      "/webhooks",
			query:     url.Values{},
			form:      url.Values{"account_id": {"acc_1"}, "url": {"http://foo.com/hook"}},
			wantToken: true,
		},
		{
			name: "webhooks",
			call: func(ctx context.Context, c *Client) error {
				_, err := c.Webhooks(ctx, "tok", &WebhooksRequest{AccountID: "acc_1"})
				return err
			},
			method: http.MethodGet, path: "/webhooks", query: url.Values{"account_id": {"acc_1"}}, form: url.Values{}, wantToken: true,
		},
		{
			name: "delete webhook",
			call: func(ctx context.Context, c *Client) error {
				return c.DeleteWebhook(ctx, "tok", &DeleteWebhookRequest{WebhookID: "wh_1"})
			},
			method: http.MethodDelete, path: "/webhooks/wh_1", query: url.Values{}, form: url.Values{}, wantToken: true,
		},
		{
			name: "register attachment",
			call: func(ctx context.Context, c *Client) error {
				_, err := c.RegisterAttachment(ctx, "tok", &RegisterAttachmentRequest{ExternalID: "tx_1", FileURL: "http://foo.com/bar.jpg", FileType: "image/jpeg"})
				return err
			},
			method: http.MethodPost,
			path:   "/attachment/register",
			query:  url.Values{},
			form: url.Values{
				"external_id": {"tx_1"},
				"file_url":    {"http://foo.com/bar.jpg"},
				"file_type":   {"image/jpeg"},
			},
			wantToken: true,
		},
		{
			name: "upload attachment",
			call: func(ctx context.Context, c *Client) error {
				_, err := c.UploadAttachment(ctx, "tok", &UploadAttachmentRequest{FileName: "foo.jpg", FileType: "image/jpeg"})
				return err
			},
			method:    http.MethodPost,
			path:      "/attachment/upload",
			query:     url.Values{},
			form:      url.Values{"file_name": {"foo.jpg"}, "file_type": {"image/jpeg"}},
			wantToken: true,
		},
		{
			name: "deregister attachment",
			call: func(ctx context.Context, c *Client) error {
				return c.DeregisterAttachment(ctx, "tok", &DeregisterAttachmentRequest{AttachmentID: "attach_1"})
			},
			method:    http.MethodPost,
			path:      "/attachment/deregister",
			query:     url.Values{},
			form:      url.Values{"id": {"attach_1"}},
			wantToken: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := newFakeAPI(t, http.StatusOK, `{}`)
			client := newTestClient(t, api)

			require.NoError(t, tt.call(context.Background(), client))

			assert.Equal(t, 1, api.last.Hits)
			assert.Equal(t, tt.method, api.last.Method)
			assert.Equal(t, tt.path, api.last.Path)
			assert.Equal(t, tt.query, api.last.Query)
			assert.Equal(t, tt.form, api.last.Form)
			assert.Equal(t, "GoMondo-v0.1.0", api.last.Header.Get("client"))
			if tt.wantToken {
				assert.Equal(t, "Bearer tok", api.last.Header.Get("Authorization"))
			} else {
				assert.Empty(t, api.last.Header.Get("Authorization"))
			}
		})
	}
}
