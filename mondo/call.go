// mondo/call.go
package mondo

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/deploymenttheory/go-api-sdk-mondo/params"
)

// Operation runs one endpoint from a loosely typed parameter set.
type Operation func(ctx context.Context, c *Client, p params.Params) error

// operations maps command names to endpoints. Names match the lowerCamel method names.
var operations = map[string]Operation{
	"token": func(ctx context.Context, c *Client, p params.Params) error {
		_, err := c.Token(ctx, NewTokenRequest(p))
		return err
	},
	"refreshToken": func(ctx context.Context, c *Client, p params.Params) error {
		_, err := c.RefreshToken(ctx, NewRefreshTokenRequest(p))
		return err
	},
	"authenticate": func(ctx context.Context, c *Client, p params.Params) error {
		_, err := c.Authenticate(ctx, p.String("access_token"))
		return err
	},
	"tokenInfo": func(ctx context.Context, c *Client, p params.Params) error {
		_, err := c.TokenInfo(ctx, p.String("access_token"))
		return err
	},
	"accounts": func(ctx context.Context, c *Client, p params.Params) error {
		_, err := c.Accounts(ctx, p.String("access_token"))
		return err
	},
	"balance": func(ctx context.Context, c *Client, p params.Params) error {
		_, err := c.Balance(ctx, p.String("access_token"), NewBalanceRequest(p))
		return err
	},
	"transactions": func(ctx context.Context, c *Client, p params.Params) error {
		_, err := c.Transactions(ctx, p.String("access_token"), NewTransactionsRequest(p))
		return err
	},
	"transaction": func(ctx context.Context, c *Client, p params.Params) error {
		_, err := c.Transaction(ctx, p.String("access_token"), NewTransactionRequest(p))
		return err
	},
	"annotateTransaction": func(ctx context.Context, c *Client, p params.Params) error {
		_, err := c.AnnotateTransaction(ctx, p.String("access_token"), NewAnnotateTransactionRequest(p))
		return err
	},
	"createFeedItem": func(ctx context.Context, c *Client, p params.Params) error {
		return c.CreateFeedItem(ctx, p.String("access_token"), NewCreateFeedItemRequest(p))
	},
	"registerWebhook": func(ctx context.Context, c *Client, p params.Params) error {
		_, err := c.RegisterWebhook(ctx, p.String("access_token"), NewRegisterWebhookRequest(p))
		return err
	},
	"webhooks": func(ctx context.Context, c *Client, p params.Params) error {
		_, err := c.Webhooks(ctx, p.String("access_token"), NewWebhooksRequest(p))
		return err
	},
	"deleteWebhook": func(ctx context.Context, c *Client, p params.Params) error {
		return c.DeleteWebhook(ctx, p.String("access_token"), NewDeleteWebhookRequest(p))
	},
	"registerAttachment": func(ctx context.Context, c *Client, p params.Params) error {
		_, err := c.RegisterAttachment(ctx, p.String("access_token"), NewRegisterAttachmentRequest(p))
		return err
	},
	"uploadAttachment": func(ctx context.Context, c *Client, p params.Params) error {
		_, err := c.UploadAttachment(ctx, p.String("access_token"), NewUploadAttachmentRequest(p))
		return err
	},
	"deregisterAttachment": func(ctx context.Context, c *Client, p params.Params) error {
		return c.DeregisterAttachment(ctx, p.String("access_token"), NewDeregisterAttachmentRequest(p))
	},
}

// Operations returns the names accepted by Call, sorted.
func Operations() []string {
	names := make([]string, 0, len(operations))
	for name := range operations {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// HasOperation reports whether Call accepts name.
func HasOperation(name string) bool {
	_, ok := operations[name]
	return ok
}

// Call runs the named endpoint with p and returns the response body as sent by the API, envelope
// included. Endpoints that answer with an empty body return nil.
func (c *Client) Call(ctx context.Context, name string, p params.Params) (json.RawMessage, error) {
	op, ok := operations[name]
	if !ok {
		return nil, fmt.Errorf("unknown operation %q", name)
	}

	var raw json.RawMessage
	if err := op(context.WithValue(ctx, rawResponseKey{}, &raw), c, p); err != nil {
		return nil, err
	}
	return raw, nil
}
