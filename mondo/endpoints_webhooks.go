// mondo/endpoints_webhooks.go
package mondo

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/deploymenttheory/go-api-sdk-mondo/params"
)

const uriWebhooks = "/webhooks"

var webhookAliases = params.Aliases{
	{Name: "webhook_id", Aliases: []string{"id"}},
}

// RegisterWebhookRequest registers url to receive events for an account.
type RegisterWebhookRequest struct {
	AccountID string `json:"account_id" validate:"required"`
	URL       string `json:"url" validate:"required,url"`
}

// NewRegisterWebhookRequest builds a RegisterWebhookRequest from loosely typed parameters.
func NewRegisterWebhookRequest(p params.Params) *RegisterWebhookRequest {
	return &RegisterWebhookRequest{AccountID: p.String("account_id"), URL: p.String("url")}
}

// WebhooksRequest selects the account whose webhooks are listed.
type WebhooksRequest struct {
	AccountID string `json:"account_id" validate:"required"`
}

// NewWebhooksRequest builds a WebhooksRequest from loosely typed parameters.
func NewWebhooksRequest(p params.Params) *WebhooksRequest {
	return &WebhooksRequest{AccountID: p.String("account_id")}
}

// DeleteWebhookRequest selects the webhook to delete.
type DeleteWebhookRequest struct {
	WebhookID string `json:"webhook_id" validate:"required"`
}

// NewDeleteWebhookRequest builds a DeleteWebhookRequest; id is accepted for webhook_id.
func NewDeleteWebhookRequest(p params.Params) *DeleteWebhookRequest {
	p = params.Dealias(p, webhookAliases)
	return &DeleteWebhookRequest{WebhookID: p.String("webhook_id")}
}

// RegisterWebhook registers a webhook for an account.
//
// Parameters:
//   - access_token (string): Access token.
//   - account_id (string): Account to receive events for.
//   - url (string): URL events are posted to.
func (c *Client) RegisterWebhook(ctx context.Context, accessToken string, req *RegisterWebhookRequest) (*Webhook, error) {
	if err := c.validateRequest("registerWebhook", req); err != nil {
		return nil, err
	}
	r, err := authenticated(accessToken, http.MethodPost, uriWebhooks)
	if err != nil {
		return nil, err
	}
	r.Form = url.Values{"account_id": {req.AccountID}, "url": {req.URL}}

	var out struct {
		Webhook Webhook `json:"webhook"`
	}
	if err := c.do(ctx, "registerWebhook", r, &out); err != nil {
		return nil, err
	}
	return &out.Webhook, nil
}

// Webhooks lists the webhooks registered for an account.
//
// Parameters:
//   - access_token (string): Access token.
//   - account_id (string): Account to list webhooks for.
func (c *Client) Webhooks(ctx context.Context, accessToken string, req *WebhooksRequest) ([]Webhook, error) {
	if err := c.validateRequest("webhooks", req); err != nil {
		return nil, err
	}
	r, err := authenticated(accessToken, http.MethodGet, uriWebhooks)
	if err != nil {
		return nil, err
	}
	r.Query = url.Values{"account_id": {req.AccountID}}

	var out struct {
		Webhooks []Webhook `json:"webhooks"`
	}
	if err := c.do(ctx, "webhooks", r, &out); err != nil {
		return nil, err
	}
	return out.Webhooks, nil
}

// DeleteWebhook deletes a webhook.
//
// Parameters:
//   - access_token (string): Access token.
//   - webhook_id (string): Webhook to delete.
//   - [id] (string): Alias for webhook_id.
func (c *Client) DeleteWebhook(ctx context.Context, accessToken string, req *DeleteWebhookRequest) error {
	if err := c.validateRequest("deleteWebhook", req); err != nil {
		return err
	}
	r, err := authenticated(accessToken, http.MethodDelete, fmt.Sprintf("%s/%s", uriWebhooks, url.PathEscape(req.WebhookID)))
	if err != nil {
		return err
	}

	return c.do(ctx, "deleteWebhook", r, nil)
}
