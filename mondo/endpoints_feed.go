// mondo/endpoints_feed.go
package mondo

import (
	"context"
	"net/http"
	"net/url"

	"github.com/deploymenttheory/go-api-sdk-mondo/params"
)

const (
	uriFeed = "/feed"

	// FeedItemTypeBasic is the only feed item type the API supports.
	FeedItemTypeBasic = "basic"
)

// feedItemParams are the keys of the params object of a basic feed item. The constructor lifts
// them from the top level so callers need not nest them.
var feedItemParams = []string{"title", "image_url", "body", "background_color", "title_color", "body_color"}

// CreateFeedItemRequest describes a feed item. Params carries the type specific fields; a basic
// item requires title and image_url.
type CreateFeedItemRequest struct {
	AccountID string            `json:"account_id" validate:"required"`
	Type      string            `json:"type"`
	URL       string            `json:"url" validate:"omitempty,url"`
	Params    map[string]string `json:"params" validate:"required"`
}

// NewCreateFeedItemRequest builds a CreateFeedItemRequest. Feed item fields are read from the
// params map and from top-level keys such as title and image_url.
func NewCreateFeedItemRequest(p params.Params) *CreateFeedItemRequest {
	itemParams := map[string]string{}
	for key, value := range p.Map("params") {
		itemParams[key] = params.Params{key: value}.String(key)
	}
	for _, key := range feedItemParams {
		if v := p.String(key); v != "" {
			if _, exists := itemParams[key]; !exists {
				itemParams[key] = v
			}
		}
	}
	if len(itemParams) == 0 {
		itemParams = nil
	}

	return &CreateFeedItemRequest{
		AccountID: p.String("account_id"),
		Type:      p.String("type"),
		URL:       p.String("url"),
		Params:    itemParams,
	}
}

func (r *CreateFeedItemRequest) form() url.Values {
	itemType := r.Type
	if itemType == "" {
		itemType = FeedItemTypeBasic
	}

	form := url.Values{
		"account_id": {r.AccountID},
		"type":       {itemType},
	}
	if r.URL != "" {
		form.Set("url", r.URL)
	}

	itemParams := make(map[string]any, len(r.Params))
	for key, value := range r.Params {
		itemParams[key] = value
	}
	return params.Merge(form, params.Bracketify(itemParams, "params"))
}

// CreateFeedItem publishes a new item to an account's feed.
//
// Parameters:
//   - access_token (string): Access token.
//   - account_id (string): Account whose feed receives the item.
//   - [type] (string): Feed item type, defaults to basic.
//   - [url] (string): URL opened when the item is tapped.
//   - [params] (object): Feed item fields as key/value pairs.
//   - [title] (string): Title of the item, required for basic items.
//   - [image_url] (string): URL of the item's image, required for basic items.
//   - [body] (string): Body text.
//   - [background_color] (string): Background colour as a hex code.
//   - [title_color] (string): Title colour as a hex code.
//   - [body_color] (string): Body colour as a hex code.
func (c *Client) CreateFeedItem(ctx context.Context, accessToken string, req *CreateFeedItemRequest) error {
	if err := c.validateRequest("createFeedItem", req); err != nil {
		return err
	}
	r, err := authenticated(accessToken, http.MethodPost, uriFeed)
	if err != nil {
		return err
	}
	r.Form = req.form()

	return c.do(ctx, "createFeedItem", r, nil)
}
