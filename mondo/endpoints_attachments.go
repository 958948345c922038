// mondo/endpoints_attachments.go
package mondo

import (
	"context"
	"net/http"
	"net/url"

	"github.com/deploymenttheory/go-api-sdk-mondo/params"
)

const (
	uriAttachmentRegister   = "/attachment/register"
	uriAttachmentUpload     = "/attachment/upload"
	uriAttachmentDeregister = "/attachment/deregister"
)

var registerAttachmentAliases = params.Aliases{
	{Name: "external_id", Aliases: []string{"transaction_id"}},
	{Name: "file_type", Aliases: []string{"type"}},
	{Name: "file_url", Aliases: []string{"url"}},
}

var uploadAttachmentAliases = params.Aliases{
	{Name: "file_name", Aliases: []string{"file", "name"}},
	{Name: "file_type", Aliases: []string{"type"}},
}

var deregisterAttachmentAliases = params.Aliases{
	{Name: "attachment_id", Aliases: []string{"id"}},
}

// RegisterAttachmentRequest attaches an already hosted image to a transaction.
type RegisterAttachmentRequest struct {
	ExternalID string `json:"external_id" validate:"required"`
	FileURL    string `json:"file_url" validate:"required,url"`
	FileType   string `json:"file_type" validate:"required"`
}

// NewRegisterAttachmentRequest builds a RegisterAttachmentRequest. transaction_id, url and type
// are accepted for external_id, file_url and file_type.
func NewRegisterAttachmentRequest(p params.Params) *RegisterAttachmentRequest {
	p = params.Dealias(p, registerAttachmentAliases)
	return &RegisterAttachmentRequest{
		ExternalID: p.String("external_id"),
		FileURL:    p.String("file_url"),
		FileType:   p.String("file_type"),
	}
}

// UploadAttachmentRequest asks for a temporary URL to upload an image to.
type UploadAttachmentRequest struct {
	FileName string `json:"file_name" validate:"required"`
	FileType string `json:"file_type" validate:"required"`
}

// NewUploadAttachmentRequest builds an UploadAttachmentRequest. file or name are accepted for
// file_name, and type for file_type.
func NewUploadAttachmentRequest(p params.Params) *UploadAttachmentRequest {
	p = params.Dealias(p, uploadAttachmentAliases)
	return &UploadAttachmentRequest{
		FileName: p.String("file_name"),
		FileType: p.String("file_type"),
	}
}

// DeregisterAttachmentRequest selects the attachment to remove.
type DeregisterAttachmentRequest struct {
	AttachmentID string `json:"attachment_id" validate:"required"`
}

// NewDeregisterAttachmentRequest builds a DeregisterAttachmentRequest; id is accepted for attachment_id.
func NewDeregisterAttachmentRequest(p params.Params) *DeregisterAttachmentRequest {
	p = params.Dealias(p, deregisterAttachmentAliases)
	return &DeregisterAttachmentRequest{AttachmentID: p.String("attachment_id")}
}

// RegisterAttachment attaches a hosted image to a transaction.
//
// Parameters:
//   - access_token (string): Access token.
//   - external_id (string): Transaction the image belongs to.
//   - [transaction_id] (string): Alias for external_id.
//   - file_url (string): URL of the image.
//   - [url] (string): Alias for file_url.
//   - file_type (string): MIME type of the image.
//   - [type] (string): Alias for file_type.
func (c *Client) RegisterAttachment(ctx context.Context, accessToken string, req *RegisterAttachmentRequest) (*Attachment, error) {
	if err := c.validateRequest("registerAttachment", req); err != nil {
		return nil, err
	}
	r, err := authenticated(accessToken, http.MethodPost, uriAttachmentRegister)
	if err != nil {
		return nil, err
	}
	r.Form = url.Values{
		"external_id": {req.ExternalID},
		"file_url":    {req.FileURL},
		"file_type":   {req.FileType},
	}

	var out struct {
		Attachment Attachment `json:"attachment"`
	}
	if err := c.do(ctx, "registerAttachment", r, &out); err != nil {
		return nil, err
	}
	return &out.Attachment, nil
}

// UploadAttachment returns a URL to upload an image to before registering it.
//
// Parameters:
//   - access_token (string): Access token.
//   - file_name (string): Name of the file to upload.
//   - [file] (string): Alias for file_name.
//   - [name] (string): Alias for file_name.
//   - file_type (string): MIME type of the file.
//   - [type] (string): Alias for file_type.
func (c *Client) UploadAttachment(ctx context.Context, accessToken string, req *UploadAttachmentRequest) (*UploadAttachmentResponse, error) {
	if err := c.validateRequest("uploadAttachment", req); err != nil {
		return nil, err
	}
	r, err := authenticated(accessToken, http.MethodPost, uriAttachmentUpload)
	if err != nil {
		return nil, err
	}
	r.Form = url.Values{"file_name": {req.FileName}, "file_type": {req.FileType}}

	var out UploadAttachmentResponse
	if err := c.do(ctx, "uploadAttachment", r, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeregisterAttachment removes an attachment from its transaction.
//
// Parameters:
//   - access_token (string): Access token.
//   - attachment_id (string): Attachment to remove.
//   - [id] (string): Alias for attachment_id.
func (c *Client) DeregisterAttachment(ctx context.Context, accessToken string, req *DeregisterAttachmentRequest) error {
	if err := c.validateRequest("deregisterAttachment", req); err != nil {
		return err
	}
	r, err := authenticated(accessToken, http.MethodPost, uriAttachmentDeregister)
	if err != nil {
		return err
	}
	r.Form = url.Values{"id": {req.AttachmentID}}

	return c.do(ctx, "deregisterAttachment", r, nil)
}
