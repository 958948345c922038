// mondo/endpoints_transactions.go
package mondo

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/deploymenttheory/go-api-sdk-mondo/params"
)

const (
	uriTransactions = "/transactions"

	expandMerchant = "merchant"
)

var transactionAliases = params.Aliases{
	{Name: "transaction_id", Aliases: []string{"id"}},
	{Name: "expand", Aliases: []string{"expanded"}},
}

var annotateAliases = params.Aliases{
	{Name: "transaction_id", Aliases: []string{"id"}},
	{Name: "metadata", Aliases: []string{"annotation"}},
}

// TransactionsRequest filters the transaction list of an account. Since and Before take an
// ISO-8601 timestamp (see params.FormatDate); Since also accepts a transaction id.
type TransactionsRequest struct {
	AccountID string   `json:"account_id" validate:"required"`
	Limit     int      `json:"limit" validate:"gte=0,lte=100"`
	Since     string   `json:"since"`
	Before    string   `json:"before"`
	Expand    []string `json:"expand"`
}

// NewTransactionsRequest builds a TransactionsRequest from loosely typed parameters. time.Time
// values for since and before are formatted; strings are sent unchanged.
func NewTransactionsRequest(p params.Params) *TransactionsRequest {
	return &TransactionsRequest{
		AccountID: p.String("account_id"),
		Limit:     p.Int("limit"),
		Since:     p.String("since"),
		Before:    p.String("before"),
		Expand:    p.Strings("expand"),
	}
}

func (r *TransactionsRequest) query() url.Values {
	q := url.Values{"account_id": {r.AccountID}}
	if r.Limit > 0 {
		q.Set("limit", strconv.Itoa(r.Limit))
	}
	if r.Since != "" {
		q.Set("since", r.Since)
	}
	if r.Before != "" {
		q.Set("before", r.Before)
	}
	for _, e := range r.Expand {
		q.Add("expand[]", e)
	}
	return q
}

// TransactionRequest selects a single transaction.
type TransactionRequest struct {
	TransactionID string `json:"transaction_id" validate:"required"`
	Expand        bool   `json:"expand"`
}

// NewTransactionRequest builds a TransactionRequest. id is accepted for transaction_id, and any
// truthy expand value (including "merchant") expands the merchant.
func NewTransactionRequest(p params.Params) *TransactionRequest {
	p = params.Dealias(p, transactionAliases)
	return &TransactionRequest{
		TransactionID: p.String("transaction_id"),
		Expand:        p.Bool("expand"),
	}
}

// AnnotateTransactionRequest sets metadata keys on a transaction. An empty value removes the key.
type AnnotateTransactionRequest struct {
	TransactionID string            `json:"transaction_id" validate:"required"`
	Metadata      map[string]string `json:"metadata" validate:"required,min=1"`
}

// NewAnnotateTransactionRequest builds an AnnotateTransactionRequest. Metadata may be given as a
// map under metadata or annotation, as dotted metadata.<key> entries, or as loose top-level keys.
func NewAnnotateTransactionRequest(p params.Params) *AnnotateTransactionRequest {
	p = params.Dealias(p, annotateAliases)

	metadata := map[string]string{}
	for key, value := range p.Map("metadata") {
		metadata[key] = metadataValue(value)
	}

	for key, value := range p {
		switch key {
		case "transaction_id", "metadata", "access_token":
			continue
		}
		name := key
		for _, prefix := range []string{"metadata.", "annotation."} {
			name = strings.TrimPrefix(name, prefix)
		}
		if _, exists := metadata[name]; exists && name == key {
			continue
		}
		metadata[name] = metadataValue(value)
	}

	if len(metadata) == 0 {
		metadata = nil
	}
	return &AnnotateTransactionRequest{
		TransactionID: p.String("transaction_id"),
		Metadata:      metadata,
	}
}

func metadataValue(v any) string {
	if v == nil {
		return ""
	}
	return params.Params{"v": v}.String("v")
}

// Transactions lists the transactions of an account.
//
// Parameters:
//   - access_token (string): Access token.
//   - account_id (string): Account to list transactions for.
//   - [limit] (int): Maximum number of transactions to return (max 100).
//   - [since] (date): Only transactions created after this time or transaction id.
//   - [before] (date): Only transactions created before this time.
//   - [expand] (string): Related object to expand, e.g. merchant.
func (c *Client) Transactions(ctx context.Context, accessToken string, req *TransactionsRequest) ([]Transaction, error) {
	if err := c.validateRequest("transactions", req); err != nil {
		return nil, err
	}
	r, err := authenticated(accessToken, http.MethodGet, uriTransactions)
	if err != nil {
		return nil, err
	}
	r.Query = req.query()

	var out struct {
		Transactions []Transaction `json:"transactions"`
	}
	if err := c.do(ctx, "transactions", r, &out); err != nil {
		return nil, err
	}
	return out.Transactions, nil
}

// Transaction returns a single transaction.
//
// Parameters:
//   - access_token (string): Access token.
//   - transaction_id (string): Transaction to fetch.
//   - [id] (string): Alias for transaction_id.
//   - [expand] (string): Expand the merchant details. Any truthy value works, e.g. merchant or true.
func (c *Client) Transaction(ctx context.Context, accessToken string, req *TransactionRequest) (*Transaction, error) {
	if err := c.validateRequest("transaction", req); err != nil {
		return nil, err
	}
	r, err := authenticated(accessToken, http.MethodGet, transactionURI(req.TransactionID))
	if err != nil {
		return nil, err
	}
	if req.Expand {
		r.Query = url.Values{"expand[]": {expandMerchant}}
	}

	var out struct {
		Transaction Transaction `json:"transaction"`
	}
	if err := c.do(ctx, "transaction", r, &out); err != nil {
		return nil, err
	}
	return &out.Transaction, nil
}

// AnnotateTransaction stores metadata on a transaction.
//
// Parameters:
//   - access_token (string): Access token.
//   - transaction_id (string): Transaction to annotate.
//   - [id] (string): Alias for transaction_id.
//   - metadata (object): Annotation key/value pairs; an empty value removes the key.
//   - [annotation] (object): Alias for metadata.
func (c *Client) AnnotateTransaction(ctx context.Context, accessToken string, req *AnnotateTransactionRequest) (*Transaction, error) {
	if err := c.validateRequest("annotateTransaction", req); err != nil {
		return nil, err
	}
	r, err := authenticated(accessToken, http.MethodPatch, transactionURI(req.TransactionID))
	if err != nil {
		return nil, err
	}

	metadata := make(map[string]any, len(req.Metadata))
	for key, value := range req.Metadata {
		metadata[key] = value
	}
	r.Form = params.Bracketify(metadata, "metadata")

	var out struct {
		Transaction Transaction `json:"transaction"`
	}
	if err := c.do(ctx, "annotateTransaction", r, &out); err != nil {
		return nil, err
	}
	return &out.Transaction, nil
}

func transactionURI(id string) string {
	return fmt.Sprintf("%s/%s", uriTransactions, url.PathEscape(id))
}
