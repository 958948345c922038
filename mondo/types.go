// mondo/types.go
package mondo

import (
	"bytes"
	"encoding/json"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// zeroDecimalCurrencies have no minor unit; every other ISO 4217 code the API returns uses two.
var zeroDecimalCurrencies = map[string]bool{
	"BIF": true, "CLP": true, "DJF": true, "GNF": true, "ISK": true, "JPY": true, "KMF": true,
	"KRW": true, "PYG": true, "RWF": true, "UGX": true, "VND": true, "VUV": true, "XAF": true,
	"XOF": true, "XPF": true,
}

// MinorUnits converts an amount in minor units (pennies, cents) of currency to a decimal value.
func MinorUnits(amount int64, currency string) decimal.Decimal {
	if zeroDecimalCurrencies[strings.ToUpper(currency)] {
		return decimal.NewFromInt(amount)
	}
	return decimal.New(amount, -2)
}

// TokenResponse is returned by the token endpoints.
type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	ClientID     string `json:"client_id"`
	ExpiresIn    int    `json:"expires_in"`
	RefreshToken string `json:"refresh_token,omitempty"`
	TokenType    string `json:"token_type"`
	UserID       string `json:"user_id"`
}

// WhoAmI describes the access token used for a request.
type WhoAmI struct {
	Authenticated bool   `json:"authenticated"`
	ClientID      string `json:"client_id"`
	UserID        string `json:"user_id"`
}

// Account is a customer account.
type Account struct {
	ID            string    `json:"id"`
	Description   string    `json:"description"`
	Created       time.Time `json:"created"`
	AccountNumber string    `json:"account_number,omitempty"`
	SortCode      string    `json:"sort_code,omitempty"`
}

// Balance is the balance of an account in minor units.
type Balance struct {
	Balance    int64  `json:"balance"`
	Currency   string `json:"currency"`
	SpendToday int64  `json:"spend_today"`
}

// Amount returns the balance as a decimal in major units.
func (b Balance) Amount() decimal.Decimal {
	return MinorUnits(b.Balance, b.Currency)
}

// SpendTodayAmount returns today's spend as a decimal in major units.
func (b Balance) SpendTodayAmount() decimal.Decimal {
	return MinorUnits(b.SpendToday, b.Currency)
}

// Address is the location of a merchant.
type Address struct {
	Address   string  `json:"address"`
	City      string  `json:"city"`
	Country   string  `json:"country"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Postcode  string  `json:"postcode"`
	Region    string  `json:"region"`
}

// Merchant is either a bare merchant id or, when the transaction was fetched with the merchant
// expanded, the full merchant object. Expanded reports which form was received.
type Merchant struct {
	ID       string            `json:"id"`
	GroupID  string            `json:"group_id,omitempty"`
	Created  *time.Time        `json:"created,omitempty"`
	Name     string            `json:"name,omitempty"`
	Logo     string            `json:"logo,omitempty"`
	Emoji    string            `json:"emoji,omitempty"`
	Category string            `json:"category,omitempty"`
	Online   bool              `json:"online,omitempty"`
	Address  *Address          `json:"address,omitempty"`
	Metadata map[string]string `json:"metadata,omitempty"`
	Expanded bool              `json:"-"`
}

// UnmarshalJSON accepts a merchant id string, null, or a merchant object.
func (m *Merchant) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*m = Merchant{}
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var id string
		if err := json.Unmarshal(data, &id); err != nil {
			return err
		}
		*m = Merchant{ID: id}
		return nil
	}

	type merchant Merchant
	var full merchant
	if err := json.Unmarshal(data, &full); err != nil {
		return err
	}
	*m = Merchant(full)
	m.Expanded = true
	return nil
}

// Transaction is a single account transaction.
type Transaction struct {
	ID             string            `json:"id"`
	AccountID      string            `json:"account_id,omitempty"`
	Created        time.Time         `json:"created"`
	Description    string            `json:"description"`
	Amount         int64             `json:"amount"`
	Currency       string            `json:"currency"`
	LocalAmount    int64             `json:"local_amount,omitempty"`
	LocalCurrency  string            `json:"local_currency,omitempty"`
	AccountBalance int64             `json:"account_balance"`
	Category       string            `json:"category,omitempty"`
	Notes          string            `json:"notes,omitempty"`
	IsLoad         bool              `json:"is_load"`
	Settled        string            `json:"settled,omitempty"`
	DeclineReason  string            `json:"decline_reason,omitempty"`
	Merchant       *Merchant         `json:"merchant,omitempty"`
	Metadata       map[string]string `json:"metadata,omitempty"`
	Attachments    []Attachment      `json:"attachments,omitempty"`
}

// Value returns the transaction amount as a decimal in major units. Debits are negative.
func (t Transaction) Value() decimal.Decimal {
	return MinorUnits(t.Amount, t.Currency)
}

// BalanceAfter returns the account balance after the transaction as a decimal in major units.
func (t Transaction) BalanceAfter() decimal.Decimal {
	return MinorUnits(t.AccountBalance, t.Currency)
}

// Webhook is a registered webhook.
type Webhook struct {
	ID        string `json:"id"`
	AccountID string `json:"account_id"`
	URL       string `json:"url"`
}

// Attachment is an image attached to a transaction.
type Attachment struct {
	ID         string     `json:"id"`
	UserID     string     `json:"user_id,omitempty"`
	ExternalID string     `json:"external_id"`
	FileURL    string     `json:"file_url"`
	FileType   string     `json:"file_type"`
	Created    *time.Time `json:"created,omitempty"`
}

// UploadAttachmentResponse holds the URLs returned by the upload endpoint. The file is PUT
// to UploadURL and will then be served from FileURL.
type UploadAttachmentResponse struct {
	FileURL   string `json:"file_url"`
	UploadURL string `json:"upload_url"`
}
