// mondo/client_test.go
package mondo

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/deploymenttheory/go-api-sdk-mondo/httpclient"
	"github.com/deploymenttheory/go-api-sdk-mondo/response"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// captured is what the fake API received.
type captured struct {
	Method string
	Path   string
	Query  url.Values
	Form   url.Values
	Header http.Header
	Hits   int
}

// fakeAPI answers every request with status and body and records the last request.
type fakeAPI struct {
	t      *testing.T
	server *httptest.Server
	last   captured
	status int
	body   string
}

func newFakeAPI(t *testing.T, status int, body string) *fakeAPI {
	t.Helper()
	api := &fakeAPI{t: t, status: status, body: body}
	api.server = httptest.NewServer(http.HandlerFunc(api.handle))
	t.Cleanup(api.server.Close)
	return api
}

func (a *fakeAPI) handle(w http.ResponseWriter, r *http.Request) {
	data, _ := io.ReadAll(r.Body)
	form, err := url.ParseQuery(string(data))
	if err != nil {
		a.t.Errorf("malformed form body %q: %v", data, err)
	}
	a.last = captured{
		Method: r.Method,
		Path:   r.URL.Path,
		Query:  r.URL.Query(),
		Form:   form,
		Header: r.Header.Clone(),
		Hits:   a.last.Hits + 1,
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(a.status)
	io.WriteString(w, a.body)
}

func newTestClient(t *testing.T, api *fakeAPI) *Client {
	t.Helper()
	client, err := NewClient(httpclient.ClientConfig{LogLevel: "LogLevelNone"})
	require.NoError(t, err)
	client.SetHost(api.server.URL)
	client.HTTP.SetHTTPClient(api.server.Client())
	return client
}

func TestNewClientDefaults(t *testing.T) {
	client, err := NewClient(httpclient.ClientConfig{LogLevel: "LogLevelNone"})
	require.NoError(t, err)
	assert.Equal(t, "https://production-api.gmon.io", client.Host())

	client.SetHost("staging-api.gmon.io")
	assert.Equal(t, "https://staging-api.gmon.io", client.Host())
}

func TestRememberedClientCredentials(t *testing.T) {
	api := newFakeAPI(t, http.StatusOK, `{"access_token":"at","refresh_token":"rt","token_type":"Bearer","expires_in":21600}`)
	client := newTestClient(t, api)

	token, err := client.Token(context.Background(), &TokenRequest{
		ClientID:     "oauthclient_1",
		ClientSecret: "secret",
		Username:     "user",
		Password:     "pass",
	})
	require.NoError(t, err)
	assert.Equal(t, "at", token.AccessToken)

	id, secret := client.ClientCredentials()
	assert.Equal(t, "oauthclient_1", id)
	assert.Equal(t, "secret", secret)

	_, err = client.RefreshToken(context.Background(), NewRefreshTokenRequest("rt"))
	require.NoError(t, err)
	assert.Equal(t, url.Values{
		"grant_type":    {"refresh_token"},
		"refresh_token": {"rt"},
		"client_id":     {"oauthclient_1"},
		"client_secret": {"secret"},
	}, api.last.Form)
}

func TestAPIErrorPropagates(t *testing.T) {
	api := newFakeAPI(t, http.StatusForbidden, `{"code":"forbidden.insufficient_permissions","message":"Access forbidden"}`)
	client := newTestClient(t, api)

	_, err := client.Balance(context.Background(), "tok", &BalanceRequest{AccountID: "invalid_account"})
	require.Error(t, err)

	apiErr, ok := response.AsAPIError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusForbidden, apiErr.StatusCode)
	assert.Equal(t, "forbidden.insufficient_permissions", apiErr.Code)
	assert.Equal(t, 1, api.last.Hits)
}

func TestValidationHappensBeforeTraffic(t *testing.T) {
	api := newFakeAPI(t, http.StatusOK, `{}`)
	client := newTestClient(t, api)
	ctx := context.Background()

	_, err := client.Transaction(ctx, "tok", &TransactionRequest{})
	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "transaction", validationErr.Operation)
	assert.Contains(t, err.Error(), "transaction_id")

	err = client.DeleteWebhook(ctx, "tok", nil)
	assert.EqualError(t, err, "deleteWebhook: request is required")

	_, err = client.Accounts(ctx, "")
	assert.ErrorIs(t, err, ErrMissingAccessToken)

	_, err = client.Token(ctx, &TokenRequest{Username: "u", Password: "p"})
	require.ErrorAs(t, err, &validationErr)

	assert.Equal(t, 0, api.last.Hits)
}
