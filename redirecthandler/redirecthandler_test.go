package redirecthandler

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/deploymenttheory/go-api-sdk-mondo/logger"
	"github.com/deploymenttheory/go-api-sdk-mondo/mocklogger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newRequest(t *testing.T, method, target string) *http.Request {
	t.Helper()
	req, err := http.NewRequest(method, target, nil)
	require.NoError(t, err)
	return req
}

// TestRedirectHandler_CheckRedirect covers method filtering, the redirect limit, loop
// detection, cross-host header stripping, and 303 handling.
func TestRedirectHandler_CheckRedirect(t *testing.T) {
	tests := []struct {
		name        string
		via         func(t *testing.T) []*http.Request
		next        string
		wantErr     error
		wantErrType any
		wantAuth    bool
		wantMethod  string
	}{
		{
			name: "non-idempotent method not followed",
			via: func(t *testing.T) []*http.Request {
				return []*http.Request{newRequest(t, http.MethodPost, "https://api.example.com/feed")}
			},
			next:    "https://api.example.com/feed2",
			wantErr: http.ErrUseLastResponse,
		},
		{
			name: "maximum redirects reached",
			via: func(t *testing.T) []*http.Request {
				return []*http.Request{
					newRequest(t, http.MethodGet, "https://api.example.com/a"),
					newRequest(t, http.MethodGet, "https://api.example.com/b"),
					newRequest(t, http.MethodGet, "https://api.example.com/c"),
				}
			},
			next:        "https://api.example.com/d",
			wantErrType: &MaxRedirectsError{},
		},
		{
			name: "redirect loop detected",
			via: func(t *testing.T) []*http.Request {
				return []*http.Request{
					newRequest(t, http.MethodGet, "https://api.example.com/a"),
					newRequest(t, http.MethodGet, "https://api.example.com/b"),
				}
			},
			next:        "https://api.example.com/a",
			wantErrType: &RedirectLoopError{},
		},
		{
			name: "same host keeps credentials",
			via: func(t *testing.T) []*http.Request {
				return []*http.Request{newRequest(t, http.MethodGet, "https://api.example.com/accounts")}
			},
			next:       "https://api.example.com/v2/accounts",
			wantAuth:   true,
			wantMethod: http.MethodGet,
		},
		{
			name: "cross host strips credentials",
			via: func(t *testing.T) []*http.Request {
				return []*http.Request{newRequest(t, http.MethodGet, "https://api.example.com/accounts")}
			},
			next:       "https://other.example.org/accounts",
			wantAuth:   false,
			wantMethod: http.MethodGet,
		},
		{
			name: "see other becomes GET",
			via: func(t *testing.T) []*http.Request {
				prev := newRequest(t, http.MethodDelete, "https://api.example.com/webhooks/wh_1")
				prev.Response = &http.Response{StatusCode: http.StatusSeeOther}
				return []*http.Request{prev}
			},
			next:       "https://api.example.com/webhooks",
			wantAuth:   true,
			wantMethod: http.MethodGet,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewRedirectHandler(logger.NewNopLogger(), 2)

			next := newRequest(t, http.MethodGet, tt.next)
			if tt.name == "see other becomes GET" {
				next.Method = http.MethodDelete
			}
			next.Header.Set("Authorization", "Bearer token")

			err := handler.checkRedirect(next, tt.via(t))

			switch {
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
			case tt.wantErrType != nil:
				require.Error(t, err)
				assert.IsType(t, tt.wantErrType, err)
			default:
				require.NoError(t, err)
				assert.Equal(t, tt.wantAuth, next.Header.Get("Authorization") != "")
				assert.Equal(t, tt.wantMethod, next.Method)
			}
		})
	}
}

func TestSetupRedirectHandler(t *testing.T) {
	t.Run("disabled returns the redirect response", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Redirect(w, r, "/elsewhere", http.StatusFound)
		}))
		defer server.Close()

		client := &http.Client{}
		require.NoError(t, SetupRedirectHandler(client, false, 0, logger.NewNopLogger()))

		resp, err := client.Get(server.URL)
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusFound, resp.StatusCode)
	})

	t.Run("enabled follows redirects", func(t *testing.T) {
		mux := http.NewServeMux()
		mux.HandleFunc("/start", func(w http.ResponseWriter, r *http.Request) {
			http.Redirect(w, r, "/end", http.StatusFound)
		})
		mux.HandleFunc("/end", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		})
		server := httptest.NewServer(mux)
		defer server.Close()

		mockLog := mocklogger.NewMockLogger()
		mockLog.On("Info", mock.Anything, mock.Anything)

		client := &http.Client{}
		require.NoError(t, SetupRedirectHandler(client, true, 3, mockLog))

		resp, err := client.Get(server.URL + "/start")
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		mockLog.AssertCalled(t, "Info", "Redirect handling enabled", mock.Anything)
	})

	t.Run("invalid max redirects", func(t *testing.T) {
		mockLog := mocklogger.NewMockLogger()
		mockLog.On("Error", "Invalid maxRedirects value", mock.Anything)

		err := SetupRedirectHandler(&http.Client{}, true, 0, mockLog)
		assert.Error(t, err)
		assert.False(t, errors.Is(err, http.ErrUseLastResponse))
	})
}
