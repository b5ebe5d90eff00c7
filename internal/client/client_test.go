package client_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/goto/backoffice/internal/client"
	"github.com/goto/backoffice/pkg/apierror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type item struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func newServer(t *testing.T, handler http.HandlerFunc) *client.Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return client.New(client.Config{BaseURL: srv.URL + "/"})
}

func TestExecuteErrors(t *testing.T) {
	type testCase struct {
		Description  string
		Status       int
		Body         string
		ExpectCode   string
		ExpectMsg    string
		ExpectDetail interface{}
	}

	var testCases = []testCase{
		{
			Description: "should use code and message from the error body",
			Status:      http.StatusBadRequest,
			Body:        `{"code":"FOO","message":"bar"}`,
			ExpectCode:  "FOO",
			ExpectMsg:   "bar",
		},
		{
			Description:  "should keep details from the error body",
			Status:       http.StatusUnprocessableEntity,
			Body:         `{"code":"VALIDATION","message":"bad","details":{"field":"name"}}`,
			ExpectCode:   "VALIDATION",
			ExpectMsg:    "bad",
			ExpectDetail: map[string]interface{}{"field": "name"},
		},
		{
			Description: "should fall back when the body is not json",
			Status:      http.StatusInternalServerError,
			Body:        `<html>oops</html>`,
			ExpectCode:  apierror.CodeUnknown,
			ExpectMsg:   "HTTP 500: Internal Server Error",
		},
		{
			Description: "should fall back when the body is empty",
			Status:      http.StatusServiceUnavailable,
			ExpectCode:  apierror.CodeUnknown,
			ExpectMsg:   "HTTP 503: Service Unavailable",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Description, func(t *testing.T) {
			c := newServer(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.Status)
				io.WriteString(w, tc.Body)
			})

			_, err := client.Get[item](context.Background(), c, "/api/items/1")

			e, ok := apierror.As(err)
			require.True(t, ok)
			assert.Equal(t, apierror.KindResponse, e.Kind)
			assert.Equal(t, tc.Status, e.Status)
			assert.Equal(t, tc.ExpectCode, e.Code)
			assert.Equal(t, tc.ExpectMsg, e.Message)
			assert.Equal(t, tc.ExpectDetail, e.Details)
		})
	}
}

func TestExecuteNetworkFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	baseURL := srv.URL
	srv.Close()

	c := client.New(client.Config{BaseURL: baseURL})
	_, err := client.Get[item](context.Background(), c, "/api/items")

	e, ok := apierror.As(err)
	require.True(t, ok)
	assert.Equal(t, 0, e.Status)
	assert.Equal(t, apierror.CodeNetwork, e.Code)
	assert.NotEmpty(t, e.Message)
}

func TestExecuteSuccess(t *testing.T) {
	t.Run("should decode the json body", func(t *testing.T) {
		c := newServer(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/api/items/7", r.URL.Path)
			json.NewEncoder(w).Encode(item{ID: "7", Name: "seven"})
		})

		got, err := client.Get[item](context.Background(), c, "/api/items/7")
		require.NoError(t, err)
		assert.Equal(t, item{ID: "7", Name: "seven"}, got)
	})

	t.Run("should treat an undecodable success body as a network error", func(t *testing.T) {
		c := newServer(t, func(w http.ResponseWriter, r *http.Request) {
			io.WriteString(w, "not json")
		})

		_, err := client.Get[item](context.Background(), c, "/api/items/7")
		assert.True(t, apierror.IsKind(err, apierror.KindNetwork))
	})
}

func TestExecuteHeaders(t *testing.T) {
	var got http.Header
	c := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Clone()
	})

	err := c.Execute(context.Background(), "/api/items", &client.RequestOptions{
		Header: http.Header{"X-Trace": {"abc"}, client.RequestIDHeaderKey: {"req-1"}},
	}, nil)
	require.NoError(t, err)
	assert.Equal(t, "application/json", got.Get("Content-Type"))
	assert.Equal(t, "abc", got.Get("X-Trace"))
	assert.Equal(t, "req-1", got.Get(client.RequestIDHeaderKey))

	err = c.Execute(context.Background(), "/api/items", &client.RequestOptions{
		Header: http.Header{"Content-Type": {"text/plain"}},
	}, nil)
	require.NoError(t, err)
	assert.Equal(t, "text/plain", got.Get("Content-Type"))
	assert.NotEmpty(t, got.Get(client.RequestIDHeaderKey))
}

func TestVerbs(t *testing.T) {
	type call struct {
		Method string
		Body   string
	}
	var calls []call
	c := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		calls = append(calls, call{Method: r.Method, Body: string(b)})
		if r.Method == http.MethodDelete {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		w.Write(b)
	})
	ctx := context.Background()
	in := item{ID: "1", Name: "one"}

	out, err := client.Post[item](ctx, c, "/api/items", in)
	require.NoError(t, err)
	assert.Equal(t, in, out)

	_, err = client.Put[item](ctx, c, "/api/items/1", in)
	require.NoError(t, err)

	patched, err := client.Patch[map[string]interface{}](ctx, c, "/api/items/1", map[string]interface{}{"name": "uno"})
	require.NoError(t, err)
	assert.Equal(t, "uno", patched["name"])

	require.NoError(t, client.Delete(ctx, c, "/api/items/1"))

	methods := []string{}
	for _, cl := range calls {
		methods = append(methods, cl.Method)
	}
	assert.Equal(t, []string{http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete}, methods)
	assert.JSONEq(t, `{"id":"1","name":"one"}`, calls[0].Body)
	assert.Empty(t, calls[3].Body)
}

func TestPathRepeatsMultiValueParams(t *testing.T) {
	var raw string
	c := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		raw = r.URL.RawQuery
		io.WriteString(w, `[]`)
	})

	q := url.Values{"page": {"1"}, "limit": {"20"}, "status": {"confirmed", "pending"}}
	_, err := client.Get[[]item](context.Background(), c, client.Path("/api/reservations", q))
	require.NoError(t, err)
	assert.Equal(t, "limit=20&page=1&status=confirmed&status=pending", raw)
}
