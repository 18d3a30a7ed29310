package indiabills

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticTokens string

func (s staticTokens) Token() string { return string(s) }

func TestBearerTokenAttached(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		fmt.Fprint(w, `{"status":200,"data":[]}`)
	}))
	defer srv.Close()

	c := NewClient(Config{BaseURL: srv.URL, Tokens: staticTokens("tok-123")})
	res := c.Categories(context.Background())

	require.True(t, res.IsOk())
	assert.Equal(t, "Bearer tok-123", gotAuth)
}

func TestNoTokenNoHeader(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		fmt.Fprint(w, `{"status":200,"data":[]}`)
	}))
	defer srv.Close()

	c := NewClient(Config{BaseURL: srv.URL, Tokens: staticTokens("")})
	c.Categories(context.Background())

	assert.Empty(t, gotAuth)
}

func TestErrorEnvelopeBecomesErr(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		fmt.Fprint(w, `{"status":404,"error":"no such product"}`)
	}))
	defer srv.Close()

	c := NewClient(Config{BaseURL: srv.URL})
	res := c.Product(context.Background(), 9)

	require.False(t, res.IsOk())
	assert.Equal(t, 404, res.Status())
	assert.Equal(t, "no such product", res.Message())
}

func TestTransportFailureMapsTo500(t *testing.T) {
	c := NewClient(Config{BaseURL: "http://127.0.0.1:1"})
	res := c.Categories(context.Background())

	require.False(t, res.IsOk())
	assert.Equal(t, 500, res.Status())
	assert.NotEmpty(t, res.Message())
}

func TestIdempotentGetRetriesOnServerError(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusInternalServerError)
			fmt.Fprint(w, `{"status":500,"error":"flaky"}`)
			return
		}
		fmt.Fprint(w, `{"status":200,"data":[{"id":1,"name":"soap"}]}`)
	}))
	defer srv.Close()

	c := NewClient(Config{BaseURL: srv.URL})
	res := c.Products(context.Background(), "")

	require.True(t, res.IsOk())
	assert.Equal(t, int32(3), calls.Load())
	require.Len(t, res.Data(), 1)
	assert.Equal(t, "soap", res.Data()[0].Name)
}

func TestMutatingCallsAreNotRetried(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
		fmt.Fprint(w, `{"status":500,"error":"down"}`)
	}))
	defer srv.Close()

	c := NewClient(Config{BaseURL: srv.URL})
	res := c.Logout(context.Background())

	require.False(t, res.IsOk())
	assert.Equal(t, int32(1), calls.Load())
}

func TestClientErrorsAreNotRetried(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusUnauthorized)
		fmt.Fprint(w, `{"status":401,"error":"bad token"}`)
	}))
	defer srv.Close()

	c := NewClient(Config{BaseURL: srv.URL})
	res := c.Categories(context.Background())

	require.False(t, res.IsOk())
	assert.Equal(t, 401, res.Status())
	assert.Equal(t, int32(1), calls.Load())
}
