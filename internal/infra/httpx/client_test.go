package httpx

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type payload struct {
	Name string `json:"name"`
}

func TestGetJSON_DecodesBody(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/items/7", r.URL.Path)
		assert.Equal(t, "x", r.URL.Query().Get("q"))
		assert.Equal(t, "secret", r.Header.Get("X-Key"))
		user, pass, ok := r.BasicAuth()
		assert.True(t, ok)
		assert.Equal(t, "u", user)
		assert.Equal(t, "p", pass)
		_, _ = w.Write([]byte(`{"name":"seven"}`))
	}))
	defer srv.Close()

	client := New(srv.URL+"/", discardLogger(), WithHeader("X-Key", "secret"), WithBasicAuth("u", "p"))

	var out payload
	err := client.GetJSON(context.Background(), "/items/7", url.Values{"q": {"x"}}, &out)
	require.NoError(t, err)
	assert.Equal(t, "seven", out.Name)
}

func TestGetJSON_NotFoundIsNotRetried(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	client := New(srv.URL, discardLogger(), WithRetry(3, time.Millisecond))

	err := client.GetJSON(context.Background(), "/missing", nil, &payload{})
	require.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, int32(1), calls.Load())
}

func TestGetJSON_RetriesServerErrors(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusBadGateway)

			return
		}
		_, _ = w.Write([]byte(`{"name":"ok"}`))
	}))
	defer srv.Close()

	client := New(srv.URL, discardLogger(), WithRetry(3, time.Millisecond))

	var out payload
	require.NoError(t, client.GetJSON(context.Background(), "/flaky", nil, &out))
	assert.Equal(t, "ok", out.Name)
	assert.Equal(t, int32(3), calls.Load())
}

func TestGetJSON_GivesUpAfterAttempts(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte("down"))
	}))
	defer srv.Close()

	client := New(srv.URL, discardLogger(), WithRetry(2, time.Millisecond))

	err := client.GetJSON(context.Background(), "/down", nil, &payload{})

	var statusErr *StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusServiceUnavailable, statusErr.StatusCode)
	assert.Equal(t, "down", statusErr.Body)
	assert.Equal(t, int32(2), calls.Load())
}

func TestGetJSON_ClientErrorsAndBadBodiesAreNotRetried(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{
			name: "bad request",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusBadRequest)
			},
		},
		{
			name: "malformed json",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte(`{"name":`))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var calls atomic.Int32
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				calls.Add(1)
				tt.handler(w, r)
			}))
			defer srv.Close()

			client := New(srv.URL, discardLogger(), WithRetry(3, time.Millisecond))

			err := client.GetJSON(context.Background(), "/", nil, &payload{})
			require.Error(t, err)
			assert.Equal(t, int32(1), calls.Load())
		})
	}
}

func TestStatusError_Transient(t *testing.T) {
	t.Parallel()

	assert.True(t, (&StatusError{StatusCode: http.StatusInternalServerError}).Transient())
	assert.True(t, (&StatusError{StatusCode: http.StatusTooManyRequests}).Transient())
	assert.False(t, (&StatusError{StatusCode: http.StatusUnauthorized}).Transient())
}

func TestPostJSON_SendsBodyAndRetries(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.Equal(t, "req-1", r.Header.Get("X-Request-Id"))

		var in payload
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&in))
		assert.Equal(t, "event", in.Name)

		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusServiceUnavailable)

			return
		}
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	client := New(srv.URL, discardLogger(), WithRetry(3, time.Millisecond))

	err := client.PostJSON(context.Background(), "/push", payload{Name: "event"},
		http.Header{"X-Request-Id": {"req-1"}})
	require.NoError(t, err)
	assert.Equal(t, int32(2), calls.Load())
}

func TestPatchJSON_DecodesResponse(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "/items/7", r.URL.Path)

		var in payload
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&in))
		_, _ = w.Write([]byte(`{"name":"` + in.Name + `-stored"}`))
	}))
	defer srv.Close()

	client := New(srv.URL, discardLogger())

	var out payload
	err := client.PatchJSON(context.Background(), "/items/7", payload{Name: "seven"}, &out)
	require.NoError(t, err)
	assert.Equal(t, "seven-stored", out.Name)
}
