package httpx

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/perfflow/perfflow/pkg/runcfg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clientFor(t *testing.T, serverURL string, f func(*runcfg.Flags)) *Client {
	t.Helper()
	flags := runcfg.Flags{
		TaskID:  "t1",
		Host:    serverURL,
		APIPath: "/chat/completions",
		Users:   1,
		RunTime: 10,
	}
	if f != nil {
		f(&flags)
	}
	cfg, err := flags.Build()
	require.NoError(t, err)
	c, err := NewClient(cfg)
	require.NoError(t, err)
	return c
}

func TestPost_SendsJSONWithHeadersAndCookies(t *testing.T) {
	var gotBody map[string]any
	var gotAuth, gotCookie string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		if ck, err := r.Cookie("session"); err == nil {
			gotCookie = ck.Value
		}
		raw, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(raw, &gotBody)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c := clientFor(t, srv.URL, func(f *runcfg.Flags) {
		f.Headers = `{"Authorization":"Bearer tok"}`
		f.Cookies = `{"session":"s1"}`
	})
	resp, err := c.Post(context.Background(), map[string]any{"model": "m"})
	require.NoError(t, err)
	resp.Body.Close()

	assert.Equal(t, "Bearer tok", gotAuth)
	assert.Equal(t, "s1", gotCookie)
	assert.Equal(t, "m", gotBody["model"])
}

func TestPost_Non200ReturnsStatusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte("rate limited"))
	}))
	defer srv.Close()

	c := clientFor(t, srv.URL, nil)
	_, err := c.Post(context.Background(), map[string]any{})
	require.Error(t, err)

	var statusErr *StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusTooManyRequests, statusErr.Code)
	assert.Equal(t, "rate limited", statusErr.BodySnippet)
}

func TestPost_StatusErrorTruncatesBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(strings.Repeat("x", 5000)))
	}))
	defer srv.Close()

	c := clientFor(t, srv.URL, nil)
	_, err := c.Post(context.Background(), map[string]any{})

	var statusErr *StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Len(t, statusErr.BodySnippet, errorBodyLimit)
}

func TestPost_StreamAcceptHeader(t *testing.T) {
	var accept string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		accept = r.Header.Get("Accept")
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c := clientFor(t, srv.URL, func(f *runcfg.Flags) {
		f.StreamMode = true
	})
	resp, err := c.Post(context.Background(), map[string]any{})
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, "text/event-stream", accept)
}

func TestPost_ContextCancellation(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	c := clientFor(t, srv.URL, nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := c.Post(ctx, map[string]any{})
	assert.Error(t, err)
}
