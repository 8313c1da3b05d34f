package dict

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL, 2*time.Second, zerolog.Nop())
}

func TestLookupKnownWord(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/gts", r.URL.Path)
		assert.Equal(t, "kitap", r.URL.Query().Get("ara"))
		assert.NotEmpty(t, r.Header.Get("User-Agent"))
		w.Write([]byte(`[{"madde":"kitap","anlamlarListe":[]}]`))
	})

	assert.True(t, c.Lookup(context.Background(), "kitap"))
}

func TestLookupUnknownWord(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"error":"Sonuç bulunamadı"}`))
	})

	assert.False(t, c.Lookup(context.Background(), "xqzt"))
}

func TestLookupErrorEntry(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"error":"Sonuç bulunamadı"}]`))
	})

	assert.False(t, c.Lookup(context.Background(), "xqzt"))
}

func TestLookupEmptyArray(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	})

	assert.False(t, c.Lookup(context.Background(), "kitap"))
}

func TestLookupMalformedPayload(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html>maintenance</html>`))
	})

	assert.False(t, c.Lookup(context.Background(), "kitap"))
}

func TestLookupFailsClosedOnTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		w.Write([]byte(`[{}]`))
	}))
	t.Cleanup(srv.Close)

	c := NewClient(srv.URL, 50*time.Millisecond, zerolog.Nop())
	assert.False(t, c.Lookup(context.Background(), "kitap"))
}

func TestLookupFailsClosedOnConnectionError(t *testing.T) {
	c := NewClient("http://127.0.0.1:1", 200*time.Millisecond, zerolog.Nop())
	assert.False(t, c.Lookup(context.Background(), "kitap"))
}
