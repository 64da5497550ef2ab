package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AnkitPaunikar/Subscriber-Serverless/internal/subscriber"
)

func TestCreateAndFindAll(t *testing.T) {
	srv := httptest.NewServer(New(subscriber.NewStore()).Router())
	defer srv.Close()

	for _, email := range []string{"a@x.com", "b@x.com", "a@x.com"} {
		resp, err := http.Post(srv.URL+"/subscribers", "text/plain", strings.NewReader(email))
		require.NoError(t, err)
		resp.Body.Close()
		assert.Equal(t, http.StatusAccepted, resp.StatusCode)
	}

	resp, err := http.Get(srv.URL + "/subscribers")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))

	var subs []subscriber.Subscriber
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&subs))

	expected := []subscriber.Subscriber{
		{ID: 1, Email: "a@x.com"},
		{ID: 2, Email: "b@x.com"},
		{ID: 3, Email: "a@x.com"},
	}
	assert.Equal(t, expected, subs)
}

func TestFindAllEmpty(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/subscribers", nil)
	rec := httptest.NewRecorder()

	New(subscriber.NewStore()).Router().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "[]", strings.TrimSpace(rec.Body.String()))
}

func TestCreateEmptyBody(t *testing.T) {
	store := subscriber.NewStore()
	router := New(store).Router()

	req := httptest.NewRequest(http.MethodPost, "/subscribers", strings.NewReader(""))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusAccepted, rec.Code)
	require.Len(t, store.All(), 1)
	assert.Equal(t, subscriber.Subscriber{ID: 1, Email: ""}, store.All()[0])
}

func TestUnknownRoute(t *testing.T) {
	req := httptest.NewRequest(http.MethodDelete, "/subscribers", nil)
	rec := httptest.NewRecorder()

	New(subscriber.NewStore()).Router().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}
