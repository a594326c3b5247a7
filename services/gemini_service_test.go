package services

import (
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGeminiTestServer(t *testing.T, calls *int32, status int, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(calls, 1)
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestGenerateResponseWithoutKeyMakesNoRequests(t *testing.T) {
	var calls int32
	srv := newGeminiTestServer(t, &calls, http.StatusOK, `{}`)

	svc := &GeminiService{apiKey: "", apiURL: srv.URL, client: srv.Client()}
	got := svc.GenerateResponse("hello")

	assert.Equal(t, MsgGeminiKeyMissing, got)
	assert.Zero(t, atomic.LoadInt32(&calls), "missing key must short-circuit before the network")
}

func TestGenerateResponseReturnsFirstCandidateText(t *testing.T) {
	var calls int32
	srv := newGeminiTestServer(t, &calls, http.StatusOK,
		`{"candidates":[{"content":{"parts":[{"text":"Drink more water."}]}}]}`)

	svc := &GeminiService{apiKey: "test-key", apiURL: srv.URL, client: srv.Client()}
	got := svc.GenerateResponse("how much water should I drink")

	assert.Equal(t, "Drink more water.", got)
	require.EqualValues(t, 1, atomic.LoadInt32(&calls))
}

func TestGenerateResponseMapsHTTPErrorToApology(t *testing.T) {
	var calls int32
	srv := newGeminiTestServer(t, &calls, http.StatusTooManyRequests, `{"error":{"message":"quota"}}`)

	svc := &GeminiService{apiKey: "test-key", apiURL: srv.URL, client: srv.Client()}
	got := svc.GenerateResponse("hello")

	assert.Equal(t, MsgGeminiRequestError, got)
}

func TestGenerateResponseMapsEmptyCandidatesToFormatNotice(t *testing.T) {
	var calls int32
	srv := newGeminiTestServer(t, &calls, http.StatusOK, `{"candidates":[]}`)

	svc := &GeminiService{apiKey: "test-key", apiURL: srv.URL, client: srv.Client()}
	got := svc.GenerateResponse("hello")

	assert.Equal(t, MsgGeminiBadResponse, got)
}

func TestGenerateResponseMapsMalformedJSONToApology(t *testing.T) {
	var calls int32
	srv := newGeminiTestServer(t, &calls, http.StatusOK, `not json`)

	svc := &GeminiService{apiKey: "test-key", apiURL: srv.URL, client: srv.Client()}
	got := svc.GenerateResponse("hello")

	assert.Equal(t, MsgGeminiRequestError, got)
}
