package services

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStubGemini(t *testing.T, reply string) *GeminiService {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"` + reply + `"}]}}]}`))
	}))
	t.Cleanup(srv.Close)
	return &GeminiService{apiKey: "test-key", apiURL: srv.URL, client: srv.Client()}
}

func TestSendAppendsMessagePair(t *testing.T) {
	db := newTestDB(t)
	svc := NewChatService(db, newStubGemini(t, "Stay hydrated."))

	userMsg, assistantMsg, err := svc.Send(1, "any tips?")
	require.NoError(t, err)

	assert.Equal(t, models.ChatRoleUser, userMsg.Type)
	assert.Equal(t, "any tips?", userMsg.Content)
	assert.Equal(t, models.ChatRoleAssistant, assistantMsg.Type)
	assert.Equal(t, "Stay hydrated.", assistantMsg.Content)
}

func TestSendWithoutKeyStillAppendsPair(t *testing.T) {
	db := newTestDB(t)
	gemini := &GeminiService{apiURL: defaultGeminiURL, client: &http.Client{Timeout: time.Second}}
	svc := NewChatService(db, gemini)

	_, assistantMsg, err := svc.Send(1, "hello")
	require.NoError(t, err)
	assert.Equal(t, MsgGeminiKeyMissing, assistantMsg.Content)

	history, err := svc.History(1)
	require.NoError(t, err)
	assert.Len(t, history, 2)
}

func TestHistoryIsOldestFirst(t *testing.T) {
	db := newTestDB(t)
	svc := NewChatService(db, newStubGemini(t, "ok"))

	_, _, err := svc.Send(1, "first")
	require.NoError(t, err)
	_, _, err = svc.Send(1, "second")
	require.NoError(t, err)

	history, err := svc.History(1)
	require.NoError(t, err)
	require.Len(t, history, 4)

	assert.Equal(t, "first", history[0].Content)
	for i := 1; i < len(history); i++ {
		assert.False(t, history[i].Timestamp.Before(history[i-1].Timestamp))
	}
}

func TestClearEmptiesOnlyThatUsersTranscript(t *testing.T) {
	db := newTestDB(t)
	svc := NewChatService(db, newStubGemini(t, "ok"))

	_, _, err := svc.Send(1, "mine")
	require.NoError(t, err)
	_, _, err = svc.Send(2, "theirs")
	require.NoError(t, err)

	require.NoError(t, svc.Clear(1))

	mine, err := svc.History(1)
	require.NoError(t, err)
	assert.Empty(t, mine)

	theirs, err := svc.History(2)
	require.NoError(t, err)
	assert.Len(t, theirs, 2)
}
