package live_test

import (
	"complaintbox/backend/internal/analysis"
	"complaintbox/backend/internal/live"
	"complaintbox/backend/internal/models"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type countingClassifier struct {
	calls atomic.Int32
	label string
}

func (c *countingClassifier) Classify(context.Context, string) (string, error) {
	c.calls.Add(1)
	return c.label, nil
}

func startServer(t *testing.T, classifier analysis.Classifier) *websocket.Conn {
	t.Helper()
	upgrader := websocket.Upgrader{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		client := live.NewSuggestionClient(conn, analysis.NewSuggester(classifier, zap.NewNop()), 20*time.Millisecond, zap.NewNop())
		client.Run()
	}))
	t.Cleanup(srv.Close)

	conn, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(srv.URL, "http"), nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func TestSuggestionClient_PushesDebouncedSuggestion(t *testing.T) {
	// Arrange
	classifier := &countingClassifier{label: "Academics"}
	conn := startServer(t, classifier)

	// Act
	for _, draft := range []string{"The", "The lecture", "The lecture slides", "The lecture slides for week three are missing"} {
		require.NoError(t, conn.WriteJSON(models.SuggestionDraft{Description: draft}))
	}

	// Assert
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	var event models.SuggestionEvent
	require.NoError(t, conn.ReadJSON(&event))
	assert.Equal(t, "suggestion", event.Type)
	assert.Equal(t, models.CategoryAcademics, event.Category)
	assert.Equal(t, int32(1), classifier.calls.Load())
}

func TestSuggestionClient_IgnoresMalformedDrafts(t *testing.T) {
	classifier := &countingClassifier{label: "Other"}
	conn := startServer(t, classifier)

	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte("{not json")))
	require.NoError(t, conn.WriteJSON(models.SuggestionDraft{Description: "something else happened on the campus today"}))

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	var event models.SuggestionEvent
	require.NoError(t, conn.ReadJSON(&event))
	assert.Equal(t, models.CategoryOther, event.Category)
}
