package dashboard

import (
	"bufio"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBroadcastHookSubscribe(t *testing.T) {
	hook := NewBroadcastHook()
	ch, cancel := hook.Subscribe()
	defer cancel()
	notice := NewNotice(NoticeSuccess, "Settings saved!")
	if err := hook.Publish(context.Background(), notice); err != nil {
		t.Fatalf("Publish returned error: %v", err)
	}
	select {
	case got := <-ch:
		if got.ID != notice.ID || got.Message != "Settings saved!" {
			t.Fatalf("unexpected notice %#v", got)
		}
	default:
		t.Fatalf("expected notice to be delivered")
	}
}

func TestBroadcastHookDropsForSlowSubscribers(t *testing.T) {
	hook := NewBroadcastHook()
	ch, cancel := hook.Subscribe()
	defer cancel()
	for i := 0; i < 20; i++ {
		require.NoError(t, hook.Publish(context.Background(), NewNotice(NoticeInfo, "tick")))
	}
	assert.Equal(t, 8, len(ch))
}

func TestBroadcastHookCancelIsIdempotent(t *testing.T) {
	hook := NewBroadcastHook()
	ch, cancel := hook.Subscribe()
	cancel()
	cancel()
	_, open := <-ch
	assert.False(t, open)
	require.NoError(t, hook.Publish(context.Background(), NewNotice(NoticeInfo, "after cancel")))
}

func TestNewNoticeAssignsUniqueIDs(t *testing.T) {
	a := NewNotice(NoticeSuccess, "a")
	b := NewNotice(NoticeSuccess, "b")
	assert.NotEqual(t, a.ID, b.ID)
	assert.Len(t, a.ID, 36)
	assert.False(t, a.CreatedAt.IsZero())
}

func waitForSubscribers(t *testing.T, hook *BroadcastHook, n int) {
	t.Helper()
	require.Eventually(t, func() bool {
		hook.mu.RLock()
		defer hook.mu.RUnlock()
		return len(hook.subs) >= n
	}, time.Second, 5*time.Millisecond)
}

func TestServeSSEStreamsNotices(t *testing.T) {
	hook := NewBroadcastHook()
	server := httptest.NewServer(http.HandlerFunc(hook.ServeSSE))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, server.URL, nil)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, "text/event-stream", resp.Header.Get("Content-Type"))

	waitForSubscribers(t, hook, 1)
	notice := NewNotice(NoticeSuccess, "Profile updated!")
	require.NoError(t, hook.Publish(context.Background(), notice))

	reader := bufio.NewReader(resp.Body)
	var data string
	for data == "" {
		line, err := reader.ReadString('\n')
		require.NoError(t, err)
		if strings.HasPrefix(line, "data: ") {
			data = strings.TrimSpace(strings.TrimPrefix(line, "data: "))
		}
	}
	var got Notice
	require.NoError(t, json.Unmarshal([]byte(data), &got))
	assert.Equal(t, notice.ID, got.ID)
	assert.Equal(t, "Profile updated!", got.Message)
}

func TestServeWebSocketStreamsNotices(t *testing.T) {
	hook := NewBroadcastHook()
	server := httptest.NewServer(http.HandlerFunc(hook.ServeWebSocket))
	defer server.Close()

	url := "ws" + strings.TrimPrefix(server.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer conn.Close()

	waitForSubscribers(t, hook, 1)
	notice := NewNotice(NoticeSuccess, "Settings saved!")
	require.NoError(t, hook.Publish(context.Background(), notice))

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	var got Notice
	require.NoError(t, conn.ReadJSON(&got))
	assert.Equal(t, notice.ID, got.ID)
}

func TestServeWebSocketRejectsForeignOrigin(t *testing.T) {
	hook := NewBroadcastHook()
	server := httptest.NewServer(http.HandlerFunc(hook.ServeWebSocket))
	defer server.Close()

	url := "ws" + strings.TrimPrefix(server.URL, "http")
	_, resp, err := websocket.DefaultDialer.Dial(url, http.Header{"Origin": {"https://elsewhere.example"}})
	require.ErrorIs(t, err, websocket.ErrBadHandshake)
	require.NotNil(t, resp)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	conn, _, err := websocket.DefaultDialer.Dial(url, http.Header{"Origin": {server.URL}})
	require.NoError(t, err)
	conn.Close()
}
