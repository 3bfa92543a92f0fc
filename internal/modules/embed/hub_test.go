package embed

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// dialPair upgrades one server-side connection into the hub and returns the
// client end for reading broadcasts.
func dialPair(t *testing.T, hub *Hub, tenantID, widgetKey string) *websocket.Conn {
	t.Helper()

	upgrader := websocket.Upgrader{CheckOrigin: func(r *http.Request) bool { return true }}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		require.NoError(t, err)
		hub.Register(tenantID, widgetKey, conn)
	}))
	t.Cleanup(srv.Close)

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	client, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { client.Close() })

	return client
}

func readMessage(t *testing.T, conn *websocket.Conn) map[string]interface{} {
	t.Helper()
	conn.SetReadDeadline(time.Now().Add(2 * time.Second))

	var msg map[string]interface{}
	require.NoError(t, conn.ReadJSON(&msg))
	return msg
}

func TestNotifyHeightReachesSameKeyOnly(t *testing.T) {
	hub := NewHub()
	defer hub.Close()

	a := dialPair(t, hub, "t1", "key-a")
	b := dialPair(t, hub, "t1", "key-b")

	sent := hub.NotifyHeight("key-a", 640)
	assert.Equal(t, 1, sent)

	msg := readMessage(t, a)
	assert.Equal(t, "height", msg["type"])
	assert.Equal(t, float64(640), msg["height"])

	b.SetReadDeadline(time.Now().Add(200 * time.Millisecond))
	var stray map[string]interface{}
	assert.Error(t, b.ReadJSON(&stray), "other widget keys must not receive the height")
}

func TestLayoutUpdatedFansOutPerTenant(t *testing.T) {
	hub := NewHub()
	defer hub.Close()

	a := dialPair(t, hub, "t1", "key-a")
	b := dialPair(t, hub, "t1", "key-b")
	other := dialPair(t, hub, "t2", "key-c")

	hub.LayoutUpdated("t1", "l1")

	for _, conn := range []*websocket.Conn{a, b} {
		msg := readMessage(t, conn)
		assert.Equal(t, "layout_updated", msg["type"])
		assert.Equal(t, "l1", msg["layout_id"])
	}

	other.SetReadDeadline(time.Now().Add(200 * time.Millisecond))
	var stray map[string]interface{}
	assert.Error(t, other.ReadJSON(&stray), "other tenants must not be notified")
}

func TestListenerCountTracksRegistrations(t *testing.T) {
	hub := NewHub()
	defer hub.Close()

	assert.Equal(t, 0, hub.ListenerCount("key-a"))
	dialPair(t, hub, "t1", "key-a")
	assert.Equal(t, 1, hub.ListenerCount("key-a"))

	hub.Close()
	assert.Equal(t, 0, hub.ListenerCount("key-a"))
}
