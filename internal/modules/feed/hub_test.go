package feed

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// dialHub spins up a websocket endpoint whose server side is registered
// on the hub, and returns the client side of the pair. It only returns
// once the server side is registered, so a Publish right after cannot
// miss the connection.
func dialHub(t *testing.T, hub *Hub, userID string) *websocket.Conn {
	t.Helper()

	up := websocket.Upgrader{
		CheckOrigin: func(r *http.Request) bool { return true },
	}

	registered := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := up.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		hub.Register(userID, conn)
		close(registered)
	}))
	t.Cleanup(srv.Close)

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	client, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	select {
	case <-registered:
	case <-time.After(2 * time.Second):
		t.Fatal("connection was never registered on the hub")
	}
	return client
}

func TestPublish_DeliversToConnectedDashboard(t *testing.T) {
	hub := NewHub()
	defer hub.Close()
	client := dialHub(t, hub, "admin-1")

	hub.Publish("event.created", map[string]string{"id": "evt-1"})

	require.NoError(t, client.SetReadDeadline(time.Now().Add(2*time.Second)))
	var got Event
	require.NoError(t, client.ReadJSON(&got))
	assert.Equal(t, "event.created", got.Kind)
	assert.False(t, got.Timestamp.IsZero())
}

func TestPublish_ConcurrentCallersOneConnection(t *testing.T) {
	hub := NewHub()
	defer hub.Close()
	client := dialHub(t, hub, "admin-1")

	const publishers = 32

	var wg sync.WaitGroup
	wg.Add(publishers)
	for i := 0; i < publishers; i++ {
		go func() {
			defer wg.Done()
			hub.Publish("event.updated", map[string]string{"id": "evt-1"})
		}()
	}
	wg.Wait()

	// Every frame must arrive whole; interleaved writes would corrupt
	// the stream and fail the JSON decode below.
	require.NoError(t, client.SetReadDeadline(time.Now().Add(3*time.Second)))
	for i := 0; i < publishers; i++ {
		var got Event
		require.NoError(t, client.ReadJSON(&got), "message %d", i)
		assert.Equal(t, "event.updated", got.Kind)
	}

	assert.Equal(t, 1, hub.ConnectedCount())
}

func TestRegister_ReconnectReplacesOldSocket(t *testing.T) {
	hub := NewHub()
	defer hub.Close()

	dialHub(t, hub, "admin-1")
	second := dialHub(t, hub, "admin-1")

	assert.Equal(t, 1, hub.ConnectedCount())

	hub.Publish("event.created", map[string]string{"id": "evt-2"})

	require.NoError(t, second.SetReadDeadline(time.Now().Add(2*time.Second)))
	var got Event
	require.NoError(t, second.ReadJSON(&got))
	assert.Equal(t, "event.created", got.Kind)
}

func TestUnregister_DropsConnection(t *testing.T) {
	hub := NewHub()
	defer hub.Close()
	dialHub(t, hub, "admin-1")

	hub.Unregister("admin-1")

	assert.Equal(t, 0, hub.ConnectedCount())
}
