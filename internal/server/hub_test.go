package server_test

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quizadmin/internal/domain"
)

func dialEvents(t *testing.T, env *testEnv) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(env.srv.URL, "http") + "/api/events"
	conn, resp, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	require.Equal(t, http.StatusSwitchingProtocols, resp.StatusCode)
	t.Cleanup(func() { _ = conn.Close() })

	require.Eventually(t, func() bool { return env.hub.Subscribers() == 1 },
		2*time.Second, 10*time.Millisecond)
	return conn
}

func readEvent(t *testing.T, conn *websocket.Conn) domain.Event {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, msg, err := conn.ReadMessage()
	require.NoError(t, err)
	var ev domain.Event
	require.NoError(t, json.Unmarshal(msg, &ev))
	return ev
}

func TestEvents_BroadcastMutations(t *testing.T) {
	env := newTestEnv(t)
	conn := dialEvents(t, env)

	_, body := env.do(t, http.MethodPost, "/api/domains", `{"name":"Math"}`)
	d := decode[domain.Domain](t, body)

	ev := readEvent(t, conn)
	assert.Equal(t, domain.DomainCreated, ev.Type)
	assert.Equal(t, d.ID, ev.DomainID)
	assert.NotZero(t, ev.At)
	var got domain.Domain
	require.NoError(t, json.Unmarshal(ev.Resource, &got))
	assert.Equal(t, "Math", got.Name)

	env.do(t, http.MethodDelete, "/api/domains/"+d.ID.String(), "")
	ev = readEvent(t, conn)
	assert.Equal(t, domain.DomainDeleted, ev.Type)
	assert.Empty(t, ev.Resource)
}

func TestEvents_FailedMutationIsSilent(t *testing.T) {
	env := newTestEnv(t)
	conn := dialEvents(t, env)

	resp, _ := env.do(t, http.MethodDelete, "/api/domains/123", "")
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
	env.do(t, http.MethodPost, "/api/domains", `{"name":"Math"}`)

	// the first message on the feed is the successful create
	assert.Equal(t, domain.DomainCreated, readEvent(t, conn).Type)
}

func TestHub_CloseDisconnectsSubscribers(t *testing.T) {
	env := newTestEnv(t)
	conn := dialEvents(t, env)

	env.hub.Close()

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, _, err := conn.ReadMessage()
	require.Error(t, err)
	assert.True(t, websocket.IsCloseError(err, websocket.CloseNormalClosure), "got %v", err)
	assert.Equal(t, 0, env.hub.Subscribers())
}

func TestHub_PeerLeavingUnsubscribes(t *testing.T) {
	env := newTestEnv(t)
	conn := dialEvents(t, env)

	require.NoError(t, conn.Close())
	require.Eventually(t, func() bool { return env.hub.Subscribers() == 0 },
		2*time.Second, 10*time.Millisecond)
}
