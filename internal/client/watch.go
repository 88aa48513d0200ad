package client

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/gorilla/websocket"

	"quizadmin/internal/domain"
)

// eventsURL turns the API base into the websocket URL of the change feed.
func (c *HTTP) eventsURL() string {
	u := c.Base + "/events"
	switch {
	case strings.HasPrefix(u, "https://"):
		return "wss://" + strings.TrimPrefix(u, "https://")
	case strings.HasPrefix(u, "http://"):
		return "ws://" + strings.TrimPrefix(u, "http://")
	}
	return u
}

// Watch calls fn for every change event until ctx is done, the server closes
// the feed, or fn returns an error. Cancellation is not reported as an error.
func (c *HTTP) Watch(ctx context.Context, fn func(domain.Event) error) error {
	conn, _, err := websocket.DefaultDialer.DialContext(ctx, c.eventsURL(), nil)
	if err != nil {
		return err
	}
	defer conn.Close()

	stop := context.AfterFunc(ctx, func() { _ = conn.Close() })
	defer stop()

	for {
		_, msg, err := conn.ReadMessage()
		if err != nil {
			if ctx.Err() != nil || websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				return nil
			}
			return err
		}
		var ev domain.Event
		if err := json.Unmarshal(msg, &ev); err != nil {
			return fmt.Errorf("decode event: %w", err)
		}
		if err := fn(ev); err != nil {
			return err
		}
	}
}
