package handlers

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/GitNimay/lumino-crm-vc/pkg/api/errors"
	custommw "github.com/GitNimay/lumino-crm-vc/pkg/api/middleware"
	"github.com/GitNimay/lumino-crm-vc/pkg/realtime"
	"github.com/labstack/echo/v4"
)

const keepAliveInterval = 25 * time.Second

// StreamHandler serves the realtime change feed over server-sent
// events. Events carry only the collection name; clients re-fetch on
// receipt rather than applying deltas.
type StreamHandler struct {
	hub *realtime.Hub
}

// NewStreamHandler creates a new stream handler
func NewStreamHandler(hub *realtime.Hub) *StreamHandler {
	return &StreamHandler{hub: hub}
}

// Stream handles the SSE connection. The optional collections query
// param narrows the feed, e.g. ?collections=leads,tasks.
func (h *StreamHandler) Stream(c echo.Context) error {
	userID := custommw.UserID(c)
	if userID == "" {
		return errors.UnauthorizedError(c, "missing user")
	}

	collections := []string{realtime.CollectionLeads, realtime.CollectionTasks, realtime.CollectionLists}
	if raw := c.QueryParam("collections"); raw != "" {
		collections = strings.Split(raw, ",")
	}

	w := c.Response()
	w.Header().Set(echo.HeaderContentType, "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	w.Flush()

	// Buffered so a slow client coalesces bursts instead of blocking
	// the hub's notify path.
	events := make(chan string, 8)

	subs := make([]*realtime.Subscription, 0, len(collections))
	for _, col := range collections {
		col := strings.TrimSpace(col)
		if col == "" {
			continue
		}
		subs = append(subs, h.hub.Subscribe(col, func() {
			select {
			case events <- col:
			default:
			}
		}))
	}
	defer func() {
		for _, sub := range subs {
			sub.Unsubscribe()
		}
	}()

	keepAlive := time.NewTicker(keepAliveInterval)
	defer keepAlive.Stop()

	ctx := c.Request().Context()
	for {
		select {
		case <-ctx.Done():
			return nil
		case col := <-events:
			fmt.Fprintf(w, "event: change\ndata: {\"collection\":%q}\n\n", col)
			w.Flush()
		case <-keepAlive.C:
			fmt.Fprint(w, ": keepalive\n\n")
			w.Flush()
		}
	}
}
