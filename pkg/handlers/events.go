package handlers

import (
	"fmt"
	"net/http"
)

// Events streams one server-sent event per successful store mutation, so
// every open view refreshes without polling. The subscription callback only
// flags the channel; the store must never be re-entered from it.
func (h *FeedHandler) Events(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		WriteResponse(w, "streaming unsupported", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	updates := make(chan struct{}, 1)
	unsubscribe := h.Store.Subscribe(func() {
		select {
		case updates <- struct{}{}:
		default:
		}
	})
	defer unsubscribe()

	for {
		select {
		case <-r.Context().Done():
			return
		case <-updates:
			fmt.Fprint(w, "event: update\ndata: {}\n\n")
			flusher.Flush()
		}
	}
}
