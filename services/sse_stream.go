package services

import (
	"bufio"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
)

const keepaliveInterval = 15 * time.Second

// StreamEventsSSE streams leaderboard events to one connected client until it
// disconnects or the hub shuts down. Clients that connect late fetch current
// state over the REST API first.
func (b *Broadcaster) StreamEventsSSE(c *fiber.Ctx) error {
	// SSE headers
	c.Set("Content-Type", "text/event-stream")
	c.Set("Cache-Control", "no-cache")
	c.Set("Connection", "keep-alive")
	c.Set("X-Accel-Buffering", "no") // nginx

	id, events := b.Subscribe()

	// Use fasthttp stream writer (THIS replaces Flush)
	c.Context().SetBodyStreamWriter(func(w *bufio.Writer) {
		defer b.Unsubscribe(id)

		ticker := time.NewTicker(keepaliveInterval)
		defer ticker.Stop()

		// Initial keepalive (comment event)
		w.WriteString(":\n\n")
		if err := w.Flush(); err != nil {
			return
		}

		for {
			select {
			case event, ok := <-events:
				if !ok {
					// Hub shut down
					return
				}

				payload, err := json.Marshal(event.Data)
				if err != nil {
					log.Printf("SSE marshal error for client %s: %v", id, err)
					continue
				}

				fmt.Fprintf(w, "event: %s\ndata: %s\n\n", event.Name, payload)

				if err := w.Flush(); err != nil {
					// Client disconnected
					return
				}

			case <-ticker.C:
				w.WriteString(":\n\n")
				if err := w.Flush(); err != nil {
					return
				}

			case <-c.Context().Done():
				// Client closed connection
				return
			}
		}
	})

	return nil
}
