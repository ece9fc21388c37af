package infrastructure

import (
	"bytes"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/Agurato/cinelist/internal/model"
)

// notifyPath is the route the downstream service exposes for new movies
const notifyPath = "/hello/world"

// WebhookNotifier posts created movies to another web service. An empty
// base URL disables notification.
type WebhookNotifier struct {
	client  *http.Client
	baseURL string
}

func NewWebhookNotifier(baseURL string) *WebhookNotifier {
	return &WebhookNotifier{
		client:  &http.Client{Timeout: 10 * time.Second},
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

// NotifyCreated sends the movie to the configured endpoint. The outcome is
// logged and discarded: failures never reach the caller and are not retried.
func (n *WebhookNotifier) NotifyCreated(movie *model.Movie) {
	if n.baseURL == "" {
		return
	}
	body, err := json.Marshal(movie)
	if err != nil {
		log.Debug().Err(err).Int64("movieId", movie.MovieID).Msg("Could not encode movie for notification")
		return
	}
	resp, err := n.client.Post(n.baseURL+notifyPath, "application/json", bytes.NewReader(body))
	if err != nil {
		log.Debug().Err(err).Int64("movieId", movie.MovieID).Msg("Could not notify movie creation")
		return
	}
	resp.Body.Close()
	log.Debug().Int64("movieId", movie.MovieID).Int("status", resp.StatusCode).Msg("Notified movie creation")
}
