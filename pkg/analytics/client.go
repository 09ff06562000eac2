package analytics

import (
	"bytes"
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/go-retryablehttp"

	"github.com/embedviz/embedviz/config"
	"github.com/embedviz/embedviz/internal"
	"github.com/embedviz/embedviz/pkg/models"
)

var log = internal.GetLogger()

var _ models.AnalyticsService = &Client{}

// Client ships usage events to a PostHog-compatible capture endpoint.
// Events are sent in the background and never block or fail the request
// that produced them.
type Client struct {
	apiKey string
	host   string
	client *http.Client
	wg     sync.WaitGroup
}

// NewService returns a capture client when analytics is enabled and an API
// key is configured, otherwise a no-op client.
func NewService(cfg *config.Config) models.AnalyticsService {
	if !cfg.Analytics.Enabled || cfg.Analytics.APIKey == "" {
		return &NoopClient{}
	}
	return NewClient(cfg)
}

func NewClient(cfg *config.Config) *Client {
	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = 3
	retryClient.HTTPClient.Timeout = 5 * time.Second
	retryClient.Logger = internal.NewLeveledLogrus(log)

	return &Client{
		apiKey: cfg.Analytics.APIKey,
		host:   cfg.Analytics.Host,
		client: retryClient.StandardClient(),
	}
}

type captureEvent struct {
	APIKey     string         `json:"api_key"`
	Event      string         `json:"event"`
	DistinctID string         `json:"distinct_id"`
	Properties map[string]any `json:"properties,omitempty"`
	UUID       string         `json:"uuid"`
	Timestamp  string         `json:"timestamp"`
}

// Capture queues an event for delivery. Failures are logged and dropped.
func (c *Client) Capture(distinctID, event string, properties map[string]any) {
	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		if err := c.send(distinctID, event, properties); err != nil {
			log.Warnf("failed to capture analytics event: %v", err)
		}
	}()
}

func (c *Client) send(distinctID, event string, properties map[string]any) error {
	body, err := json.Marshal(captureEvent{
		APIKey:     c.apiKey,
		Event:      event,
		DistinctID: distinctID,
		Properties: properties,
		UUID:       uuid.New().String(),
		Timestamp:  time.Now().UTC().Format(time.RFC3339),
	})
	if err != nil {
		return err
	}

	resp, err := c.client.Post(
		c.host+"/capture/",
		"application/json",
		bytes.NewReader(body),
	)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	return nil
}

// Close waits for in-flight events to drain.
func (c *Client) Close() {
	c.wg.Wait()
}

var _ models.AnalyticsService = &NoopClient{}

type NoopClient struct{}

func (c *NoopClient) Capture(_, _ string, _ map[string]any) {}

func (c *NoopClient) Close() {}
