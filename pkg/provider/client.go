// Package provider is the normalized client for the upstream messaging
// API. It owns every wire shape and is the sole interpreter of provider
// error payloads; higher layers branch on ErrorClass only.
package provider

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"sync"
	"time"
)

const (
	// requestTimeout bounds every provider call. The spec caps it at 8s.
	requestTimeout = 8 * time.Second

	defaultBaseURL = "https://graph.facebook.com/v21.0"

	// mediaURLTTL is how long a fetched media URL is served from cache
	// before a refresh. Provider links expire after roughly five minutes.
	mediaURLTTL = 4 * time.Minute
)

// Config holds the provider client configuration.
type Config struct {
	BaseURL       string
	AccessToken   string
	PhoneNumberID string
	AppSecret     string // webhook signature verification; empty disables
}

// Client is the WhatsApp Cloud API client.
type Client struct {
	cfg        Config
	httpClient *http.Client

	mediaMu    sync.Mutex
	mediaCache map[string]*Media
}

// SendResult is the normalized outcome of a send call.
type SendResult struct {
	OK        bool
	MessageID string
	Class     ErrorClass
	Raw       json.RawMessage
}

// Media is a refreshed media handle location.
type Media struct {
	ID        string
	URL       string
	MimeType  string
	ExpiresAt time.Time
}

// PhoneNumberInfo is the probe result for a sender.
type PhoneNumberInfo struct {
	ID           string `json:"id"`
	DisplayPhone string `json:"display_phone_number"`
	VerifiedName string `json:"verified_name"`
}

// NewClient creates a provider client. BaseURL defaults to the Cloud API.
func NewClient(cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	return &Client{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout: requestTimeout,
		},
		mediaCache: make(map[string]*Media),
	}
}

// PhoneNumberID returns the configured sender id.
func (c *Client) PhoneNumberID() string {
	return c.cfg.PhoneNumberID
}

// Send delivers one message. The result always carries a class; the
// returned error (a *Error) is non-nil iff the class is not ok.
func (c *Client) Send(ctx context.Context, msg *Message) (*SendResult, error) {
	body, err := json.Marshal(msg)
	if err != nil {
		return nil, fmt.Errorf("marshaling message: %w", err)
	}

	url := fmt.Sprintf("%s/%s/messages", c.cfg.BaseURL, c.cfg.PhoneNumberID)
	status, raw, err := c.do(ctx, http.MethodPost, url, body)
	if err != nil {
		perr := &Error{Class: ClassTransient, Message: err.Error()}
		return &SendResult{Class: ClassTransient}, perr
	}

	if status >= 200 && status < 300 {
		var resp struct {
			Messages []struct {
				ID string `json:"id"`
			} `json:"messages"`
		}
		if err := json.Unmarshal(raw, &resp); err != nil || len(resp.Messages) == 0 {
			perr := &Error{Class: ClassTransient, Message: "send accepted but response carried no message id", Raw: raw}
			return &SendResult{Class: ClassTransient, Raw: raw}, perr
		}
		return &SendResult{OK: true, MessageID: resp.Messages[0].ID, Class: ClassOK, Raw: raw}, nil
	}

	perr := decodeError(status, raw)
	return &SendResult{Class: perr.Class, Raw: raw}, perr
}

// FetchMedia resolves a media handle to a downloadable URL. Results are
// cached until shortly before provider-side expiry; force bypasses the
// cache for the rehost path.
func (c *Client) FetchMedia(ctx context.Context, mediaID string, force bool) (*Media, error) {
	if !force {
		c.mediaMu.Lock()
		cached, ok := c.mediaCache[mediaID]
		c.mediaMu.Unlock()
		if ok && time.Now().Before(cached.ExpiresAt) {
			return cached, nil
		}
	}

	url := fmt.Sprintf("%s/%s", c.cfg.BaseURL, mediaID)
	status, raw, err := c.do(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &Error{Class: ClassTransient, Message: err.Error()}
	}
	if status < 200 || status >= 300 {
		return nil, decodeError(status, raw)
	}

	var resp struct {
		ID       string `json:"id"`
		URL      string `json:"url"`
		MimeType string `json:"mime_type"`
	}
	if err := json.Unmarshal(raw, &resp); err != nil {
		return nil, &Error{Class: ClassTransient, Message: "malformed media response", Raw: raw}
	}

	media := &Media{
		ID:        resp.ID,
		URL:       resp.URL,
		MimeType:  resp.MimeType,
		ExpiresAt: time.Now().Add(mediaURLTTL),
	}
	c.mediaMu.Lock()
	c.mediaCache[mediaID] = media
	c.mediaMu.Unlock()
	return media, nil
}

// Probe fetches the sender's display phone number. Used at startup to
// verify token and sender wiring.
func (c *Client) Probe(ctx context.Context) (*PhoneNumberInfo, error) {
	url := fmt.Sprintf("%s/%s", c.cfg.BaseURL, c.cfg.PhoneNumberID)
	status, raw, err := c.do(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &Error{Class: ClassTransient, Message: err.Error()}
	}
	if status < 200 || status >= 300 {
		return nil, decodeError(status, raw)
	}

	var info PhoneNumberInfo
	if err := json.Unmarshal(raw, &info); err != nil {
		return nil, &Error{Class: ClassTransient, Message: "malformed probe response", Raw: raw}
	}
	return &info, nil
}

// do issues one HTTP request and returns status plus body. Transport
// failures return an error; HTTP-level failures return the status for
// classification.
func (c *Client) do(ctx context.Context, method, url string, body []byte) (int, []byte, error) {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return 0, nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.cfg.AccessToken)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return resp.StatusCode, nil, err
	}
	return resp.StatusCode, raw, nil
}

// decodeError parses a provider error body and classifies it.
func decodeError(status int, raw []byte) *Error {
	var env apiErrorEnvelope
	if err := json.Unmarshal(raw, &env); err != nil || env.Error.Code == 0 && env.Error.Message == "" {
		slog.Debug("Provider error body not decodable", "status", status)
		return classify(status, nil, raw)
	}
	return classify(status, &env.Error, raw)
}
