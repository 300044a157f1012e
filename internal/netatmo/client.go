package netatmo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	// DefaultBaseURL is the production Netatmo API host.
	DefaultBaseURL = "https://api.netatmo.com"

	tokenPath        = "/oauth2/token"
	stationsDataPath = "/api/getstationsdata"
	scopeReadStation = "read_station"
)

// Credentials are the four secrets required by the Netatmo password grant.
type Credentials struct {
	ClientID     string
	ClientSecret string
	Username     string
	Password     string
}

// Client talks to the Netatmo weather API. It is not safe for concurrent
// use; a collection run is strictly sequential anyway.
type Client struct {
	baseURL string
	httpc   *http.Client
	logger  *slog.Logger

	token string
}

// NewClient creates a Netatmo client. An empty baseURL selects the
// production API; a nil httpc gets a client with a sane timeout.
func NewClient(baseURL string, httpc *http.Client, logger *slog.Logger) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if httpc == nil {
		httpc = &http.Client{Timeout: 30 * time.Second}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		httpc:   httpc,
		logger:  logger,
	}
}

// Authenticate performs the OAuth2 password grant and keeps the access token
// for subsequent calls.
func (c *Client) Authenticate(ctx context.Context, creds Credentials) error {
	form := url.Values{}
	form.Set("grant_type", "password")
	form.Set("client_id", creds.ClientID)
	form.Set("client_secret", creds.ClientSecret)
	form.Set("username", creds.Username)
	form.Set("password", creds.Password)
	form.Set("scope", scopeReadStation)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+tokenPath, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("netatmo token request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpc.Do(req)
	if err != nil {
		return fmt.Errorf("netatmo token: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("netatmo token: unexpected status %s", resp.Status)
	}

	var body struct {
		AccessToken string `json:"access_token"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return fmt.Errorf("netatmo token: decode response: %w", err)
	}
	if body.AccessToken == "" {
		return errors.New("netatmo token: empty access_token in response")
	}

	c.token = body.AccessToken
	c.logger.Debug("netatmo authenticated")
	return nil
}

// StationsData fetches the weather-station tree for the authenticated
// account. Authenticate must have succeeded first.
func (c *Client) StationsData(ctx context.Context) ([]Station, error) {
	if c.token == "" {
		return nil, errors.New("netatmo: not authenticated")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+stationsDataPath, nil)
	if err != nil {
		return nil, fmt.Errorf("netatmo stations request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("netatmo stations: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("netatmo stations: unexpected status %s", resp.Status)
	}

	var body struct {
		Body struct {
			Devices []Station `json:"devices"`
		} `json:"body"`
		Status string `json:"status"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("netatmo stations: decode response: %w", err)
	}
	if body.Status != "ok" {
		return nil, fmt.Errorf("netatmo stations: status %q", body.Status)
	}

	c.logger.Debug("netatmo stations fetched", "stations", len(body.Body.Devices))
	return body.Body.Devices, nil
}
