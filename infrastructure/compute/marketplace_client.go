package compute

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/pkg/errors"
	"tee-settlement/domain/entities"
	"tee-settlement/domain/interfaces"
)

// marketplaceClient talks to the compute network's order book and matching
// API over HTTP.
type marketplaceClient struct {
	baseURL    string
	httpClient *http.Client
	logger     interfaces.Logger
}

// NewMarketplaceClient creates a marketplace client for the given base URL.
func NewMarketplaceClient(baseURL string, logger interfaces.Logger) interfaces.Marketplace {
	return &marketplaceClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 30 * time.Second},
		logger:     logger,
	}
}

type workerpoolOrdersResponse struct {
	Orders []entities.WorkerpoolOrder `json:"orders"`
}

type matchOrdersRequest struct {
	AppOrder        entities.AppOrder        `json:"apporder"`
	WorkerpoolOrder entities.WorkerpoolOrder `json:"workerpoolorder"`
	RequestOrder    entities.RequestOrder    `json:"requestorder"`
}

type matchOrdersResponse struct {
	DealID string `json:"dealid"`
}

// FetchWorkerpoolOrders queries the order book for pool orders compatible
// with the application and tag, with a minimum volume of one.
func (c *marketplaceClient) FetchWorkerpoolOrders(
	ctx context.Context,
	app string,
	tag string,
) ([]entities.WorkerpoolOrder, error) {
	q := url.Values{}
	q.Set("app", app)
	q.Set("tag", tag)
	q.Set("minVolume", "1")

	var out workerpoolOrdersResponse
	if err := c.getJSON(ctx, "/workerpoolorders?"+q.Encode(), &out); err != nil {
		return nil, errors.Wrap(err, "fetch workerpool orders")
	}

	return out.Orders, nil
}

// MatchOrders matches the three orders atomically via the marketplace match
// entry point and returns the deal id.
func (c *marketplaceClient) MatchOrders(
	ctx context.Context,
	appOrder entities.AppOrder,
	poolOrder entities.WorkerpoolOrder,
	requestOrder entities.RequestOrder,
) (string, error) {
	body, err := json.Marshal(matchOrdersRequest{
		AppOrder:        appOrder,
		WorkerpoolOrder: poolOrder,
		RequestOrder:    requestOrder,
	})
	if err != nil {
		return "", errors.Wrap(err, "encode match request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/orders/match", bytes.NewReader(body))
	if err != nil {
		return "", errors.Wrap(err, "build match request")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", errors.Wrap(err, "match orders")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return "", errors.Errorf("match orders: marketplace returned %d: %s", resp.StatusCode, payload)
	}

	var out matchOrdersResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", errors.Wrap(err, "decode match response")
	}
	if out.DealID == "" {
		return "", errors.New("match orders: marketplace returned empty deal id")
	}

	return out.DealID, nil
}

// Ping checks marketplace reachability.
func (c *marketplaceClient) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/version", nil)
	if err != nil {
		return errors.Wrap(err, "build ping request")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.Wrap(err, "ping marketplace")
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusInternalServerError {
		return errors.Errorf("ping marketplace: status %d", resp.StatusCode)
	}
	return nil
}

func (c *marketplaceClient) getJSON(ctx context.Context, path string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("marketplace returned status %d", resp.StatusCode)
	}

	return json.NewDecoder(resp.Body).Decode(out)
}
