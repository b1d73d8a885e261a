package workshopapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"taller_dashboards/internal/domain/entities"
	"taller_dashboards/internal/usecase/interfaces"
)

const DefaultTimeout = 10 * time.Second

// Client is the HTTP implementation of interfaces.IWorkshopAPI against the
// workshop backend. A malformed record is skipped with a warning; a malformed
// response or non-200 status is an error for the whole collection (the
// snapshot loader turns that into a degraded resource).
type Client struct {
	baseURL string
	http    *http.Client
	log     *logrus.Logger
}

var _ interfaces.IWorkshopAPI = (*Client)(nil)

func New(baseURL string, timeout time.Duration, log *logrus.Logger) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		log:     log,
	}
}

// getList fetches one collection and returns its records undecoded. Both a
// bare JSON array and a {"data": [...]} envelope are accepted.
func (c *Client) getList(ctx context.Context, path string) ([]json.RawMessage, error) {
	url := c.baseURL + path
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("workshop api: build request %s: %w", path, err)
	}
	req.Header.Set("Accept", "application/json")

	res, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("workshop api: get %s: %w", path, err)
	}
	defer res.Body.Close()

	switch {
	case res.StatusCode == http.StatusForbidden:
		return nil, fmt.Errorf("get %s: %w", path, interfaces.ErrForbidden)
	case res.StatusCode != http.StatusOK:
		return nil, fmt.Errorf("workshop api: get %s: unexpected status %d", path, res.StatusCode)
	}

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, fmt.Errorf("workshop api: read %s: %w", path, err)
	}

	var records []json.RawMessage
	if err := json.Unmarshal(body, &records); err == nil {
		return records, nil
	}
	var envelope struct {
		Data []json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(body, &envelope); err == nil && envelope.Data != nil {
		return envelope.Data, nil
	}
	return nil, fmt.Errorf("workshop api: get %s: response is neither an array nor a data envelope", path)
}

// decodeEach decodes every record with decode, skipping the ones that fail.
func decodeEach[W any, E any](c *Client, path string, records []json.RawMessage, decode func(W) E) []E {
	out := make([]E, 0, len(records))
	for i, raw := range records {
		var wire W
		if err := json.Unmarshal(raw, &wire); err != nil {
			c.log.WithFields(logrus.Fields{
				"path":  path,
				"index": i,
				"error": err.Error(),
			}).Warn("[workshopapi] skipping malformed record")
			continue
		}
		out = append(out, decode(wire))
	}
	return out
}

func (c *Client) ListWorkOrders(ctx context.Context) ([]entities.WorkOrder, error) {
	records, err := c.getList(ctx, "/work-orders")
	if err != nil {
		return nil, err
	}
	return decodeEach(c, "/work-orders", records, workOrderWire.toEntity), nil
}

func (c *Client) ListClients(ctx context.Context) ([]entities.Client, error) {
	records, err := c.getList(ctx, "/clients")
	if err != nil {
		return nil, err
	}
	return decodeEach(c, "/clients", records, clientWire.toEntity), nil
}

func (c *Client) ListMotorcycles(ctx context.Context) ([]entities.Motorcycle, error) {
	records, err := c.getList(ctx, "/motorcycles")
	if err != nil {
		return nil, err
	}
	return decodeEach(c, "/motorcycles", records, motorcycleWire.toEntity), nil
}

func (c *Client) ListPayments(ctx context.Context) ([]entities.Payment, error) {
	records, err := c.getList(ctx, "/payments")
	if err != nil {
		return nil, err
	}
	return decodeEach(c, "/payments", records, paymentWire.toEntity), nil
}

func (c *Client) ListServices(ctx context.Context) ([]entities.CatalogService, error) {
	records, err := c.getList(ctx, "/services")
	if err != nil {
		return nil, err
	}
	return decodeEach(c, "/services", records, serviceWire.toEntity), nil
}

func (c *Client) ListParts(ctx context.Context) ([]entities.Part, error) {
	records, err := c.getList(ctx, "/parts")
	if err != nil {
		return nil, err
	}
	return decodeEach(c, "/parts", records, partWire.toEntity), nil
}

func (c *Client) ListUsers(ctx context.Context) ([]entities.User, error) {
	records, err := c.getList(ctx, "/users")
	if err != nil {
		return nil, err
	}
	return decodeEach(c, "/users", records, userWire.toEntity), nil
}
