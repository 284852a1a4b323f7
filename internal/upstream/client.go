package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	HeaderRequestID = "X-Request-ID"
	maxBodyBytes    = 4 << 20
)

type Request struct {
	Method    string
	Path      string
	Query     url.Values
	Body      []byte
	Token     string
	RequestID string
}

type Response struct {
	Status      int
	Body        []byte
	ContentType string
}

func (r *Response) OK() bool {
	return r.Status >= 200 && r.Status < 300
}

// Client talks to one backend capability. The base URL is fixed at construction.
type Client struct {
	service string
	baseURL string
	http    *http.Client
}

func NewClient(service, baseURL string, timeout time.Duration) *Client {
	return &Client{
		service: service,
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

func (c *Client) Service() string {
	return c.service
}

func (c *Client) BaseURL() string {
	return c.baseURL
}

// Do sends the request and returns whatever the backend answered.
// Only transport failures produce an error.
func (c *Client) Do(ctx context.Context, in Request) (*Response, error) {
	target := c.baseURL + in.Path
	if len(in.Query) > 0 {
		target += "?" + in.Query.Encode()
	}

	var body io.Reader
	if in.Body != nil {
		body = bytes.NewReader(in.Body)
	}

	req, err := http.NewRequestWithContext(ctx, in.Method, target, body)
	if err != nil {
		return nil, &Error{Service: c.service, Err: err}
	}

	req.Header.Set("Accept", "application/json")
	if in.Body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if in.Token != "" {
		req.Header.Set("Authorization", "Bearer "+in.Token)
	}
	if in.RequestID == "" {
		in.RequestID = uuid.NewString()
	}
	req.Header.Set(HeaderRequestID, in.RequestID)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &Error{Service: c.service, Timeout: isTimeout(err), Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, &Error{Service: c.service, Status: resp.StatusCode, Timeout: isTimeout(err), Err: err}
	}

	return &Response{
		Status:      resp.StatusCode,
		Body:        raw,
		ContentType: resp.Header.Get("Content-Type"),
	}, nil
}

// Fetch is Do plus a 2xx check and JSON decoding into out (when not nil).
func (c *Client) Fetch(ctx context.Context, in Request, out any) (*Response, error) {
	resp, err := c.Do(ctx, in)
	if err != nil {
		return nil, err
	}
	if !resp.OK() {
		return resp, &Error{Service: c.service, Status: resp.Status, Body: resp.Body}
	}
	if out != nil && len(resp.Body) > 0 {
		if err := json.Unmarshal(resp.Body, out); err != nil {
			return resp, &Error{Service: c.service, Status: resp.Status, Body: resp.Body, Err: fmt.Errorf("decode: %w", err)}
		}
	}
	return resp, nil
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var ne net.Error
	return errors.As(err, &ne) && ne.Timeout()
}
