package somtoday

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"takeout/internal/jsonvalue"
	"takeout/internal/logging"
	"takeout/internal/services"
	"takeout/internal/textutil"
)

const (
	statusBodyLimit = 512
	logURLLimit     = 100
)

// StatusError reports a response outside the 2xx range.
type StatusError struct {
	URL        string
	StatusCode int
	Status     string
	Body       string
}

func (e *StatusError) Error() string {
	body := strings.TrimSpace(e.Body)
	if body == "" {
		return fmt.Sprintf("GET %s: http %d", e.URL, e.StatusCode)
	}
	return fmt.Sprintf("GET %s: http %d: %s", e.URL, e.StatusCode, body)
}

// Client issues authenticated requests against one REST root.
type Client struct {
	endpoints  Endpoints
	token      string
	httpClient *http.Client
	timeout    time.Duration
	logger     *slog.Logger
}

// Option customizes the client.
type Option func(*Client)

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.httpClient = client
		}
	}
}

// WithTimeout bounds every request. Zero leaves requests unbounded. It
// applies to the HTTP client whichever order the options come in.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.timeout = timeout
	}
}

// WithLogger attaches a logger for request tracing.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// New constructs a client for baseURL using token as the bearer credential.
func New(baseURL, token string, opts ...Option) (*Client, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, services.Wrap(services.ErrConfiguration, "client", "new", "access token required", nil)
	}
	client := &Client{
		endpoints:  NewEndpoints(baseURL),
		token:      token,
		httpClient: &http.Client{},
		logger:     logging.NewNop(),
	}
	for _, opt := range opts {
		opt(client)
	}
	if client.timeout > 0 {
		// Copy so a caller's client keeps its own timeout.
		cp := *client.httpClient
		cp.Timeout = client.timeout
		client.httpClient = &cp
	}
	client.logger = logging.NewComponentLogger(client.logger, "somtoday")
	return client, nil
}

// Endpoints exposes the URL builders used by the client.
func (c *Client) Endpoints() Endpoints {
	return c.endpoints
}

// Get fetches url and decodes the body as a JSON document.
func (c *Client) Get(ctx context.Context, url string) (jsonvalue.Value, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return jsonvalue.Value{}, services.Wrap(services.ErrTransport, "fetch", "build request", textutil.Truncate(url, logURLLimit), err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Accept", "application/json")

	logging.WithContext(ctx, c.logger).Info("fetching", logging.String("url", textutil.Truncate(url, logURLLimit)))
	started := time.Now()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return jsonvalue.Value{}, services.Wrap(services.ErrTransport, "fetch", "request", textutil.Truncate(url, logURLLimit), err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, statusBodyLimit))
		statusErr := &StatusError{
			URL:        textutil.Truncate(url, logURLLimit),
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
			Body:       string(snippet),
		}
		return jsonvalue.Value{}, services.Wrap(services.ErrTransport, "fetch", "status", "", statusErr)
	}

	doc, err := jsonvalue.Decode(resp.Body)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return jsonvalue.Value{}, services.Wrap(services.ErrTransport, "fetch", "read body", "", errors.Join(ctxErr, err))
		}
		return jsonvalue.Value{}, services.Wrap(services.ErrShape, "fetch", "decode body", textutil.Truncate(url, logURLLimit), err)
	}
	logging.WithContext(ctx, c.logger).Debug("fetched",
		logging.Int("status", resp.StatusCode),
		logging.Duration("elapsed", time.Since(started)),
	)
	return doc, nil
}

// Students returns the student listing visible to the token.
func (c *Client) Students(ctx context.Context) (jsonvalue.Value, error) {
	return c.Get(ctx, c.endpoints.Students())
}

// Placements returns the placement listing of a student.
func (c *Client) Placements(ctx context.Context, studentID string) (jsonvalue.Value, error) {
	return c.Get(ctx, c.endpoints.Placements(studentID))
}

// SubjectAverages returns the subject averages of a placement.
func (c *Client) SubjectAverages(ctx context.Context, placementUUID string) (jsonvalue.Value, error) {
	return c.Get(ctx, c.endpoints.SubjectAverages(placementUUID))
}

// Grades returns the in-progress results of one subject.
func (c *Client) Grades(ctx context.Context, ref ResultRef) (jsonvalue.Value, error) {
	return c.Get(ctx, c.endpoints.Grades(ref))
}

// ExamGrades returns the exam-file results of one subject.
func (c *Client) ExamGrades(ctx context.Context, ref ResultRef) (jsonvalue.Value, error) {
	return c.Get(ctx, c.endpoints.ExamGrades(ref))
}
