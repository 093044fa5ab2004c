package api

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/dmitrijs2005/bookdesk/internal/client/notify"
	"github.com/dmitrijs2005/bookdesk/internal/client/session"
	"github.com/dmitrijs2005/bookdesk/internal/logging"
)

const (
	DefaultBaseURL = "http://localhost:8080"
	DefaultTimeout = 15 * time.Second

	maxBodySize = 8 << 20
)

// Session is what the transport needs from the session store.
type Session interface {
	Snapshot() session.Snapshot
	ClearIfCurrent(ctx context.Context, generation uint64) (bool, error)
}

// Redirector forces the UI to the login screen.
type Redirector interface {
	RedirectToLogin(ctx context.Context)
}

// Doer is implemented by *Client; resource services depend on it.
type Doer interface {
	Do(ctx context.Context, r Request) (*Envelope, error)
}

// FilePart is a file sent as multipart form-data.
type FilePart struct {
	Field    string
	Filename string
	Content  io.Reader
}

// Request describes one call. URL is relative to the base URL unless
// absolute. Data is sent as JSON; File switches the body to multipart.
type Request struct {
	Method  string
	URL     string
	Params  url.Values
	Data    any
	Headers http.Header
	File    *FilePart
}

type Client struct {
	baseURL    string
	http       *http.Client
	session    Session
	notifier   notify.Notifier
	redirector Redirector
	log        logging.Logger
}

// NewClient builds a client for baseURL. Every call is bounded by timeout;
// authentication failures clear sess and ask redirector for the login screen.
func NewClient(baseURL string, timeout time.Duration, sess Session, notifier notify.Notifier, redirector Redirector, log logging.Logger) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		http:       &http.Client{Timeout: timeout},
		session:    sess,
		notifier:   notifier,
		redirector: redirector,
		log:        log,
	}
}

// Do performs r and returns the success envelope. Every failure is an
// *Error and has already been shown to the user.
func (c *Client) Do(ctx context.Context, r Request) (*Envelope, error) {
	snap := c.session.Snapshot()

	req, err := c.newRequest(ctx, r)
	if err != nil {
		return nil, err
	}
	authorize(req, snap)

	start := time.Now()
	status, body, transportErr := c.roundTrip(req)

	c.log.Debug(ctx, "request completed",
		"method", req.Method,
		"url", req.URL.Path,
		"status", status,
		"request_id", req.Header.Get(HeaderRequestID),
		"elapsed", time.Since(start),
	)

	env, apiErr := classify(status, body, transportErr)
	if apiErr != nil {
		c.log.Warn(ctx, "request failed",
			"method", req.Method,
			"url", req.URL.Path,
			"kind", apiErr.Kind.String(),
			"code", apiErr.Code,
			"err", apiErr,
		)
		c.enforce(ctx, apiErr, snap.Generation)
		return nil, apiErr
	}
	return env, nil
}

func (c *Client) roundTrip(req *http.Request) (int, []byte, error) {
	resp, err := c.http.Do(req)
	if err != nil {
		return 0, nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return 0, nil, fmt.Errorf("read response body: %w", err)
	}
	return resp.StatusCode, body, nil
}

func (c *Client) newRequest(ctx context.Context, r Request) (*http.Request, error) {
	method := r.Method
	if method == "" {
		method = http.MethodGet
	}

	u, err := c.resolve(r.URL, r.Params)
	if err != nil {
		return nil, err
	}

	var (
		body        io.Reader
		contentType string
	)
	switch {
	case r.File != nil:
		buf, ct, err := multipartBody(r.File)
		if err != nil {
			return nil, err
		}
		body, contentType = buf, ct
	case r.Data != nil:
		raw, err := json.Marshal(r.Data)
		if err != nil {
			return nil, fmt.Errorf("encode request body: %w", err)
		}
		body, contentType = bytes.NewReader(raw), "application/json"
	}

	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	for k, vs := range r.Headers {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	return req, nil
}

func (c *Client) resolve(path string, params url.Values) (string, error) {
	raw := path
	if !strings.HasPrefix(path, "http://") && !strings.HasPrefix(path, "https://") {
		raw = c.baseURL + "/" + strings.TrimPrefix(path, "/")
	}
	u, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("parse url %q: %w", raw, err)
	}
	if len(params) > 0 {
		q := u.Query()
		for k, vs := range params {
			for _, v := range vs {
				q.Add(k, v)
			}
		}
		u.RawQuery = q.Encode()
	}
	return u.String(), nil
}

func multipartBody(f *FilePart) (*bytes.Buffer, string, error) {
	field := f.Field
	if field == "" {
		field = "file"
	}

	buf := &bytes.Buffer{}
	w := multipart.NewWriter(buf)
	part, err := w.CreateFormFile(field, f.Filename)
	if err != nil {
		return nil, "", fmt.Errorf("create form file: %w", err)
	}
	if _, err := io.Copy(part, f.Content); err != nil {
		return nil, "", fmt.Errorf("copy file content: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, "", fmt.Errorf("close multipart writer: %w", err)
	}
	return buf, w.FormDataContentType(), nil
}

// Call performs r and decodes the envelope data into T.
func Call[T any](ctx context.Context, d Doer, r Request) (T, error) {
	env, err := d.Do(ctx, r)
	if err != nil {
		var zero T
		return zero, err
	}
	return Decode[T](env)
}
