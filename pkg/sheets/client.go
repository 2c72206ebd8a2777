package sheets

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Kind tags the way a delivery attempt failed.
type Kind int

const (
	KindNetwork Kind = iota + 1 // request never produced a response
	KindHTTP                    // response with a non-2xx status
	KindParse                   // 2xx response whose JSON body is not a reply object
)

func (k Kind) String() string {
	switch k {
	case KindNetwork:
		return "network"
	case KindHTTP:
		return "http"
	case KindParse:
		return "parse"
	default:
		return "unknown"
	}
}

// maxErrorBody bounds how much of a failed response is kept for logging.
const maxErrorBody = 512

// TransportError is returned by Client for every failed attempt.
type TransportError struct {
	Kind   Kind
	Status int    // set for KindHTTP
	Body   string // truncated response body, set for KindHTTP
	Err    error
}

func (e *TransportError) Error() string {
	switch e.Kind {
	case KindHTTP:
		return fmt.Sprintf("sheets: upstream responded with status %d", e.Status)
	case KindParse:
		return fmt.Sprintf("sheets: malformed reply: %v", e.Err)
	default:
		return fmt.Sprintf("sheets: %s error: %v", e.Kind, e.Err)
	}
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// Reply is a raw upstream response.
type Reply struct {
	Status      int
	ContentType string
	Body        []byte
}

// Client posts JSON bodies. It never retries.
type Client struct {
	httpClient *http.Client
}

// NewClient creates a client. A zero timeout leaves the transport defaults in
// place.
func NewClient(timeout time.Duration) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
	}
}

// NewClientWith wraps an existing http.Client.
func NewClientWith(httpClient *http.Client) *Client {
	return &Client{httpClient: httpClient}
}

// Send posts body to target and returns the response whatever its status.
// Only failures to obtain a response are reported as errors. Redirects are
// followed, which Apps Script relies on to hand back its output.
func (c *Client) Send(ctx context.Context, target string, body []byte) (*Reply, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, target, bytes.NewReader(body))
	if err != nil {
		return nil, &TransportError{Kind: KindNetwork, Err: fmt.Errorf("build request: %w", err)}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &TransportError{Kind: KindNetwork, Err: err}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{Kind: KindNetwork, Err: fmt.Errorf("read response: %w", err)}
	}

	return &Reply{
		Status:      resp.StatusCode,
		ContentType: resp.Header.Get("Content-Type"),
		Body:        data,
	}, nil
}

// Post is Send with non-2xx statuses turned into KindHTTP errors.
func (c *Client) Post(ctx context.Context, target string, body []byte) (*Reply, error) {
	reply, err := c.Send(ctx, target, body)
	if err != nil {
		return nil, err
	}
	if reply.Status < 200 || reply.Status > 299 {
		return nil, &TransportError{
			Kind:   KindHTTP,
			Status: reply.Status,
			Body:   truncate(string(reply.Body), maxErrorBody),
		}
	}
	return reply, nil
}

// Outcome is the interpretation of a 2xx reply body.
type Outcome struct {
	Result  string // "success" or "error" when the body was a JSON reply
	Message string
	JSON    bool
}

// IsLogicalFailure reports whether the spreadsheet script accepted the request
// but failed to record it. The script answers 200 in both cases.
func (o *Outcome) IsLogicalFailure() bool {
	return o.JSON && o.Result == ResultError
}

const (
	ResultSuccess = "success"
	ResultError   = "error"
)

// Interpret decodes a reply body. JSON objects are read as {result, message};
// non-JSON text is kept verbatim as the message.
func Interpret(body []byte) (*Outcome, error) {
	trimmed := bytes.TrimSpace(body)
	if !json.Valid(trimmed) {
		return &Outcome{Message: string(body)}, nil
	}

	var reply struct {
		Result  string `json:"result"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(trimmed, &reply); err != nil {
		return nil, &TransportError{Kind: KindParse, Err: err}
	}
	return &Outcome{Result: reply.Result, Message: reply.Message, JSON: true}, nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return strings.ToValidUTF8(s[:n], "")
}
