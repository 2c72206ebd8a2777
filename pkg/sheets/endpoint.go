package sheets

import (
	"errors"
	"fmt"
	"net/url"
	"regexp"
)

var (
	ErrEndpointMissing  = errors.New("sheets: endpoint URL is not configured")
	ErrEndpointInvalid  = errors.New("sheets: endpoint URL must be an absolute http(s) URL")
	ErrScriptIDMissing  = errors.New("sheets: could not extract script ID from endpoint URL")
	scriptIDPathPattern = regexp.MustCompile(`/macros/s/([^/]+)`)
)

// Endpoint is a deployed Apps Script web app.
type Endpoint struct {
	Origin   *url.URL // scheme and host only
	ScriptID string
}

// ParseEndpoint validates the configured web app URL and extracts the parts
// the relay needs to rewrite requests.
func ParseEndpoint(raw string) (*Endpoint, error) {
	if raw == "" {
		return nil, ErrEndpointMissing
	}

	u, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEndpointInvalid, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, ErrEndpointInvalid
	}

	match := scriptIDPathPattern.FindStringSubmatch(u.Path)
	if match == nil {
		return nil, ErrScriptIDMissing
	}

	return &Endpoint{
		Origin:   &url.URL{Scheme: u.Scheme, Host: u.Host},
		ScriptID: match[1],
	}, nil
}

// ExecPath is the path the relay rewrites incoming requests to.
func (e *Endpoint) ExecPath() string {
	return "/macros/s/" + e.ScriptID + "/exec"
}

// ExecURL is the absolute URL of the web app's POST handler.
func (e *Endpoint) ExecURL() string {
	u := *e.Origin
	u.Path = e.ExecPath()
	return u.String()
}
