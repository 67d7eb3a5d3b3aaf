// Package bridge contains the tool-to-HTTP-request compiler, the upstream
// invoker, and the response normalizer that together turn an abstract
// (tool, parameters) pair into one Follow Up Boss API call.
package bridge

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/homeflow-labs/fub-bridge/internal/catalog"
)

// Credentials holds the outbound upstream credentials. System and SystemKey
// are optional; headers for them are only emitted when both are set.
type Credentials struct {
	APIKey    string
	System    string
	SystemKey string
}

// CompiledRequest is a fully-formed outbound request. It exists only for the
// duration of one invocation.
type CompiledRequest struct {
	Method  string
	URL     string
	Headers http.Header
	Body    []byte // nil for methods without a body
}

// Compiler deterministically transforms (tool, parameter bag) pairs into
// compiled requests against a fixed upstream base URL.
type Compiler struct {
	baseURL string
	creds   Credentials
}

// NewCompiler creates a compiler for the given base URL and credentials.
func NewCompiler(baseURL string, creds Credentials) *Compiler {
	return &Compiler{
		baseURL: strings.TrimRight(baseURL, "/"),
		creds:   creds,
	}
}

// Compile builds the outbound request for one invocation.
//
// Path placeholders are substituted with percent-encoded parameter values; a
// placeholder whose parameter is missing is left in the URL as-is, and the
// failure surfaces at the upstream rather than here. Parameters consumed by
// the path never reappear in the query string. For GET and DELETE the
// remaining non-null parameters become the query string in bag order; for
// POST, PUT and PATCH the body is parameters.data when present, else the
// whole bag.
func (c *Compiler) Compile(t catalog.Tool, params *Bag) (CompiledRequest, error) {
	method := strings.ToUpper(t.Method)
	consumed := make(map[string]bool)
	path := substitutePath(t.Path, params, consumed)

	req := CompiledRequest{
		Method:  method,
		Headers: c.headers(),
	}

	switch method {
	case http.MethodGet, http.MethodDelete:
		if q := buildQuery(params, consumed); q != "" {
			sep := "?"
			if strings.Contains(path, "?") {
				sep = "&"
			}
			path += sep + q
		}
	case http.MethodPost, http.MethodPut, http.MethodPatch:
		body, err := buildBody(params)
		if err != nil {
			return CompiledRequest{}, fmt.Errorf("failed to marshal request body for %s: %w", t.Name, err)
		}
		req.Body = body
	}

	req.URL = c.baseURL + path
	return req, nil
}

// headers builds the fixed outbound header set: JSON content type, Basic auth
// with the API key as username and empty password, and the optional
// X-System / X-System-Key pair.
func (c *Compiler) headers() http.Header {
	h := make(http.Header)
	h.Set("Content-Type", "application/json")
	h.Set("Authorization", "Basic "+base64.StdEncoding.EncodeToString([]byte(c.creds.APIKey+":")))
	if c.creds.System != "" && c.creds.SystemKey != "" {
		h.Set("X-System", c.creds.System)
		h.Set("X-System-Key", c.creds.SystemKey)
	}
	return h
}

// substitutePath replaces :name placeholders in the template with
// percent-encoded parameter values and records every placeholder key in
// consumed. Placeholders with no present, non-null parameter are left
// untouched.
func substitutePath(template string, params *Bag, consumed map[string]bool) string {
	var b strings.Builder
	for i := 0; i < len(template); {
		if template[i] != ':' {
			b.WriteByte(template[i])
			i++
			continue
		}
		j := i + 1
		for j < len(template) && template[j] != '/' && template[j] != '?' && template[j] != '&' {
			j++
		}
		key := template[i+1 : j]
		if key == "" {
			b.WriteByte(':')
			i++
			continue
		}
		consumed[key] = true
		if v, ok := params.Get(key); ok && v != nil {
			b.WriteString(url.PathEscape(stringValue(v)))
		} else {
			b.WriteString(template[i:j])
		}
		i = j
	}
	return b.String()
}

// buildQuery renders the non-consumed, non-null parameters as a
// percent-encoded query string in bag insertion order.
func buildQuery(params *Bag, consumed map[string]bool) string {
	var pairs []string
	for _, k := range params.Keys() {
		if consumed[k] {
			continue
		}
		v, _ := params.Get(k)
		if v == nil {
			continue
		}
		pairs = append(pairs, url.QueryEscape(k)+"="+url.QueryEscape(stringValue(v)))
	}
	return strings.Join(pairs, "&")
}

// buildBody serializes parameters.data when present, else the whole bag.
// The bag fallback keeps path-only tools (claim, ignore) producing a valid
// minimal body.
func buildBody(params *Bag) ([]byte, error) {
	if data, ok := params.Get("data"); ok && data != nil {
		return json.Marshal(data)
	}
	if params == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(params)
}
