package bridge

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/homeflow-labs/fub-bridge/internal/common"
)

// maxResponseSize caps the upstream response body to prevent OOM from
// unexpectedly large responses.
const maxResponseSize = 50 << 20 // 50MB

// Result captures one upstream response without interpretation: the status
// code, the status text, and the raw body bytes.
type Result struct {
	StatusCode int
	StatusText string
	RawBody    []byte
}

// Invoker executes compiled requests against the upstream API. It performs
// exactly one request per invocation: no retries, no status interpretation.
type Invoker struct {
	httpClient *http.Client
	logger     *common.Logger
}

// NewInvoker creates an invoker with the default upstream timeout.
func NewInvoker(logger *common.Logger) *Invoker {
	return &Invoker{
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
		logger: logger,
	}
}

// Do executes the compiled request and captures the raw outcome. A non-nil
// error means the request could not complete at the transport level
// (DNS, connection, TLS, timeout); upstream application errors are returned
// as a Result, not an error.
func (inv *Invoker) Do(ctx context.Context, req CompiledRequest) (Result, error) {
	inv.logger.Debug().Str("method", req.Method).Str("url", req.URL).Msg("upstream request")

	var bodyReader io.Reader
	if req.Body != nil {
		bodyReader = bytes.NewReader(req.Body)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, req.URL, bodyReader)
	if err != nil {
		return Result{}, fmt.Errorf("upstream request failed: %w", err)
	}
	for key, vals := range req.Headers {
		for _, v := range vals {
			httpReq.Header.Set(key, v)
		}
	}

	start := time.Now()
	resp, err := inv.httpClient.Do(httpReq)
	duration := time.Since(start)
	if err != nil {
		inv.logger.Error().Str("method", req.Method).Str("url", req.URL).Int64("duration_ms", duration.Milliseconds()).Str("error", err.Error()).Msg("upstream request failed")
		return Result{}, fmt.Errorf("upstream request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return Result{}, fmt.Errorf("failed to read upstream response: %w", err)
	}

	inv.logger.Debug().Int("status", resp.StatusCode).Int64("duration_ms", duration.Milliseconds()).Msg("upstream response")

	return Result{
		StatusCode: resp.StatusCode,
		StatusText: statusText(resp),
		RawBody:    body,
	}, nil
}

// statusText extracts the reason phrase from the response status line,
// falling back to the standard text for the code.
func statusText(resp *http.Response) string {
	text := strings.TrimPrefix(resp.Status, strconv.Itoa(resp.StatusCode))
	text = strings.TrimSpace(text)
	if text == "" {
		text = http.StatusText(resp.StatusCode)
	}
	return text
}
