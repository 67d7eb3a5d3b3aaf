package bridge

import (
	"encoding/json"
	"fmt"
)

// Normalize converts a captured upstream result into the envelope data value.
// The raw body is parsed as JSON when possible; otherwise the raw text is
// returned, and an empty body yields a synthesized "<code> <text>" string so
// the data field is never empty. Normalize never fails and is idempotent for
// a given result.
func Normalize(res Result) any {
	var v any
	if err := json.Unmarshal(res.RawBody, &v); err == nil {
		return v
	}
	if len(res.RawBody) > 0 {
		return string(res.RawBody)
	}
	return fmt.Sprintf("%d %s", res.StatusCode, res.StatusText)
}
