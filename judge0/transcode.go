package judge0

import (
	"encoding/base64"
	"fmt"
	"strings"
)

// Source code, stdin and all textual result fields cross the wire
// base64-encoded so that arbitrary bytes (newlines, unicode, NUL)
// survive the judge's JSON transport intact.

func EncodeB64(s string) string {
	return base64.StdEncoding.EncodeToString([]byte(s))
}

// DecodeB64 decodes a judge text field. The judge omits fields such as
// stderr when there is no output, so a nil pointer decodes to "".
// Some judge deployments chunk base64 with newlines; those are stripped
// before decoding.
func DecodeB64(p *string) (string, error) {
	if p == nil {
		return "", nil
	}
	cleaned := strings.Map(func(r rune) rune {
		if r == '\n' || r == '\r' {
			return -1
		}
		return r
	}, *p)
	b, err := base64.StdEncoding.DecodeString(cleaned)
	if err != nil {
		return "", fmt.Errorf("failed to decode judge text field: %w", err)
	}
	return string(b), nil
}
