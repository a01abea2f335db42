package signet

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// encodeJSON serializes v to its canonical wire form: no HTML escaping, so
// non-ASCII claim values are emitted literally, and map keys in sorted order
// (an encoding/json guarantee). Verification relies on this being a stable
// round trip for any payload this library itself produced: decoding a token
// segment and re-encoding it must reproduce the original bytes.
func encodeJSON(v any) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return "", err
	}
	// Encoder.Encode appends a trailing newline that is not part of the
	// canonical form.
	return strings.TrimSuffix(buf.String(), "\n"), nil
}

// decodeJSON parses b into a claim mapping. Anything that is not a JSON
// object, including a bare JSON null, fails with ErrMalformedPayload.
// Numbers are kept as json.Number so their literal text survives
// re-encoding untouched; converting through float64 would corrupt integer
// claims above 2^53 and break the canonical round trip.
func decodeJSON(b []byte) (map[string]any, error) {
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()

	var m map[string]any
	if err := dec.Decode(&m); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedPayload, err)
	}
	if m == nil {
		return nil, fmt.Errorf("%w: not a JSON object", ErrMalformedPayload)
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, fmt.Errorf("%w: trailing data after JSON object", ErrMalformedPayload)
	}
	return m, nil
}

// encodeBase64 encodes b as unpadded URL-safe base64.
func encodeBase64(b []byte) string {
	return base64.RawURLEncoding.EncodeToString(b)
}

// decodeBase64 is the inverse of encodeBase64. Invalid alphabet characters
// and impossible lengths fail with ErrMalformedEncoding.
func decodeBase64(s string) ([]byte, error) {
	b, err := base64.RawURLEncoding.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedEncoding, err)
	}
	return b, nil
}
