package signet

import (
	"crypto/hmac"
	"crypto/subtle"
	"encoding/json"
	"fmt"
	"hash"
	"maps"
	"strings"
	"time"
)

// Claims is the caller-supplied payload carried inside a token. Values must
// be JSON-representable. The key "iat" is reserved: Sign overwrites it with
// the token's expiry timestamp.
//
// Claims returned by Verify and Decode carry numeric values as json.Number,
// preserving the literal digits of integers too large for float64.
type Claims = map[string]any

// expiryClaim is the reserved payload key holding the expiry timestamp.
// The name "iat" is kept for wire compatibility with the scheme this
// library implements, where the single timestamp field written at issuance
// doubles as the expiry moment. There is no separate issuance time.
const expiryClaim = "iat"

// tokenSegments is the number of dot-separated segments in a valid token
// (header.payload.signature).
const tokenSegments = 3

// Defaults applied by New when no option overrides them.
const (
	DefaultAlgorithm = HS256
	DefaultTokenType = "JWT"
	DefaultExpiry    = 30 * 24 * time.Hour
)

// Service signs, verifies, and decodes HMAC-signed tokens. It holds no
// mutable state after construction and is safe for concurrent use.
type Service struct {
	secret    []byte
	alg       Algorithm
	newHash   func() hash.Hash
	tokenType string
	expiry    time.Duration
	clock     func() time.Time
}

// New creates a Service with the given secret key. The secret must be
// non-empty; the algorithm, token type label, and expiry horizon default to
// HS256, "JWT", and 30 days unless overridden by options.
func New(secret string, opts ...Option) (*Service, error) {
	s := &Service{
		secret:    []byte(secret),
		alg:       DefaultAlgorithm,
		tokenType: DefaultTokenType,
		expiry:    DefaultExpiry,
		clock:     time.Now,
	}

	for _, opt := range opts {
		opt(s)
	}

	if len(s.secret) == 0 {
		return nil, ErrMissingSecret
	}

	newHash, err := s.alg.hashFunc()
	if err != nil {
		return nil, err
	}
	s.newHash = newHash

	return s, nil
}

// Sign issues a token carrying the given claims. The claims are copied, the
// reserved "iat" field is set to the current time plus the configured expiry
// horizon, and the result is encoded and signed. The input map is never
// mutated.
func (s *Service) Sign(claims Claims) (string, error) {
	if len(claims) == 0 {
		return "", fmt.Errorf("%w: claims must be a non-empty map", ErrInvalidClaims)
	}

	header := map[string]any{
		"alg": s.alg.String(),
		"typ": s.tokenType,
	}

	payload := maps.Clone(claims)
	payload[expiryClaim] = s.clock().Add(s.expiry).Unix()

	headerJSON, err := encodeJSON(header)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidClaims, err)
	}
	payloadJSON, err := encodeJSON(payload)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidClaims, err)
	}

	headerB64 := encodeBase64([]byte(headerJSON))
	payloadB64 := encodeBase64([]byte(payloadJSON))

	sig, err := s.signature(headerB64, payloadB64)
	if err != nil {
		return "", err
	}

	return headerB64 + "." + payloadB64 + "." + sig, nil
}

// Verify checks a token's signature and expiry and returns its claims.
//
// The token is parsed, then the canonical token is reconstructed from the
// decoded header and payload using the configured algorithm and secret, and
// compared in constant time against the input. Any byte difference in any
// segment fails with ErrInvalidSignature. A surviving token is then checked
// against its expiry timestamp.
func (s *Service) Verify(token string) (Claims, error) {
	if token == "" {
		return nil, ErrEmptyToken
	}

	parsed, err := parseToken(token)
	if err != nil {
		return nil, err
	}

	expected, err := s.canonical(parsed.header, parsed.payload)
	if err != nil {
		return nil, err
	}

	if subtle.ConstantTimeCompare([]byte(expected), []byte(token)) != 1 {
		return nil, ErrInvalidSignature
	}

	if err := s.checkExpiry(parsed.payload); err != nil {
		return nil, err
	}

	return parsed.payload, nil
}

// Decode parses a token and returns its claims WITHOUT verifying the
// signature or expiry. The result must not be trusted; use it only for
// non-security-relevant inspection, such as logging a subject identifier
// before verification. Use Verify for authenticated claims.
func (s *Service) Decode(token string) (Claims, error) {
	if token == "" {
		return nil, ErrEmptyToken
	}

	parsed, err := parseToken(token)
	if err != nil {
		return nil, err
	}

	return parsed.payload, nil
}

// signature computes the base64url-encoded HMAC over "header.payload".
// Both inputs are the already base64url-encoded segments.
func (s *Service) signature(headerB64, payloadB64 string) (string, error) {
	if headerB64 == "" || payloadB64 == "" {
		return "", ErrEmptyInput
	}

	mac := hmac.New(s.newHash, s.secret)
	mac.Write([]byte(headerB64 + "." + payloadB64))

	return encodeBase64(mac.Sum(nil)), nil
}

// canonical rebuilds the full token string from decoded header and payload
// mappings. Because encodeJSON is a stable round trip for anything this
// library produced, a genuine token always matches its reconstruction
// byte for byte, while any edit to the input does not.
func (s *Service) canonical(header, payload map[string]any) (string, error) {
	headerJSON, err := encodeJSON(header)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrMalformedPayload, err)
	}
	payloadJSON, err := encodeJSON(payload)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrMalformedPayload, err)
	}

	headerB64 := encodeBase64([]byte(headerJSON))
	payloadB64 := encodeBase64([]byte(payloadJSON))

	sig, err := s.signature(headerB64, payloadB64)
	if err != nil {
		return "", err
	}

	return headerB64 + "." + payloadB64 + "." + sig, nil
}

// checkExpiry enforces the expiry timestamp written at issuance. Tokens
// without the claim never expire, matching the scheme's falsy-comparison
// behavior for absent timestamps.
func (s *Service) checkExpiry(payload Claims) error {
	raw, ok := payload[expiryClaim]
	if !ok {
		return nil
	}

	num, ok := raw.(json.Number)
	if !ok {
		return fmt.Errorf("%w: non-numeric %q claim", ErrMalformedPayload, expiryClaim)
	}

	exp, err := num.Int64()
	if err != nil {
		// Fractional timestamps still bound the token.
		f, ferr := num.Float64()
		if ferr != nil {
			return fmt.Errorf("%w: non-numeric %q claim", ErrMalformedPayload, expiryClaim)
		}
		exp = int64(f)
	}

	if s.clock().After(time.Unix(exp, 0)) {
		return ErrTokenExpired
	}

	return nil
}

// parsedToken holds the three segments of a token after the shared parse
// step. The signature segment stays opaque; Verify recomputes it rather
// than decoding it.
type parsedToken struct {
	header    map[string]any
	payload   Claims
	signature string
}

// parseToken splits a token into its three segments and decodes the header
// and payload. It performs no signature or expiry checking.
func parseToken(token string) (*parsedToken, error) {
	parts := strings.Split(token, ".")
	if len(parts) != tokenSegments {
		return nil, fmt.Errorf("%w: got %d segments, want %d", ErrMalformedToken, len(parts), tokenSegments)
	}

	headerRaw, err := decodeBase64(parts[0])
	if err != nil {
		return nil, err
	}
	header, err := decodeJSON(headerRaw)
	if err != nil {
		return nil, err
	}

	payloadRaw, err := decodeBase64(parts[1])
	if err != nil {
		return nil, err
	}
	payload, err := decodeJSON(payloadRaw)
	if err != nil {
		return nil, err
	}

	return &parsedToken{
		header:    header,
		payload:   payload,
		signature: parts[2],
	}, nil
}
