package signet

import "errors"

// Error variables define the terminal failure modes of token operations.
// None of them is retried internally; callers discriminate with errors.Is.
var (
	// ErrMissingSecret indicates a Service was constructed without a secret key.
	ErrMissingSecret = errors.New("no secret key provided")

	// ErrUnsupportedAlgorithm indicates the configured algorithm is not one of
	// the supported HMAC variants.
	ErrUnsupportedAlgorithm = errors.New("unsupported signing algorithm")

	// ErrInvalidClaims indicates Sign was called with empty claims or with
	// values that cannot be represented as JSON.
	ErrInvalidClaims = errors.New("invalid claims")

	// ErrEmptyInput indicates the signer received an empty header or payload.
	ErrEmptyInput = errors.New("empty signing input")

	// ErrEmptyToken indicates an empty string was passed where a token
	// was expected.
	ErrEmptyToken = errors.New("empty token")

	// ErrMalformedToken indicates the token does not consist of exactly
	// three dot-separated segments.
	ErrMalformedToken = errors.New("malformed token")

	// ErrMalformedEncoding indicates a token segment is not valid unpadded
	// base64url.
	ErrMalformedEncoding = errors.New("malformed base64url encoding")

	// ErrMalformedPayload indicates a decoded segment is not a JSON object.
	ErrMalformedPayload = errors.New("malformed JSON payload")

	// ErrInvalidSignature indicates the token does not match its canonical
	// reconstruction, i.e. the header, payload, or signature was tampered
	// with, or a different secret was used.
	ErrInvalidSignature = errors.New("token signature verification failed")

	// ErrTokenExpired indicates the token's expiry timestamp has passed.
	ErrTokenExpired = errors.New("token has expired")
)
