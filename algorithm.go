package signet

import (
	"crypto/sha256"
	"crypto/sha512"
	"fmt"
	"hash"
)

// Algorithm identifies the HMAC variant used to sign and verify tokens.
// The set of supported algorithms is closed; anything outside it is
// rejected at Service construction time.
type Algorithm string

const (
	// HS256 is HMAC with SHA-256.
	HS256 Algorithm = "HS256"
	// HS384 is HMAC with SHA-384.
	HS384 Algorithm = "HS384"
	// HS512 is HMAC with SHA-512.
	HS512 Algorithm = "HS512"
)

// hashFunc resolves the algorithm to its underlying hash constructor.
// Resolution happens once during Service construction so that signing
// can never fail on algorithm lookup later.
func (a Algorithm) hashFunc() (func() hash.Hash, error) {
	switch a {
	case HS256:
		return sha256.New, nil
	case HS384:
		return sha512.New384, nil
	case HS512:
		return sha512.New, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedAlgorithm, string(a))
	}
}

// Valid reports whether the algorithm is one of the supported HMAC variants.
func (a Algorithm) Valid() bool {
	_, err := a.hashFunc()
	return err == nil
}

// String implements fmt.Stringer.
func (a Algorithm) String() string { return string(a) }

// UnmarshalText implements encoding.TextUnmarshaler, allowing Algorithm
// values to be parsed from environment variables and config files.
func (a *Algorithm) UnmarshalText(text []byte) error {
	alg := Algorithm(text)
	if !alg.Valid() {
		return fmt.Errorf("%w: %q", ErrUnsupportedAlgorithm, string(text))
	}
	*a = alg
	return nil
}
