package signet

import "time"

// Option is a functional option for configuring a Service.
type Option func(*Service)

// WithAlgorithm selects the HMAC variant used for signing and verification.
// Unsupported values cause New to fail with ErrUnsupportedAlgorithm.
func WithAlgorithm(alg Algorithm) Option {
	return func(s *Service) {
		s.alg = alg
	}
}

// WithTokenType overrides the header "typ" label. Empty values are ignored.
func WithTokenType(typ string) Option {
	return func(s *Service) {
		if typ != "" {
			s.tokenType = typ
		}
	}
}

// WithExpiry sets the expiry horizon added at issuance. A zero duration is
// honored and produces tokens that expire immediately; negative values are
// ignored.
func WithExpiry(d time.Duration) Option {
	return func(s *Service) {
		if d >= 0 {
			s.expiry = d
		}
	}
}

// WithClock replaces the wall-clock source used for issuance and expiry
// checks. Useful in tests; nil values are ignored.
func WithClock(clock func() time.Time) Option {
	return func(s *Service) {
		if clock != nil {
			s.clock = clock
		}
	}
}
