// Package signet provides a small symmetric-key token library: it issues
// signed, time-bounded credentials from an arbitrary claim set and later
// validates and decodes them. Tokens use the familiar three-segment
// header.payload.signature wire format with unpadded base64url encoding and
// an HMAC signature (HS256, HS384, or HS512).
//
// The package favors a small, auditable primitive over standards
// completeness: there is no key rotation, no asymmetric signing, no
// registered-claim semantics beyond a single expiry timestamp, and no
// revocation. Key provisioning and token transport belong to the calling
// application.
//
// # Usage
//
// Create a service with a signing key:
//
//	svc, err := signet.New("your-secret-key")
//	if err != nil {
//		log.Fatal(err)
//	}
//
// Or with explicit settings:
//
//	svc, err := signet.New("your-secret-key",
//		signet.WithAlgorithm(signet.HS512),
//		signet.WithExpiry(15*time.Minute),
//	)
//
// Or from SIGNET_* environment variables:
//
//	svc, err := signet.NewFromEnv()
//
// Issue and verify tokens:
//
//	token, err := svc.Sign(signet.Claims{
//		"id":   3,
//		"name": "Admin",
//		"role": "admin",
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	claims, err := svc.Verify(token)
//	if err != nil {
//		switch {
//		case errors.Is(err, signet.ErrTokenExpired):
//			// prompt re-authentication
//		case errors.Is(err, signet.ErrInvalidSignature):
//			// treat as an intrusion signal
//		default:
//			// malformed input
//		}
//		return
//	}
//
// # Expiry Timestamp
//
// Sign writes a single reserved claim, "iat", holding the absolute expiry
// timestamp (issuance time plus the configured expiry horizon, in seconds
// since epoch). Despite its conventional "issued at" name, the field marks
// when the token stops being accepted; there is no separate issuance or
// expiry field. Verify rejects a token once the current time has passed
// this value.
//
// # Unauthenticated Decoding
//
// Decode returns a token's claims without checking the signature or expiry.
// Its output must never be treated as trusted; it exists for inspection
// only, such as logging a subject identifier before verification.
//
// # Error Handling
//
// All failures are deterministic, terminal, and tagged with sentinel errors
// (ErrMalformedToken, ErrInvalidSignature, ErrTokenExpired, ...), so callers
// can distinguish an expired token from a tampered one. The library never
// retries and never logs.
//
// # Concurrency
//
// A Service is immutable after construction. Sign, Verify, and Decode read
// only the wall clock and local data, and may be called concurrently
// without locking.
package signet
