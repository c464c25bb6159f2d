package testutil

// DefaultRunToken is used when a scenario does not name its own run token.
const DefaultRunToken = "test-run-default"

// FixedTokenGenerator returns the same token on every call, so traces and
// CLI envelopes are byte-identical between runs.
//
// Thread-safety: FixedTokenGenerator is immutable and safe for concurrent use.
type FixedTokenGenerator struct {
	token string
}

// NewFixedTokenGenerator creates a generator for token. An empty token
// falls back to DefaultRunToken.
func NewFixedTokenGenerator(token string) *FixedTokenGenerator {
	if token == "" {
		token = DefaultRunToken
	}
	return &FixedTokenGenerator{token: token}
}

// Generate returns the fixed token.
func (g *FixedTokenGenerator) Generate() string {
	return g.token
}
