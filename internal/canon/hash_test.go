package canon

import (
	"crypto/sha256"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHash_MatchesDomainSeparatedSHA256(t *testing.T) {
	v := map[string]any{"op": "from_unix", "seq": 1}

	got, err := Hash(DomainStep, v)
	require.NoError(t, err)

	sum := sha256.Sum256([]byte(DomainStep + "\x00" + `{"op":"from_unix","seq":1}`))
	assert.Equal(t, hex.EncodeToString(sum[:]), got)
	assert.Len(t, got, 64)
}

func TestHash_DomainSeparation(t *testing.T) {
	v := map[string]any{"name": "leap"}
	assert.NotEqual(t, MustHash(DomainStep, v), MustHash(DomainScenario, v))
}

func TestHash_KeyOrderIndependent(t *testing.T) {
	a := map[string]any{"year": int64(13521), "triad": 10}
	b := map[string]any{"triad": 10, "year": int64(13521)}
	assert.Equal(t, MustHash(DomainStep, a), MustHash(DomainStep, b))
}

func TestHash_Error(t *testing.T) {
	_, err := Hash(DomainStep, map[string]any{"age": 1.5})
	require.Error(t, err)
	assert.Contains(t, err.Error(), DomainStep)
	assert.Panics(t, func() { MustHash(DomainStep, nil) })
}
