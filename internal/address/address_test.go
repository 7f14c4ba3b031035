package address

import (
	"testing"

	"github.com/mr-tron/base58"
	"github.com/stretchr/testify/require"

	"crowdfund/internal/core/domain"
)

func TestDeriveDeterministic(t *testing.T) {
	owner := domain.Identity("8tk9yWdcFUzAkcUYcoRYTNKnAVGVpwoUFzAoMXEXdDHN")
	a := Derive("CAMPAIGN", owner)
	b := Derive("CAMPAIGN", owner)
	require.Equal(t, a, b)
	require.NotEmpty(t, a)
}

func TestDeriveSeparatesOwnersAndTags(t *testing.T) {
	a := Derive("CAMPAIGN", "owner-1")
	require.NotEqual(t, a, Derive("CAMPAIGN", "owner-2"))
	require.NotEqual(t, a, Derive("ESCROW", "owner-1"))
}

func TestDeriveEncodesFullDigest(t *testing.T) {
	raw, err := base58.Decode(string(Derive("CAMPAIGN", "owner-1")))
	require.NoError(t, err)
	require.Len(t, raw, 32)
}
