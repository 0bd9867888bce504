package ethbridge_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vottun/ethbridge"
	"github.com/vottun/ethbridge/bridgetest"
)

func TestIdentityNull(t *testing.T) {
	var unset ethbridge.Identity
	assert.True(t, unset.IsNull())
	assert.True(t, ethbridge.Identity{}.IsNull())
	assert.True(t, make(ethbridge.Identity, ethbridge.IdentityLength).IsNull())
	assert.False(t, bridgetest.NewIdentity().IsNull())

	// Every null form compares equal to every other.
	assert.True(t, unset.Equals(make(ethbridge.Identity, ethbridge.IdentityLength)))
}

func TestIdentityEquals(t *testing.T) {
	a := bridgetest.NewIdentity()
	b := bridgetest.NewIdentity()
	assert.True(t, a.Equals(a.Clone()))
	assert.False(t, a.Equals(b))
	assert.False(t, a.Equals(nil))
}

func TestIdentityValidate(t *testing.T) {
	require.NoError(t, bridgetest.NewIdentity().Validate())
	require.Error(t, ethbridge.Identity(nil).Validate())
	require.Error(t, ethbridge.Identity{1, 2, 3}.Validate())
	require.Error(t, make(ethbridge.Identity, ethbridge.IdentityLength).Validate())
}

func TestParseIdentity(t *testing.T) {
	id := bridgetest.NewIdentity()
	parsed, err := ethbridge.ParseIdentity(id.String())
	require.NoError(t, err)
	assert.True(t, parsed.Equals(id))

	_, err = ethbridge.ParseIdentity("zzzz")
	require.Error(t, err)
	_, err = ethbridge.ParseIdentity("abcd")
	require.Error(t, err)
	_, err = ethbridge.ParseIdentity(strings.Repeat("00", ethbridge.IdentityLength))
	require.Error(t, err)
}

func TestIdentityString(t *testing.T) {
	var unset ethbridge.Identity
	assert.Equal(t, "(null)", unset.String())

	id := bridgetest.NewIdentity()
	s := id.String()
	assert.Len(t, s, 2*ethbridge.IdentityLength)
	assert.Equal(t, strings.ToUpper(s), s)
}

func TestEthAddress(t *testing.T) {
	var zero ethbridge.EthAddress
	assert.True(t, zero.IsZero())
	assert.Equal(t, "", zero.String())

	addr, err := ethbridge.NewEthAddress([]byte("0xabc"))
	require.NoError(t, err)
	assert.False(t, addr.IsZero())
	assert.Equal(t, "0xabc", addr.String())

	_, err = ethbridge.NewEthAddress(make([]byte, ethbridge.EthAddressLength+1))
	require.Error(t, err)
}
