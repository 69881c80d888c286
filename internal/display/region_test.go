package display

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLookupPhoneRegion(t *testing.T) {
	t.Parallel()

	region, err := LookupPhoneRegion("+573012345678")
	require.NoError(t, err)
	require.Equal(t, "CO", region.Region)
	require.Equal(t, 57, region.CountryCode)
	require.Equal(t, "+573012345678", region.E164)
}

func TestLookupPhoneRegionRequiresPrefix(t *testing.T) {
	t.Parallel()

	_, err := LookupPhoneRegion("3012345678")
	require.Error(t, err)

	_, err = LookupPhoneRegion("+")
	require.Error(t, err)
}
