package main

import (
	"testing"

	"airbnb-pricing/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFeeEdit(t *testing.T) {
	pk, field, raw, err := parseFeeEdit("Booking.host_commission_pct=15")
	require.NoError(t, err)
	assert.Equal(t, models.Booking, pk)
	assert.Equal(t, models.HostCommission, field)
	assert.Equal(t, "15", raw)

	for _, bad := range []string{"airbnb.guest_fee_pct", "guest_fee_pct=3", "expedia.vat_pct=1", "airbnb.tip_pct=1"} {
		_, _, _, err := parseFeeEdit(bad)
		assert.Error(t, err, bad)
	}
}
