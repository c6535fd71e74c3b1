package ie_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/0x0mar/wraith/ie"
)

func TestRateMbps(t *testing.T) {
	assert.Equal(t, float32(1.0), ie.RateMbps(0x82))
	assert.Equal(t, float32(2.0), ie.RateMbps(0x84))
	assert.Equal(t, float32(5.5), ie.RateMbps(0x8B))
	assert.Equal(t, float32(11.0), ie.RateMbps(0x96))
	assert.Equal(t, float32(54.0), ie.RateMbps(0x6C))
}

func TestVendorOUI(t *testing.T) {
	oui, rest := ie.VendorOUI([]byte{0x00, 0x50, 0xF2, 0x01, 0x02})
	assert.Equal(t, "00-50-F2", oui)
	assert.Equal(t, []byte{0x01, 0x02}, rest)
}
