package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSnapshotPricer_Total(t *testing.T) {
	pricer := NewSnapshotPricer()

	assert.InDelta(t, 74.7, pricer.Total(24.9, 3), 1e-9)
	assert.InDelta(t, 349.9, pricer.Total(349.9, 1), 1e-9)
	assert.InDelta(t, 0, pricer.Total(0, 5), 1e-9)
}
