package util

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestStartOfDay(t *testing.T) {
	ist := time.FixedZone("IST", 5*60*60+30*60)
	late := time.Date(2024, 7, 1, 22, 0, 0, 0, time.UTC)

	require.Equal(t, time.Date(2024, 7, 2, 0, 0, 0, 0, ist), StartOfDay(late, ist))
	require.Equal(t, time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC), StartOfDay(late, nil))
}
