package helpers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestParseDuration(t *testing.T) {
	require.Equal(t, 15*time.Second, ParseDuration("15s", time.Minute))
	require.Equal(t, time.Minute, ParseDuration("", time.Minute))
	require.Equal(t, time.Minute, ParseDuration("soon", time.Minute))
	require.Equal(t, time.Minute, ParseDuration("-5s", time.Minute))
}

func TestFormatDate(t *testing.T) {
	require.Equal(t, "2024-01-20", FormatDate(time.Date(2024, 1, 20, 23, 59, 0, 0, time.UTC)))
}
