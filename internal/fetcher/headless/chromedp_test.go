package headless

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestNew_AppliesDefaults(t *testing.T) {
	t.Parallel()

	r := New(Config{})
	require.Equal(t, DefaultNavigationTimeout, r.cfg.NavigationTimeout)
	require.Equal(t, DefaultSettleDelay, r.cfg.SettleDelay)
}

func TestNew_KeepsExplicitValues(t *testing.T) {
	t.Parallel()

	r := New(Config{
		NavigationTimeout: 10 * time.Second,
		SettleDelay:       500 * time.Millisecond,
	})
	require.Equal(t, 10*time.Second, r.cfg.NavigationTimeout)
	require.Equal(t, 500*time.Millisecond, r.cfg.SettleDelay)
}
