package helpers

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSlugify(t *testing.T) {
	require.Equal(t, "new-pension-circular-2026", Slugify("New Pension Circular 2026"))
	require.Equal(t, "lga-staff-audit", Slugify("  LGA staff audit!  "))
	require.Equal(t, "a-b-c", Slugify("a/b\\c"))
	require.Equal(t, "", Slugify("???"))
}

func TestIsContextDone(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	require.False(t, IsContextDone(ctx))
	cancel()
	require.True(t, IsContextDone(ctx))
	require.True(t, IsContextDone(nil))
}
