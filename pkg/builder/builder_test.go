package builder

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

type pair struct {
	A1, A2 int
}

func TestBuilder(t *testing.T) {
	setA1 := func(p *pair) { p.A1 = 1 }
	setA2 := func(p *pair) { p.A2 = 2 }

	got, err := New[pair]().UseAll(setA1, setA2).Get()
	require.NoError(t, err)
	require.Equal(t, pair{1, 2}, *got)
}

func TestBuilder_MaybeUseStopsOnError(t *testing.T) {
	fail := errors.New("mock")
	calls := 0

	_, err := New[pair]().
		MaybeUse(func(*pair) error { calls++; return fail }).
		MaybeUse(func(*pair) error { calls++; return nil }).
		Get()

	require.ErrorIs(t, err, fail)
	require.Equal(t, 1, calls)
}
