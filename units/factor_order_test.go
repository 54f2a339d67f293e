package units_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/galois/units"
)

func TestDecompose_CallOrderIndependent(t *testing.T) {
	g, err := units.Decompose(5)
	require.NoError(t, err)
	assert.Equal(t, 4, g.Order())

	phi, err := units.Totient(21)
	require.NoError(t, err)
	assert.Equal(t, 12, phi)

	g, err = units.Decompose(106) // 2 · 53
	require.NoError(t, err)
	assert.Equal(t, 52, g.Order())
	assert.Equal(t, "C52", g.String())
	assert.True(t, g.IsCyclic())
	require.Len(t, g.Factors(), 2)
	require.Len(t, g.Generators(), 1)
	assert.Equal(t, 52, g.ElementOrder(g.Generators()[0]))
}

func TestTotient_DescendingSweep(t *testing.T) {
	for n := 400; n >= 1; n-- {
		phi, err := units.Totient(n)
		require.NoError(t, err)
		assert.Equal(t, coprimeCount(n), phi, "n=%d", n)
	}
}

func TestDecompose_Concurrent(t *testing.T) {
	var wg sync.WaitGroup
	for w := 0; w < 8; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < 60; i++ {
				n := 997 - (i*37+w*101)%900
				g, err := units.Decompose(n)
				if !assert.NoError(t, err) {
					return
				}
				assert.Equal(t, coprimeCount(n), g.Order(), "n=%d", n)
			}
		}(w)
	}
	wg.Wait()
}

func TestDecompose_TooLarge(t *testing.T) {
	_, err := units.Decompose(units.MaxModulus + 1)
	assert.ErrorIs(t, err, units.ErrTooLarge)

	phi, err := units.Totient(1 << 40)
	require.NoError(t, err)
	assert.Equal(t, 1<<39, phi)
}
