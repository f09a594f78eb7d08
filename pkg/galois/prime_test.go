package galois

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func naivePrime(n int) bool {
	if n < 2 {
		return false
	}
	for d := 2; d < n; d++ {
		if n%d == 0 {
			return false
		}
	}
	return true
}

func TestIsPrimeAgreesWithTrialDivision(t *testing.T) {
	for n := 0; n <= 10000; n++ {
		require.Equal(t, naivePrime(n), IsPrime(n), "n=%d", n)
	}
}

func TestIsPrimeSmallValues(t *testing.T) {
	assert.False(t, IsPrime(-7))
	assert.False(t, IsPrime(0))
	assert.False(t, IsPrime(1))
	assert.True(t, IsPrime(2))
	assert.True(t, IsPrime(3))
	assert.False(t, IsPrime(25))
	assert.False(t, IsPrime(49))
	assert.True(t, IsPrime(7919))
}
