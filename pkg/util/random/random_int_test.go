package random

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetRandomIntHasRequestedDigits(t *testing.T) {
	for i := 0; i < 100; i++ {
		n := GetRandomInt(6)
		assert.GreaterOrEqual(t, n, 100000)
		assert.Less(t, n, 1000000)
	}
}

func TestGetSmsCode(t *testing.T) {
	code := GetSmsCode(6)
	require.Len(t, code, 6)
	_, err := strconv.Atoi(code)
	assert.NoError(t, err)
}
