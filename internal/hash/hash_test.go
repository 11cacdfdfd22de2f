package hash

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPassword_DeterministicFixedLength(t *testing.T) {
	t.Parallel()

	a := Password("secret")
	b := Password("secret")
	assert.Equal(t, a, b)
	assert.Len(t, a, 64)

	assert.NotEqual(t, a, Password("Secret"))
}

func TestCheckPassword(t *testing.T) {
	t.Parallel()

	digest := Password("correct horse battery staple")
	assert.True(t, CheckPassword(digest, "correct horse battery staple"))
	assert.False(t, CheckPassword(digest, "wrong"))
	assert.False(t, CheckPassword("", "anything"))
}
