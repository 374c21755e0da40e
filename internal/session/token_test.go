package session

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMintAndVerify(t *testing.T) {
	c := context.Background()

	token, id, err := Mint(c, "secret")
	require.NoError(t, err)
	require.NotEmpty(t, token)
	_, err = uuid.Parse(id)
	require.NoError(t, err)

	subject, err := Verify(c, "secret", token)
	require.NoError(t, err)
	assert.Equal(t, id, subject)
}

func TestVerifyRejectsWrongKey(t *testing.T) {
	c := context.Background()

	token, _, err := Mint(c, "secret")
	require.NoError(t, err)

	_, err = Verify(c, "another-secret", token)
	assert.Error(t, err)
}

func TestVerifyRejectsGarbageToken(t *testing.T) {
	c := context.Background()

	_, err := Verify(c, "secret", "not.a.token")
	assert.Error(t, err)
}

func TestSessionIDContextRoundTrip(t *testing.T) {
	c := context.Background()

	assert.Empty(t, IDFromContext(c))

	id := uuid.NewString()
	c = AttachIDToContext(c, id)
	assert.Equal(t, id, IDFromContext(c))
}
