package pkg

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseOptionalULID(t *testing.T) {
	t.Parallel()

	id, err := ParseOptionalULID("  ")
	require.NoError(t, err)
	assert.Nil(t, id)

	want := GenerateULIDObject()
	id, err = ParseOptionalULID(" " + want.String() + " ")
	require.NoError(t, err)
	require.NotNil(t, id)
	assert.Equal(t, want, *id)

	_, err = ParseOptionalULID("nao-e-um-id")
	assert.Error(t, err)
}
