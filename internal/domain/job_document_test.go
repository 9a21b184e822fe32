package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShiftDetailPatchKeepsUnsetFieldsNil(t *testing.T) {
	var patch ShiftDetailPatch
	require.NoError(t, json.Unmarshal([]byte(`{"morning":"bravo"}`), &patch))

	require.NotNil(t, patch.Morning)
	assert.Equal(t, "bravo", *patch.Morning)

	// unset slots stay nil so the store leaves their columns untouched
	assert.Nil(t, patch.Afternoon)
	assert.Nil(t, patch.Night)
	assert.Nil(t, patch.General)
	assert.Nil(t, patch.Ramc)

	assert.False(t, patch.IsEmpty())
}

func TestShiftDetailPatchIsEmpty(t *testing.T) {
	var patch ShiftDetailPatch
	require.NoError(t, json.Unmarshal([]byte(`{}`), &patch))

	assert.True(t, patch.IsEmpty())
}
