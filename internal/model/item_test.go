package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Toggle(t *testing.T) {
	assert.Equal(t, Success, Pending.Toggle())
	assert.Equal(t, Pending, Success.Toggle())
	assert.True(t, Success.Done())
	assert.False(t, Pending.Done())
}

func TestItem_JSONLayout(t *testing.T) {
	b, err := json.Marshal(Item{ID: "a1", Text: "buy milk", Status: Pending})
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"a1","text":"buy milk","status":"Pending"}`, string(b))
}

func TestStatus_RejectsUnknown(t *testing.T) {
	var it Item
	err := json.Unmarshal([]byte(`{"id":"a","text":"x","status":"Done"}`), &it)
	assert.ErrorContains(t, err, `unknown status "Done"`)

	require.NoError(t, json.Unmarshal([]byte(`{"id":"a","text":"x","status":"Success"}`), &it))
	assert.Equal(t, Success, it.Status)
}

func TestStatus_Valid(t *testing.T) {
	assert.True(t, Pending.Valid())
	assert.True(t, Success.Valid())
	assert.False(t, Status("").Valid())
	assert.False(t, Status("pending").Valid())
}
