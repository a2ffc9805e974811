package checkout

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlotSelection_KeyRotatesOnChange(t *testing.T) {
	sel := NewSlotSelection()
	assert.Empty(t, sel.IdempotencyKey())

	sel.Add("S1")
	first := sel.IdempotencyKey()
	assert.NotEmpty(t, first)

	sel.Add("S2")
	second := sel.IdempotencyKey()
	assert.NotEqual(t, first, second)
	assert.Equal(t, []string{"S1", "S2"}, sel.SlotKeys())

	sel.Remove("S2")
	assert.NotEqual(t, second, sel.IdempotencyKey())
}

func TestSlotSelection_ClearThenReselectNeverReusesKey(t *testing.T) {
	sel := NewSlotSelection()
	sel.Add("S1")
	original := sel.IdempotencyKey()

	sel.Clear()
	assert.Empty(t, sel.IdempotencyKey())
	assert.Empty(t, sel.SlotKeys())

	sel.Add("S1")
	assert.NotEmpty(t, sel.IdempotencyKey())
	assert.NotEqual(t, original, sel.IdempotencyKey())
}

func TestSlotSelection_AddDuplicateKeepsKey(t *testing.T) {
	sel := NewSlotSelection()
	sel.Add("S1")
	key := sel.IdempotencyKey()

	sel.Add("S1")
	assert.Equal(t, []string{"S1"}, sel.SlotKeys())
	assert.Equal(t, key, sel.IdempotencyKey())
}

func TestSlotSelection_InvalidateIssuesFreshKey(t *testing.T) {
	sel := NewSlotSelection()
	sel.Add("S1")
	old := sel.IdempotencyKey()

	sel.Invalidate()
	assert.NotEmpty(t, sel.IdempotencyKey())
	assert.NotEqual(t, old, sel.IdempotencyKey())
	assert.Equal(t, []string{"S1"}, sel.SlotKeys())

	sel.Remove("S1")
	sel.Invalidate()
	assert.Empty(t, sel.IdempotencyKey())
}
