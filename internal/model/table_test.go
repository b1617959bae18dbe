package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNextTableStatus(t *testing.T) {
	status, ok := NextTableStatus(OrderCreated)
	assert.True(t, ok)
	assert.Equal(t, TableStatusReserved, status)

	status, ok = NextTableStatus(OrderCompleted)
	assert.True(t, ok)
	assert.Equal(t, TableStatusAvailable, status)

	status, ok = NextTableStatus(OrderDeleted)
	assert.True(t, ok)
	assert.Equal(t, TableStatusAvailable, status)

	_, ok = NextTableStatus(OrderEvent(99))
	assert.False(t, ok)
}
