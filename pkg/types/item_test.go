package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestItemValidate(t *testing.T) {
	tests := []struct {
		name    string
		item    Item
		wantErr error
	}{
		{"named item is valid", Item{Name: "Item1"}, nil},
		{"completed item is valid", Item{ID: 7, Name: "done", IsComplete: true}, nil},
		{"empty name", Item{}, ErrInvalidName},
		{"whitespace name", Item{Name: " \t"}, ErrInvalidName},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantErr, tt.item.Validate())
		})
	}
}

func TestItemEqualityIsStructural(t *testing.T) {
	a := Item{ID: 1, Name: "Item1", IsComplete: false}
	b := Item{ID: 1, Name: "Item1", IsComplete: false}

	assert.True(t, a == b)
	assert.NotEqual(t, a, Item{ID: 1, Name: "Item1", IsComplete: true})
}
