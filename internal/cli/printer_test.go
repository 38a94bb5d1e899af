package cli

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/catalog/pkg/types"
)

func TestPrinter_NonTerminalIsPlain(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.Items([]types.Item{
		{ID: 1, Name: "Item1"},
		{ID: 12, Name: "Done", IsComplete: true},
	})

	assert.Equal(t, "   1 [ ] Item1\n  12 [x] Done\n", buf.String())
}

func TestPrinter_EmptyItems(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).Items(nil)
	assert.Equal(t, "no items\n", buf.String())
}

func TestPrinter_JSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewPrinter(&buf).JSON(types.Item{ID: 1, Name: "Item1"}))
	assert.Equal(t, "{\n  \"id\": 1,\n  \"name\": \"Item1\",\n  \"isComplete\": false\n}\n", buf.String())
}

func TestPrinter_Error(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).Error(errors.New("boom"))
	assert.Equal(t, "error: boom\n", buf.String())
}
