package idgen_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/KirkDiggler/card-forge/internal/pkg/idgen"
)

func TestUUIDGenerator(t *testing.T) {
	gen := idgen.NewUUID("card")

	first := gen.Generate()
	second := gen.Generate()

	assert.True(t, strings.HasPrefix(first, "card_"))
	assert.NotEqual(t, first, second)
	assert.Len(t, strings.TrimPrefix(first, "card_"), 36)
}

func TestSequentialGenerator(t *testing.T) {
	gen := idgen.NewSequential("card")

	assert.Equal(t, "card_1", gen.Generate())
	assert.Equal(t, "card_2", gen.Generate())
	assert.Equal(t, "1", idgen.NewSequential("").Generate())
}
