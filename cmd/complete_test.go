package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompletion(t *testing.T) {
	c := Completion()

	for _, name := range []string{"config", "seed", "cookbook", "currency", "v"} {
		assert.Contains(t, c.Flags, name, "global flag")
	}
	require.Len(t, c.Sub, len(Commands))

	available := c.Sub["available"]
	require.NotNil(t, available)
	assert.ElementsMatch(t, []string{"kilogram", "liter", "pcs"}, available.Flags["u"].Predict(""))

	recipe := c.Sub["recipe"]
	require.NotNil(t, recipe)
	assert.ElementsMatch(t, []string{"Pancakes", "Omelette", "Rice pudding"}, recipe.Flags["r"].Predict(""))

	topic := c.Sub["topic"]
	require.NotNil(t, topic.Args)
	assert.Contains(t, topic.Args.Predict(""), "shell")
}
