package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/thenoetrevino/lanes/internal/testutil"
)

func TestNewRootCmd_Tree(t *testing.T) {
	t.Parallel()

	root := NewRootCmd()
	for _, path := range [][]string{
		{"column", "list"},
		{"column", "create"},
		{"task", "move"},
		{"task", "enhance"},
		{"board", "export"},
	} {
		found, _, err := root.Find(path)
		if assert.NoError(t, err, path) {
			assert.Equal(t, path[len(path)-1], found.Name())
		}
	}
}

func TestRootCmd_Help(t *testing.T) {
	t.Parallel()

	stdout, _, err := testutil.ExecuteCommand(t, NewRootCmd(), []string{"task", "--help"})
	assert.NoError(t, err)
	for _, sub := range []string{"create", "details", "enhance", "prompt"} {
		assert.Contains(t, stdout, sub)
	}
}
