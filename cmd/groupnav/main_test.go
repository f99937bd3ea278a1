package main

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReplay(t *testing.T) {
	file, err := os.Open("testdata/nested.yaml")
	require.NoError(t, err)
	defer file.Close()

	var out bytes.Buffer
	require.NoError(t, replay(file, &out))
	got := out.String()

	assert.True(t, strings.HasPrefix(got, "initial:\n"))
	assert.Contains(t, got, "after dblclick B (depth 2):\n")
	assert.Contains(t, got, `rect "backdrop" (0,0 200x200) [opacity 0.3]`)
	assert.Equal(t, 2, strings.Count(got, "after back"))
	assert.Contains(t, got, "after back (depth 0):\n")
	assert.Contains(t, got, "after enter shape3 (depth 2):\n")
	assert.True(t, strings.HasSuffix(got, "after root (depth 0):\n"+
		"rect \"backdrop\" (0,0 200x200)\n"+
		"group \"A\" (10,10 70x60) n:2\n"+
		"  rect \"shape1\" (0,0 20x20)\n"+
		"  group \"B\" (40,30 30x30) n:2\n"+
		"    ellipse \"shape2\" (0,0 10x10)\n"+
		"    rect \"shape3\" (20,20 10x10)\n"))
}

func TestReplayUnknownTarget(t *testing.T) {
	var out bytes.Buffer
	err := replay(strings.NewReader("script:\n  - action: dblclick\n    target: nope\n"), &out)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "step 0")
	assert.Contains(t, err.Error(), `"nope"`)
}
