package ui

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConsolePrefixes(t *testing.T) {
	out := &bytes.Buffer{}
	c := New(out)

	c.Successf("installed %s", "zsh")
	c.Infof("cloning %s", "powerlevel10k")
	c.Warnf("fc-cache failed")
	c.Errorf("download failed: %v", "timeout")

	text := out.String()
	assert.Contains(t, text, "[ok] installed zsh")
	assert.Contains(t, text, "[..] cloning powerlevel10k")
	assert.Contains(t, text, "[!!] fc-cache failed")
	assert.Contains(t, text, "[xx] download failed: timeout")
}

func TestConsolePrintfHasNoPrefix(t *testing.T) {
	out := &bytes.Buffer{}
	c := New(out)

	c.Printf("plain %d\n", 7)
	assert.Equal(t, "plain 7\n", out.String())
}
