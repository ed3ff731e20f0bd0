package terminal

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsTerminal(t *testing.T) {
	orig := isTerminalFunc
	t.Cleanup(func() { isTerminalFunc = orig })

	assert.False(t, IsTerminal(nil))

	isTerminalFunc = func(int) bool { return true }
	assert.True(t, IsTerminal(os.Stdout))
	assert.True(t, IsInteractive())

	isTerminalFunc = func(fd int) bool { return fd != int(os.Stdin.Fd()) }
	assert.False(t, IsInteractive())
}

func TestIsTerminalRegularFile(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "plain")
	if err != nil {
		t.Fatal(err)
	}
	defer func() { _ = f.Close() }()
	assert.False(t, IsTerminal(f))
}
