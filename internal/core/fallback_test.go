package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExecFallbackResolveMissingExecutable(t *testing.T) {
	fb := ExecFallback{Name: "definitely-not-a-real-subalign-fallback-binary"}
	_, ok := fb.Resolve()
	assert.False(t, ok)
}

func TestExecFallbackResolveKnownExecutable(t *testing.T) {
	fb := ExecFallback{Name: "ls"}
	path, ok := fb.Resolve()
	if ok {
		assert.NotEmpty(t, path)
	}
}

func TestRunFallbackNoneConfigured(t *testing.T) {
	opts := DefaultOptions()
	_, ok := RunFallback(nil, opts, "src", "trg")
	assert.False(t, ok)
}
