package core

import (
	"bytes"
	"context"
	"io"
	"os/exec"
)

// FallbackRunner is the shape a caller plugs an external aligner into when
// the best-anchor search can't find a confident alignment. The
// algorithm itself is out of scope; subalign only resolves and calls it.
type FallbackRunner interface {
	Run(ctx context.Context, srcFile, trgFile string) (io.Reader, error)
}

// ExecFallback shells out to a PATH-resolvable executable, passing the two
// input files as positional arguments and returning its stdout.
type ExecFallback struct {
	Name string
}

// Resolve reports whether the fallback's executable can be found on PATH
// before a subprocess is ever invoked.
func (f ExecFallback) Resolve() (string, bool) {
	path, err := exec.LookPath(f.Name)
	if err != nil {
		return "", false
	}
	return path, true
}

func (f ExecFallback) Run(ctx context.Context, srcFile, trgFile string) (io.Reader, error) {
	path, ok := f.Resolve()
	if !ok {
		return nil, newErr(ConfigError, nil, "fallback %q not found on PATH", f.Name)
	}
	cmd := exec.CommandContext(ctx, path, srcFile, trgFile)
	out, err := cmd.Output()
	if err != nil {
		return nil, newErr(InputError, err, "fallback %q failed", f.Name)
	}
	return bytes.NewReader(out), nil
}
