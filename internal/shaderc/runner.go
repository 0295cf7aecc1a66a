package shaderc

import (
	"io"
	"os"
	"os/exec"
)

// Runner executes a single compiler process and waits for it to exit.
type Runner interface {
	Run(name string, args []string) error
}

// ExecRunner runs the compiler as a child process. Its output goes to the
// configured writers, which default to the parent's stdout and stderr.
type ExecRunner struct {
	Stdout io.Writer
	Stderr io.Writer
}

// Run starts the process and blocks until it exits. A non-zero exit status
// is returned as an *exec.ExitError.
func (r ExecRunner) Run(name string, args []string) error {
	cmd := exec.Command(name, args...)
	cmd.Stdout = r.Stdout
	if cmd.Stdout == nil {
		cmd.Stdout = os.Stdout
	}
	cmd.Stderr = r.Stderr
	if cmd.Stderr == nil {
		cmd.Stderr = os.Stderr
	}
	return cmd.Run()
}
