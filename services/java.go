package services

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"os/signal"
	"syscall"
)

// Runner starts java and waits for it to exit.
type Runner interface {
	Run(args []string) (int, error)
	RunJar(jar string, args []string) (int, error)
}

// Java runs a java executable in Dir with the launcher's own standard streams.
// There is no timeout and the child is never killed by the launcher. Signals
// listed in Forward are relayed to the child while it runs.
type Java struct {
	Command string
	Dir     string
	Stdin   io.Reader
	Stdout  io.Writer
	Stderr  io.Writer
	Forward []os.Signal
}

func NewJava(command string, dir string) *Java {
	return &Java{
		Command: command,
		Dir:     dir,
		Stdin:   os.Stdin,
		Stdout:  os.Stdout,
		Stderr:  os.Stderr,
		Forward: []os.Signal{os.Interrupt, syscall.SIGTERM},
	}
}

// Run returns the exit code of the child verbatim, or 128+signal when it was
// killed by a signal. An error means the process could not be started at all.
func (j *Java) Run(args []string) (int, error) {
	cmd := exec.Command(j.Command, args...)
	cmd.Dir = j.Dir
	cmd.Stdin = j.Stdin
	cmd.Stdout = j.Stdout
	cmd.Stderr = j.Stderr

	// registered before Start so nothing sent in between is lost
	signals := make(chan os.Signal, 1)
	if len(j.Forward) > 0 {
		signal.Notify(signals, j.Forward...)
		defer signal.Stop(signals)
	}

	if err := cmd.Start(); err != nil {
		return -1, fmt.Errorf("running %s: %w", j.Command, err)
	}

	done := make(chan struct{})
	defer close(done)
	go func() {
		for {
			select {
			case sig := <-signals:
				cmd.Process.Signal(sig)
			case <-done:
				return
			}
		}
	}()

	return exitStatus(cmd.Wait())
}

func (j *Java) RunJar(jar string, args []string) (int, error) {
	return j.Run(append([]string{"-jar", jar}, args...))
}

func exitStatus(err error) (int, error) {
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		if ws, ok := exitErr.Sys().(syscall.WaitStatus); ok && ws.Signaled() {
			return 128 + int(ws.Signal()), nil
		}
		return exitErr.ExitCode(), nil
	}
	if err != nil {
		return -1, err
	}
	return 0, nil
}
