package core

import (
	"os"
	"os/exec"

	"github.com/creack/pty"
	"github.com/pkg/errors"
)

// Shell running on a pseudo-terminal. Keyboard input is written to Pty.
type Shell struct {
	Cmd *exec.Cmd
	Pty *os.File
}

func StartShell(name string, args ...string) (*Shell, error) {
	if name == "" {
		name = DefaultShell()
	}
	cmd := exec.Command(name, args...)
	cmd.Env = append(os.Environ(), "TERM=xterm-256color")
	ptmx, err := pty.StartWithSize(cmd, &pty.Winsize{Rows: 24, Cols: 80})
	if err != nil {
		return nil, errors.Wrapf(err, "start shell: %v", name)
	}
	return &Shell{Cmd: cmd, Pty: ptmx}, nil
}

func (sh *Shell) Wait() error {
	return sh.Cmd.Wait()
}

func (sh *Shell) Close() error {
	err := sh.Pty.Close()
	if sh.Cmd.ProcessState == nil && sh.Cmd.Process != nil {
		_ = sh.Cmd.Process.Kill()
	}
	return err
}

//----------

func DefaultShell() string {
	if s := os.Getenv("SHELL"); s != "" {
		return s
	}
	return "/bin/sh"
}
