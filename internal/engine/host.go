package engine

import (
	"bytes"
	"context"
	"os"
	"os/exec"
	"runtime"
)

// CommandRunner executes an external command and returns its stdout, stderr,
// and error. This interface enables testing the registry probe without
// spawning real subprocesses.
type CommandRunner interface {
	Run(ctx context.Context, name string, args ...string) (stdout []byte, stderr []byte, err error)
}

// execRunner is the default CommandRunner that uses exec.CommandContext.
type execRunner struct{}

func (r *execRunner) Run(ctx context.Context, name string, args ...string) ([]byte, []byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Env = os.Environ()

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	return stdout.Bytes(), stderr.Bytes(), err
}

// Host bundles the ambient capabilities discovery needs: OS identity,
// environment lookup, filesystem reads, and external command execution.
// Probes and the version loader read the host exclusively through these
// functions so tests can substitute fakes without touching the real machine.
type Host struct {
	GOOS      string
	LookupEnv func(key string) (string, bool)
	Stat      func(name string) (os.FileInfo, error)
	ReadFile  func(name string) ([]byte, error)
	ReadDir   func(name string) ([]os.DirEntry, error)
	Runner    CommandRunner
}

// DefaultHost returns a Host backed by the real operating system.
func DefaultHost() Host {
	return Host{
		GOOS:      runtime.GOOS,
		LookupEnv: os.LookupEnv,
		Stat:      os.Stat,
		ReadFile:  os.ReadFile,
		ReadDir:   os.ReadDir,
		Runner:    &execRunner{},
	}
}

// pathExists reports whether name exists on the host filesystem.
func (h Host) pathExists(name string) bool {
	_, err := h.Stat(name)
	return err == nil
}

// binariesDir returns the per-platform directory name under Engine/Binaries
// where the editor version descriptor lives.
func (h Host) binariesDir() string {
	switch h.GOOS {
	case "windows":
		return "Win64"
	case "darwin":
		return "Mac"
	default:
		return "Linux"
	}
}
