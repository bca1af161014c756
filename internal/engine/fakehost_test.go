package engine

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"time"
)

// fakeRunner is a CommandRunner returning canned output, recording calls.
type fakeRunner struct {
	output string
	err    error
	calls  int
}

func (r *fakeRunner) Run(_ context.Context, _ string, _ ...string) ([]byte, []byte, error) {
	r.calls++
	return []byte(r.output), nil, r.err
}

// hangingRunner is a CommandRunner that never produces output, simulating a
// stuck external query. It unblocks only when the caller's context expires.
type hangingRunner struct{}

func (hangingRunner) Run(ctx context.Context, _ string, _ ...string) ([]byte, []byte, error) {
	<-ctx.Done()
	return nil, nil, ctx.Err()
}

// fakeFileInfo is a minimal fs.FileInfo for fake Stat results.
type fakeFileInfo struct {
	name string
	dir  bool
}

func (f fakeFileInfo) Name() string       { return f.name }
func (f fakeFileInfo) Size() int64        { return 0 }
func (f fakeFileInfo) Mode() fs.FileMode  { return 0 }
func (f fakeFileInfo) ModTime() time.Time { return time.Time{} }
func (f fakeFileInfo) IsDir() bool        { return f.dir }
func (f fakeFileInfo) Sys() any           { return nil }

// fakeHost builds a Host over an in-memory file map, a canned registry
// runner, and a fixed environment. Directories are implied: any key prefix
// of a file path stats as existing.
func fakeHost(goos string, runner CommandRunner, files map[string][]byte, env map[string]string) Host {
	exists := func(name string) bool {
		if _, ok := files[name]; ok {
			return true
		}
		prefix := name + "/"
		for p := range files {
			if len(p) > len(prefix) && p[:len(prefix)] == prefix {
				return true
			}
		}
		return false
	}

	return Host{
		GOOS: goos,
		LookupEnv: func(key string) (string, bool) {
			v, ok := env[key]
			return v, ok
		},
		Stat: func(name string) (os.FileInfo, error) {
			if _, ok := files[name]; ok {
				return fakeFileInfo{name: filepath.Base(name)}, nil
			}
			if exists(name) {
				return fakeFileInfo{name: filepath.Base(name), dir: true}, nil
			}
			return nil, os.ErrNotExist
		},
		ReadFile: func(name string) ([]byte, error) {
			if data, ok := files[name]; ok {
				return data, nil
			}
			return nil, os.ErrNotExist
		},
		ReadDir: func(string) ([]os.DirEntry, error) {
			return nil, os.ErrNotExist
		},
		Runner: runner,
	}
}
