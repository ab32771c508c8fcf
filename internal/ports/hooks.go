package ports

import "context"

// HookRunnerPort executes manifest-declared shell hooks inside the
// sandbox directory.  A failing hook aborts the run.
type HookRunnerPort interface {
	RunHooks(ctx context.Context, dir string, commands []string) error
}
