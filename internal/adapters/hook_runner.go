package adapters

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"
	"mvdan.cc/sh/v3/expand"
	"mvdan.cc/sh/v3/interp"
	"mvdan.cc/sh/v3/syntax"

	"podrefs/internal/ports"
	"podrefs/internal/shared"
)

// ShellHookRunner executes manifest hooks with an embedded POSIX shell
// interpreter, so hook behavior does not depend on whatever shell the
// host happens to ship.  Each command runs in its own interpreter with
// the sandbox directory as working directory; the first failure aborts.
type ShellHookRunner struct{}

func NewShellHookRunner() ShellHookRunner {
	return ShellHookRunner{}
}

func (r ShellHookRunner) RunHooks(ctx context.Context, dir string, commands []string) error {
	parser := syntax.NewParser()
	for _, command := range commands {
		prog, err := parser.Parse(strings.NewReader(command), "pre_install")
		if err != nil {
			return errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg(fmt.Sprintf("failed to parse hook: %s", command)).
				WithCause(err)
		}
		var output bytes.Buffer
		runner, err := interp.New(
			interp.Dir(dir),
			interp.Env(expand.ListEnviron(os.Environ()...)),
			interp.StdIO(nil, &output, &output),
		)
		if err != nil {
			return errbuilder.New().
				WithCode(errbuilder.CodeInternal).
				WithMsg("failed to create hook interpreter").
				WithCause(err)
		}
		if err := runner.Run(ctx, prog); err != nil {
			var exitStatus interp.ExitStatus
			if errors.As(err, &exitStatus) {
				return errbuilder.New().
					WithCode(errbuilder.CodeFailedPrecondition).
					WithMsg(fmt.Sprintf("hook exited with status %d: %s", int(exitStatus), command)).
					WithCause(shared.CommandError(output.Bytes(), err))
			}
			return errbuilder.New().
				WithCode(errbuilder.CodeFailedPrecondition).
				WithMsg(fmt.Sprintf("hook failed: %s", command)).
				WithCause(shared.CommandError(output.Bytes(), err))
		}
		log.Ctx(ctx).Debug().
			Str("hook", command).
			Str("output", strings.TrimSpace(output.String())).
			Msg("hook executed")
	}
	return nil
}

var _ ports.HookRunnerPort = ShellHookRunner{}
