// Package hook runs the user's command after each completed interval
package hook

import (
	"context"
	"os"
	"os/exec"

	"github.com/kballard/go-shellquote"

	"github.com/ayoisaiah/meow/internal/apperr"
	"github.com/ayoisaiah/meow/internal/config"
)

// EnvSession holds the name of the interval that just ended.
const EnvSession = "MEOW_SESSION"

var errParseCmd = &apperr.Error{
	Message: "unable to parse session_cmd option",
}

// Command is a parsed session command.
type Command struct {
	name string
	args []string
}

// Parse splits cmd the way a POSIX shell would. An empty cmd yields a nil
// Command.
func Parse(cmd string) (*Command, error) {
	if cmd == "" {
		return nil, nil
	}

	cmdSlice, err := shellquote.Split(cmd)
	if err != nil {
		return nil, errParseCmd.Wrap(err)
	}

	if len(cmdSlice) == 0 {
		return nil, nil
	}

	return &Command{
		name: cmdSlice[0],
		args: cmdSlice[1:],
	}, nil
}

// Run executes the command and waits for it to exit.
func (c *Command) Run(ctx context.Context, name config.SessionType) error {
	if c == nil {
		return nil
	}

	cmd := exec.CommandContext(ctx, c.name, c.args...)
	cmd.Env = append(os.Environ(), EnvSession+"="+string(name))

	return cmd.Run()
}

// Argv returns the program name followed by its arguments.
func (c *Command) Argv() []string {
	if c == nil {
		return nil
	}

	return append([]string{c.name}, c.args...)
}
