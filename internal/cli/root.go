package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/Adda-Baaj/todoctl/internal/domain"
	"github.com/spf13/cobra"
)

// Options are the global settings for one invocation.
type Options struct {
	BaseURL  string
	Color    string
	LogLevel string
	Timeout  time.Duration
}

// Dispatcher performs a parsed command.
type Dispatcher func(ctx context.Context, opts Options, cmd domain.Command) error

// ErrMissingBaseURL is returned when no base URL precedes the subcommand.
var ErrMissingBaseURL = errors.New("base url is required")

// valueFlags take a separate argument when not written as --flag=value.
var valueFlags = map[string]bool{
	"--color":     true,
	"--log-level": true,
	"--timeout":   true,
}

// Execute parses args (without the program name) and runs the selected subcommand.
func Execute(ctx context.Context, args []string, defaults Options, dispatch Dispatcher, out, errOut io.Writer) error {
	opts := defaults
	root := NewRootCmd(&opts, dispatch)
	root.SetOut(out)
	root.SetErr(errOut)

	opts.BaseURL, args = splitBaseURL(root, args)
	root.SetArgs(args)
	return root.ExecuteContext(ctx)
}

// NewRootCmd builds the command tree. Subcommands hand their Command to dispatch.
func NewRootCmd(opts *Options, dispatch Dispatcher) *cobra.Command {
	root := &cobra.Command{
		Use:   "todoctl <url> <command>",
		Short: "Command-line client for a todo-list HTTP API",
		Long: `todoctl sends one request to a todo-list API and prints the response.

The status and content type are written to stderr, the body to stdout.
JSON bodies are pretty-printed.`,
		Example: `  todoctl http://localhost:3000 list
  todoctl http://localhost:3000 create "buy milk"
  todoctl http://localhost:3000 update 7 "buy oat milk" --completed`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return fmt.Errorf("missing command (run %q for usage)", cmd.Root().Name()+" --help")
		},
	}
	root.CompletionOptions.DisableDefaultCmd = true

	flags := root.PersistentFlags()
	flags.StringVar(&opts.Color, "color", opts.Color, "colorize output: auto, always or never")
	flags.StringVar(&opts.LogLevel, "log-level", opts.LogLevel, "log level: debug, info, warn or error")
	flags.DurationVar(&opts.Timeout, "timeout", opts.Timeout, "request timeout (0 waits indefinitely)")

	run := func(build func(args []string) (domain.Command, error)) func(*cobra.Command, []string) error {
		return func(cmd *cobra.Command, args []string) error {
			if strings.TrimSpace(opts.BaseURL) == "" {
				return ErrMissingBaseURL
			}
			c, err := build(args)
			if err != nil {
				return err
			}
			return dispatch(cmd.Context(), *opts, c)
		}
	}

	var completed bool
	update := &cobra.Command{
		Use:   "update <id> <body>",
		Short: "Update a todo",
		Args:  cobra.ExactArgs(2),
		RunE: run(func(args []string) (domain.Command, error) {
			id, err := parseID(args[0])
			if err != nil {
				return domain.Command{}, err
			}
			return domain.Update(id, args[1], completed), nil
		}),
	}
	update.Flags().BoolVarP(&completed, "completed", "c", false, "mark todo as completed")

	root.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "List all todos",
			Args:  cobra.NoArgs,
			RunE: run(func([]string) (domain.Command, error) {
				return domain.List(), nil
			}),
		},
		&cobra.Command{
			Use:   "create <body>",
			Short: "Create a new todo",
			Args:  cobra.ExactArgs(1),
			RunE: run(func(args []string) (domain.Command, error) {
				return domain.Create(args[0]), nil
			}),
		},
		&cobra.Command{
			Use:   "read <id>",
			Short: "Read a todo",
			Args:  cobra.ExactArgs(1),
			RunE: run(func(args []string) (domain.Command, error) {
				id, err := parseID(args[0])
				if err != nil {
					return domain.Command{}, err
				}
				return domain.Read(id), nil
			}),
		},
		update,
		&cobra.Command{
			Use:   "delete <id>",
			Short: "Delete a todo",
			Args:  cobra.ExactArgs(1),
			RunE: run(func(args []string) (domain.Command, error) {
				id, err := parseID(args[0])
				if err != nil {
					return domain.Command{}, err
				}
				return domain.Delete(id), nil
			}),
		},
	)
	return root
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid todo id %q: must be an integer", s)
	}
	return id, nil
}

// splitBaseURL removes the first positional argument when it is not a subcommand
// and returns it as the base URL.
func splitBaseURL(root *cobra.Command, args []string) (string, []string) {
	known := map[string]bool{"help": true}
	for _, c := range root.Commands() {
		known[c.Name()] = true
	}

	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--" {
			return "", args
		}
		if strings.HasPrefix(arg, "-") {
			if valueFlags[arg] {
				i++
			}
			continue
		}
		if known[arg] {
			return "", args
		}
		rest := make([]string, 0, len(args)-1)
		rest = append(rest, args[:i]...)
		rest = append(rest, args[i+1:]...)
		return arg, rest
	}
	return "", args
}
