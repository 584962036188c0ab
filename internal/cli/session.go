package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/partsdesk/internal/modal"
	"github.com/mesh-intelligence/partsdesk/pkg/types"
)

const prompt = "partsdesk> "

// maxLineBytes bounds one session line; a long description still fits.
const maxLineBytes = 1 << 20

// session is one interactive run: a store, a modal controller and the
// terminal it talks to. Each input line is parsed by a fresh command tree so
// flag values never leak between lines.
type session struct {
	app  *app
	ctrl *modal.Controller
	out  io.Writer
	done bool
}

func newSession(a *app, out io.Writer) *session {
	return &session{app: a, ctrl: a.newController(out), out: out}
}

// Run reads commands from in until EOF or quit. Command errors are printed
// and the loop continues.
func (s *session) Run(in io.Reader, interactive bool) error {
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), maxLineBytes)
	for !s.done {
		if interactive {
			fmt.Fprint(s.out, prompt)
		}
		if !scanner.Scan() {
			break
		}
		if err := s.Exec(scanner.Text()); err != nil {
			fmt.Fprintf(s.out, "error: %v\n", err)
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading input: %w", err)
	}
	return nil
}

// Exec runs a single command line.
func (s *session) Exec(line string) error {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return nil
	}
	args, err := splitLine(line)
	if err != nil {
		return err
	}
	root := s.commands()
	root.SetArgs(args)
	return root.Execute()
}

// notified reports controller errors that already produced an error
// notification; those are not printed a second time.
func notified(err error) error {
	if err == nil || errors.Is(err, types.ErrInvalidTransition) || errors.Is(err, types.ErrUnknownField) {
		return err
	}
	return nil
}

func (s *session) commands() *cobra.Command {
	root := &cobra.Command{
		Use:           "partsdesk>",
		Short:         "Inventory session commands",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}
	root.SetOut(s.out)
	root.SetErr(s.out)
	root.CompletionOptions.DisableDefaultCmd = true

	root.AddCommand(
		s.listCmd(),
		&cobra.Command{
			Use:   "add",
			Short: "Open the add form with an empty draft",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				if err := s.ctrl.StartAdd(); err != nil {
					return err
				}
				fmt.Fprintln(s.out, "Adding part. Use set <field> <value>, then confirm or cancel.")
				return nil
			},
		},
		&cobra.Command{
			Use:   "edit <id>",
			Short: "Open the edit form for a part",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				if err := s.ctrl.StartEdit(args[0]); err != nil {
					return notified(err)
				}
				printDraft(s.out, s.ctrl.Draft())
				return nil
			},
		},
		&cobra.Command{
			Use:   "set <field> [value...]",
			Short: "Set a draft field (" + strings.Join(types.DraftFields, ", ") + ")",
			Args:  cobra.MinimumNArgs(1),
			// Values such as "-5" must not be read as flags.
			DisableFlagParsing: true,
			RunE: func(cmd *cobra.Command, args []string) error {
				return s.ctrl.SetField(args[0], strings.Join(args[1:], " "))
			},
		},
		&cobra.Command{
			Use:   "draft",
			Short: "Show the staged draft",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				if s.ctrl.State() == modal.Closed {
					fmt.Fprintln(s.out, "No form is open.")
					return nil
				}
				printDraft(s.out, s.ctrl.Draft())
				return nil
			},
		},
		&cobra.Command{
			Use:   "confirm",
			Short: "Submit the draft",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				p, err := s.ctrl.Confirm()
				if err != nil {
					return notified(err)
				}
				fmt.Fprintf(s.out, "Saved part: %s\n", p.ID)
				return nil
			},
		},
		&cobra.Command{
			Use:   "cancel",
			Short: "Discard the draft and close the form",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return s.ctrl.Cancel()
			},
		},
		&cobra.Command{
			Use:   "delete <id>",
			Short: "Delete a part permanently",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return notified(s.ctrl.Delete(args[0]))
			},
		},
		&cobra.Command{
			Use:   "options",
			Short: "Show departments, item codes and categories",
			Args:  cobra.NoArgs,
			Run: func(cmd *cobra.Command, args []string) {
				printCatalog(s.out, s.app.settings.Catalog)
			},
		},
		&cobra.Command{
			Use:   "status",
			Short: "Show the form state and session counters",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				state := s.ctrl.State().String()
				if id, ok := s.ctrl.Target(); ok {
					state += " " + id
				}
				fmt.Fprintf(s.out, "form: %s\n", state)
				return printCounters(s.out, s.app.registry)
			},
		},
		&cobra.Command{
			Use:     "quit",
			Aliases: []string{"exit"},
			Short:   "End the session",
			Args:    cobra.NoArgs,
			Run: func(cmd *cobra.Command, args []string) {
				s.done = true
			},
		},
	)
	return root
}

func (s *session) listCmd() *cobra.Command {
	var opts listOptions
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List parts, optionally filtered",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.run(s.out, s.app.store)
		},
	}
	opts.bind(cmd)
	return cmd
}
