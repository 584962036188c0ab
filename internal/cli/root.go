// Package cli implements the partsdesk command-line interface.
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/partsdesk/internal/paths"
	"github.com/mesh-intelligence/partsdesk/pkg/types"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// rootFlags holds global flag values accessible to all subcommands.
type rootFlags struct {
	configDir string
	envFile   string
}

// NewRootCmd creates the top-level "partsdesk" command with global flags
// and all subcommands registered. Running it without a subcommand starts
// the interactive session.
func NewRootCmd() *cobra.Command {
	var (
		flags    rootFlags
		settings Settings
	)

	root := &cobra.Command{
		Use:   "partsdesk",
		Short: "Track hardware parts and assets",
		Long: `partsdesk keeps an inventory of hardware parts in memory for the
length of a session: list and filter parts, add new ones, edit or delete
existing ones. Nothing is kept after the session ends.`,
		// Do not print usage on errors returned by subcommands.
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Name() == "version" {
				return nil
			}
			configDir, err := paths.ResolveConfigDir(flags.configDir)
			if err != nil {
				return fmt.Errorf("resolve config dir: %w", err)
			}
			settings, err = loadSettings(configDir, flags.envFile)
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShell(cmd, &settings)
		},
	}

	root.PersistentFlags().StringVar(&flags.configDir, "config-dir", "", "configuration directory (default: platform config dir)")
	root.PersistentFlags().StringVar(&flags.envFile, "env-file", ".env", "dotenv file loaded before the configuration")

	root.AddCommand(newShellCmd(&settings))
	root.AddCommand(newListCmd(&settings))
	root.AddCommand(newOptionsCmd(&settings))
	root.AddCommand(newVersionCmd())

	return root
}

// Execute runs the root command and exits with the appropriate code.
func Execute() {
	root := NewRootCmd()
	if err := root.Execute(); err != nil {
		os.Exit(exitCode(err))
	}
	os.Exit(exitSuccess)
}

// exitCode maps an error to a process exit code: problems the user can fix
// are 1, everything else is 2.
func exitCode(err error) int {
	switch {
	case err == nil:
		return exitSuccess
	case errors.Is(err, types.ErrBackendEmpty),
		errors.Is(err, types.ErrBackendUnknown),
		errors.Is(err, types.ErrValidation),
		errors.Is(err, types.ErrNotFound):
		return exitUserError
	default:
		return exitSysError
	}
}

func newShellCmd(settings *Settings) *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Start an interactive inventory session",
		Long: `Shell reads session commands from standard input, one per line.

Example:
  partsdesk shell
  partsdesk> add
  partsdesk> set department "IT Support"
  partsdesk> set itemCode C1
  partsdesk> set partName SSD
  partsdesk> set unitPrice 2000
  partsdesk> confirm
  partsdesk> list --search ssd`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShell(cmd, settings)
		},
	}
}

func runShell(cmd *cobra.Command, settings *Settings) error {
	a, err := newApp(*settings, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer a.Close()

	in := cmd.InOrStdin()
	return newSession(a, cmd.OutOrStdout()).Run(in, isTerminal(in))
}

// isTerminal reports whether r is an interactive terminal, which decides
// whether the prompt is shown.
func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func newListCmd(settings *Settings) *cobra.Command {
	var opts listOptions
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the parts a new session starts with",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(*settings, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer a.Close()
			return opts.run(cmd.OutOrStdout(), a.store)
		},
	}
	opts.bind(cmd)
	return cmd
}

// listOptions are the filter and output flags shared by both list commands.
type listOptions struct {
	department string
	search     string
	jsonOut    bool
}

func (o *listOptions) bind(cmd *cobra.Command) {
	cmd.Flags().StringVar(&o.department, "department", types.AllDepartments, "department to show, or \"all\"")
	cmd.Flags().StringVar(&o.search, "search", "", "case-insensitive text in part name, item code or description")
	cmd.Flags().BoolVar(&o.jsonOut, "json", false, "output as JSON")
}

func (o *listOptions) run(w io.Writer, store types.PartsStore) error {
	parts, err := store.Query(types.Filter{Department: o.department, SearchTerm: o.search})
	if err != nil {
		return fmt.Errorf("query parts: %w", err)
	}
	if o.jsonOut {
		return writeJSON(w, parts)
	}
	printPartTable(w, parts)
	return nil
}

func newOptionsCmd(settings *Settings) *cobra.Command {
	var jsonOut bool
	cmd := &cobra.Command{
		Use:   "options",
		Short: "Print the department, item code and category lists",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if jsonOut {
				return writeJSON(cmd.OutOrStdout(), settings.Catalog)
			}
			printCatalog(cmd.OutOrStdout(), settings.Catalog)
			return nil
		},
	}
	cmd.Flags().BoolVar(&jsonOut, "json", false, "output as JSON")
	return cmd
}
