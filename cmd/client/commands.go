package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/note-keeper/internal/adapter"
	"github.com/MKhiriev/note-keeper/internal/config"
	"github.com/MKhiriev/note-keeper/internal/logger"
	"github.com/MKhiriev/note-keeper/models"
)

// cli holds the state shared by every command of one invocation.
type cli struct {
	out io.Writer

	// flag values; empty ones fall back to NOTEKEEPER_* variables
	serverURL string
	token     string
	timeout   time.Duration
	verbose   bool

	api    adapter.ServerAdapter
	logger *logger.Logger
}

func newRootCmd(out io.Writer) *cobra.Command {
	c := &cli{out: out}

	root := &cobra.Command{
		Use:   "note-keeper",
		Short: "Command-line client for the note-keeper API",
		Long: `Command-line client for the note-keeper API.

Log in once and export the printed token to stay authenticated:
  export NOTEKEEPER_TOKEN=$(note-keeper login -e alice@example.com -p secret1 -q)`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: c.connect,
	}
	root.SetOut(out)

	flags := root.PersistentFlags()
	flags.StringVarP(&c.serverURL, "server", "s", "", "server base URL (env NOTEKEEPER_SERVER_URL)")
	flags.StringVarP(&c.token, "token", "t", "", "bearer token (env NOTEKEEPER_TOKEN)")
	flags.DurationVar(&c.timeout, "timeout", 0, "request timeout (env NOTEKEEPER_REQUEST_TIMEOUT)")
	flags.BoolVarP(&c.verbose, "verbose", "v", false, "log requests to stderr")

	root.AddCommand(
		c.versionCmd(),
		c.infoCmd(),
		c.healthCmd(),
		c.registerCmd(),
		c.loginCmd(),
		c.meCmd(),
		c.notesCmd(),
	)

	return root
}

// connect resolves the configuration and builds the server adapter.
func (c *cli) connect(cmd *cobra.Command, _ []string) error {
	c.logger = logger.NewClientLogger("note-keeper-client", c.verbose)

	cfg, err := config.GetClientConfig(config.ClientConfig{
		ServerURL:      c.serverURL,
		Token:          c.token,
		RequestTimeout: c.timeout,
	})
	if err != nil {
		return err
	}

	c.api, err = adapter.NewHTTPServerAdapter(*cfg, c.logger)
	return err
}

func (c *cli) printJSON(v any) error {
	enc := json.NewEncoder(c.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func (c *cli) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print client build information",
		Args:  cobra.NoArgs,
		// no server connection needed
		PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprint(c.out, models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))
			return err
		},
	}
}

func (c *cli) infoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Show the server name and version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			info, err := c.api.Info(cmd.Context())
			if err != nil {
				return err
			}
			return c.printJSON(info)
		},
	}
}

func (c *cli) healthCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Check whether the server can reach its database",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			status, err := c.api.Health(cmd.Context())
			if status.Status != "" {
				if perr := c.printJSON(status); perr != nil {
					return perr
				}
			}
			return err
		},
	}
}

func (c *cli) registerCmd() *cobra.Command {
	var req models.RegisterRequest

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create an account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			user, err := c.api.Register(cmd.Context(), req)
			if err != nil {
				return err
			}
			return c.printJSON(user)
		},
	}

	cmd.Flags().StringVarP(&req.Email, "email", "e", "", "account email")
	cmd.Flags().StringVarP(&req.Password, "password", "p", "", "account password")
	cmd.Flags().StringVarP(&req.FullName, "full-name", "n", "", "display name")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}

func (c *cli) loginCmd() *cobra.Command {
	var (
		req   models.LoginRequest
		quiet bool
	)

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Exchange credentials for an access token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			token, err := c.api.Login(cmd.Context(), req)
			if err != nil {
				return err
			}
			if quiet {
				_, err = fmt.Fprintln(c.out, token.AccessToken)
				return err
			}
			return c.printJSON(token)
		},
	}

	cmd.Flags().StringVarP(&req.Email, "email", "e", "", "account email")
	cmd.Flags().StringVarP(&req.Password, "password", "p", "", "account password")
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "print the bare token only")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}

func (c *cli) meCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "me",
		Short: "Show the account the token belongs to",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			user, err := c.api.Me(cmd.Context())
			if err != nil {
				return err
			}
			return c.printJSON(user)
		},
	}
}

func (c *cli) notesCmd() *cobra.Command {
	notes := &cobra.Command{
		Use:   "notes",
		Short: "List, create and delete your notes",
	}

	var skip, limit int64
	list := &cobra.Command{
		Use:   "list",
		Short: "List your notes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			found, err := c.api.ListNotes(cmd.Context(), skip, limit)
			if err != nil {
				return err
			}
			return c.printJSON(found)
		},
	}
	list.Flags().Int64Var(&skip, "skip", 0, "number of notes to skip")
	list.Flags().Int64Var(&limit, "limit", models.DefaultNotesLimit, "maximum number of notes")

	create := &cobra.Command{
		Use:   "create <content>...",
		Short: "Create a note; arguments are joined with spaces",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			note, err := c.api.CreateNote(cmd.Context(), strings.Join(args, " "))
			if err != nil {
				return err
			}
			return c.printJSON(note)
		},
	}

	del := &cobra.Command{
		Use:   "delete <note-id>",
		Short: "Delete one of your notes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			noteID, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid note id %q", args[0])
			}
			if err = c.api.DeleteNote(cmd.Context(), noteID); err != nil {
				return err
			}
			return c.printJSON(models.MessageResponse{Message: "Note deleted successfully"})
		},
	}

	notes.AddCommand(list, create, del)
	return notes
}
