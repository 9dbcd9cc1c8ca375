package cli

import (
	"fmt"
	"net/url"

	"github.com/spf13/cobra"
)

func newServerCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "server [url]",
		Short: "Show or set the task server URL",
		Long: `Show the task server URL, or save a new one to the config file.

Examples:
  tasktracker server
  tasktracker server http://tasks.example.com:3000`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if len(args) == 0 {
				fmt.Fprintf(out, "Server: %s\n", a.cfg.ServerURL)
				return nil
			}

			u, err := url.Parse(args[0])
			if err != nil || u.Scheme == "" || u.Host == "" {
				return fmt.Errorf("invalid server URL: %s", args[0])
			}

			a.cfg.ServerURL = args[0]
			if err := a.cfg.Save(); err != nil {
				return err
			}

			fmt.Fprintf(out, "✓ Server set to %s (saved to %s)\n", a.cfg.ServerURL, a.cfg.Path())
			return nil
		},
	}
}
