package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/huh"
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/2BitsCoin/RisingWorld-RWGui/internal/config"
	"github.com/2BitsCoin/RisingWorld-RWGui/internal/db"
	"github.com/2BitsCoin/RisingWorld-RWGui/internal/output"
	"github.com/2BitsCoin/RisingWorld-RWGui/pkg/roster"
)

var usersCmd = &cobra.Command{
	Use:     "users",
	Aliases: []string{"players"},
	Short:   "Manage the player roster",
}

var usersAddCmd = &cobra.Command{
	Use:   "add [name]",
	Short: "Add a player",
	Long:  `Add a player to the roster. Without a name you are prompted for one.`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var name string
		if len(args) == 1 {
			name = args[0]
		} else {
			if !term.IsTerminal(int(os.Stdin.Fd())) {
				return fmt.Errorf("name is required")
			}
			if err := huh.NewInput().
				Title("Player name").
				Value(&name).
				Validate(validateName).
				Run(); err != nil {
				return err
			}
		}
		if err := validateName(name); err != nil {
			return err
		}

		database, err := openRoster()
		if err != nil {
			output.Error("%v", err)
			return err
		}
		defer database.Close()

		existing, err := database.GetPlayerByName(cmd.Context(), name)
		if err != nil {
			return err
		}
		if existing != nil {
			return fmt.Errorf("player %q already exists", existing.Name)
		}
		p, err := database.AddPlayer(cmd.Context(), name)
		if err != nil {
			output.Error("%v", err)
			return err
		}
		output.Success("added %s (#%d)", p.Name, p.ID)
		return nil
	},
}

var usersListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List players",
	RunE: func(cmd *cobra.Command, args []string) error {
		database, err := openRoster()
		if err != nil {
			output.Error("%v", err)
			return err
		}
		defer database.Close()

		users, err := database.Users(cmd.Context())
		if err != nil {
			return err
		}
		if pattern, _ := cmd.Flags().GetString("filter"); pattern != "" {
			users = roster.Filter(users, pattern)
		}
		if len(users) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No players")
			return nil
		}

		tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		for _, u := range users {
			fmt.Fprintf(tw, "%d\t%s\t%s\n", u.ID, u.Name, output.Muted("joined "+humanize.Time(u.JoinedAt)))
		}
		return tw.Flush()
	},
}

var usersRemoveCmd = &cobra.Command{
	Use:     "remove <name>",
	Aliases: []string{"rm"},
	Short:   "Remove a player",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		database, err := openRoster()
		if err != nil {
			output.Error("%v", err)
			return err
		}
		defer database.Close()

		if err := database.RemovePlayer(cmd.Context(), args[0]); err != nil {
			if errors.Is(err, db.ErrPlayerNotFound) {
				return fmt.Errorf("no player %q", args[0])
			}
			return err
		}
		output.Success("removed %s", args[0])
		return nil
	},
}

func init() {
	rootCmd.AddCommand(usersCmd)
	usersCmd.AddCommand(usersAddCmd, usersListCmd, usersRemoveCmd)

	usersListCmd.Flags().StringP("filter", "f", "", "Fuzzy filter on names")
}

func validateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("name is required")
	}
	return nil
}

// openRoster opens the configured database, creating it on first use.
func openRoster() (*db.DB, error) {
	dir := getBaseDir()
	cfg, err := config.Load(dir)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return db.Initialize(db.Path(dir, cfg.Database))
}
