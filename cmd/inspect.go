package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/2BitsCoin/RisingWorld-RWGui/internal/config"
	"github.com/2BitsCoin/RisingWorld-RWGui/internal/demo"
	"github.com/2BitsCoin/RisingWorld-RWGui/internal/output"
	"github.com/2BitsCoin/RisingWorld-RWGui/internal/termhost"
	"github.com/2BitsCoin/RisingWorld-RWGui/pkg/gui"
	"github.com/2BitsCoin/RisingWorld-RWGui/pkg/roster"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect [main|settings]",
	Short: "Print the layout tree of a demo window",
	Long: `Lay out one of the demo windows without a screen and print its
widget tree with ids, positions and sizes.`,
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: []string{"main", "settings"},
	RunE: func(cmd *cobra.Command, args []string) error {
		which := "main"
		if len(args) == 1 {
			which = args[0]
		}
		cfg, err := config.Load(getBaseDir())
		if err != nil {
			return err
		}
		depth, _ := cmd.Flags().GetInt("depth")
		tree, err := inspectTree(cfg, which, depth)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), tree)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(inspectCmd)

	inspectCmd.Flags().Int("depth", 0, "Maximum depth (0 = unlimited)")
}

func inspectTree(cfg *config.Config, which string, depth int) (string, error) {
	host := termhost.New()
	v, err := host.Connect("inspect", 0)
	if err != nil {
		return "", err
	}
	none := roster.SourceFunc(func(context.Context) ([]roster.User, error) { return nil, nil })
	scene := demo.New(context.Background(), host, nil, cfg, none, nil)
	st := scene.Attach(v, 0)
	defer scene.Detach(v)

	var w *gui.Window
	switch strings.ToLower(which) {
	case "main":
		w = st.Main.Window
	case "settings":
		w = st.Settings
	default:
		return "", fmt.Errorf("unknown window %q (main, settings)", which)
	}
	w.Layout()
	return output.RenderTree(output.WindowTree(w), output.TreeRenderOptions{
		MaxDepth:     depth,
		ShowGeometry: true,
		ShowIDs:      true,
	}), nil
}
