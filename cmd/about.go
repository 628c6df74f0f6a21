package cmd

import (
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

const aboutText = `# RWGui

Retained-mode widgets for game servers: containers lay children out
horizontally, vertically or in a grid, and windows route clicks back to
the code that built them.

## Widgets

- **Window** modal dialogue with a title bar and cancel button
- **Menu** paged list of selectable items
- **CheckBox** check or radio box with a label
- **MessageBox** notice that closes itself after a delay

## Demo

Run ` + "`rwgui demo`" + ` and click around. Tab switches viewers.
`

var aboutCmd = &cobra.Command{
	Use:   "about",
	Short: "Describe the toolkit",
	RunE: func(cmd *cobra.Command, args []string) error {
		out, err := renderAbout(term.IsTerminal(int(os.Stdout.Fd())))
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), out)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(aboutCmd)
}

// renderAbout styles the text for a terminal, or returns plain markdown.
func renderAbout(styled bool) (string, error) {
	text := aboutText
	if version != "" {
		text += "\nVersion " + version + "\n"
	}
	if !styled {
		return text, nil
	}
	return glamour.Render(text, "dark")
}
