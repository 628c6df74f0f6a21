package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/2BitsCoin/RisingWorld-RWGui/internal/config"
	"github.com/2BitsCoin/RisingWorld-RWGui/internal/db"
	"github.com/2BitsCoin/RisingWorld-RWGui/internal/demo"
	"github.com/2BitsCoin/RisingWorld-RWGui/internal/termhost"
	"github.com/2BitsCoin/RisingWorld-RWGui/pkg/gui"
	"github.com/2BitsCoin/RisingWorld-RWGui/pkg/roster"
)

const logFile = ".rwgui/rwgui.log"

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Show the sample windows in the terminal",
	Long: `Open the terminal host with one screen per configured viewer.

Every viewer starts on the main menu. Click items to select them, turn the
mouse wheel over a menu to page it and click a text field to edit it
(enter to submit, esc to cancel). Tab switches viewers, q quits.

Logs go to .rwgui/rwgui.log while the screen is in use.`,
	RunE: runDemo,
}

func init() {
	rootCmd.AddCommand(demoCmd)

	demoCmd.Flags().StringSlice("viewer", nil, "Viewer names (overrides config)")
}

func runDemo(cmd *cobra.Command, args []string) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("demo needs an interactive terminal")
	}
	dir := getBaseDir()

	cfg, err := config.Load(dir)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if names, _ := cmd.Flags().GetStringSlice("viewer"); len(names) > 0 {
		cfg.Viewers = names
	}

	closeLog, err := redirectLog(dir)
	if err != nil {
		return err
	}
	defer closeLog()

	database, err := db.Initialize(db.Path(dir, cfg.Database))
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer database.Close()

	icons, err := loadIcons(cfg)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	host := termhost.New()
	cache := roster.NewCache(database)
	host.OnConnect(func(*termhost.Viewer) { cache.Invalidate() })

	p := tea.NewProgram(termhost.NewModel(host), tea.WithAltScreen(), tea.WithMouseAllMotion())
	scene := demo.New(ctx, host, icons, cfg, cache, termhost.Dispatcher(p))

	for _, name := range cfg.Viewers {
		player, err := database.EnsurePlayer(ctx, name)
		if err != nil {
			return fmt.Errorf("register viewer %q: %w", name, err)
		}
		v, err := host.Connect(name, player.ID)
		if err != nil {
			return err
		}
		scene.Attach(v, player.ID)
	}

	_, err = p.Run()
	for _, v := range host.Viewers() {
		scene.Detach(v)
		host.Disconnect(v)
	}
	return err
}

// loadIcons uses the configured asset directory, or the built-in icons.
func loadIcons(cfg *config.Config) (*gui.IconSet, error) {
	if cfg.AssetsDir == "" {
		return gui.DefaultIcons(), nil
	}
	if _, err := os.Stat(cfg.AssetsDir); err != nil {
		return nil, fmt.Errorf("assets dir: %w", err)
	}
	return gui.NewIconSet(os.DirFS(cfg.AssetsDir)), nil
}

// redirectLog sends log output to the log file while the screen is in use.
func redirectLog(dir string) (func(), error) {
	path := filepath.Join(dir, logFile)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("open log: %w", err)
	}
	setLogOutput(f)
	slog.Debug("demo started", "dir", dir)
	return func() {
		setLogOutput(os.Stderr)
		f.Close()
	}, nil
}
