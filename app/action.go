package app

import (
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"runtime"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/meow/internal/config"
	"github.com/ayoisaiah/meow/internal/hook"
	"github.com/ayoisaiah/meow/internal/logging"
	"github.com/ayoisaiah/meow/internal/notify"
	"github.com/ayoisaiah/meow/internal/osutil"
	"github.com/ayoisaiah/meow/internal/pathutil"
	"github.com/ayoisaiah/meow/internal/sound"
	"github.com/ayoisaiah/meow/internal/static"
	"github.com/ayoisaiah/meow/internal/ui"
	"github.com/ayoisaiah/meow/timer"
)

const (
	envNoColor     = "NO_COLOR"
	envMeowNoColor = "MEOW_NO_COLOR"
)

// firstNonEmptyString returns its first non-empty argument, or "" if all
// arguments are empty.
func firstNonEmptyString(ss ...string) string {
	for _, s := range ss {
		if s != "" {
			return s
		}
	}

	return ""
}

// editor returns the command used to open the config file.
func editor() string {
	defaultEditor := "nano"

	if runtime.GOOS == osutil.Windows {
		defaultEditor = "C:\\Windows\\system32\\notepad.exe"
	}

	return firstNonEmptyString(
		os.Getenv("VISUAL"),
		os.Getenv("EDITOR"),
		defaultEditor,
	)
}

// editConfigAction handles the edit-config command which opens the meow
// config file in the user's default text editor.
func editConfigAction(_ *cli.Context) error {
	configPath := pathutil.ConfigFilePath()

	// writes the defaults on first use so there is something to edit
	if _, err := config.New(config.WithViperConfig(configPath)); err != nil {
		return err
	}

	name := editor()

	pterm.Info.Printfln("Opening %s with %s", ui.Highlight(configPath), ui.Green(name))

	cmd := exec.Command(name, configPath)

	cmd.Stderr = config.Stderr
	cmd.Stdin = config.Stdin
	cmd.Stdout = config.Stdout

	return cmd.Run()
}

// newTimer builds the timer model and its collaborators from the config.
func newTimer(cfg *config.Config, cat string) (*timer.Model, error) {
	cmd, err := hook.Parse(cfg.Settings.Cmd)
	if err != nil {
		return nil, err
	}

	opts := timer.Options{
		Notifier: notify.New(cfg.Notifications.Enabled, ""),
		Alarm:    sound.NewAlarm(cfg.Sound.Alarm),
		Cat:      cat,
		Style:    ui.NewStyle(cfg),
	}

	if cmd != nil {
		opts.Hook = cmd
	}

	return timer.New(opts), nil
}

// defaultAction loads the config and runs the timer until the user quits.
func defaultAction(ctx *cli.Context) error {
	cfg, err := config.New(
		config.WithViperConfig(pathutil.ConfigFilePath()),
		config.WithCLIConfig(ctx),
	)
	if err != nil {
		return err
	}

	logFile := logging.Setup(pathutil.LogFilePath(), cfg.Log.Debug)
	defer logFile.Close()

	slog.Debug("config loaded", slog.String("config", cfg.String()))

	ui.DarkTheme = cfg.Display.DarkTheme

	// the timer still works without the drawing
	cat, err := static.Cat()
	if err != nil {
		slog.Warn("cat image unavailable", slog.Any("error", err))
	}

	m, err := newTimer(cfg, cat)
	if err != nil {
		return err
	}

	p := tea.NewProgram(m, tea.WithAltScreen())

	_, err = p.Run()

	return err
}

func beforeAction(ctx *cli.Context) error {
	// Override the default help template
	cli.AppHelpTemplate = helpText()

	// Override the default version printer
	oldVersionPrinter := cli.VersionPrinter
	cli.VersionPrinter = func(c *cli.Context) {
		oldVersionPrinter(c)
		fmt.Printf(
			"https://github.com/ayoisaiah/meow/releases/%s\n",
			c.App.Version,
		)
	}

	pterm.Error.MessageStyle = pterm.NewStyle(pterm.FgRed)
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "ERROR",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}

	// Disable colour output if NO_COLOR is set
	if _, exists := os.LookupEnv(envNoColor); exists {
		disableStyling()
	}

	// Disable colour output if MEOW_NO_COLOR is set
	if _, exists := os.LookupEnv(envMeowNoColor); exists {
		disableStyling()
	}

	if ctx.Bool("no-color") {
		disableStyling()
	}

	if err := pathutil.Initialize(); err != nil {
		return err
	}

	return static.Install()
}

func afterAction(ctx *cli.Context) error {
	slog.InfoContext(ctx.Context, "exiting meow")

	return nil
}
