package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-isatty"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/they4kman/tsweep/config"
	"github.com/they4kman/tsweep/session"
	"github.com/they4kman/tsweep/tui"
)

type runFlags struct {
	configPath string
	logFile    string
	logLevel   string

	seed       int64
	difficulty config.Level
	width      int
	height     int
	mines      int

	snapshotsDir string
}

var flags runFlags

var rootCmd = &cobra.Command{
	Use:   "tsweep",
	Short: "Play Minesweeper in the terminal",
	Long: `tsweep is a classic Minesweeper game for the terminal, played with
the mouse or the keyboard.

Run with no arguments to continue with the last difficulty
	tsweep

Pick a preset, or a custom board
	tsweep --difficulty expert
	tsweep -w 20 -h 12 -m 40
`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(cmd.Context(), cmd)
	},
}

func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Println(err)
		stop()
		os.Exit(1)
	}
}

func run(ctx context.Context, cmd *cobra.Command) error {
	fd := os.Stdout.Fd()
	if !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd) {
		return errors.New("tsweep must be run in an interactive terminal")
	}

	logger, closeLog, err := newLogger(flags.logFile, flags.logLevel)
	if err != nil {
		return err
	}
	defer closeLog()

	store := config.NewStore(flags.configPath, logger.WithField("component", "config"))
	cfg := store.LoadOrCreate()
	changed, err := applyOverrides(cfg, cmd.Flags(), flags)
	if err != nil {
		return err
	}
	if changed {
		store.Save(cfg)
	}

	screen, err := newScreen()
	if err != nil {
		return err
	}
	defer screen.Fini()

	sess := session.New(loadedStore{Store: store, config: cfg}, logger.WithField("component", "session"), session.Options{
		Seed:         flags.seed,
		SnapshotsDir: flags.snapshotsDir,
	})
	src := tui.NewSource(screen, logger.WithField("component", "tui"))

	err = sess.Run(ctx, src, tui.NewRenderer(screen))
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// loadedStore hands the session the configuration already loaded and
// overridden from flags.
type loadedStore struct {
	*config.Store
	config *config.Config
}

func (store loadedStore) LoadOrCreate() *config.Config {
	return store.config
}

func newLogger(path, level string) (*logrus.Logger, func(), error) {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, nil, errors.Wrap(err, "invalid log level")
	}
	if path == "" {
		path = filepath.Join(config.DefaultDir(), "tsweep.log")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, errors.Wrap(err, "create log directory")
	}
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "open log file %s", path)
	}

	logger := logrus.New()
	logger.SetOutput(f)
	logger.SetLevel(lvl)
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	return logger, func() { f.Close() }, nil
}

func newScreen() (tcell.Screen, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, errors.Wrap(err, "create screen")
	}
	if err := screen.Init(); err != nil {
		return nil, errors.Wrap(err, "initialize screen")
	}
	screen.SetStyle(tcell.StyleDefault)
	screen.EnableMouse()
	screen.HideCursor()
	screen.Clear()
	return screen, nil
}

func init() {
	// Define our root -help without a shorthand, as we'll use -h for --height
	// Ref: https://github.com/spf13/cobra/issues/291
	rootCmd.Flags().Bool("help", false, "Help for this command")

	rootCmd.Flags().StringVar(&flags.configPath, "config", "", "Config file (default "+config.DefaultPath()+")")
	rootCmd.Flags().StringVar(&flags.logFile, "log-file", "", "Log file (default in the config directory)")
	rootCmd.Flags().StringVar(&flags.logLevel, "log-level", "info", "Log level: debug, info, warn or error")
	rootCmd.Flags().Int64Var(&flags.seed, "seed", 0, "Seed of the first board; 0 picks a time based seed")
	rootCmd.Flags().Var(newDifficultyValue(config.Beginner, &flags.difficulty), "difficulty",
		"Difficulty: beginner, intermediate, expert or custom")
	rootCmd.Flags().IntVarP(&flags.width, "width", "w", config.MinWidth, "Width of a custom board, in cells")
	rootCmd.Flags().IntVarP(&flags.height, "height", "h", config.MinHeight, "Height of a custom board, in cells")
	rootCmd.Flags().IntVarP(&flags.mines, "mines", "m", config.MinMines, "Number of mines on a custom board")
	rootCmd.Flags().StringVar(&flags.snapshotsDir, "snapshots-dir", "", "Directory to export finished boards to")
}
