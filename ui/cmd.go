package ui

import (
	"chessboard/src"
	"chessboard/src/base"
	"chessboard/src/logx"
	clic "chessboard/ui/cli"
	"chessboard/ui/gui"
	"chessboard/ui/gui/gbase/gconf"
	"chessboard/ui/server"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v3"
)

const logfile string = "chessboard.log"

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// GetLogger builds the logger from the flags. The returned closer releases the
// log file, if one was opened.
func GetLogger(c *cli.Command) (*logx.Logx, io.Closer, error) {
	l := logx.NewLogx(
		logx.GetLoggerLevelByString(c.String("level")),
		c.Bool("debug"),
		c.Bool("console"),
	)
	if c.Bool("console") {
		l.InitLogger(nil)
		return l, nopCloser{}, nil
	}
	file, err := os.OpenFile(c.String("log-file"), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		return nil, nil, fmt.Errorf("error open logfile: %w", err)
	}
	l.InitLogger(file)
	return l, file, nil
}

func newBuilder(c *cli.Command, l logx.Logger) (*src.GameBuilder, error) {
	gb := src.NewBuilderBoard(l)
	if c.IsSet("fen") {
		if err := gb.CreateFromPlacement(c.String("fen")); err != nil {
			return nil, err
		}
	} else {
		gb.CreateClassic()
	}
	return gb, nil
}

func RunCLI(ctx context.Context, c *cli.Command) error {
	l, closer, err := GetLogger(c)
	if err != nil {
		return err
	}
	defer closer.Close()
	defer l.Sync() //nolint:errcheck

	gb, err := newBuilder(c, l)
	if err != nil {
		return err
	}
	return clic.NewCLI(gb).Run()
}

func RunGUI(ctx context.Context, c *cli.Command) error {
	l, closer, err := GetLogger(c)
	if err != nil {
		return err
	}
	defer closer.Close()
	defer l.Sync() //nolint:errcheck

	cfg, err := gconf.NewGUIConfig(c.String("config"))
	if err != nil {
		return fmt.Errorf("error read config: %w", err)
	}
	if cfg.Debug {
		l.SetLevel(0)
	}
	gb, err := newBuilder(c, l)
	if err != nil {
		return err
	}
	g, err := gui.NewGUI(gb, cfg, l)
	if err != nil {
		return fmt.Errorf("error GUI: %w", err)
	}
	return g.Run()
}

func RunServer(ctx context.Context, c *cli.Command) error {
	l, closer, err := GetLogger(c)
	if err != nil {
		return err
	}
	defer closer.Close()
	defer l.Sync() //nolint:errcheck

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	s := server.NewServer(l)
	errCh := make(chan error, 1)
	go func() {
		errCh <- s.Listen(c.String("addr"))
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		l.Info("shutting down")
		return s.Shutdown()
	}
}

// RunDump prints the board dump of --fen, or of the start position.
func RunDump(ctx context.Context, c *cli.Command) error {
	b := base.NewBoard()
	if c.IsSet("fen") {
		var err error
		if b, err = base.NewBoardFromPlacement(c.String("fen")); err != nil {
			return err
		}
	}
	w := c.Root().Writer
	if w == nil {
		w = os.Stdout
	}
	_, err := fmt.Fprint(w, b.String())
	return err
}

// NewCommand builds the command tree. Root flags are inherited by every
// subcommand.
func NewCommand() *cli.Command {
	flags := []cli.Flag{
		&cli.StringFlag{
			Name:  "fen",
			Usage: "piece placement field of a FEN string",
		},
		&cli.StringFlag{
			Name:  "config",
			Usage: "path to GUI config",
			Value: gconf.DefaultConfigFile,
		},
		&cli.BoolFlag{
			Name:    "debug",
			Aliases: []string{"d"},
			Usage:   "enable debug mod",
		},
		&cli.StringFlag{
			Name:    "level",
			Aliases: []string{"l"},
			Usage:   "logger level",
			Value:   "info",
		},
		&cli.BoolFlag{
			Name:    "console",
			Aliases: []string{"c"},
			Usage:   "console logger encoding",
		},
		&cli.StringFlag{
			Name:  "log-file",
			Usage: "path to log file",
			Value: logfile,
		},
	}

	return &cli.Command{
		Name:  "chessboard",
		Usage: "chess board viewer",
		Flags: flags,
		Commands: []*cli.Command{
			{
				Name:   "cli",
				Usage:  "terminal board",
				Action: RunCLI,
			},
			{
				Name:   "gui",
				Usage:  "window board",
				Action: RunGUI,
			},
			{
				Name:  "serve",
				Usage: "HTTP and websocket board API",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "addr",
						Usage: "listen address",
						Value: ":3000",
					},
				},
				Action: RunServer,
			},
			{
				Name:   "dump",
				Usage:  "print the board dump and exit",
				Action: RunDump,
			},
		},
		Action: RunGUI,
	}
}

func RunChessboard() error {
	err := NewCommand().Run(context.Background(), os.Args)
	if errors.Is(err, base.ErrPlacementOutOfBounds) {
		return fmt.Errorf("invalid --fen: %w", err)
	}
	return err
}
