package cli

import (
	"bufio"
	"chessboard/src"
	"chessboard/src/logx"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"
)

const helpText = `commands:
  show                 draw the board
  dump                 print the plain board dump
  load <placement>     replace the board with a new placement
  set <placement>      parse a placement into the current board
  at <row> <col>       show the piece on a square
  move <row> <col>     move the piece on a square
  moves                list valid moves
  level                toggle debug/info logging
  help                 this text
  q                    quit`

type CLIProcessing struct {
	builder *src.GameBuilder
	draw    DrawFunc
	in      io.Reader
	out     io.Writer
	prompt  bool
}

// NewCLI reads stdin and writes stdout. The board is drawn with colors
// only when stdout is a terminal.
func NewCLI(b *src.GameBuilder) *CLIProcessing {
	draw := PrintDump
	if term.IsTerminal(int(os.Stdout.Fd())) {
		EnableANSI()
		draw = PrintBoard
	}
	return &CLIProcessing{
		builder: b,
		draw:    draw,
		in:      os.Stdin,
		out:     os.Stdout,
		prompt:  term.IsTerminal(int(os.Stdin.Fd())),
	}
}

func NewCLIWithIO(b *src.GameBuilder, draw DrawFunc, in io.Reader, out io.Writer) *CLIProcessing {
	return &CLIProcessing{builder: b, draw: draw, in: in, out: out}
}

func (c *CLIProcessing) Run() error {
	scanner := bufio.NewScanner(c.in)
	c.draw(c.out, c.builder.CurrentBoard())
	fmt.Fprintln(c.out, "Type 'help' for commands, 'q' to quit.")
	for {
		if c.prompt {
			fmt.Fprint(c.out, "> ")
		}
		if !scanner.Scan() {
			return scanner.Err()
		}
		if quit := c.handleLine(strings.TrimSpace(scanner.Text())); quit {
			return nil
		}
	}
}

func (c *CLIProcessing) handleLine(line string) bool {
	if line == "" {
		return false
	}
	cmd, arg, _ := strings.Cut(line, " ")
	arg = strings.TrimSpace(arg)

	switch cmd {
	case "q", "Q", "quit":
		return true
	case "help":
		fmt.Fprintln(c.out, helpText)
	case "show":
		c.draw(c.out, c.builder.CurrentBoard())
	case "dump":
		fmt.Fprint(c.out, c.builder.Dump())
	case "load":
		if err := c.builder.CreateFromPlacement(arg); err != nil {
			fmt.Fprintf(c.out, "error: %v\n", err)
			return false
		}
		c.draw(c.out, c.builder.CurrentBoard())
	case "set":
		if err := c.builder.SetPlacement(arg); err != nil {
			fmt.Fprintf(c.out, "error: %v\n", err)
		}
		c.draw(c.out, c.builder.CurrentBoard())
	case "at":
		row, col, err := parseRowCol(arg)
		if err != nil {
			fmt.Fprintf(c.out, "error: %v\n", err)
			return false
		}
		if p, ok := c.builder.PieceAt(row, col); ok {
			fmt.Fprintf(c.out, "(%d, %d): %s\n", row, col, p)
		} else {
			fmt.Fprintf(c.out, "(%d, %d): empty\n", row, col)
		}
	case "move":
		row, col, err := parseRowCol(arg)
		if err != nil {
			fmt.Fprintf(c.out, "error: %v\n", err)
			return false
		}
		if err := c.builder.Move(row, col); err != nil {
			fmt.Fprintf(c.out, "error: %v\n", err)
		}
	case "moves":
		moves, err := c.builder.ValidMoves()
		if err != nil {
			fmt.Fprintf(c.out, "error: %v\n", err)
			return false
		}
		fmt.Fprintf(c.out, "moves: %v\n", moves)
	case "level":
		t, ok := c.builder.Logger().(logx.LevelToggler)
		if !ok {
			fmt.Fprintln(c.out, "error: logger level is fixed")
			return false
		}
		t.ToggleLevel()
		fmt.Fprintf(c.out, "logging level: %s\n", t.Level().CapitalString())
	default:
		fmt.Fprintf(c.out, "unknown command: %s\n", cmd)
	}
	return false
}

func parseRowCol(arg string) (int, int, error) {
	fields := strings.Fields(arg)
	if len(fields) != 2 {
		return 0, 0, fmt.Errorf("want <row> <col>, got %q", arg)
	}
	row, err := strconv.Atoi(fields[0])
	if err != nil {
		return 0, 0, fmt.Errorf("bad row %q: %w", fields[0], err)
	}
	col, err := strconv.Atoi(fields[1])
	if err != nil {
		return 0, 0, fmt.Errorf("bad col %q: %w", fields[1], err)
	}
	return row, col, nil
}
