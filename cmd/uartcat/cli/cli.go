package cli

import (
	"bufio"
	"context"
	"io"
	"os"

	"github.com/alecthomas/kong"
	"github.com/pkg/errors"

	"github.com/philipp01105/uartlog/core"
	"github.com/philipp01105/uartlog/formatter"
	"github.com/philipp01105/uartlog/logger"
	"github.com/philipp01105/uartlog/sink"
)

// Name is the program name, also used as the tag of its own diagnostics.
const Name = "uartcat"

const description = "Emit standard input as leveled log lines through a uartlog facade."

// CLI is the command-line interface for uartcat.
type CLI struct {
	Config kong.ConfigFlag `help:"Load flags from a YAML file." short:"c"`

	Tag      string `default:"APP"  help:"Tag printed on every line."                      short:"t"`
	Level    string `default:"info" enum:"error,warn,info,debug,verbose" help:"Level lines are written with." short:"l"`
	Device   string `help:"Serial device or file to write to instead of stdout." short:"d"`
	Color    string `default:"auto" enum:"auto,always,never" help:"Colorize output."`
	Bytewise bool   `default:"true" help:"Deliver output one byte at a time through the sink." negatable:""`
	MaxLine  int    `default:"1048576" help:"Longest accepted input line in bytes." name:"max-line"`
}

// initialLineBuffer is the scanner's starting buffer; it grows up to MaxLine.
const initialLineBuffer = 64 * 1024

// Run parses args and copies stdin to the configured output, one log line
// per input line, until stdin is exhausted or ctx is done. Cancellation is
// observed even while a read from stdin is blocked; the pending read is
// abandoned, not interrupted.
func Run(
	ctx context.Context,
	stdin io.Reader,
	exit func(code int),
	args ...string,
) error {
	var cli CLI

	parser, err := kong.New(&cli,
		kong.Name(Name),
		kong.Description(description),
		kong.UsageOnError(),
		kong.Exit(exit),
		kong.Configuration(loadYAML),
	)
	if err != nil {
		return errors.Wrap(err, "build parser")
	}

	if _, err := parser.Parse(args); err != nil {
		return err
	}

	return cli.run(ctx, stdin)
}

func (c *CLI) run(ctx context.Context, stdin io.Reader) error {
	if c.MaxLine <= 0 {
		return errors.Errorf("max-line must be positive, got %d", c.MaxLine)
	}

	out := os.Stdout
	if c.Device != "" {
		f, err := os.OpenFile(c.Device, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o644)
		if err != nil {
			return errors.Wrapf(err, "open device %s", c.Device)
		}
		defer f.Close()
		out = f
	}

	f := c.facade(out)
	level := core.ParseLevel(c.Level)

	lines, errc := c.scan(ctx, stdin)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case line, ok := <-lines:
			if !ok {
				if err := ctx.Err(); err != nil {
					return err
				}
				return errors.Wrap(<-errc, "read input")
			}
			f.Log(level, c.Tag, "%s", line)
		}
	}
}

// scan reads stdin line by line on its own goroutine. lines is closed when
// input ends or ctx is done; the scanner error, if any, is sent on errc
// before lines closes.
func (c *CLI) scan(ctx context.Context, stdin io.Reader) (<-chan string, <-chan error) {
	lines := make(chan string)
	errc := make(chan error, 1)

	go func() {
		defer close(lines)

		scanner := bufio.NewScanner(stdin)
		scanner.Buffer(make([]byte, 0, min(initialLineBuffer, c.MaxLine)), c.MaxLine)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
		errc <- scanner.Err()
	}()
	return lines, errc
}

// facade builds a facade writing to out according to the color and
// bytewise settings, with the process tick clock as timestamp source.
func (c *CLI) facade(out *os.File) *logger.Facade {
	f := logger.New()

	core.StartTickClock()
	f.SetTimestampSource(core.Ticks)

	var w io.Writer = out
	if c.Bytewise {
		f.SetOutputSink(sink.New(sink.Config{Writer: out}))
		w = f.Output()
	}

	switch c.Color {
	case "always":
		f.SetFormatter(formatter.To(w))
	case "never":
		f.SetFormatter(formatter.Plain(w))
	default:
		if formatter.IsTerminal(out) {
			f.SetFormatter(formatter.To(w))
		} else {
			f.SetFormatter(formatter.Plain(w))
		}
	}
	return f
}
