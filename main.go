package main

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"syslogfmt/formats"
	"syslogfmt/identity"
	"syslogfmt/syslog"
	"syslogfmt/utils"
)

func main() {
	logger := newLogger()
	defer logger.Sync() //nolint:errcheck // stderr sync failure is uninteresting

	app := &cli.App{
		Name:  "syslogfmt",
		Usage: "format messages as RFC 3164 or RFC 5424 syslog lines",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "format",
				Value: utils.DefaultFormat,
				Usage: "wire format, rfc3164 or rfc5424",
			},
			&cli.StringFlag{
				Name:  "facility",
				Value: utils.DefaultFacility,
				Usage: "syslog facility name",
			},
			&cli.StringFlag{
				Name:  "severity",
				Value: "info",
				Usage: "syslog severity name",
			},
			&cli.StringFlag{
				Name:  "hostname",
				Usage: "override the discovered hostname",
			},
			&cli.StringFlag{
				Name:  "tag",
				Usage: "override the discovered process name",
			},
			&cli.StringFlag{
				Name:  "msgid",
				Usage: "RFC 5424 MSGID field",
			},
			&cli.StringSliceFlag{
				Name:  "sd",
				Usage: `structured data element, e.g. "exampleSDID@32473 iut=3" (repeatable)`,
			},
			&cli.BoolFlag{
				Name:  "utc",
				Value: utils.DefaultUTC,
				Usage: "render RFC 3164 timestamps in UTC",
			},
			&cli.BoolFlag{
				Name:  "strict-sd",
				Usage: "escape structured data values per RFC 5424",
			},
		},
		Action: func(c *cli.Context) error {
			return run(c, logger)
		},
	}

	if err := app.Run(os.Args); err != nil {
		logger.Fatal("syslogfmt failed", zap.Error(err))
	}
}

// run formats the argv message, or one line per stdin line, to
// stdout. The formatters emit no line terminator, so the newline is
// appended here: framing belongs to the layer around the encoders.
func run(c *cli.Context, logger *zap.Logger) error {
	severity, err := syslog.ParseSeverity(c.String("severity"))
	if err != nil {
		return err
	}
	facility, err := syslog.ParseFacility(c.String("facility"))
	if err != nil {
		return err
	}

	id := identity.Discover()
	if hostname := c.String("hostname"); hostname != "" {
		id.Hostname = hostname
	}
	if tag := c.String("tag"); tag != "" {
		id.Process = tag
	}

	format, err := newFormatFunc(c, severity, facility, id)
	if err != nil {
		return err
	}

	logger.Debug("formatting",
		zap.String("format", c.String("format")),
		zap.Stringer("facility", facility),
		zap.Stringer("severity", severity))

	out := bufio.NewWriter(os.Stdout)

	if c.NArg() > 0 {
		if err := format(out, strings.Join(c.Args().Slice(), " ")); err != nil {
			return err
		}
		if err := out.WriteByte('\n'); err != nil {
			return errors.Wrap(err, "writing to stdout")
		}
		return out.Flush()
	}

	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		if err := format(out, line); err != nil {
			return err
		}
		if err := out.WriteByte('\n'); err != nil {
			return errors.Wrap(err, "writing to stdout")
		}
	}
	if err := scanner.Err(); err != nil {
		return errors.Wrap(err, "reading stdin")
	}
	return out.Flush()
}

// newFormatFunc binds the chosen formatter and its fixed fields into
// a single per-message closure.
func newFormatFunc(c *cli.Context, severity syslog.Severity, facility syslog.Facility, id identity.Identity) (func(w io.Writer, message string) error, error) {
	switch strings.ToLower(c.String("format")) {
	case "rfc3164":
		f := formats.NewFormatter3164(facility, id)
		f.UTC = c.Bool("utc")
		return func(w io.Writer, message string) error {
			return f.Format(w, severity, message)
		}, nil

	case "rfc5424":
		f := formats.NewFormatter5424(facility, id)
		f.StrictEscape = c.Bool("strict-sd")
		data, err := utils.ParseStructuredData(c.StringSlice("sd"))
		if err != nil {
			return nil, err
		}
		msgID := c.String("msgid")
		return func(w io.Writer, message string) error {
			return f.Format(w, severity, formats.NewMessage(msgID, data, message))
		}, nil

	default:
		return nil, errors.Errorf("unknown format %q", c.String("format"))
	}
}

func newLogger() *zap.Logger {
	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{"stderr"}
	logger, err := cfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}
