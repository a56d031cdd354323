// Package cli implements the docid command, which composes, decomposes and inspects
// document identifiers.
package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	rawslog "log/slog"

	"github.com/kvdoc/document/internal/codec"
	"github.com/kvdoc/document/pkg/constants"
	"github.com/kvdoc/document/pkg/logger"
	"github.com/kvdoc/document/pkg/logger/slog"
	"github.com/kvdoc/document/pkg/models"
	"github.com/rs/zerolog"
)

const (
	ExitOK    = 0
	ExitError = 1
	ExitUsage = 2
)

const usage = `Usage: docid [flags] <command> [args]

Commands:
  split <compositeId>               print the partition key and document key
  join <partitionKey> <documentKey> print the composite identifier
  new [partitionKey]                mint a document key and print the composite identifier
  inspect                           read a document from stdin, validate it and print its composite identifier

Flags:
`

var errUsage = errors.New("usage")

type app struct {
	config *Config
	stdin  io.Reader
	stdout io.Writer
	log    logger.Logger
}

// Run executes docid with args (without the program name) and returns the exit code.
func Run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	config := NewConfig()

	flags := flag.NewFlagSet("docid", flag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.StringVar(&config.Format, "format", config.Format, "Document format for inspect: json or cbor")
	flags.StringVar(&config.LogFormat, "log-format", config.LogFormat, "Log format: json or text")
	flags.StringVar(&config.LogFile, "log-file", "", "Log file path (default stderr)")
	flags.BoolVar(&config.Verbose, "verbose", false, "Enable verbose logging")
	flags.Usage = func() {
		fmt.Fprint(stderr, usage)
		flags.PrintDefaults()
	}

	if err := flags.Parse(args); err != nil {
		return ExitUsage
	}

	if err := config.Validate(); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		flags.Usage()
		return ExitUsage
	}

	log, closeLog, err := newLogger(config, stderr)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return ExitError
	}
	defer closeLog()

	a := &app{config: config, stdin: stdin, stdout: stdout, log: log}
	err = a.run(flags.Args())
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, errUsage):
		fmt.Fprintf(stderr, "Error: %v\n", err)
		flags.Usage()
		return ExitUsage
	default:
		a.log.Error("command failed", "error", err.Error())
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return ExitError
	}
}

func newLogger(config *Config, stderr io.Writer) (logger.Logger, func(), error) {
	if config.LogFormat == LogFormatText {
		level := rawslog.LevelInfo
		if config.Verbose {
			level = rawslog.LevelDebug
		}
		return slog.New(rawslog.NewTextHandler(stderr, &rawslog.HandlerOptions{Level: level})), func() {}, nil
	}

	level := zerolog.InfoLevel
	if config.Verbose {
		level = zerolog.DebugLevel
	}
	logData, err := logger.New().FromBuffer(stderr).FromPath(config.LogFile).WithLevel(level).Make()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}
	return logData.Handler(), func() { _ = logData.Close() }, nil
}

func (a *app) run(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: missing command", errUsage)
	}

	command, args := args[0], args[1:]
	a.log = a.log.With("command", command)
	a.log.Debug("running command", "args", args)

	switch command {
	case "split":
		return a.split(args)
	case "join":
		return a.join(args)
	case "new":
		return a.newID(args)
	case "inspect":
		return a.inspect(args)
	default:
		return fmt.Errorf("%w: unknown command %q", errUsage, command)
	}
}

func (a *app) split(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("%w: split takes exactly one composite identifier", errUsage)
	}

	id := models.ParseIdentity(args[0])
	if id.IsZero() {
		return fmt.Errorf("blank composite identifier %q", args[0])
	}

	a.log.Debug("split composite identifier", "identity", &id)
	return models.JSONMarshaler{}.NewEncoder(a.stdout).Encode(id)
}

func (a *app) join(args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("%w: join takes a partition key and a document key", errUsage)
	}

	id := models.NewIdentity(args[0], args[1])
	a.log.Debug("joined composite identifier", "identity", &id)
	_, err := fmt.Fprintln(a.stdout, id.CompositeID())
	return err
}

func (a *app) newID(args []string) error {
	var id models.Identity
	switch len(args) {
	case 0:
		id = models.NewSelfPartitionedIdentity()
	case 1:
		id = models.NewIdentity(args[0], models.NewDocumentKey())
	default:
		return fmt.Errorf("%w: new takes at most one partition key", errUsage)
	}

	a.log.Info("minted document key", "identity", &id)
	_, err := fmt.Fprintln(a.stdout, id.CompositeID())
	return err
}

func (a *app) inspect(args []string) error {
	if len(args) != 0 {
		return fmt.Errorf("%w: inspect reads the document from stdin and takes no arguments", errUsage)
	}

	unmarshaler, err := unmarshalerFor(codec.Format(a.config.Format))
	if err != nil {
		return err
	}

	var doc models.Document
	if err := unmarshaler.NewDecoder(a.stdin).Decode(&doc); err != nil {
		return fmt.Errorf("failed to decode %s document: %w", a.config.Format, err)
	}

	if err := doc.Validate(); err != nil {
		return err
	}

	a.log.Debug("inspected document", "identity", &doc.Identity, "createdAt", doc.CreatedAt)
	_, err = fmt.Fprintln(a.stdout, doc.CompositeID())
	return err
}

func unmarshalerFor(format codec.Format) (codec.Unmarshaler, error) {
	switch format {
	case codec.FormatJSON:
		return models.JSONUnmarshaler{}, nil
	case codec.FormatCBOR:
		return models.CborUnmarshaler{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", constants.ErrUnknownFormat, format)
	}
}
