package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/core-tools/hsu-procdesc-go/pkg/errors"
	"github.com/core-tools/hsu-procdesc-go/pkg/logging"
	zaplogging "github.com/core-tools/hsu-procdesc-go/pkg/logging/zap"
	"github.com/core-tools/hsu-procdesc-go/pkg/processdescriptor"

	flags "github.com/jessevdk/go-flags"
)

type flagOptions struct {
	Config     string   `long:"config" short:"c" description:"Process descriptor file path (YAML or JSON)" required:"true"`
	Strict     bool     `long:"strict" description:"Reject keys the schema does not know"`
	CheckPaths bool     `long:"check-paths" description:"Verify that executables and interpreters exist"`
	RequireEnv []string `long:"require-env" description:"Environment variable every process must receive (repeatable)"`
	Output     string   `long:"output" short:"o" description:"What to print on success" choice:"summary" choice:"yaml" choice:"none" default:"summary"`
	LogLevel   string   `long:"log-level" description:"Log level" choice:"debug" choice:"info" choice:"warn" choice:"error" default:"info"`
}

func main() {
	var opts flagOptions
	var argv []string = os.Args[1:]
	var parser = flags.NewParser(&opts, flags.HelpFlag)
	var err error
	_, err = parser.ParseArgs(argv)
	if err != nil {
		fmt.Printf("Command line flags parsing failed: %v\n", err)
		os.Exit(1)
	}

	zapLogger, err := zaplogging.NewLogger(opts.LogLevel)
	if err != nil {
		fmt.Printf("Failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer zapLogger.Sync()

	logger := zapLogger.Named("procdesc-cli")

	if err := run(opts, os.Stdout, logger); err != nil {
		logger.Errorf("Failed to run: %v", err)
		zapLogger.Sync()
		os.Exit(1)
	}
}

func run(opts flagOptions, out io.Writer, logger logging.Logger) error {
	logger.Infof("Using CONFIGURATION FILE: %s", opts.Config)

	loadOptions := []processdescriptor.LoadOption{processdescriptor.WithLogger(logger)}
	if opts.Strict {
		loadOptions = append(loadOptions, processdescriptor.WithStrictFields())
	}

	list, err := processdescriptor.LoadFile(opts.Config, loadOptions...)
	if err != nil {
		for _, issue := range errors.Issues(err) {
			logger.Errorf("Issue: %v", issue)
		}
		return err
	}

	logger.Infof("Configuration loaded successfully, apps: %d", list.Len())

	if opts.CheckPaths {
		if err := processdescriptor.CheckPaths(list, nil); err != nil {
			for _, issue := range errors.Issues(err) {
				logger.Errorf("Issue: %v", issue)
			}
			return err
		}
		logger.Infof("All executable and interpreter paths exist")
	}

	if len(opts.RequireEnv) > 0 {
		if err := processdescriptor.CheckEnvironment(list, opts.RequireEnv, nil); err != nil {
			for _, issue := range errors.Issues(err) {
				logger.Errorf("Issue: %v", issue)
			}
			return err
		}
		logger.Infof("All required environment variables are set")
	}

	switch opts.Output {
	case "yaml":
		data, err := processdescriptor.Marshal(list)
		if err != nil {
			return err
		}
		if _, err := out.Write(data); err != nil {
			return errors.NewIOError("failed to write output", err)
		}

	case "none":

	default:
		encoder := json.NewEncoder(out)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(processdescriptor.GetSummary(list)); err != nil {
			return errors.NewIOError("failed to write output", err)
		}
	}

	return nil
}
