package main

import (
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/VaibhavAcharya/oneprompt"
)

// convertConfig holds parsed convert command configuration
type convertConfig struct {
	promptPath string
	format     string
	outputPath string
}

func runConvert(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cfg, err := parseConvertFlags(args)
	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgMissingPrompt, err)
		return ExitCodeUsageError
	}

	// Read prompt document
	source, err := readInput(cfg.promptPath, stdin)
	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgReadFileFailed, err)
		return ExitCodeInputError
	}

	engine := oneprompt.MustNew()
	doc, err := engine.Parse(string(source))
	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgConvertFailed, err)
		return ExitCodeError
	}

	var result string
	switch cfg.format {
	case OutputFormatXML:
		result, err = engine.ToXML(doc)
	case OutputFormatJSON:
		result, err = doc.JSONPretty()
	case OutputFormatYAML:
		result, err = doc.YAML()
	}
	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgConvertFailed, err)
		return ExitCodeError
	}

	if err := writeOutput(cfg.outputPath, []byte(result), stdout); err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgWriteOutputFailed, err)
		return ExitCodeError
	}

	return ExitCodeSuccess
}

func parseConvertFlags(args []string) (*convertConfig, error) {
	fs := flag.NewFlagSet(CmdNameConvert, flag.ContinueOnError)
	fs.SetOutput(io.Discard) // Suppress default error messages

	cfg := &convertConfig{}

	fs.StringVar(&cfg.promptPath, FlagPrompt, "", "")
	fs.StringVar(&cfg.promptPath, FlagPromptShort, "", "")
	fs.StringVar(&cfg.format, FlagFormat, OutputFormatXML, "")
	fs.StringVar(&cfg.format, FlagFormatShort, OutputFormatXML, "")
	fs.StringVar(&cfg.outputPath, FlagOutput, FlagDefaultOutput, "")
	fs.StringVar(&cfg.outputPath, FlagOutputShort, FlagDefaultOutput, "")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if cfg.promptPath == "" {
		return nil, errors.New(ErrMsgMissingPrompt)
	}

	switch cfg.format {
	case OutputFormatXML, OutputFormatJSON, OutputFormatYAML:
	default:
		return nil, errors.New(ErrMsgInvalidFormat)
	}

	return cfg, nil
}
