package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/VaibhavAcharya/oneprompt"
)

// validateConfig holds parsed validate command configuration
type validateConfig struct {
	promptPath string
	format     string
}

// validationOutput represents JSON output for validation
type validationOutput struct {
	Valid bool   `json:"valid"`
	Error string `json:"error,omitempty"`
}

func runValidate(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cfg, err := parseValidateFlags(args)
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

	// Parse implies validate; any failure is a validation result
	engine := oneprompt.MustNew()
	_, parseErr := engine.Parse(string(source))

	if cfg.format == OutputFormatJSON {
		return outputValidationJSON(parseErr, stdout)
	}
	return outputValidationText(parseErr, stdout, stderr)
}

func parseValidateFlags(args []string) (*validateConfig, error) {
	fs := flag.NewFlagSet(CmdNameValidate, flag.ContinueOnError)
	fs.SetOutput(io.Discard) // Suppress default error messages

	cfg := &validateConfig{}

	fs.StringVar(&cfg.promptPath, FlagPrompt, "", "")
	fs.StringVar(&cfg.promptPath, FlagPromptShort, "", "")
	fs.StringVar(&cfg.format, FlagFormat, FlagDefaultFormat, "")
	fs.StringVar(&cfg.format, FlagFormatShort, FlagDefaultFormat, "")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if cfg.promptPath == "" {
		return nil, errors.New(ErrMsgMissingPrompt)
	}

	if cfg.format != OutputFormatText && cfg.format != OutputFormatJSON {
		return nil, errors.New(ErrMsgInvalidFormat)
	}

	return cfg, nil
}

func outputValidationText(parseErr error, stdout, stderr io.Writer) int {
	if parseErr == nil {
		fmt.Fprintln(stdout, ValidationTextSuccess)
		return ExitCodeSuccess
	}

	fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgValidateFailed, parseErr)
	return ExitCodeValidationError
}

func outputValidationJSON(parseErr error, stdout io.Writer) int {
	output := validationOutput{Valid: parseErr == nil}
	if parseErr != nil {
		output.Error = parseErr.Error()
	}

	jsonBytes, _ := json.MarshalIndent(output, "", "  ")
	fmt.Fprintln(stdout, string(jsonBytes))

	if !output.Valid {
		return ExitCodeValidationError
	}
	return ExitCodeSuccess
}
