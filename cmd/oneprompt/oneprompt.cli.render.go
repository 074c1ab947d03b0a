package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/VaibhavAcharya/oneprompt"
	"gopkg.in/yaml.v3"
)

// renderConfig holds parsed render command configuration
type renderConfig struct {
	promptPath   string
	varsJSON     string
	varsFilePath string
	outputPath   string
	quiet        bool
}

func runRender(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cfg, err := parseRenderFlags(args)
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

	// Parse variable values
	input, err := loadVars(cfg.varsJSON, cfg.varsFilePath)
	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgInvalidVars, err)
		return ExitCodeInputError
	}

	// Create engine and render
	engine := oneprompt.MustNew()
	result, err := engine.RenderSource(string(source), input)
	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgRenderFailed, err)
		return ExitCodeError
	}

	// Write output
	if err := writeOutput(cfg.outputPath, []byte(result), stdout); err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgWriteOutputFailed, err)
		return ExitCodeError
	}

	return ExitCodeSuccess
}

func parseRenderFlags(args []string) (*renderConfig, error) {
	fs := flag.NewFlagSet(CmdNameRender, flag.ContinueOnError)
	fs.SetOutput(io.Discard) // Suppress default error messages

	cfg := &renderConfig{}

	fs.StringVar(&cfg.promptPath, FlagPrompt, "", "")
	fs.StringVar(&cfg.promptPath, FlagPromptShort, "", "")
	fs.StringVar(&cfg.varsJSON, FlagVars, "", "")
	fs.StringVar(&cfg.varsJSON, FlagVarsShort, "", "")
	fs.StringVar(&cfg.varsFilePath, FlagVarsFile, "", "")
	fs.StringVar(&cfg.varsFilePath, FlagVarsFileShort, "", "")
	fs.StringVar(&cfg.outputPath, FlagOutput, FlagDefaultOutput, "")
	fs.StringVar(&cfg.outputPath, FlagOutputShort, FlagDefaultOutput, "")
	fs.BoolVar(&cfg.quiet, FlagQuiet, false, "")
	fs.BoolVar(&cfg.quiet, FlagQuietShort, false, "")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	// Validation
	if cfg.promptPath == "" {
		return nil, errors.New(ErrMsgMissingPrompt)
	}

	return cfg, nil
}

// loadVars reads variable values from a JSON string or a JSON/YAML file.
// File format is chosen by extension; anything not .yaml/.yml is read as JSON.
func loadVars(jsonStr, filePath string) (oneprompt.InputValues, error) {
	var data []byte
	isYAML := false

	if filePath != "" {
		fileData, err := os.ReadFile(filePath)
		if err != nil {
			return nil, err
		}
		data = fileData
		lower := strings.ToLower(filePath)
		isYAML = strings.HasSuffix(lower, ".yaml") || strings.HasSuffix(lower, ".yml")
	} else if jsonStr != "" {
		data = []byte(jsonStr)
	} else {
		// No values provided, return empty map
		return make(oneprompt.InputValues), nil
	}

	result := make(oneprompt.InputValues)
	if isYAML {
		if err := yaml.Unmarshal(data, &result); err != nil {
			return nil, err
		}
		return result, nil
	}
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, err
	}
	return result, nil
}
