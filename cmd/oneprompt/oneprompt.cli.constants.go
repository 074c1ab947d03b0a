package main

// Command names
const (
	CmdNameRender   = "render"
	CmdNameValidate = "validate"
	CmdNameConvert  = "convert"
	CmdNameVersion  = "version"
	CmdNameHelp     = "help"
)

// Flag names - long form
const (
	FlagPrompt   = "prompt"
	FlagVars     = "vars"
	FlagVarsFile = "vars-file"
	FlagOutput   = "output"
	FlagQuiet    = "quiet"
	FlagFormat   = "format"
)

// Flag names - short form
const (
	FlagPromptShort   = "p"
	FlagVarsShort     = "v"
	FlagVarsFileShort = "f"
	FlagOutputShort   = "o"
	FlagQuietShort    = "q"
	FlagFormatShort   = "F"
)

// Flag default values
const (
	FlagDefaultOutput = "-" // stdout
	FlagDefaultFormat = "text"
)

// Output formats
const (
	OutputFormatText = "text"
	OutputFormatJSON = "json"
	OutputFormatYAML = "yaml"
	OutputFormatXML  = "xml"
)

// Exit codes
const (
	ExitCodeSuccess         = 0
	ExitCodeError           = 1
	ExitCodeUsageError      = 2
	ExitCodeValidationError = 3
	ExitCodeInputError      = 4
)

// Input source indicators
const (
	InputSourceStdin = "-"
)

// Error messages - ALL must be constants
const (
	ErrMsgUnknownCommand    = "unknown command"
	ErrMsgMissingPrompt     = "prompt document required"
	ErrMsgInvalidVars       = "invalid variable data"
	ErrMsgReadFileFailed    = "failed to read file"
	ErrMsgWriteOutputFailed = "failed to write output"
	ErrMsgRenderFailed      = "render failed"
	ErrMsgValidateFailed    = "validation failed"
	ErrMsgConvertFailed     = "conversion failed"
	ErrMsgInvalidFormat     = "invalid output format"
)

// Help text templates
const (
	HelpMainUsage = `oneprompt - Structured XML prompt templating CLI

Usage:
    oneprompt <command> [options]

Commands:
    render      Render a prompt document with variable values
    validate    Validate a prompt document without rendering
    convert     Parse a prompt document and re-emit it as XML, JSON or YAML
    version     Show version information
    help        Show help for a command

Use "oneprompt help <command>" for more information about a command.`

	HelpRenderUsage = `Render a prompt document with variable values

Usage:
    oneprompt render [options]

Options:
    -p, --prompt <file>     Prompt document file (use "-" for stdin)
    -v, --vars <json>       Variable values as a JSON object
    -f, --vars-file <file>  Variable values file (JSON or YAML)
    -o, --output <file>     Output file (default: stdout)
    -q, --quiet             Suppress non-error output

Examples:
    oneprompt render -p greeting.xml -v '{"name": "Alice"}'
    oneprompt render -p greeting.xml -f vars.yaml
    cat greeting.xml | oneprompt render -p - -v '{"name": "Bob"}'
    oneprompt render -p greeting.xml -f vars.json -o output.txt`

	HelpValidateUsage = `Validate a prompt document without rendering

Usage:
    oneprompt validate [options]

Options:
    -p, --prompt <file>     Prompt document file (use "-" for stdin)
    -F, --format <format>   Output format: text, json (default: text)

Examples:
    oneprompt validate -p greeting.xml
    cat greeting.xml | oneprompt validate -p -`

	HelpConvertUsage = `Parse a prompt document and re-emit it

Usage:
    oneprompt convert [options]

Options:
    -p, --prompt <file>     Prompt document file (use "-" for stdin)
    -F, --format <format>   Output format: xml, json, yaml (default: xml)
    -o, --output <file>     Output file (default: stdout)

Examples:
    oneprompt convert -p greeting.xml -F json
    oneprompt convert -p greeting.xml -F yaml -o greeting.yaml`

	HelpVersionUsage = `Show version information

Usage:
    oneprompt version [options]

Options:
    -F, --format <format>   Output format: text, json (default: text)`

	HelpHelpUsage = `Show help for a command

Usage:
    oneprompt help [command]

Commands:
    render      Show help for render command
    validate    Show help for validate command
    convert     Show help for convert command
    version     Show help for version command`
)

// Version output format templates
const (
	VersionTextTemplate = "oneprompt version %s\nCommit: %s\nBuilt: %s\nGo: %s"
	VersionUnknown      = "unknown"
)

// Validation output text
const (
	ValidationTextSuccess = "Document is valid"
)

// CLI metadata
const (
	CLIName        = "oneprompt"
	CLIDescription = "Structured XML prompt templating CLI"
)

// File permission constant
const (
	FilePermissions = 0644
)

// Format string constants
const (
	FmtErrorWithDetail = "%s: %s\n"
	FmtErrorWithCause  = "%s: %v\n"
	FmtNewline         = "\n"
)
