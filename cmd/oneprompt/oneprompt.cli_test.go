package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test data constants
const (
	testPromptContent = `<prompt>
  <metadata><title>Greeting</title></metadata>
  <variables>
    <var name="name" required="true"/>
    <var name="greeting" required="false">Hello</var>
  </variables>
  <template>{{greeting}} {{name}}!</template>
</prompt>`
	testVarsJSON       = `{"name": "Alice"}`
	testVarsYAML       = "name: Alice\n"
	testExpectedOutput = "Hello Alice!"
	testInvalidContent = "<prompt><unclosed"
)

// setupTestData creates test files in a temp directory
func setupTestData(t *testing.T) string {
	t.Helper()
	tmpDir := t.TempDir()

	promptPath := filepath.Join(tmpDir, "greeting.xml")
	require.NoError(t, os.WriteFile(promptPath, []byte(testPromptContent), FilePermissions))

	varsPath := filepath.Join(tmpDir, "vars.json")
	require.NoError(t, os.WriteFile(varsPath, []byte(testVarsJSON), FilePermissions))

	yamlPath := filepath.Join(tmpDir, "vars.yaml")
	require.NoError(t, os.WriteFile(yamlPath, []byte(testVarsYAML), FilePermissions))

	invalidPath := filepath.Join(tmpDir, "invalid.xml")
	require.NoError(t, os.WriteFile(invalidPath, []byte(testInvalidContent), FilePermissions))

	return tmpDir
}

// ==================== run() dispatch tests ====================

func TestRun_NoArgs_ShowsHelp(t *testing.T) {
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	stdin := strings.NewReader("")

	exitCode := run(nil, stdin, stdout, stderr)

	assert.Equal(t, ExitCodeSuccess, exitCode)
	assert.Contains(t, stdout.String(), CLIName)
	assert.Contains(t, stdout.String(), CmdNameRender)
}

func TestRun_UnknownCommand(t *testing.T) {
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	exitCode := run([]string{"bogus"}, strings.NewReader(""), stdout, stderr)

	assert.Equal(t, ExitCodeUsageError, exitCode)
	assert.Contains(t, stdout.String(), ErrMsgUnknownCommand)
}

func TestRun_HelpSubcommands(t *testing.T) {
	for _, cmd := range []string{CmdNameRender, CmdNameValidate, CmdNameConvert, CmdNameVersion} {
		t.Run(cmd, func(t *testing.T) {
			stdout := &bytes.Buffer{}

			exitCode := run([]string{CmdNameHelp, cmd}, strings.NewReader(""), stdout, &bytes.Buffer{})

			assert.Equal(t, ExitCodeSuccess, exitCode)
			assert.Contains(t, stdout.String(), cmd)
		})
	}
}

// ==================== render tests ====================

func TestRender_WithJSONVars(t *testing.T) {
	tmpDir := setupTestData(t)
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	exitCode := run([]string{
		CmdNameRender,
		"-p", filepath.Join(tmpDir, "greeting.xml"),
		"-v", testVarsJSON,
	}, strings.NewReader(""), stdout, stderr)

	assert.Equal(t, ExitCodeSuccess, exitCode, stderr.String())
	assert.Equal(t, testExpectedOutput, stdout.String())
}

func TestRender_WithVarsFile(t *testing.T) {
	tmpDir := setupTestData(t)

	t.Run("json file", func(t *testing.T) {
		stdout := &bytes.Buffer{}
		exitCode := run([]string{
			CmdNameRender,
			"-p", filepath.Join(tmpDir, "greeting.xml"),
			"-f", filepath.Join(tmpDir, "vars.json"),
		}, strings.NewReader(""), stdout, &bytes.Buffer{})

		assert.Equal(t, ExitCodeSuccess, exitCode)
		assert.Equal(t, testExpectedOutput, stdout.String())
	})

	t.Run("yaml file", func(t *testing.T) {
		stdout := &bytes.Buffer{}
		exitCode := run([]string{
			CmdNameRender,
			"-p", filepath.Join(tmpDir, "greeting.xml"),
			"-f", filepath.Join(tmpDir, "vars.yaml"),
		}, strings.NewReader(""), stdout, &bytes.Buffer{})

		assert.Equal(t, ExitCodeSuccess, exitCode)
		assert.Equal(t, testExpectedOutput, stdout.String())
	})
}

func TestRender_FromStdin(t *testing.T) {
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	exitCode := run([]string{
		CmdNameRender, "-p", "-", "-v", testVarsJSON,
	}, strings.NewReader(testPromptContent), stdout, stderr)

	assert.Equal(t, ExitCodeSuccess, exitCode, stderr.String())
	assert.Equal(t, testExpectedOutput, stdout.String())
}

func TestRender_ToOutputFile(t *testing.T) {
	tmpDir := setupTestData(t)
	outPath := filepath.Join(tmpDir, "out.txt")

	exitCode := run([]string{
		CmdNameRender,
		"-p", filepath.Join(tmpDir, "greeting.xml"),
		"-v", testVarsJSON,
		"-o", outPath,
	}, strings.NewReader(""), &bytes.Buffer{}, &bytes.Buffer{})

	assert.Equal(t, ExitCodeSuccess, exitCode)

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Equal(t, testExpectedOutput, string(data))
}

func TestRender_MissingPromptFlag(t *testing.T) {
	stderr := &bytes.Buffer{}

	exitCode := run([]string{CmdNameRender}, strings.NewReader(""), &bytes.Buffer{}, stderr)

	assert.Equal(t, ExitCodeUsageError, exitCode)
	assert.Contains(t, stderr.String(), ErrMsgMissingPrompt)
}

func TestRender_MissingRequiredVariable(t *testing.T) {
	tmpDir := setupTestData(t)
	stderr := &bytes.Buffer{}

	exitCode := run([]string{
		CmdNameRender, "-p", filepath.Join(tmpDir, "greeting.xml"),
	}, strings.NewReader(""), &bytes.Buffer{}, stderr)

	assert.Equal(t, ExitCodeError, exitCode)
	assert.Contains(t, stderr.String(), ErrMsgRenderFailed)
	assert.Contains(t, stderr.String(), "name")
}

func TestRender_InvalidVarsJSON(t *testing.T) {
	tmpDir := setupTestData(t)
	stderr := &bytes.Buffer{}

	exitCode := run([]string{
		CmdNameRender,
		"-p", filepath.Join(tmpDir, "greeting.xml"),
		"-v", "{not json",
	}, strings.NewReader(""), &bytes.Buffer{}, stderr)

	assert.Equal(t, ExitCodeInputError, exitCode)
	assert.Contains(t, stderr.String(), ErrMsgInvalidVars)
}

func TestRender_MissingFile(t *testing.T) {
	stderr := &bytes.Buffer{}

	exitCode := run([]string{
		CmdNameRender, "-p", "/nonexistent/prompt.xml",
	}, strings.NewReader(""), &bytes.Buffer{}, stderr)

	assert.Equal(t, ExitCodeInputError, exitCode)
	assert.Contains(t, stderr.String(), ErrMsgReadFileFailed)
}

// ==================== validate tests ====================

func TestValidate_ValidDocument(t *testing.T) {
	tmpDir := setupTestData(t)
	stdout := &bytes.Buffer{}

	exitCode := run([]string{
		CmdNameValidate, "-p", filepath.Join(tmpDir, "greeting.xml"),
	}, strings.NewReader(""), stdout, &bytes.Buffer{})

	assert.Equal(t, ExitCodeSuccess, exitCode)
	assert.Contains(t, stdout.String(), ValidationTextSuccess)
}

func TestValidate_InvalidDocument(t *testing.T) {
	tmpDir := setupTestData(t)
	stderr := &bytes.Buffer{}

	exitCode := run([]string{
		CmdNameValidate, "-p", filepath.Join(tmpDir, "invalid.xml"),
	}, strings.NewReader(""), &bytes.Buffer{}, stderr)

	assert.Equal(t, ExitCodeValidationError, exitCode)
	assert.Contains(t, stderr.String(), ErrMsgValidateFailed)
}

func TestValidate_JSONFormat(t *testing.T) {
	tmpDir := setupTestData(t)

	t.Run("valid", func(t *testing.T) {
		stdout := &bytes.Buffer{}
		exitCode := run([]string{
			CmdNameValidate,
			"-p", filepath.Join(tmpDir, "greeting.xml"),
			"-F", OutputFormatJSON,
		}, strings.NewReader(""), stdout, &bytes.Buffer{})

		assert.Equal(t, ExitCodeSuccess, exitCode)

		var out validationOutput
		require.NoError(t, json.Unmarshal(stdout.Bytes(), &out))
		assert.True(t, out.Valid)
		assert.Empty(t, out.Error)
	})

	t.Run("invalid", func(t *testing.T) {
		stdout := &bytes.Buffer{}
		exitCode := run([]string{
			CmdNameValidate,
			"-p", filepath.Join(tmpDir, "invalid.xml"),
			"-F", OutputFormatJSON,
		}, strings.NewReader(""), stdout, &bytes.Buffer{})

		assert.Equal(t, ExitCodeValidationError, exitCode)

		var out validationOutput
		require.NoError(t, json.Unmarshal(stdout.Bytes(), &out))
		assert.False(t, out.Valid)
		assert.NotEmpty(t, out.Error)
	})
}

func TestValidate_BadFormat(t *testing.T) {
	stderr := &bytes.Buffer{}

	exitCode := run([]string{
		CmdNameValidate, "-p", "x.xml", "-F", "bogus",
	}, strings.NewReader(""), &bytes.Buffer{}, stderr)

	assert.Equal(t, ExitCodeUsageError, exitCode)
}

// ==================== convert tests ====================

func TestConvert_Formats(t *testing.T) {
	tmpDir := setupTestData(t)

	t.Run("xml default", func(t *testing.T) {
		stdout := &bytes.Buffer{}
		exitCode := run([]string{
			CmdNameConvert, "-p", filepath.Join(tmpDir, "greeting.xml"),
		}, strings.NewReader(""), stdout, &bytes.Buffer{})

		assert.Equal(t, ExitCodeSuccess, exitCode)
		assert.Contains(t, stdout.String(), "<?xml")
		assert.Contains(t, stdout.String(), "<prompt>")
	})

	t.Run("json", func(t *testing.T) {
		stdout := &bytes.Buffer{}
		exitCode := run([]string{
			CmdNameConvert,
			"-p", filepath.Join(tmpDir, "greeting.xml"),
			"-F", OutputFormatJSON,
		}, strings.NewReader(""), stdout, &bytes.Buffer{})

		assert.Equal(t, ExitCodeSuccess, exitCode)
		assert.Contains(t, stdout.String(), `"template"`)
	})

	t.Run("yaml", func(t *testing.T) {
		stdout := &bytes.Buffer{}
		exitCode := run([]string{
			CmdNameConvert,
			"-p", filepath.Join(tmpDir, "greeting.xml"),
			"-F", OutputFormatYAML,
		}, strings.NewReader(""), stdout, &bytes.Buffer{})

		assert.Equal(t, ExitCodeSuccess, exitCode)
		assert.Contains(t, stdout.String(), "template:")
	})
}

func TestConvert_InvalidDocument(t *testing.T) {
	tmpDir := setupTestData(t)
	stderr := &bytes.Buffer{}

	exitCode := run([]string{
		CmdNameConvert, "-p", filepath.Join(tmpDir, "invalid.xml"),
	}, strings.NewReader(""), &bytes.Buffer{}, stderr)

	assert.Equal(t, ExitCodeError, exitCode)
	assert.Contains(t, stderr.String(), ErrMsgConvertFailed)
}

// ==================== version tests ====================

func TestVersion(t *testing.T) {
	t.Run("text", func(t *testing.T) {
		stdout := &bytes.Buffer{}
		exitCode := run([]string{CmdNameVersion}, strings.NewReader(""), stdout, &bytes.Buffer{})

		assert.Equal(t, ExitCodeSuccess, exitCode)
		assert.Contains(t, stdout.String(), CLIName)
	})

	t.Run("json", func(t *testing.T) {
		stdout := &bytes.Buffer{}
		exitCode := run([]string{
			CmdNameVersion, "-F", OutputFormatJSON,
		}, strings.NewReader(""), stdout, &bytes.Buffer{})

		assert.Equal(t, ExitCodeSuccess, exitCode)

		var out versionOutput
		require.NoError(t, json.Unmarshal(stdout.Bytes(), &out))
		assert.NotEmpty(t, out.GoVersion)
	})
}
