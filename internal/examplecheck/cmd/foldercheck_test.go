package cmd

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/timescale/examplecheck/internal/examplecheck/config"
	"github.com/timescale/examplecheck/internal/examplecheck/folders"
)

type decodedReport struct {
	Prefix    string `json:"prefix" yaml:"prefix"`
	Delimiter string `json:"delimiter" yaml:"delimiter"`
	Entries   []struct {
		Entry    string   `json:"entry" yaml:"entry"`
		Segments []string `json:"segments" yaml:"segments"`
	} `json:"entries" yaml:"entries"`
	Folders []string `json:"folders" yaml:"folders"`
}

func TestFolderCheck_TextOutput(t *testing.T) {
	setupTestCommand(t)

	output, err := executeFolderCheckCommand("--fileNameList", "examples/images   examples/videos   docs/readme")
	require.NoError(t, err)

	expected := "[examples images]\n" +
		"[examples videos]\n" +
		"[docs readme]\n" +
		"folder_need_check: [images videos]\n"
	assert.Equal(t, expected, output)
}

func TestFolderCheck_Deduplicates(t *testing.T) {
	setupTestCommand(t)

	output, err := executeFolderCheckCommand("--fileNameList", "examples/images   examples/images   other/x")
	require.NoError(t, err)
	assert.Contains(t, output, "folder_need_check: [images]\n")
}

func TestFolderCheck_SingleEntryWithoutDelimiter(t *testing.T) {
	setupTestCommand(t)

	output, err := executeFolderCheckCommand("--fileNameList", "examples/images")
	require.NoError(t, err)
	assert.Equal(t, "[examples images]\nfolder_need_check: [images]\n", output)
}

func TestFolderCheck_DefaultIsEmpty(t *testing.T) {
	setupTestCommand(t)

	output, err := executeFolderCheckCommand()
	require.NoError(t, err)
	assert.Equal(t, "[]\nfolder_need_check: []\n", output)
}

func TestFolderCheck_MissingSegment(t *testing.T) {
	setupTestCommand(t)

	output, err := executeFolderCheckCommand("--fileNameList", "examples/images   examples   examples/videos")
	require.Error(t, err)
	assert.ErrorIs(t, err, folders.ErrMissingSegment)
	assert.Equal(t, ExitMalformedEntry, exitCode(err))

	// Segments seen before the failure are still printed; nothing after it.
	assert.Equal(t, "[examples images]\n[examples]\n", output)
}

func TestFolderCheck_JSONOutput(t *testing.T) {
	setupTestCommand(t)

	output, err := executeFolderCheckCommand("-o", "json", "--fileNameList", "examples/images   examples/images   other/x")
	require.NoError(t, err)

	var report decodedReport
	require.NoError(t, json.Unmarshal([]byte(output), &report))
	assert.Equal(t, "examples", report.Prefix)
	assert.Equal(t, "   ", report.Delimiter)
	assert.Equal(t, []string{"images"}, report.Folders)
	require.Len(t, report.Entries, 3)
	assert.Equal(t, "other/x", report.Entries[2].Entry)
	assert.Equal(t, []string{"other", "x"}, report.Entries[2].Segments)
}

func TestFolderCheck_YAMLOutput(t *testing.T) {
	setupTestCommand(t)

	output, err := executeFolderCheckCommand("--output", "yaml", "--fileNameList", "examples/a   examples/b")
	require.NoError(t, err)

	var report decodedReport
	require.NoError(t, yaml.Unmarshal([]byte(output), &report))
	assert.Equal(t, []string{"a", "b"}, report.Folders)
	assert.Len(t, report.Entries, 2)
}

func TestFolderCheck_TableOutput(t *testing.T) {
	setupTestCommand(t)

	output, err := executeFolderCheckCommand("-o", "table", "--fileNameList", "examples/images   examples/videos")
	require.NoError(t, err)
	assert.Contains(t, output, "FOLDER")
	assert.Contains(t, output, "images")
	assert.Contains(t, output, "videos")
	assert.NotContains(t, output, "[examples images]")
}

func TestFolderCheck_InvalidOutputFlag(t *testing.T) {
	setupTestCommand(t)

	_, err := executeFolderCheckCommand("-o", "xml", "--fileNameList", "examples/a")
	require.Error(t, err)
	assert.Equal(t, ExitInvalidParameters, exitCode(err))
	assert.Contains(t, err.Error(), "invalid output format: xml")
}

func TestFolderCheck_OutputFlagIsCaseInsensitive(t *testing.T) {
	setupTestCommand(t)

	output, err := executeFolderCheckCommand("-o", "JSON", "--fileNameList", "examples/a")
	require.NoError(t, err)

	var report decodedReport
	require.NoError(t, json.Unmarshal([]byte(output), &report))
	assert.Equal(t, []string{"a"}, report.Folders)
}

func TestOutputFlag(t *testing.T) {
	var flag outputFlag
	assert.Equal(t, "", flag.String())
	assert.Equal(t, "format", flag.Type())

	require.NoError(t, flag.Set("Table"))
	assert.Equal(t, "table", flag.String())

	assert.Error(t, flag.Set("csv"))
	assert.Equal(t, "table", flag.String())
}

func TestFolderCheck_EmptyDelimiter(t *testing.T) {
	setupTestCommand(t)

	_, err := executeFolderCheckCommand("--delimiter", "", "--fileNameList", "examples/a")
	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrEmptyDelimiter)
	assert.Equal(t, ExitInvalidParameters, exitCode(err))
}

func TestFolderCheck_CustomPrefixAndDelimiter(t *testing.T) {
	setupTestCommand(t)

	output, err := executeFolderCheckCommand("--prefix", "docs", "--delimiter", ",", "--fileNameList", "docs/guide/a.md,examples/x,docs/api")
	require.NoError(t, err)
	assert.Contains(t, output, "folder_need_check: [guide api]\n")
}

func TestFolderCheck_UnexpectedArgument(t *testing.T) {
	setupTestCommand(t)

	_, err := executeFolderCheckCommand("examples/images")
	assert.Error(t, err)
}

func TestFolderCheck_Precedence(t *testing.T) {
	tmpDir := setupTestCommand(t)
	writeTestConfig(t, tmpDir, "prefix: docs\nfile_name_list: \"docs/guide   examples/a\"\n")

	// Config file
	output, err := executeFolderCheckCommand()
	require.NoError(t, err)
	assert.Contains(t, output, "folder_need_check: [guide]\n")

	// Environment beats the config file
	config.ResetGlobalConfig()
	t.Setenv("EXAMPLECHECK_PREFIX", "examples")
	output, err = executeFolderCheckCommand()
	require.NoError(t, err)
	assert.Contains(t, output, "folder_need_check: [a]\n")

	// Flags beat the environment
	config.ResetGlobalConfig()
	output, err = executeFolderCheckCommand("--prefix", "docs")
	require.NoError(t, err)
	assert.Contains(t, output, "folder_need_check: [guide]\n")
}

func TestConfigShow(t *testing.T) {
	tmpDir := setupTestCommand(t)
	writeTestConfig(t, tmpDir, "prefix: samples\n")

	output, err := executeFolderCheckCommand("config", "show", "-o", "json")
	require.NoError(t, err)

	var cfg config.Config
	require.NoError(t, json.Unmarshal([]byte(output), &cfg))
	assert.Equal(t, "samples", cfg.Prefix)
	assert.Equal(t, "   ", cfg.Delimiter)
	assert.Equal(t, config.OutputJSON, cfg.Output)
	assert.Equal(t, tmpDir, cfg.ConfigDir)

	config.ResetGlobalConfig()
	output, err = executeFolderCheckCommand("config", "show")
	require.NoError(t, err)
	assert.Contains(t, output, "PROPERTY")
	assert.Contains(t, output, "samples")
	assert.Contains(t, output, `"   "`)
}
