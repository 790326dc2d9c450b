package cmd

import (
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/timescale/examplecheck/internal/examplecheck/config"
	"github.com/timescale/examplecheck/internal/examplecheck/folders"
	"github.com/timescale/examplecheck/internal/examplecheck/logging"
	"github.com/timescale/examplecheck/internal/examplecheck/util"
)

type entryReport struct {
	Entry    string   `json:"entry" yaml:"entry"`
	Segments []string `json:"segments" yaml:"segments"`
}

type folderReport struct {
	Prefix    string              `json:"prefix" yaml:"prefix"`
	Delimiter string              `json:"delimiter" yaml:"delimiter"`
	Entries   []entryReport       `json:"entries" yaml:"entries"`
	Folders   *folders.FolderList `json:"folders" yaml:"folders"`
}

func buildFolderCheckRootCmd() *cobra.Command {
	return newRootCmd(folderCheckApp, func(cmd *cobra.Command) {
		var output outputFlag

		cmd.Short = "List the folders under a prefix that appear in a path list"
		cmd.Long = `Split a list of slash-separated paths and print the distinct second-level
folder names of every path whose first segment equals the prefix, in the
order they first appear.

The path list is a single string; entries are separated by the delimiter
(three spaces unless configured otherwise).`
		cmd.Example = `  foldercheck --fileNameList "examples/images/a.png   examples/videos/b.mp4   docs/readme.md"
  foldercheck --fileNameList "$CHANGED_FILES" -o json`
		cmd.Args = cobra.NoArgs
		cmd.RunE = func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true

			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			if err := cfg.Validate(); err != nil {
				return exitWithCode(ExitInvalidParameters, err)
			}

			return runFolderCheck(cmd.OutOrStdout(), cfg)
		}

		flags := cmd.Flags()
		flags.String("fileNameList", "", "path list, entries separated by the delimiter")
		flags.String("prefix", folders.DefaultPrefix, "first path segment to match")
		flags.String("delimiter", folders.DefaultDelimiter, "separator between entries in the path list")

		viper.BindPFlag("file_name_list", flags.Lookup("fileNameList"))
		viper.BindPFlag("prefix", flags.Lookup("prefix"))
		viper.BindPFlag("delimiter", flags.Lookup("delimiter"))

		cmd.PersistentFlags().VarP(&output, "output", "o", "output format (text, json, yaml, table)")
		viper.BindPFlag("output", cmd.PersistentFlags().Lookup("output"))

		cmd.AddCommand(buildConfigCmd())
	})
}

func runFolderCheck(out io.Writer, cfg *config.Config) error {
	report := folderReport{
		Prefix:    cfg.Prefix,
		Delimiter: cfg.Delimiter,
		Entries:   []entryReport{},
	}

	filter := folders.New(cfg.Prefix, cfg.Delimiter)
	filter.Observer = func(index int, entry string, segments []string) {
		report.Entries = append(report.Entries, entryReport{Entry: entry, Segments: segments})
		if cfg.Output == config.OutputText {
			fmt.Fprintln(out, segments)
		}
	}

	list, err := filter.Run(cfg.FileNameList)
	if err != nil {
		return exitWithCode(ExitMalformedEntry, err)
	}
	report.Folders = list

	logging.Debug("Folders collected",
		zap.Int("entries", len(report.Entries)),
		zap.Int("distinct", list.Len()),
		zap.Strings("folders", list.Names()),
	)

	switch cfg.Output {
	case config.OutputJSON:
		return util.SerializeToJSON(out, report)
	case config.OutputYAML:
		return util.SerializeToYAML(out, report)
	case config.OutputTable:
		return outputFoldersTable(out, list)
	default:
		_, err := fmt.Fprintf(out, "folder_need_check: %s\n", list)
		return err
	}
}

func outputFoldersTable(out io.Writer, list *folders.FolderList) error {
	table := tablewriter.NewWriter(out)
	table.Header("#", "FOLDER")

	for i, name := range list.Names() {
		table.Append(strconv.Itoa(i+1), name)
	}

	return table.Render()
}
