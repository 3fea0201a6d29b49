package cmd

import (
	"fmt"

	"github.com/example/engstudy/internal/excel"
	"github.com/spf13/cobra"
)

func newImportCmd(app *App, opts *globalOptions) *cobra.Command {
	cfg := excel.DefaultImportConfig()

	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Import words from an Excel or CSV file",
		Long: `Import words into the catalog. Existing words are updated in place
and keep their catalog position; new words are appended in file order.

In CSV files a row with only its first field set starts a new topic.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg.FilePath = args[0]

			result, err := app.Importer.ImportWords(cmd.Context(), cfg)
			if err != nil {
				return err
			}

			if opts.json {
				return writeJSON(cmd.OutOrStdout(), result)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Processed: %d\n", result.TotalProcessed)
			fmt.Fprintf(out, "Created:   %d\n", result.Created)
			fmt.Fprintf(out, "Updated:   %d\n", result.Updated)
			fmt.Fprintf(out, "Skipped:   %d\n", result.Skipped)
			for _, e := range result.Errors {
				fmt.Fprintf(out, "  %s\n", e)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&cfg.SheetName, "sheet", "", "sheet to read (first sheet if empty)")
	cmd.Flags().IntVar(&cfg.StartRow, "start-row", cfg.StartRow, "first data row (1-based)")
	cmd.Flags().StringVar(&cfg.DefaultTopic, "topic", "", "topic for rows without one")
	cmd.Flags().StringVar(&cfg.WordColumn, "word-col", cfg.WordColumn, "column with the word")
	cmd.Flags().StringVar(&cfg.TranslationColumn, "translation-col", cfg.TranslationColumn, "column with the translation")
	cmd.Flags().StringVar(&cfg.PartOfSpeechColumn, "pos-col", cfg.PartOfSpeechColumn, "column with the part of speech")
	cmd.Flags().StringVar(&cfg.PronunciationColumn, "pronunciation-col", cfg.PronunciationColumn, "column with the pronunciation")
	cmd.Flags().StringVar(&cfg.ExampleColumn, "example-col", cfg.ExampleColumn, "column with an example sentence")
	cmd.Flags().StringVar(&cfg.TopicColumn, "topic-col", cfg.TopicColumn, "column with the topic")
	return cmd
}
