package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KaramelBytes/edareport/internal/analysis"
	"github.com/KaramelBytes/edareport/internal/report"
	"github.com/KaramelBytes/edareport/internal/utils"
)

var (
	sumInput  inputFlags
	sumOutput string
)

var summaryCmd = &cobra.Command{
	Use:   "summary <file>",
	Short: "Print a Markdown data-quality summary without plotting",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ds, err := sumInput.load(args[0])
		if err != nil {
			return err
		}
		md := analysis.Summarize(ds).Markdown()
		if sumOutput == "" {
			fmt.Fprintln(cmd.OutOrStdout(), md)
			return nil
		}
		if err := utils.SafeWriteFile(sumOutput, []byte(md)); err != nil {
			return &report.FilesystemError{Op: "write", Path: sumOutput, Err: err}
		}
		fmt.Fprintf(cmd.OutOrStdout(), "✓ Wrote summary to %s\n", sumOutput)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(summaryCmd)
	sumInput.register(summaryCmd)
	summaryCmd.Flags().StringVarP(&sumOutput, "output", "o", "", "optional path to write the summary (Markdown)")
}
