package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KaramelBytes/edareport/internal/report"
)

var (
	repInput         inputFlags
	repOutput        string
	repDistCols      []string
	repImageDir      string
	repImageWidth    int
	repBins          int
	repMaxCategories int
	repMarkdown      string
)

var reportCmd = &cobra.Command{
	Use:   "report <file>",
	Short: "Analyze a dataset and write an HTML report with plots",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c := effectiveConfig()
		ds, err := repInput.load(args[0])
		if err != nil {
			return err
		}

		out := c.Output
		if repOutput != "" {
			out = repOutput
		}
		opts := report.Options{
			DistributionColumns:      repDistCols,
			DefaultDistributionCount: c.DistributionCount,
			ImageDir:                 c.ImageDir,
			ImageWidth:               c.ImageWidth,
			Bins:                     c.HistogramBins,
			MaxCategories:            c.MaxCategories,
			MarkdownPath:             repMarkdown,
			Logger:                   log,
		}
		if repImageDir != "" {
			opts.ImageDir = repImageDir
		}
		if repImageWidth > 0 {
			opts.ImageWidth = repImageWidth
		}
		if repBins > 0 {
			opts.Bins = repBins
		}
		if repMaxCategories > 0 {
			opts.MaxCategories = repMaxCategories
		}

		res, err := report.Analyze(ds, out, opts)
		if err != nil {
			return err
		}
		w := cmd.OutOrStdout()
		fmt.Fprintf(w, "✓ Wrote report to %s (%d boxplots, %d distribution plots)\n",
			res.OutputPath, len(res.BoxplotPaths), len(res.DistributionPaths))
		if res.MarkdownPath != "" {
			fmt.Fprintf(w, "✓ Wrote summary to %s\n", res.MarkdownPath)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(reportCmd)
	repInput.register(reportCmd)
	reportCmd.Flags().StringVarP(&repOutput, "output", "o", "", "HTML report path (default analysis_report.html)")
	reportCmd.Flags().StringSliceVar(&repDistCols, "dist-cols", nil, "comma-separated columns to plot distributions for (default first 6)")
	reportCmd.Flags().StringVar(&repImageDir, "image-dir", "", "directory for plot images (default: next to the report)")
	reportCmd.Flags().IntVar(&repImageWidth, "image-width", 0, "display width of images in the report, in pixels (default 400)")
	reportCmd.Flags().IntVar(&repBins, "bins", 0, "histogram bins for numeric distributions (default 20)")
	reportCmd.Flags().IntVar(&repMaxCategories, "max-categories", 0, "maximum bars in a categorical distribution (default 20)")
	reportCmd.Flags().StringVar(&repMarkdown, "markdown", "", "also write a Markdown summary to this path")
}
