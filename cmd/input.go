package cmd

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/KaramelBytes/edareport/internal/dataset"
)

// inputFlags are the dataset loading flags shared by report and summary.
type inputFlags struct {
	delimiter  string
	sheetName  string
	sheetIndex int
}

func (f *inputFlags) register(c *cobra.Command) {
	c.Flags().StringVar(&f.delimiter, "delimiter", "", "CSV delimiter: ',' | ';' | 'tab' | '|' (sniffed if omitted)")
	c.Flags().StringVar(&f.sheetName, "sheet-name", "", "XLSX: sheet name to load")
	c.Flags().IntVar(&f.sheetIndex, "sheet-index", 1, "XLSX: 1-based sheet index (used if --sheet-name not provided)")
}

// load reads path, taking delimiter and absent-value tokens from config unless overridden.
func (f *inputFlags) load(path string) (*dataset.Dataset, error) {
	c := effectiveConfig()
	delim := c.Delimiter
	if f.delimiter != "" {
		delim = f.delimiter
	}
	r, err := dataset.ParseDelimiter(delim)
	if err != nil {
		return nil, err
	}
	opt := dataset.LoadOptions{
		Delimiter:     r,
		MissingValues: c.MissingValues,
		SheetName:     f.sheetName,
		SheetIndex:    f.sheetIndex,
	}
	log.WithField("path", path).Debug("loading dataset")
	ds, err := dataset.Load(path, opt)
	if err != nil {
		return nil, err
	}
	log.WithFields(logrus.Fields{"rows": ds.Rows(), "columns": ds.Width()}).Info("dataset loaded")
	return ds, nil
}
