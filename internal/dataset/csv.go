package dataset

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

type csvLoader struct{}

func (csvLoader) CanLoad(path string) bool {
	return hasExt(path, ".csv", ".tsv", ".txt")
}

func (csvLoader) Load(path string, opt LoadOptions) (*Dataset, error) {
	return LoadCSV(path, opt)
}

// LoadCSV reads a delimited file with a header row.
func LoadCSV(path string, opt LoadOptions) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &InputFormatError{Path: path, Err: err}
	}
	defer f.Close()
	if opt.Delimiter == 0 && hasExt(path, ".tsv") {
		opt.Delimiter = '\t'
	}
	ds, err := ReadCSV(f, path, opt)
	if err != nil {
		return nil, err
	}
	ds.Name = filepath.Base(path)
	return ds, nil
}

// ReadCSV reads delimited data with a header row from r. name is used in errors and as the dataset name.
func ReadCSV(r io.Reader, name string, opt LoadOptions) (*Dataset, error) {
	br := bufio.NewReaderSize(r, 64<<10)
	if bom, _ := br.Peek(len(utf8BOM)); bytes.Equal(bom, utf8BOM) {
		_, _ = br.Discard(len(utf8BOM))
	}
	delim := opt.Delimiter
	if delim == 0 {
		peek, _ := br.Peek(64 << 10)
		delim = sniffDelimiter(peek)
	}
	cr := csv.NewReader(br)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	cr.Comma = delim

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, &InputFormatError{Path: name, Err: errors.New("no columns to parse")}
		}
		return nil, csvError(name, err)
	}
	header = append([]string(nil), header...)

	var rows [][]string
	for {
		rec, err := cr.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, csvError(name, err)
		}
		if len(rec) > len(header) {
			line, _ := cr.FieldPos(0)
			return nil, &InputFormatError{
				Path: name,
				Line: line,
				Err:  fmt.Errorf("expected %d fields, saw %d", len(header), len(rec)),
			}
		}
		rows = append(rows, rec)
	}
	return fromRecords(name, header, rows, newInferrer(opt.MissingValues))
}

func csvError(name string, err error) error {
	var pe *csv.ParseError
	if errors.As(err, &pe) {
		return &InputFormatError{Path: name, Line: pe.Line, Err: pe.Err}
	}
	return &InputFormatError{Path: name, Err: err}
}

// sniffDelimiter picks the most frequent of ',', ';', '\t' and '|' on the first line. Defaults to comma.
func sniffDelimiter(head []byte) rune {
	line := string(head)
	if i := strings.IndexByte(line, '\n'); i >= 0 {
		line = line[:i]
	}
	best, bestN := ',', strings.Count(line, ",")
	for _, c := range []rune{';', '\t', '|'} {
		if n := strings.Count(line, string(c)); n > bestN {
			best, bestN = c, n
		}
	}
	return best
}
