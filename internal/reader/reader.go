package reader

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	"csvviewer/internal/config"
	"csvviewer/internal/validator"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// MaxFieldSize is the largest field, in bytes, a record may hold
const MaxFieldSize = 128 * 1024

var (
	ErrInvalidEncoding = errors.New("text is not valid UTF-8")
	ErrFieldTooLarge   = fmt.Errorf("field larger than %d bytes", MaxFieldSize)
)

// IOError reports a file that could not be opened or read
type IOError struct {
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("failed to read CSV file %s: %v", e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }

// ParseError reports a malformed record
type ParseError struct {
	Path string
	Line int
	Err  error
}

func (e *ParseError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("malformed CSV at line %d: %v", e.Line, e.Err)
	}
	return fmt.Sprintf("malformed CSV in %s at line %d: %v", e.Path, e.Line, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Loader validates and reads whole CSV files into memory
type Loader struct {
	rule  validator.ExtensionRule
	comma rune
}

// NewLoader creates a loader from loader settings
func NewLoader(cfg config.LoaderConfig) *Loader {
	return &Loader{
		rule:  validator.RuleFrom(cfg),
		comma: cfg.Comma(),
	}
}

// Load checks the extension of path, then reads and parses the file.
// Errors are *validator.ValidationError, *IOError or *ParseError.
func (l *Loader) Load(path string) (*Dataset, error) {
	if err := validator.ValidatePath(path, l.rule); err != nil {
		return nil, err
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, &IOError{Path: path, Err: err}
	}
	defer file.Close()

	ds, err := l.Parse(file)
	if err != nil {
		var perr *ParseError
		if errors.As(err, &perr) {
			perr.Path = path
			return nil, perr
		}
		var ioErr *IOError
		if errors.As(err, &ioErr) {
			ioErr.Path = path
			return nil, ioErr
		}
		return nil, err
	}

	return ds, nil
}

// Parse reads every record from r. Rows may have different widths.
// Quotes are lenient: a stray quote inside a field is kept as text and an
// unterminated quoted field runs to the end of input. Records that are not
// UTF-8 or hold an oversized field fail with *ParseError.
func (l *Loader) Parse(r io.Reader) (*Dataset, error) {
	bufferedReader := bufio.NewReader(r)
	if head, err := bufferedReader.Peek(len(utf8BOM)); err == nil && string(head) == string(utf8BOM) {
		bufferedReader.Discard(len(utf8BOM))
	}

	csvReader := csv.NewReader(bufferedReader)
	csvReader.Comma = l.comma
	csvReader.FieldsPerRecord = -1
	csvReader.LazyQuotes = true

	var rows [][]string
	for {
		record, err := csvReader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			var csvErr *csv.ParseError
			if errors.As(err, &csvErr) {
				return nil, &ParseError{Line: csvErr.Line, Err: csvErr.Err}
			}
			return nil, &IOError{Err: err}
		}
		if err := checkRecord(csvReader, record); err != nil {
			return nil, err
		}
		rows = append(rows, record)
	}

	return NewDataset(rows), nil
}

// checkRecord rejects fields the grid cannot show as text
func checkRecord(csvReader *csv.Reader, record []string) error {
	for i, field := range record {
		var cause error
		switch {
		case len(field) > MaxFieldSize:
			cause = ErrFieldTooLarge
		case !utf8.ValidString(field):
			cause = ErrInvalidEncoding
		default:
			continue
		}
		line, _ := csvReader.FieldPos(i)
		return &ParseError{Line: line, Err: cause}
	}
	return nil
}
