package output

import (
	"io"

	"github.com/fireplan/fire-calculator/internal/domain"
)

// GenerateReport renders result in the named format and writes it to w.
// Unknown formats return an error wrapping ErrUnsupportedFormat that lists the valid names.
func GenerateReport(w io.Writer, result *domain.FireResult, format string, opts Options) error {
	f, err := NewFormatter(format, opts)
	if err != nil {
		return err
	}
	data, err := f.Format(result)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}
