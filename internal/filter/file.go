package filter

import (
	"fmt"
	"os"

	"go.uber.org/zap"
)

// InputError is returned when the source file cannot be read
type InputError struct {
	Path string
	Err  error
}

func (e *InputError) Error() string {
	return fmt.Sprintf("reading input %s: %v", e.Path, e.Err)
}

func (e *InputError) Unwrap() error { return e.Err }

// OutputError is returned when the destination file cannot be written
type OutputError struct {
	Path string
	Err  error
}

func (e *OutputError) Error() string {
	return fmt.Sprintf("writing output %s: %v", e.Path, e.Err)
}

func (e *OutputError) Unwrap() error { return e.Err }

// File reads inPath, strips \texttt{} markup and writes the result to outPath.
// outPath is created or truncated; inPath is never modified. The input is read
// in full before outPath is touched.
func File(inPath, outPath string, log *zap.Logger) (Result, error) {
	if log == nil {
		log = zap.NewNop()
	}

	src, err := os.ReadFile(inPath)
	if err != nil {
		return Result{}, &InputError{Path: inPath, Err: err}
	}
	log.Debug("Read input", zap.String("path", inPath), zap.Int("bytes", len(src)))

	res := Apply(string(src))
	log.Debug("Applied rule",
		zap.String("rule", Texttt.Name),
		zap.Int("replacements", res.Replacements))

	// No cleanup on a failed write; a partial file may remain.
	if err := os.WriteFile(outPath, []byte(res.Text), 0644); err != nil {
		return res, &OutputError{Path: outPath, Err: err}
	}
	log.Debug("Wrote output", zap.String("path", outPath), zap.Int("bytes", len(res.Text)))

	return res, nil
}
