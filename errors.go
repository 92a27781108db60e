package img2ascii

import "fmt"

// ExportError reports a failed export: creating or writing an output
// file, or launching the browser. The converted text is unaffected.
type ExportError struct {
	Op   string // "create", "write", "render" or "open"
	Path string
	Err  error
}

func (e *ExportError) Error() string {
	return fmt.Sprintf("export %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *ExportError) Unwrap() error {
	return e.Err
}
