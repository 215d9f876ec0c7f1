package file

import (
	"fmt"
	"io"
	"os"
)

// OpenCloseFileWriter is an implementation of io.Writer.
// It opens the file and writes to it each time the Write() method is
// executed, so long-running commands can append results without holding the
// file open between writes.
type OpenCloseFileWriter struct {
	path string
	flag int
	perm os.FileMode
}

var _ io.Writer = (*OpenCloseFileWriter)(nil)

func NewOpenCloseFileWriter(path string, flag int, perm os.FileMode) *OpenCloseFileWriter {
	return &OpenCloseFileWriter{path, flag, perm}
}

func (w *OpenCloseFileWriter) Write(p []byte) (int, error) {
	file, err := os.OpenFile(w.path, w.flag, w.perm)
	if err != nil {
		return 0, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	n, err := file.Write(p)
	if err != nil {
		return n, fmt.Errorf("failed to write to file: %w", err)
	}

	return n, nil
}

// Touch creates the file if it does not exist, leaving existing content
// untouched. Useful to make the output visible to tail -f before the first
// result arrives.
func Touch(path string, perm os.FileMode) error {
	file, err := os.OpenFile(path, os.O_CREATE, perm)
	if err != nil {
		return fmt.Errorf("failed to open file: %w", err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("failed to close file: %w", err)
	}
	return nil
}
