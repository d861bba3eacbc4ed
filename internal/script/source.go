package script

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/v0xg/k90macro/internal/diag"
	"github.com/v0xg/k90macro/internal/macro"
)

// maxLineSize bounds a single script line.
const maxLineSize = 1024 * 1024

// CompileReader compiles a script read from r. Input is UTF-8 unless it
// starts with a UTF-8 or UTF-16 byte order mark. Only read errors are
// returned.
func CompileReader(r io.Reader, sink *diag.Sink) (*macro.Macro, error) {
	decoded := transform.NewReader(r, unicode.BOMOverride(unicode.UTF8.NewDecoder()))

	sc := bufio.NewScanner(decoded)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	m := Compile(func(yield func(string) bool) {
		for sc.Scan() {
			if !yield(sc.Text()) {
				return
			}
		}
	}, sink)

	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading script: %w", err)
	}
	return m, nil
}

// CompileFile compiles the script at path.
func CompileFile(path string, sink *diag.Sink) (*macro.Macro, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return CompileReader(f, sink)
}
