package listing

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
)

// maxRecordLen bounds a single path read from an input stream.
const maxRecordLen = 1 << 20

// ReadPaths calls fn for every delim-terminated path in r. The delimiter
// is stripped and a final unterminated path is still delivered. A path
// cannot hold a NUL byte, so a newline-terminated record ends at its
// first NUL.
func ReadPaths(r io.Reader, delim byte, fn func(path string) error) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 4096), maxRecordLen)
	scanner.Split(splitOn(delim))

	for scanner.Scan() {
		record := scanner.Bytes()
		if i := bytes.IndexByte(record, 0); i >= 0 {
			record = record[:i]
		}
		if err := fn(string(record)); err != nil {
			return err
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading paths: %w", err)
	}
	return nil
}

func splitOn(delim byte) bufio.SplitFunc {
	return func(data []byte, atEOF bool) (int, []byte, error) {
		if atEOF && len(data) == 0 {
			return 0, nil, nil
		}
		if i := bytes.IndexByte(data, delim); i >= 0 {
			return i + 1, data[:i], nil
		}
		if atEOF {
			return len(data), data, nil
		}
		return 0, nil, nil
	}
}
