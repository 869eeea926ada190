// Package input acquires raw sequence text from a file, stdin, or an
// interactive paste, and flattens it to a single unbroken string.
package input

import (
	"bufio"
	"compress/gzip"
	"io"
	"os"
	"strings"

	"github.com/edsrzf/mmap-go"
)

// ReadFile reads the sequence text at path and returns it flattened
// (headers dropped, lines joined). path "-" reads stdin; a ".gz"
// suffix is gunzipped transparently. An open/read failure returns
// ("", err) so the caller can warn and continue.
func ReadFile(path string) (string, error) {
	data, err := readAll(path)
	if err != nil {
		return "", err
	}
	return JoinLines(string(data)), nil
}

// ReadInteractive collects newline-terminated entries from r until a
// blank line or end-of-input, then flattens them the same way as file
// input.
func ReadInteractive(r io.Reader) (string, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<22)
	var lines []string
	for sc.Scan() {
		line := sc.Text()
		if strings.TrimSpace(line) == "" {
			break
		}
		lines = append(lines, line)
	}
	if err := sc.Err(); err != nil {
		return "", err
	}
	return JoinLines(strings.Join(lines, "\n")), nil
}

// JoinLines trims each line of raw, drops blanks, and concatenates the
// rest. If the first retained line starts with '>' the text is treated
// as FASTA: every header line is discarded and all remaining lines are
// merged. Multi-record FASTA is deliberately flattened into one
// sequence rather than split per record.
func JoinLines(raw string) string {
	var lines []string
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	if len(lines) == 0 {
		return ""
	}
	if strings.HasPrefix(lines[0], ">") {
		var b strings.Builder
		for _, l := range lines {
			if strings.HasPrefix(l, ">") {
				continue
			}
			b.WriteString(l)
		}
		return b.String()
	}
	return strings.Join(lines, "")
}

func readAll(path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(os.Stdin)
	}
	if strings.HasSuffix(path, ".gz") {
		fh, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer fh.Close()
		gr, err := gzip.NewReader(fh)
		if err != nil {
			return nil, err
		}
		defer gr.Close()
		return io.ReadAll(gr)
	}
	return readMapped(path)
}

// readMapped maps a regular file instead of buffered reads; falls back
// to os.ReadFile when the file cannot be mapped (empty files, pipes).
func readMapped(path string) ([]byte, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer fh.Close()

	st, err := fh.Stat()
	if err != nil {
		return nil, err
	}
	if !st.Mode().IsRegular() || st.Size() == 0 {
		return io.ReadAll(fh)
	}

	m, err := mmap.Map(fh, mmap.RDONLY, 0)
	if err != nil {
		return os.ReadFile(path)
	}
	defer func() { _ = m.Unmap() }()

	// copy out: the mapping dies with this function
	out := make([]byte, len(m))
	copy(out, m)
	return out, nil
}
