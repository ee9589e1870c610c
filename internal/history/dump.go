package history

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

var ErrEmptyFile = errors.New("empty file")

const maxLineBytes = 4 << 20

// WriteLines writes one entry per line. Entries containing a newline cannot
// be represented and are rejected.
func WriteLines(w io.Writer, h History) error {
	bw := bufio.NewWriter(w)
	for i, entry := range h {
		if strings.ContainsAny(entry, "\r\n") {
			return fmt.Errorf("entry %d contains a newline; use a .yaml file instead", i)
		}
		if _, err := bw.WriteString(entry); err != nil {
			return err
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// ReadLines reads entries written by WriteLines. Empty input is an error.
func ReadLines(r io.Reader) (History, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	var out History
	seen := false
	for sc.Scan() {
		seen = true
		out = append(out, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if !seen {
		return nil, ErrEmptyFile
	}
	return out, nil
}

func WriteYAML(w io.Writer, h History) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if h == nil {
		h = History{}
	}
	if err := enc.Encode([]string(h)); err != nil {
		return err
	}
	return enc.Close()
}

func ReadYAML(r io.Reader) (History, error) {
	var entries []string
	if err := yaml.NewDecoder(r).Decode(&entries); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptyFile
		}
		return nil, err
	}
	return History(entries), nil
}

func isYAMLPath(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}

// Export writes h to path, choosing the format from the file extension.
func Export(path string, h History) error {
	var buf bytes.Buffer
	var err error
	if isYAMLPath(path) {
		err = WriteYAML(&buf, h)
	} else {
		err = WriteLines(&buf, h)
	}
	if err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o600); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// Import reads a file written by Export.
func Import(path string) (History, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var h History
	if isYAMLPath(path) {
		h, err = ReadYAML(f)
	} else {
		h, err = ReadLines(f)
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return h, nil
}
