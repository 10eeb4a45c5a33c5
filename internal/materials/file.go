package materials

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// MarshalJSON writes levels in A1, A2, B1, B2 order. Pseudo-levels are never
// serialized, finalized or not.
func (m *Materials) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	first := true
	for _, l := range Levels {
		b, ok := m.levels[l]
		if !ok {
			continue
		}
		if !first {
			buf.WriteByte(',')
		}
		first = false

		key, err := encode(string(l))
		if err != nil {
			return nil, err
		}
		val, err := encode(b)
		if err != nil {
			return nil, fmt.Errorf("level %s: %w", l, err)
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON loads a previously written artifact. The result is finalized.
func (m *Materials) UnmarshalJSON(data []byte) error {
	var raw map[string]*Bucket
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	fresh := New()
	fresh.Finalize()
	for k, b := range raw {
		l := Level(k)
		if !l.IsReal() {
			return fmt.Errorf("unexpected level %q", k)
		}
		if b == nil {
			continue
		}
		for _, c := range Categories {
			if recs := b.Category(c); len(recs) > 0 {
				fresh.Append(l, c, recs...)
			}
		}
	}
	*m = *fresh
	return nil
}

// Encode renders m as indented JSON without HTML escaping.
func Encode(m *Materials) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(m); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// WriteFile writes m to path, creating parent directories as needed. The
// file is replaced atomically.
func WriteFile(path string, m *Materials) error {
	data, err := Encode(m)
	if err != nil {
		return fmt.Errorf("encode materials: %w", err)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".materials-*.json")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Chmod(tmpPath, 0o644); err != nil {
		return fmt.Errorf("chmod temp file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("rename into place: %w", err)
	}
	return nil
}

// ReadFile loads an artifact written by WriteFile.
func ReadFile(path string) (*Materials, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	m := &Materials{}
	if err := json.Unmarshal(data, m); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return m, nil
}

func encode(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
