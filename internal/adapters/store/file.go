package store

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
)

// File is a key-value store backed by a single JSON document on disk. A
// mutex serializes access; writes go through a temp file and a rename so
// a crash mid-write cannot corrupt the document.
type File struct {
	fs   afero.Fs
	path string
	mu   sync.Mutex
}

func NewFile(fs afero.Fs, path string) (*File, error) {
	f := &File{fs: fs, path: path}

	// fail at startup if the backing file exists but is unreadable
	if _, err := f.read(); err != nil {
		return nil, err
	}

	return f, nil
}

func (f *File) Get(_ context.Context, key string) ([]byte, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	doc, err := f.read()
	if err != nil {
		return nil, false, err
	}

	value, ok := doc[key]

	return value, ok, nil
}

func (f *File) Set(_ context.Context, key string, value []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	doc, err := f.read()
	if err != nil {
		return err
	}

	doc[key] = value

	return f.write(doc)
}

func (f *File) read() (map[string]json.RawMessage, error) {
	buf, err := afero.ReadFile(f.fs, f.path)
	if os.IsNotExist(err) {
		return map[string]json.RawMessage{}, nil
	}

	if err != nil {
		return nil, fmt.Errorf("reading store file: %w", err)
	}

	if len(bytes.TrimSpace(buf)) == 0 {
		return map[string]json.RawMessage{}, nil
	}

	var doc map[string]json.RawMessage
	if err := json.Unmarshal(buf, &doc); err != nil {
		return nil, fmt.Errorf("decoding store file: %w", err)
	}

	return doc, nil
}

func (f *File) write(doc map[string]json.RawMessage) error {
	buf, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding store file: %w", err)
	}

	tmp := f.path + ".tmp"

	if err := afero.WriteFile(f.fs, tmp, buf, 0o600); err != nil {
		return fmt.Errorf("writing store file: %w", err)
	}

	if err := f.fs.Rename(tmp, f.path); err != nil {
		return fmt.Errorf("replacing store file: %w", err)
	}

	log.Debug().Str("path", f.path).Int("bytes", len(buf)).Msg("persisted store file")

	return nil
}
