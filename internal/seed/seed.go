// Package seed provides the fixed dataset every dashboard session starts from.
package seed

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/nhle/notifdash/internal/model"
	"github.com/nhle/notifdash/internal/store"
	"github.com/nhle/notifdash/internal/validate"
)

//go:embed notifications.yaml
var builtin []byte

// document is the on-disk layout of a seed file.
type document struct {
	Notifications []model.Notification `yaml:"notifications"`
}

var parseBuiltin = sync.OnceValues(func() ([]model.Notification, error) {
	return Load(bytes.NewReader(builtin))
})

// Default returns a fresh copy of the built-in dataset. Callers may mutate
// the returned slice freely.
func Default() []model.Notification {
	records, err := parseBuiltin()
	if err != nil {
		panic(fmt.Sprintf("seed: built-in dataset is invalid: %v", err))
	}
	return Clone(records)
}

// Load decodes and validates a seed document from r.
func Load(r io.Reader) ([]model.Notification, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc document
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return []model.Notification{}, nil
		}
		return nil, fmt.Errorf("decoding seed: %w", err)
	}

	if err := Validate(doc.Notifications); err != nil {
		return nil, err
	}
	if doc.Notifications == nil {
		return []model.Notification{}, nil
	}
	return doc.Notifications, nil
}

// LoadFile reads a seed document from path.
func LoadFile(path string) ([]model.Notification, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening seed %s: %w", path, err)
	}
	defer f.Close()

	records, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("loading seed %s: %w", path, err)
	}
	return records, nil
}

// Validate checks every record's fields and that IDs are unique.
func Validate(records []model.Notification) error {
	seen := make(map[string]int, len(records))
	for i, n := range records {
		if err := validate.Struct(n); err != nil {
			return fmt.Errorf("notification #%d (%q): %w", i+1, n.ID, err)
		}
		if first, ok := seen[n.ID]; ok {
			return fmt.Errorf("notification #%d and #%d: %w %q", first+1, i+1, store.ErrDuplicateID, n.ID)
		}
		seen[n.ID] = i
	}
	return nil
}

// Clone returns a copy of records that shares no backing array.
func Clone(records []model.Notification) []model.Notification {
	out := make([]model.Notification, len(records))
	copy(out, records)
	return out
}
