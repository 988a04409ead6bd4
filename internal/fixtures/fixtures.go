// Package fixtures supplies the read-only staff and result records the site
// is seeded with.
package fixtures

import (
	"bytes"
	"embed"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/faithss/website/internal/models"
)

//go:embed staff.yaml results.yaml
var files embed.FS

type Set struct {
	Staff   []models.Staff
	Results []models.Result
}

// Load returns the embedded fixture set.
func Load() (*Set, error) {
	return load(func(name string) ([]byte, error) { return files.ReadFile(name) })
}

// LoadDir reads staff.yaml and results.yaml from dir. A missing file falls
// back to the embedded copy.
func LoadDir(dir string) (*Set, error) {
	return load(func(name string) ([]byte, error) {
		b, err := os.ReadFile(filepath.Join(dir, name)) //nolint:gosec // dir is operator supplied
		if os.IsNotExist(err) {
			return files.ReadFile(name)
		}
		return b, err
	})
}

func load(read func(string) ([]byte, error)) (*Set, error) {
	var set Set
	if err := decode(read, "staff.yaml", &set.Staff); err != nil {
		return nil, err
	}
	if err := decode(read, "results.yaml", &set.Results); err != nil {
		return nil, err
	}
	return &set, nil
}

func decode(read func(string) ([]byte, error), name string, out any) error {
	b, err := read(name)
	if err != nil {
		return fmt.Errorf("read %s: %w", name, err)
	}
	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	if err := dec.Decode(out); err != nil && err != io.EOF {
		return fmt.Errorf("decode %s: %w", name, err)
	}
	return nil
}
