package file

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/aretw0/tendril/pkg/domain"
	"github.com/aretw0/tendril/pkg/ports"
	"github.com/aretw0/tendril/pkg/schema"
)

// Extensions recognized as machine definitions, in resolution order.
var extensions = []string{".csv", ".yaml", ".yml"}

// Loader reads machine definitions from a library directory. Each file with
// a recognized extension is one machine; the machine name is the file name
// without its extension. Definitions are parsed on every Load so edits to
// the library take effect without restarting.
type Loader struct {
	dir string
}

var _ ports.DefinitionLoader = (*Loader)(nil)

// NewLoader creates a loader over the given library directory.
func NewLoader(dir string) (*Loader, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("library %s: %w", dir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("library %s: not a directory", dir)
	}
	return &Loader{dir: dir}, nil
}

// Load resolves name against the library and parses the definition. The
// first extension that matches wins, so a CSV shadows a YAML of the same
// name.
func (l *Loader) Load(ctx context.Context, name string) (*domain.Machine, error) {
	path, ok := l.resolve(name)
	if !ok {
		return nil, fmt.Errorf("machine %q: %w", name, domain.ErrMachineNotFound)
	}

	var (
		doc *schema.Document
		err error
	)
	switch filepath.Ext(path) {
	case ".csv":
		doc, err = LoadCSVFile(path)
	default:
		doc, err = LoadYAMLFile(path)
	}
	if err != nil {
		return nil, err
	}

	m, err := doc.ToMachine()
	if err != nil {
		return nil, fmt.Errorf("machine %q: %w", name, err)
	}
	return m, nil
}

// List returns the names of every definition in the library, sorted.
func (l *Loader) List(ctx context.Context) ([]string, error) {
	entries, err := os.ReadDir(l.dir)
	if err != nil {
		return nil, fmt.Errorf("library %s: %w", l.dir, err)
	}

	seen := make(map[string]struct{})
	var names []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		ext := filepath.Ext(e.Name())
		if !recognized(ext) {
			continue
		}
		name := strings.TrimSuffix(e.Name(), ext)
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		names = append(names, name)
	}

	sort.Strings(names)
	return names, nil
}

func (l *Loader) resolve(name string) (string, bool) {
	for _, ext := range extensions {
		path := filepath.Join(l.dir, name+ext)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path, true
		}
	}
	return "", false
}

func recognized(ext string) bool {
	for _, e := range extensions {
		if ext == e {
			return true
		}
	}
	return false
}
