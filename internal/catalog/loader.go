package catalog

import (
	"bytes"
	"embed"
	"fmt"
	"io/fs"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/nfrund/cardshow/internal/cards"
	"github.com/nfrund/cardshow/internal/script"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

// FileName is the catalog document looked up in the catalog filesystem.
const FileName = "catalog.yaml"

//go:embed data/catalog.yaml
var embedded embed.FS

// EmbeddedFs returns the catalog shipped with the binary as a read-only afero.Fs.
func EmbeddedFs() afero.Fs {
	sub, err := fs.Sub(embedded, "data")
	if err != nil {
		// The embed pattern above guarantees the directory exists.
		panic(err)
	}
	return afero.NewReadOnlyFs(afero.FromIOFS{FS: sub})
}

// DirFs returns a read-only afero.Fs rooted at dir on the host filesystem.
func DirFs(dir string) afero.Fs {
	return afero.NewReadOnlyFs(afero.NewBasePathFs(afero.NewOsFs(), dir))
}

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

// NewValidator returns the validator used for catalog documents. Field names
// in errors use the YAML keys.
func NewValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("yaml"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return f.Name
		}
		return name
	})
	v.RegisterCustomTypeFunc(func(f reflect.Value) interface{} {
		val, ok := f.Interface().(cards.Value)
		if !ok || val.IsZero() {
			return nil
		}
		return val.String()
	}, cards.Value{})
	_ = v.RegisterValidation("isodate", func(fl validator.FieldLevel) bool {
		_, err := cards.ParseDate(fl.Field().String())
		return err == nil
	})
	_ = v.RegisterValidation("slug", func(fl validator.FieldLevel) bool {
		return slugPattern.MatchString(fl.Field().String())
	})
	return v
}

// Loader reads and validates the catalog document from a filesystem.
type Loader struct {
	fs       afero.Fs
	validate *validator.Validate
	engine   *script.Engine
}

// NewLoader creates a Loader reading FileName from fsys. Action scripts are
// compiled with script.DefaultLimits.
func NewLoader(fsys afero.Fs) *Loader {
	return &Loader{fs: fsys, validate: NewValidator(), engine: script.NewEngine(script.DefaultLimits)}
}

// Load reads, decodes and validates the catalog.
func (l *Loader) Load() (*Catalog, error) {
	data, err := afero.ReadFile(l.fs, FileName)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", FileName, err)
	}
	return l.Decode(data)
}

// Decode parses and validates a catalog document.
func (l *Loader) Decode(data []byte) (*Catalog, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var c Catalog
	if err := dec.Decode(&c); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidCatalog, err)
	}
	if err := l.validate.Struct(&c); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidCatalog, err)
	}
	if err := c.index(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidCatalog, err)
	}
	for _, e := range c.Entries {
		if e.SampleCount() == 0 {
			return nil, fmt.Errorf("%w: %s has no %s samples", ErrInvalidCatalog, e.Slug, e.Kind)
		}
	}
	if err := c.compile(l.engine); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidCatalog, err)
	}
	return &c, nil
}
