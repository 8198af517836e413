// Package scaffold generates the skeleton of a new card component.
package scaffold

import (
	"bytes"
	"errors"
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
	"text/template"

	"github.com/spf13/afero"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/tools/imports"
)

// DefaultDir is where new components are written, relative to the module root.
const DefaultDir = "internal/cards"

var (
	ErrInvalidName = errors.New("component name must be lower-case words separated by dashes")
	ErrExists      = errors.New("component file already exists")
)

var nameRe = regexp.MustCompile(`^[a-z][a-z0-9]*(-[a-z0-9]+)*$`)

// Data is the template input for one component.
type Data struct {
	Name   string // product-tour
	Pascal string // ProductTour
	File   string // product_tour.go
}

// NewData derives the identifiers of a component from its dashed name. A
// trailing "-card" is dropped since every component is a card.
func NewData(name string) (Data, error) {
	name = strings.TrimSuffix(strings.ToLower(strings.TrimSpace(name)), "-card")
	if !nameRe.MatchString(name) {
		return Data{}, fmt.Errorf("%w: %q", ErrInvalidName, name)
	}

	title := cases.Title(language.English)
	var pascal strings.Builder
	for _, part := range strings.Split(name, "-") {
		pascal.WriteString(title.String(part))
	}

	return Data{
		Name:   name,
		Pascal: pascal.String(),
		File:   strings.ReplaceAll(name, "-", "_") + ".go",
	}, nil
}

var componentTmpl = template.Must(template.New("component").Parse(`package cards

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
	"github.com/nfrund/cardshow/internal/ui"
)

// {{.Pascal}} is the input of {{.Pascal}}Card.
type {{.Pascal}} struct {
	Title string ` + "`yaml:\"title\" validate:\"required\"`" + `
	Description string ` + "`yaml:\"description,omitempty\"`" + `
	Class string ` + "`yaml:\"class,omitempty\"`" + `
}

// {{.Pascal}}Card renders a {{.Name}} card.
func {{.Pascal}}Card(p {{.Pascal}}) g.Node {
	return ui.Card(p.Class,
		h.Data("component", "{{.Name}}-card"),
		ui.CardHeader("",
			ui.CardTitle("text-lg", g.Text(p.Title)),
			g.If(p.Description != "", ui.CardDescription("", g.Text(p.Description))),
		),
	)
}
`))

// Render returns the gofmt-formatted source of the component.
func Render(d Data) ([]byte, error) {
	var buf bytes.Buffer
	if err := componentTmpl.Execute(&buf, d); err != nil {
		return nil, fmt.Errorf("execute template: %w", err)
	}

	src, err := imports.Process(d.File, buf.Bytes(), &imports.Options{
		FormatOnly: true,
		Comments:   true,
		TabIndent:  true,
		TabWidth:   8,
	})
	if err != nil {
		return nil, fmt.Errorf("format %s: %w", d.File, err)
	}
	return src, nil
}

// Write renders the component into dir and returns the path of the new file.
// Existing files are never overwritten.
func Write(fs afero.Fs, dir string, d Data) (string, error) {
	path := filepath.Join(dir, d.File)

	exists, err := afero.Exists(fs, path)
	if err != nil {
		return "", fmt.Errorf("stat %s: %w", path, err)
	}
	if exists {
		return "", fmt.Errorf("%w: %s", ErrExists, path)
	}

	src, err := Render(d)
	if err != nil {
		return "", err
	}
	if err := fs.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create %s: %w", dir, err)
	}
	if err := afero.WriteFile(fs, path, src, 0o644); err != nil {
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	return path, nil
}
