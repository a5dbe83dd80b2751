// Package variant describes a template variant: the placeholder package the
// skeleton ships with, where its sources live, which references get
// rewritten and which paths each optional feature owns.
//
// The built-in Spring Boot variant is embedded as TOML; other variants can be
// loaded from TOML or YAML files.
package variant

import (
	"bytes"
	_ "embed"
	"os"
	"path"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/arthur-debert/genhooks/pkg/config"
	"github.com/arthur-debert/genhooks/pkg/errors"
	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

//go:embed embedded/springboot.toml
var springBoot []byte

// Placeholder is the package the skeleton is generated under
type Placeholder struct {
	Organization string `toml:"organization" yaml:"organization"`
	Package      string `toml:"package" yaml:"package"`
}

// JavaPackage returns the dotted placeholder package
func (p Placeholder) JavaPackage() string {
	if p.Organization == "" {
		return p.Package
	}
	return p.Organization + "." + p.Package
}

// Dir returns the placeholder package directory, slash separated
func (p Placeholder) Dir() string {
	return path.Join(strings.ReplaceAll(p.Organization, ".", "/"), p.Package)
}

// Rewrite selects the files and prefixes for reference rewriting
type Rewrite struct {
	Roots      []string `toml:"roots" yaml:"roots"`
	Extensions []string `toml:"extensions" yaml:"extensions"`
	Prefixes   []string `toml:"prefixes" yaml:"prefixes"`
}

// Feature lists the paths owned by an optional feature flag
type Feature struct {
	Flag  string   `toml:"flag" yaml:"flag"`
	Label string   `toml:"label" yaml:"label"`
	Paths []string `toml:"paths" yaml:"paths"`
}

// Variant is one template variant
type Variant struct {
	Name        string      `toml:"name" yaml:"name"`
	SourceRoots []string    `toml:"source_roots" yaml:"source_roots"`
	Placeholder Placeholder `toml:"placeholder" yaml:"placeholder"`
	Rewrite     Rewrite     `toml:"rewrite" yaml:"rewrite"`
	Features    []Feature   `toml:"features" yaml:"features"`
}

// Default returns a fresh copy of the built-in Spring Boot variant
func Default() *Variant {
	v, err := Parse(springBoot, ".toml")
	if err != nil {
		panic("embedded variant is invalid: " + err.Error())
	}
	return v
}

// Load reads a variant file; the format follows the extension
func Load(file string) (*Variant, error) {
	data, err := os.ReadFile(file)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigLoad, "cannot read variant %s", file).
			WithDetail("path", file)
	}
	return Parse(data, filepath.Ext(file))
}

// Parse decodes a variant from TOML (".toml") or YAML (".yaml", ".yml") and validates it
func Parse(data []byte, ext string) (*Variant, error) {
	var v Variant
	var err error
	switch strings.ToLower(ext) {
	case ".toml":
		err = toml.Unmarshal(data, &v)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &v)
	default:
		return nil, errors.Newf(errors.ErrConfigLoad, "unsupported variant format %q", ext)
	}
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to parse variant")
	}
	if err := v.Validate(); err != nil {
		return nil, err
	}
	return &v, nil
}

// Validate checks that the variant is usable by the normalizer
func (v *Variant) Validate() error {
	if v.Placeholder.Package == "" {
		return errors.New(errors.ErrInvalidVariant, "placeholder.package is required")
	}
	if len(v.SourceRoots) == 0 {
		return errors.New(errors.ErrInvalidVariant, "at least one source root is required")
	}
	if len(v.Rewrite.Extensions) == 0 {
		return errors.New(errors.ErrInvalidVariant, "rewrite.extensions must not be empty")
	}
	if len(v.Rewrite.Prefixes) == 0 {
		return errors.New(errors.ErrInvalidVariant, "rewrite.prefixes must not be empty")
	}
	for i, f := range v.Features {
		if f.Flag == "" {
			return errors.Newf(errors.ErrInvalidVariant, "feature #%d has no flag", i+1)
		}
		if len(f.Paths) == 0 {
			return errors.Newf(errors.ErrInvalidVariant, "feature %s has no paths", f.Flag).
				WithDetail("flag", f.Flag)
		}
	}
	return nil
}

// RewriteRoots returns the rewrite roots, defaulting to the project root
func (v *Variant) RewriteRoots() []string {
	if len(v.Rewrite.Roots) == 0 {
		return []string{"."}
	}
	return v.Rewrite.Roots
}

// Rewritable reports whether a file name carries a recognized source extension
func (v *Variant) Rewritable(name string) bool {
	ext := filepath.Ext(name)
	for _, e := range v.Rewrite.Extensions {
		if ext == e {
			return true
		}
	}
	return false
}

// Marshal encodes the variant as TOML
func (v *Variant) Marshal() ([]byte, error) {
	return toml.Marshal(v)
}

// pathData is what feature path templates can reference
type pathData struct {
	PackageDir   string
	Organization string
	PackageName  string
}

// ExpandPaths resolves the feature's path templates against ctx.
// Results are slash separated and relative to the project root.
func (f Feature) ExpandPaths(ctx config.Context) ([]string, error) {
	data := pathData{
		PackageDir:   ctx.PackageDir(),
		Organization: ctx.Organization(),
		PackageName:  ctx.PackageName(),
	}

	out := make([]string, 0, len(f.Paths))
	for _, p := range f.Paths {
		tmpl, err := template.New(f.Flag).Option("missingkey=error").Parse(p)
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrInvalidVariant, "bad path template %q", p).
				WithDetail("flag", f.Flag)
		}
		var buf bytes.Buffer
		if err := tmpl.Execute(&buf, data); err != nil {
			return nil, errors.Wrapf(err, errors.ErrInvalidVariant, "cannot expand path %q", p).
				WithDetail("flag", f.Flag)
		}
		out = append(out, buf.String())
	}
	return out, nil
}
