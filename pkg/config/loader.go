package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/arthur-debert/genhooks/pkg/errors"
	"github.com/arthur-debert/genhooks/pkg/logging"
	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix is the default prefix for environment overrides
const EnvPrefix = "GENHOOKS_"

// wrapperKey is the table the templating engine nests its replay context under
const wrapperKey = "cookiecutter"

// LoadOptions controls where the context is read from
type LoadOptions struct {
	// ContextFile is an optional TOML, YAML or JSON file
	ContextFile string
	// EnvPrefix overrides EnvPrefix when set
	EnvPrefix string
	// Overrides are applied last
	Overrides map[string]string
}

// Load assembles the template context from defaults, the context file, the
// environment and explicit overrides, in that order.
func Load(opts LoadOptions) (Context, error) {
	logger := logging.GetLogger("config")
	k := koanf.New(".")

	// 1. Embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to load defaults")
	}

	// 2. Context file
	if opts.ContextFile != "" {
		if err := loadContextFile(k, opts.ContextFile); err != nil {
			return nil, err
		}
		logger.Debug().Str("file", opts.ContextFile).Msg("Loaded context file")
	}

	// 3. Environment
	prefix := opts.EnvPrefix
	if prefix == "" {
		prefix = EnvPrefix
	}
	envProvider := env.Provider(prefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, prefix))
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load environment")
	}

	// 4. Overrides
	if len(opts.Overrides) > 0 {
		m := make(map[string]interface{}, len(opts.Overrides))
		for key, value := range opts.Overrides {
			m[key] = value
		}
		if err := k.Load(confmap.Provider(m, "."), nil); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to apply overrides")
		}
	}

	ctx := toContext(k)
	logger.Debug().Int("keys", len(ctx)).Msg("Context loaded")
	return ctx, nil
}

func loadContextFile(k *koanf.Koanf, path string) error {
	if _, err := os.Stat(path); err != nil {
		return errors.Wrapf(err, errors.ErrConfigLoad, "cannot read context file %s", path).
			WithDetail("path", path)
	}

	parser, err := parserFor(path)
	if err != nil {
		return err
	}

	fk := koanf.New(".")
	if err := fk.Load(file.Provider(path), parser); err != nil {
		return errors.Wrapf(err, errors.ErrConfigParse, "failed to parse context file %s", path).
			WithDetail("path", path)
	}

	if fk.Exists(wrapperKey) {
		fk = fk.Cut(wrapperKey)
	}

	if err := k.Merge(fk); err != nil {
		return errors.Wrapf(err, errors.ErrConfigLoad, "failed to merge context file %s", path)
	}
	return nil
}

func parserFor(path string) (koanf.Parser, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return toml.Parser(), nil
	case ".yaml", ".yml":
		return yaml.Parser(), nil
	case ".json":
		return json.Parser(), nil
	default:
		return nil, errors.Newf(errors.ErrConfigLoad, "unsupported context file type %q", filepath.Ext(path)).
			WithDetail("path", path)
	}
}

// toContext flattens k into string values
func toContext(k *koanf.Koanf) Context {
	ctx := make(Context)
	for _, key := range k.Keys() {
		switch v := k.Get(key).(type) {
		case string:
			ctx[key] = v
		case nil:
			ctx[key] = ""
		case float64:
			ctx[key] = strconv.FormatFloat(v, 'f', -1, 64)
		case float32:
			ctx[key] = strconv.FormatFloat(float64(v), 'f', -1, 32)
		default:
			ctx[key] = fmt.Sprintf("%v", v)
		}
	}
	return ctx
}

// ParseOverrides turns key=value pairs into an override map.
// The value may itself contain '='.
func ParseOverrides(pairs []string) (map[string]string, error) {
	out := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, errors.Newf(errors.ErrInvalidInput, "invalid override %q, expected key=value", pair)
		}
		out[key] = value
	}
	return out, nil
}
