// Test Type: Unit Test
// Description: Tests for the config package - template context loading and accessors

package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/genhooks/pkg/config"
	"github.com/arthur-debert/genhooks/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	ctx, err := config.Load(config.LoadOptions{})
	require.NoError(t, err)

	assert.Equal(t, "mx.gob.vucem", ctx.Organization())
	assert.Equal(t, "componente", ctx.PackageName())
	assert.Equal(t, "8080", ctx.Port())
	assert.True(t, ctx.FeatureEnabled(config.KeyEnableDocker))
	assert.True(t, ctx.FeatureEnabled(config.KeyEnableSecurity))
	assert.True(t, ctx.FeatureEnabled(config.KeyEnableSwagger))
	assert.Equal(t, "mx.gob.vucem.componente", ctx.JavaPackage())
}

func TestLoadContextFile(t *testing.T) {
	tests := []struct {
		name     string
		file     string
		content  string
		validate func(t *testing.T, ctx config.Context)
	}{
		{
			name: "yaml_file",
			file: "context.yaml",
			content: `
organization: com.example
package_name: orders
port: 9090
enable_docker: "no"
`,
			validate: func(t *testing.T, ctx config.Context) {
				assert.Equal(t, "com.example", ctx.Organization())
				assert.Equal(t, "orders", ctx.PackageName())
				assert.Equal(t, "9090", ctx.Port())
				assert.False(t, ctx.FeatureEnabled(config.KeyEnableDocker))
				// untouched keys keep their defaults
				assert.True(t, ctx.FeatureEnabled(config.KeyEnableSwagger))
			},
		},
		{
			name: "toml_file",
			file: "context.toml",
			content: `
organization = "org.acme"
package_name = "billing"
port = 8443
`,
			validate: func(t *testing.T, ctx config.Context) {
				assert.Equal(t, "org.acme.billing", ctx.JavaPackage())
				assert.Equal(t, "8443", ctx.Port())
			},
		},
		{
			name: "json_replay_file_is_unwrapped",
			file: "replay.json",
			content: `{
  "cookiecutter": {
    "organization": "com.example",
    "package_name": "orders",
    "enable_security": "no"
  }
}`,
			validate: func(t *testing.T, ctx config.Context) {
				assert.Equal(t, "com.example.orders", ctx.JavaPackage())
				assert.False(t, ctx.FeatureEnabled(config.KeyEnableSecurity))
				assert.NotContains(t, ctx, "cookiecutter.organization")
			},
		},
		{
			name:    "json_numbers_keep_decimal_form",
			file:    "context.json",
			content: `{"port": 1000000, "component_area": 2.5}`,
			validate: func(t *testing.T, ctx config.Context) {
				assert.Equal(t, "1000000", ctx.Port())
				assert.Equal(t, "2.5", ctx.Get(config.KeyComponentArea))
			},
		},
		{
			name:    "yaml_large_port",
			file:    "context.yml",
			content: "port: 1000000\n",
			validate: func(t *testing.T, ctx config.Context) {
				assert.Equal(t, "1000000", ctx.Port())
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, t.TempDir(), tt.file, tt.content)

			ctx, err := config.Load(config.LoadOptions{ContextFile: path})
			require.NoError(t, err)
			tt.validate(t, ctx)
		})
	}
}

func TestLoadContextFileErrors(t *testing.T) {
	dir := t.TempDir()

	t.Run("missing_file", func(t *testing.T) {
		_, err := config.Load(config.LoadOptions{ContextFile: filepath.Join(dir, "nope.yaml")})
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrConfigLoad))
	})

	t.Run("unsupported_extension", func(t *testing.T) {
		path := writeFile(t, dir, "context.ini", "a=b")
		_, err := config.Load(config.LoadOptions{ContextFile: path})
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrConfigLoad))
	})

	t.Run("malformed_file", func(t *testing.T) {
		path := writeFile(t, dir, "broken.toml", "[unterminated")
		_, err := config.Load(config.LoadOptions{ContextFile: path})
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrConfigParse))
	})
}

func TestLoadLayering(t *testing.T) {
	path := writeFile(t, t.TempDir(), "context.yaml", `
package_name: fromfile
port: "7000"
organization: com.file
`)
	t.Setenv("GENHOOKS_PORT", "7100")
	t.Setenv("GENHOOKS_ORGANIZATION", "com.env")

	ctx, err := config.Load(config.LoadOptions{
		ContextFile: path,
		Overrides:   map[string]string{"organization": "com.flag"},
	})
	require.NoError(t, err)

	assert.Equal(t, "fromfile", ctx.PackageName(), "file overrides defaults")
	assert.Equal(t, "7100", ctx.Port(), "env overrides file")
	assert.Equal(t, "com.flag", ctx.Organization(), "overrides win")
}

func TestLoadCustomEnvPrefix(t *testing.T) {
	t.Setenv("HOOK_PACKAGE_NAME", "inventory")

	ctx, err := config.Load(config.LoadOptions{EnvPrefix: "HOOK_"})
	require.NoError(t, err)
	assert.Equal(t, "inventory", ctx.PackageName())
}

func TestParseOverrides(t *testing.T) {
	got, err := config.ParseOverrides([]string{"port=9000", "project_name=A=B", "enable_docker="})
	require.NoError(t, err)
	assert.Equal(t, map[string]string{
		"port":          "9000",
		"project_name":  "A=B",
		"enable_docker": "",
	}, got)

	for _, bad := range []string{"noequals", "=value", " =x"} {
		_, err := config.ParseOverrides([]string{bad})
		assert.Error(t, err, bad)
		assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput), bad)
	}
}

func TestContextAccessors(t *testing.T) {
	ctx := config.Context{
		config.KeyOrganization:  "com.example",
		config.KeyPackageName:   "orders",
		config.KeyEnableDocker:  "yes",
		config.KeyEnableSwagger: "Yes",
	}

	assert.Equal(t, "com.example.orders", ctx.JavaPackage())
	assert.Equal(t, "com/example/orders", ctx.PackageDir())
	assert.True(t, ctx.FeatureEnabled(config.KeyEnableDocker))
	assert.False(t, ctx.FeatureEnabled(config.KeyEnableSwagger), "only exact yes enables")
	assert.False(t, ctx.FeatureEnabled(config.KeyEnableSecurity), "unset is disabled")

	t.Run("empty_organization", func(t *testing.T) {
		c := config.Context{config.KeyPackageName: "orders"}
		assert.Equal(t, "orders", c.JavaPackage())
		assert.Equal(t, "orders", c.PackageDir())
	})

	t.Run("with_copies", func(t *testing.T) {
		other := ctx.With(map[string]string{config.KeyPackageName: "billing"})
		assert.Equal(t, "billing", other.PackageName())
		assert.Equal(t, "orders", ctx.PackageName())
	})

	t.Run("keys_sorted", func(t *testing.T) {
		assert.Equal(t, []string{"enable_docker", "enable_swagger", "organization", "package_name"}, ctx.Keys())
	})
}
