package config

import (
	"path"
	"sort"
	"strings"
)

// Recognized context keys
const (
	KeyProjectName    = "project_name"
	KeyProjectSlug    = "project_slug"
	KeyComponentName  = "component_name"
	KeyComponentArea  = "component_area"
	KeyOrganization   = "organization"
	KeyPackageName    = "package_name"
	KeyPort           = "port"
	KeyEnableDocker   = "enable_docker"
	KeyEnableSecurity = "enable_security"
	KeyEnableSwagger  = "enable_swagger"
)

// FeatureOn is the only value that enables a feature flag
const FeatureOn = "yes"

// Context is the template context: option name to string value.
// It is treated as immutable once loaded.
type Context map[string]string

// Get returns the value for key, or "" when unset
func (c Context) Get(key string) string {
	return c[key]
}

// Organization returns the dotted organization identifier
func (c Context) Organization() string {
	return c[KeyOrganization]
}

// PackageName returns the package identifier
func (c Context) PackageName() string {
	return c[KeyPackageName]
}

// Port returns the raw port string
func (c Context) Port() string {
	return c[KeyPort]
}

// JavaPackage returns <organization>.<package_name>
func (c Context) JavaPackage() string {
	if c.Organization() == "" {
		return c.PackageName()
	}
	return c.Organization() + "." + c.PackageName()
}

// PackageDir returns the slash-separated package directory: the
// organization with dots turned into separators, then the package name.
func (c Context) PackageDir() string {
	return path.Join(strings.ReplaceAll(c.Organization(), ".", "/"), c.PackageName())
}

// FeatureEnabled reports whether flag is set to exactly "yes"
func (c Context) FeatureEnabled(flag string) bool {
	return c[flag] == FeatureOn
}

// With returns a copy of c with the given overrides applied
func (c Context) With(overrides map[string]string) Context {
	out := make(Context, len(c)+len(overrides))
	for k, v := range c {
		out[k] = v
	}
	for k, v := range overrides {
		out[k] = v
	}
	return out
}

// Keys returns the context keys in sorted order
func (c Context) Keys() []string {
	keys := make([]string, 0, len(c))
	for k := range c {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
