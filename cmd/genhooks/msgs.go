package genhooks

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Generation hooks for the Spring Boot component template"
	MsgValidateShort   = "Check the template context before generation"
	MsgNormalizeShort  = "Relocate packages and prune disabled features after generation"
	MsgVariantShort    = "Print the template variant as TOML"
	MsgVersionShort    = "Print version information"
	MsgCompletionShort = "Generate shell completion script"

	// Version output
	MsgVersionFormat = "genhooks version %s\n  commit: %s\n  built:  %s\n"

	// Flag descriptions
	MsgFlagVerbose = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagFormat  = "Output format: auto, term or text"
	MsgFlagContext = "Template context file (TOML, YAML or JSON)"
	MsgFlagSet     = "Override a context value (key=value), repeatable"
	MsgFlagRoot    = "Root of the generated project"
	MsgFlagVariant = "Variant file (TOML or YAML) replacing the built-in one"

	// Error messages
	MsgErrResolveRoot = "cannot resolve project root %s"
	MsgErrNoCommand   = "no command specified"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/validate-long.txt
	msgValidateLongRaw string
	MsgValidateLong    = strings.TrimSpace(msgValidateLongRaw)

	//go:embed msgs/validate-example.txt
	msgValidateExampleRaw string
	MsgValidateExample    = strings.TrimRight(msgValidateExampleRaw, "\n")

	//go:embed msgs/normalize-long.txt
	msgNormalizeLongRaw string
	MsgNormalizeLong    = strings.TrimSpace(msgNormalizeLongRaw)

	//go:embed msgs/normalize-example.txt
	msgNormalizeExampleRaw string
	MsgNormalizeExample    = strings.TrimRight(msgNormalizeExampleRaw, "\n")

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)
)
