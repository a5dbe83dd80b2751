// Package validate rejects a template context before any file is generated.
package validate

import (
	"errors"
	"regexp"
	"strconv"
	"strings"

	"github.com/arthur-debert/genhooks/pkg/config"
	generrors "github.com/arthur-debert/genhooks/pkg/errors"
	"github.com/arthur-debert/genhooks/pkg/logging"
)

// identifierPattern is a Java-safe package identifier of at least two characters
var identifierPattern = regexp.MustCompile(`^[_a-zA-Z][_a-zA-Z0-9]+$`)

// Accepted port range, inclusive
const (
	MinPort = 1024
	MaxPort = 65535
)

// PortKind classifies an invalid port
type PortKind string

const (
	PortNotANumber PortKind = "not_a_number"
	PortOutOfRange PortKind = "out_of_range"
)

// Printer receives the operator-facing lines of the validation phase
type Printer interface {
	Info(format string, args ...interface{})
	Error(format string, args ...interface{})
}

// Validate checks the context, returning the first failure
func Validate(ctx config.Context) error {
	if err := Identifier(ctx.PackageName()); err != nil {
		return err
	}
	return Port(ctx.Port())
}

// Identifier checks a package name
func Identifier(name string) error {
	if !identifierPattern.MatchString(name) {
		return generrors.Newf(generrors.ErrInvalidIdentifier, "package name %q is not a valid Java identifier", name).
			WithDetail("value", name)
	}
	return nil
}

// Port checks that value is a base-10 integer in [MinPort, MaxPort].
// Surrounding whitespace is ignored.
func Port(value string) error {
	port, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return portError(PortOutOfRange, value)
		}
		return portError(PortNotANumber, value)
	}
	if port < MinPort || port > MaxPort {
		return portError(PortOutOfRange, value)
	}
	return nil
}

func portError(kind PortKind, value string) error {
	var err *generrors.GenError
	if kind == PortOutOfRange {
		err = generrors.Newf(generrors.ErrInvalidPort, "port %q must be between %d and %d", value, MinPort, MaxPort)
	} else {
		err = generrors.Newf(generrors.ErrInvalidPort, "port %q is not a valid number", value)
	}
	return err.WithDetail("kind", kind).WithDetail("value", value)
}

// PortErrorKind extracts the PortKind of an INVALID_PORT error
func PortErrorKind(err error) (PortKind, bool) {
	if !generrors.IsErrorCode(err, generrors.ErrInvalidPort) {
		return "", false
	}
	kind, ok := generrors.GetErrorDetails(err)["kind"].(PortKind)
	return kind, ok
}

// Run validates ctx and reports the outcome through p. On failure the
// diagnostic is printed and the error returned; on success the component
// and its Java package are echoed for confirmation.
func Run(ctx config.Context, p Printer) error {
	logger := logging.GetLogger("validate")

	if err := Validate(ctx); err != nil {
		logger.Debug().Err(err).Msg("Validation failed")
		printDiagnostic(p, ctx, err)
		return err
	}

	logger.Info().
		Str("package", ctx.JavaPackage()).
		Str("port", ctx.Port()).
		Msg("Context is valid")

	p.Info(MsgGenerating, ctx.Get(config.KeyComponentName))
	p.Info(MsgArea, ctx.Get(config.KeyComponentArea))
	p.Info(MsgJavaPackage, ctx.JavaPackage())
	return nil
}

func printDiagnostic(p Printer, ctx config.Context, err error) {
	switch generrors.GetErrorCode(err) {
	case generrors.ErrInvalidIdentifier:
		p.Error(MsgErrIdentifier, ctx.PackageName())
		p.Error(MsgErrIdentifierHint)
	case generrors.ErrInvalidPort:
		if kind, _ := PortErrorKind(err); kind == PortOutOfRange {
			p.Error(MsgErrPortRange, MinPort, MaxPort)
		} else {
			p.Error(MsgErrPortNumber)
		}
	default:
		p.Error("ERROR: %v", err)
	}
}
