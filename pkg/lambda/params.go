package lambda

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Parameter extraction errors
var (
	// ErrMissingParameter is returned when a required parameter is absent
	ErrMissingParameter = errors.New("missing parameter")

	// ErrInvalidParameter is returned when a parameter fails format validation
	ErrInvalidParameter = errors.New("invalid parameter")
)

// ParamSource tells where a parameter is read from
type ParamSource int

const (
	SourcePath ParamSource = iota
	SourceQuery
)

func (s ParamSource) String() string {
	switch s {
	case SourcePath:
		return "path"
	case SourceQuery:
		return "query"
	default:
		return "unknown"
	}
}

// ParseParamSource parses "path" or "query"
func ParseParamSource(s string) (ParamSource, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "path", "":
		return SourcePath, nil
	case "query":
		return SourceQuery, nil
	default:
		return SourcePath, fmt.Errorf("unknown parameter source %q", s)
	}
}

// ParamFormat is the expected syntax of a parameter value
type ParamFormat int

const (
	// FormatHex accepts any non-empty hexadecimal string
	FormatHex ParamFormat = iota

	// FormatHexBytes additionally requires an even number of digits
	FormatHexBytes
)

// ParamSpec declares one required parameter of a route
type ParamSpec struct {
	Name   string
	Source ParamSource
	Format ParamFormat
}

// ParamError describes a missing or malformed parameter. Its message is safe
// to return to clients.
type ParamError struct {
	Name   string
	Source ParamSource
	Err    error
}

func (e *ParamError) Error() string {
	return fmt.Sprintf("%v: %s", e.Err, e.Name)
}

func (e *ParamError) Unwrap() error {
	return e.Err
}

// IsParamError reports whether err came from parameter extraction
func IsParamError(err error) bool {
	var paramErr *ParamError
	return errors.As(err, &paramErr)
}

var validate = validator.New()

// RequireParam extracts the parameter described by spec from req and returns
// it normalized: the 0x prefix is stripped and the digits are lower-cased.
func RequireParam(req *Request, spec ParamSpec) (string, error) {
	var (
		raw string
		ok  bool
	)
	switch spec.Source {
	case SourceQuery:
		raw, ok = req.QueryParams[spec.Name]
	default:
		raw, ok = req.PathParams[spec.Name]
	}

	raw = strings.TrimSpace(raw)
	if !ok || raw == "" {
		return "", &ParamError{Name: spec.Name, Source: spec.Source, Err: ErrMissingParameter}
	}

	value, err := normalizeHex(raw, spec.Format)
	if err != nil {
		return "", &ParamError{Name: spec.Name, Source: spec.Source, Err: ErrInvalidParameter}
	}
	return value, nil
}

// RequireParams extracts specs in order and stops at the first failure
func RequireParams(req *Request, specs ...ParamSpec) ([]string, error) {
	values := make([]string, 0, len(specs))
	for _, spec := range specs {
		value, err := RequireParam(req, spec)
		if err != nil {
			return nil, err
		}
		values = append(values, value)
	}
	return values, nil
}

func normalizeHex(raw string, format ParamFormat) (string, error) {
	digits := raw
	if len(digits) >= 2 && digits[0] == '0' && (digits[1] == 'x' || digits[1] == 'X') {
		digits = digits[2:]
	}

	// the hexadecimal rule tolerates its own 0x prefix, so a doubled prefix must be caught here
	if strings.ContainsAny(digits, "xX") {
		return "", fmt.Errorf("unexpected prefix in %q", raw)
	}
	if err := validate.Var(digits, "required,hexadecimal"); err != nil {
		return "", err
	}
	if format == FormatHexBytes && len(digits)%2 != 0 {
		return "", fmt.Errorf("odd number of hex digits")
	}

	return strings.ToLower(digits), nil
}
