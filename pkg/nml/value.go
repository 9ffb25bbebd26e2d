package nml

import (
	"fmt"
	"net/url"
	"strings"
)

// Value is an optional attribute value: either absent or a present string.
// Absent is distinct from any real value, including the empty string, so a
// never-provided optional attribute is distinguishable from one a caller
// explicitly emptied. The serializer omits absent values from output.
type Value struct {
	present bool
	str     string
}

// Absent is the "no value provided" marker.
var Absent = Value{}

// Present wraps a string as a present attribute value.
func Present(s string) Value {
	return Value{present: true, str: s}
}

// IsSet reports whether the value is present.
func (v Value) IsSet() bool { return v.present }

// String returns the wrapped string, or "" when absent.
func (v Value) String() string { return v.str }

// Or returns the wrapped string, or def when absent.
func (v Value) Or(def string) string {
	if v.present {
		return v.str
	}
	return def
}

// GoString makes absent and present empty values distinguishable in test
// failure output.
func (v Value) GoString() string {
	if !v.present {
		return "nml.Absent"
	}
	return fmt.Sprintf("nml.Present(%q)", v.str)
}

// validateURI checks that s is a syntactically valid absolute URI with a
// scheme, the well-formedness rule applied to identifiers and encodings.
func validateURI(s string) error {
	u, err := url.Parse(s)
	if err != nil {
		return err
	}
	if u.Scheme == "" {
		return fmt.Errorf("uri %q has no scheme", s)
	}
	return nil
}

// validateName rejects empty and all-whitespace names.
func validateName(s string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("name must not be empty")
	}
	return nil
}
