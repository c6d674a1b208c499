package catalog

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// ValidationError reports a missing or malformed tool argument. It is
// raised before any network I/O happens.
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string { return e.msg }

func errMissing(field string) *ValidationError {
	return &ValidationError{msg: fmt.Sprintf("invalid arguments: required field %q is missing", field)}
}

func errEnum(field string, allowed []string) *ValidationError {
	return &ValidationError{msg: fmt.Sprintf(
		"invalid arguments: field %q must be one of: %s", field, strings.Join(allowed, ", "))}
}

// arguments holds the raw tool arguments keyed by field name. Keeping the
// values as raw JSON makes the presence check trivially correct: the
// integer 0, false and "" all count as present, only an absent key or an
// explicit null count as missing.
type arguments map[string]json.RawMessage

func parseArguments(raw json.RawMessage) (arguments, error) {
	if len(raw) == 0 || bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
		return arguments{}, nil
	}
	var args arguments
	if err := json.Unmarshal(raw, &args); err != nil {
		return nil, &ValidationError{msg: "invalid arguments: expected a JSON object"}
	}
	return args, nil
}

// has reports whether the field was supplied with a non-null value.
func (a arguments) has(name string) bool {
	v, ok := a[name]
	if !ok {
		return false
	}
	return !bytes.Equal(bytes.TrimSpace(v), []byte("null"))
}

// str returns the field as a string when it is a JSON string.
func (a arguments) str(name string) (string, bool) {
	v, ok := a[name]
	if !ok {
		return "", false
	}
	var s string
	if err := json.Unmarshal(v, &s); err != nil {
		return "", false
	}
	return s, true
}

// boolean returns the field as a bool when it is a JSON bool.
func (a arguments) boolean(name string) (bool, bool) {
	v, ok := a[name]
	if !ok {
		return false, false
	}
	var b bool
	if err := json.Unmarshal(v, &b); err != nil {
		return false, false
	}
	return b, true
}

// scalar renders the field for use in a path segment, query parameter or
// summary line. Strings come back unquoted; everything else is compact
// JSON, which is what the upstream expects for numbers and booleans.
func (a arguments) scalar(name string) string {
	v, ok := a[name]
	if !ok {
		return ""
	}
	var s string
	if err := json.Unmarshal(v, &s); err == nil {
		return s
	}
	compact := new(bytes.Buffer)
	if err := json.Compact(compact, v); err != nil {
		return string(v)
	}
	return compact.String()
}

// validate applies the descriptor's required and enum constraints.
func validate(ep Endpoint, args arguments) error {
	for _, p := range ep.Params {
		if p.Required && !args.has(p.Name) {
			return errMissing(p.Name)
		}
		if len(p.Enum) > 0 && args.has(p.Name) {
			val := args.scalar(p.Name)
			ok := false
			for _, allowed := range p.Enum {
				if val == allowed {
					ok = true
					break
				}
			}
			if !ok {
				return errEnum(p.Name, p.Enum)
			}
		}
	}
	return nil
}
