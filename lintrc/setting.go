package lintrc

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"
)

// Setting is the effective value of one rule: a severity, optionally
// followed by an ordered list of rule options.
//
// The three shapes a rule table accepts map onto Setting as:
//
//	"off"              -> Disabled()
//	"error"            -> Level(Error)
//	["error", 2]       -> WithOptions(Error, 2)
//
// Options are opaque to this package; they are passed through to the
// linting engine untouched.
type Setting struct {
	Severity Severity
	Options  []any
}

// Disabled returns the setting that turns a rule off.
func Disabled() Setting {
	return Setting{Severity: Off}
}

// Level returns a setting with the given severity and no options.
func Level(s Severity) Setting {
	return Setting{Severity: s}
}

// WithOptions returns a setting with the given severity and options.
func WithOptions(s Severity, opts ...any) Setting {
	normalized := make([]any, len(opts))
	for i, o := range opts {
		normalized[i] = NormalizeValue(o)
	}
	return Setting{Severity: s, Options: normalized}
}

// HasOptions reports whether the setting carries any rule options.
func (s Setting) HasOptions() bool {
	return len(s.Options) > 0
}

// Enabled reports whether the rule is turned on.
func (s Setting) Enabled() bool {
	return s.Severity != Off
}

// Tuple renders the setting in rule-table form: the bare severity token
// when there are no options, otherwise a [token, options...] list.
func (s Setting) Tuple() any {
	if !s.HasOptions() {
		return s.Severity.String()
	}
	out := make([]any, 0, len(s.Options)+1)
	out = append(out, s.Severity.String())
	for _, o := range s.Options {
		out = append(out, copyValue(o))
	}
	return out
}

// Equal reports whether two settings have the same severity and deeply
// equal options.
func (s Setting) Equal(o Setting) bool {
	if s.Severity != o.Severity || len(s.Options) != len(o.Options) {
		return false
	}
	return reflect.DeepEqual(s.Options, o.Options) || len(s.Options) == 0
}

// String implements fmt.Stringer.
func (s Setting) String() string {
	if !s.HasOptions() {
		return s.Severity.String()
	}
	return fmt.Sprintf("%v", s.Tuple())
}

// clone returns a deep copy so resolved tables never alias document data.
func (s Setting) clone() Setting {
	if s.Options == nil {
		return Setting{Severity: s.Severity}
	}
	opts := make([]any, len(s.Options))
	for i, o := range s.Options {
		opts[i] = copyValue(o)
	}
	return Setting{Severity: s.Severity, Options: opts}
}

// ParseSetting parses a raw rule-table value: a severity token or number,
// or a non-empty list whose first element is a severity.
func ParseSetting(raw any) (Setting, error) {
	switch t := NormalizeValue(raw).(type) {
	case Setting:
		return t.clone(), nil
	case []any:
		if len(t) == 0 {
			return Setting{}, fmt.Errorf("empty rule tuple: expected [severity, options...]")
		}
		sev, err := ParseSeverity(t[0])
		if err != nil {
			return Setting{}, err
		}
		if len(t) == 1 {
			return Level(sev), nil
		}
		return WithOptions(sev, t[1:]...), nil
	case nil:
		return Setting{}, fmt.Errorf("missing rule value")
	default:
		sev, err := ParseSeverity(t)
		if err != nil {
			return Setting{}, err
		}
		return Level(sev), nil
	}
}

// ruleNamePattern accepts bare names ("indent"), plugin names
// ("react/jsx-indent"), scoped names ("@typescript-eslint/indent") and
// scoped plugin names ("@scope/plugin/rule").
var ruleNamePattern = regexp.MustCompile(`^(@[a-z0-9][a-z0-9._~-]*/)?([a-z0-9][a-z0-9._~-]*/)?[A-Za-z0-9][A-Za-z0-9_-]*$`)

// ValidRuleName reports whether name is a syntactically valid rule name.
// It does not check that such a rule exists.
func ValidRuleName(name string) bool {
	return ruleNamePattern.MatchString(name)
}

// RulePlugin returns the plugin namespace of a rule name, or "" for a core
// rule. "@typescript-eslint/indent" yields "@typescript-eslint".
func RulePlugin(name string) string {
	idx := strings.LastIndex(name, "/")
	if idx < 0 {
		return ""
	}
	return name[:idx]
}
