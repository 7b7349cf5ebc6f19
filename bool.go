package paramx

import "strings"

// Bool is a tri-state boolean result. The zero value is Unset, which lets
// callers tell "stored as false" apart from "not stored at all".
type Bool int8

const (
	Unset Bool = iota
	False
	True
)

// IsTrue reports whether b is True.
func (b Bool) IsTrue() bool { return b == True }

// IsFalse reports whether b is False.
func (b Bool) IsFalse() bool { return b == False }

// IsUnset reports whether b is Unset.
func (b Bool) IsUnset() bool { return b == Unset }

func (b Bool) String() string {
	switch b {
	case True:
		return "true"
	case False:
		return "false"
	default:
		return "unset"
	}
}

// ParseBool coerces a stored parameter value to True or False. The value is
// trimmed of surrounding whitespace and compared case-insensitively against
// the accepted truthy spellings "true", "yes", "on" and "1"; any other value
// is False. ParseBool never returns Unset and never errors.
func ParseBool(s string) Bool {
	switch strings.TrimSpace(strings.ToLower(s)) {
	case "true", "yes", "on", "1":
		return True
	}
	return False
}

// GetBool returns the parameter under key coerced via ParseBool, or Unset
// when the parameter is absent.
func (p *Params) GetBool(key string) Bool {
	return p.GetBoolDefault(key, Unset)
}

// GetBoolDefault returns the parameter under key coerced via ParseBool, or
// def exactly as given when the parameter is absent. def is passed through
// uncoerced, so it may itself be Unset.
func (p *Params) GetBoolDefault(key string, def Bool) Bool {
	v, ok := p.Get(key)
	if !ok {
		return def
	}
	return ParseBool(v)
}
