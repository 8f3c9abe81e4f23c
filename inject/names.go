package inject

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// EnvName maps a dotted key to its environment form: "info.width" -> "info_width".
func EnvName(key string) string {
	return strings.ReplaceAll(key, ".", "_")
}

// LuaName maps a dotted key to its Lua global form: "info.width" -> "infoWidth".
func LuaName(key string) string {
	parts := strings.FieldsFunc(key, func(r rune) bool { return r == '.' || r == '_' })
	if len(parts) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString(parts[0])
	for _, p := range parts[1:] {
		r, size := utf8.DecodeRuneInString(p)
		b.WriteRune(unicode.ToUpper(r))
		b.WriteString(p[size:])
	}
	return b.String()
}

var luaKeywords = map[string]bool{
	"and": true, "break": true, "do": true, "else": true, "elseif": true,
	"end": true, "false": true, "for": true, "function": true, "goto": true,
	"if": true, "in": true, "local": true, "nil": true, "not": true,
	"or": true, "repeat": true, "return": true, "then": true, "true": true,
	"until": true, "while": true,
}

// validLuaName reports whether name can be referenced as a bare Lua global.
func validLuaName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty Lua name", ErrInvalidName)
	}
	for i, r := range name {
		ok := r == '_' || (r < utf8.RuneSelf && unicode.IsLetter(r)) || (i > 0 && r >= '0' && r <= '9')
		if !ok {
			return fmt.Errorf("%w: %q is not a Lua identifier", ErrInvalidName, name)
		}
	}
	if luaKeywords[name] {
		return fmt.Errorf("%w: %q is a Lua keyword", ErrInvalidName, name)
	}
	return nil
}
