package strengthen

import (
	"errors"
	"strings"
)

var (
	ErrSyntaxKeyValue = errors.New("key value syntax error")
)

// StrCat cat strings:
// You should know that StrCat gradually builds advantages
// only when the number of parameters is> 2.
func StrCat(sv ...string) string {
	var sb strings.Builder
	var size int
	for _, s := range sv {
		size += len(s)
	}
	sb.Grow(size)
	for _, s := range sv {
		_, _ = sb.WriteString(s)
	}
	return sb.String()
}

func SimpleAtob(s string, dv bool) bool {
	switch strings.ToLower(s) {
	case "true", "yes", "on", "1":
		return true
	case "false", "no", "off", "0":
		return false
	}
	return dv
}

// SplitKeyValue parses <key>=<value>, the key is trimmed and lowercased.
func SplitKeyValue(s string) (string, string, error) {
	k, v, ok := strings.Cut(s, "=")
	if !ok {
		return "", "", ErrSyntaxKeyValue
	}
	k = strings.ToLower(strings.TrimSpace(k))
	if len(k) == 0 {
		return "", "", ErrSyntaxKeyValue
	}
	return k, v, nil
}
