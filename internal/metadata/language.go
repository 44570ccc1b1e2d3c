package metadata

import (
	"regexp"
	"strings"
)

// languageDirPattern pulls the language code out of a catalog path. Kodi
// names catalog directories resource.language.<code>, where <code> is a
// two or three letter language, an optional region, and an optional
// @modifier tail (resource.language.es_es@valencia).
var languageDirPattern = regexp.MustCompile(`resource\.language\.([a-z]{2,3}(?:_[A-Za-z]{2})?(?:@[^/\s]+)?)`)

// LanguageCodeFromPath derives the normalized language code from a catalog
// file or directory path. ok is false when the path carries no
// resource.language component.
func LanguageCodeFromPath(path string) (code string, ok bool) {
	m := languageDirPattern.FindStringSubmatch(path)
	if m == nil {
		return "", false
	}
	return NormalizeLanguageCode(m[1]), true
}

// NormalizeLanguageCode uppercases the two region letters of a ll_CC code
// and preserves everything after them, so en_gb becomes en_GB and
// es_es@valencia becomes es_ES@valencia. Codes without a region pass
// through unchanged.
func NormalizeLanguageCode(code string) string {
	lang, rest, found := strings.Cut(code, "_")
	if !found {
		return code
	}
	if len(rest) < 2 {
		return lang + "_" + strings.ToUpper(rest)
	}
	return lang + "_" + strings.ToUpper(rest[:2]) + rest[2:]
}
