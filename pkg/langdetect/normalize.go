package langdetect

import "strings"

// tagAliases maps common fence info-string spellings to the canonical tag.
// Keys are compared lowercase.
//
//nolint:gochecknoglobals // Read-only lookup table.
var tagAliases = map[string]string{
	"golang":     langGo,
	"py":         langPython,
	"python3":    langPython,
	"js":         langJavaScript,
	"node":       langJavaScript,
	"nodejs":     langJavaScript,
	"ts":         "typescript",
	"sh":         langBash,
	"shell":      langBash,
	"zsh":        langBash,
	"shell-script": langBash,
	"yml":        langYAML,
	"rs":         langRust,
	"docker":     langDockerfile,
	"c++":        "cpp",
	"c#":         "csharp",
	"cs":         "csharp",
	"md":         "markdown",
	"plaintext":  langText,
	"plain":      langText,
	"txt":        langText,
}

// NormalizeTag maps a fence info-string to its canonical language tag:
// lowercased, with common aliases resolved ("golang" becomes "go",
// "yml" becomes "yaml"). Unknown tags pass through lowercased so user
// intent is preserved.
func NormalizeTag(tag string) string {
	tag = strings.ToLower(strings.TrimSpace(tag))
	if canonical, ok := tagAliases[tag]; ok {
		return canonical
	}
	return tag
}
