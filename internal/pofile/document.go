package pofile

import "strings"

// Document is a gettext catalog held in memory as lines.
type Document struct {
	// Path is the location the catalog was read from.
	Path string

	// Language is the normalized language code derived from the
	// catalog's resource directory, for example "en_GB".
	Language string

	// Content is the full text with line endings normalized to \n.
	Content string

	// Lines is Content split on \n. The final empty element is kept
	// when the file ends with a newline so a join reproduces the file.
	Lines []string
}

// Parse builds a Document from raw catalog bytes. Windows line endings
// are normalized so line processing and joins behave uniformly.
func Parse(path, language string, data []byte) *Document {
	content := strings.ReplaceAll(string(data), "\r\n", "\n")
	return &Document{
		Path:     path,
		Language: language,
		Content:  content,
		Lines:    strings.Split(content, "\n"),
	}
}

// Join reassembles lines into file content.
func Join(lines []string) string {
	return strings.Join(lines, "\n")
}
