package addonxml

import "strings"

// Document is an addon.xml held as normalized lines. CRLF line endings are
// normalized to LF on parse; a changed document is written back with LF.
// The trailing empty element that Split produces for files ending in a
// newline is kept, so Join reproduces the original content exactly.
type Document struct {
	Path    string
	Content string
	Lines   []string
}

// Parse builds a Document from raw file content.
func Parse(path string, data []byte) *Document {
	content := strings.ReplaceAll(string(data), "\r\n", "\n")
	return &Document{
		Path:    path,
		Content: content,
		Lines:   strings.Split(content, "\n"),
	}
}

// Join renders a line slice back to file content.
func Join(lines []string) string {
	return strings.Join(lines, "\n")
}
