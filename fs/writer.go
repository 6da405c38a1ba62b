// Package fs saves rendered articles to disk for hand-off to an e-reader.
package fs

import (
	"context"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"unicode"

	"github.com/cespare/xxhash/v2"
	"github.com/szmeku/silesiaai"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// maxSlugLen caps the title part of a file name.
const maxSlugLen = 60

// foldLetters maps letters without a Unicode decomposition to ASCII.
var foldLetters = strings.NewReplacer("ł", "l", "Ł", "L", "ß", "ss", "ø", "o", "Ø", "O", "đ", "d", "Đ", "D")

// FileName builds a stable file name from an article title and its source
// URL: a lowercase ASCII slug of the title, a hash of the URL and ext.
// Example: "Zażółć gęślą jaźń!", https://example.com/a → zazolc-gesla-jazn-1a2b3c4d5e6f7a8b.html
func FileName(title, sourceURL, ext string) string {
	slug := Slugify(title)
	if slug == "" {
		slug = "article"
	}
	hash := strconv.FormatUint(xxhash.Sum64String(sourceURL), 16)
	if ext != "" && !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return slug + "-" + hash + ext
}

// Slugify lowercases s, strips diacritics and joins the remaining letter
// and digit runs with dashes.
func Slugify(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, foldLetters.Replace(s))
	if err != nil {
		folded = s
	}

	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(folded) {
		if r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)) {
			if dash && b.Len() > 0 {
				b.WriteByte('-')
			}
			dash = false
			b.WriteRune(r)
			if b.Len() >= maxSlugLen {
				break
			}
			continue
		}
		dash = true
	}
	return b.String()
}

// Writer writes files into a directory.
type Writer struct {
	baseDir string
}

// NewWriter creates a new Writer that writes to the given base directory.
func NewWriter(baseDir string) *Writer {
	return &Writer{baseDir: baseDir}
}

// Write stores content under name and returns the full path. The file is
// written to a temporary name first and renamed into place, so readers
// never see a partial document.
func (w *Writer) Write(ctx context.Context, name, content string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if name == "" || filepath.Base(name) != name {
		return "", silesiaai.Errorf(silesiaai.EINVALID, "invalid file name %q", name)
	}

	if err := os.MkdirAll(w.baseDir, 0755); err != nil {
		return "", err
	}

	tmp, err := os.CreateTemp(w.baseDir, "."+name+".*.tmp")
	if err != nil {
		return "", err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.WriteString(content); err != nil {
		tmp.Close()
		return "", err
	}
	if err := tmp.Close(); err != nil {
		return "", err
	}
	if err := os.Chmod(tmp.Name(), 0644); err != nil {
		return "", err
	}

	fullPath := filepath.Join(w.baseDir, name)
	if err := os.Rename(tmp.Name(), fullPath); err != nil {
		return "", err
	}
	return fullPath, nil
}

// WriteDocument stores a rendered document as an HTML file named after its
// title and source URL.
func (w *Writer) WriteDocument(ctx context.Context, doc *silesiaai.Document, sourceURL string) (string, error) {
	return w.Write(ctx, FileName(doc.Title, sourceURL, ".html"), doc.HTML)
}
