package bluemonday

import (
	"bytes"
	"html/template"

	"github.com/szmeku/silesiaai"
)

// Ensure Renderer implements silesiaai.Renderer at compile time.
var _ silesiaai.Renderer = (*Renderer)(nil)

var documentTemplate = template.Must(template.New("document").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{.Title}}</title>
<style>
body{max-width:40em;margin:0 auto;padding:1em;font-family:Georgia,serif;line-height:1.6}
img{max-width:100%;height:auto}
pre{white-space:pre-wrap}
.source{margin-top:2em;font-size:.9em;border-top:1px solid #ccc;padding-top:.5em}
</style>
</head>
<body>
<h1>{{.Title}}</h1>
<article>
{{.Content}}
</article>
<p class="source">Source: <a href="{{.SourceURL}}">{{.SourceURL}}</a></p>
</body>
</html>
`))

// Renderer produces a standalone document from a title, an HTML fragment and
// the URL it came from. Content is always sanitized before it is embedded.
type Renderer struct {
	sanitizer *Sanitizer
}

// NewRenderer creates a Renderer that sanitizes with s. A nil s uses
// NewSanitizer.
func NewRenderer(s *Sanitizer) *Renderer {
	if s == nil {
		s = NewSanitizer()
	}
	return &Renderer{sanitizer: s}
}

// Render returns the document HTML. The output depends only on the three
// arguments.
func (r *Renderer) Render(title, content, sourceURL string) (string, error) {
	data := struct {
		Title     string
		Content   template.HTML
		SourceURL string
	}{
		Title: title,
		// Sanitized output is the only markup embedded unescaped.
		Content:   template.HTML(r.sanitizer.Sanitize(content)),
		SourceURL: sourceURL,
	}

	var buf bytes.Buffer
	if err := documentTemplate.Execute(&buf, data); err != nil {
		return "", silesiaai.WrapErrorf(silesiaai.EINTERNAL, err, "rendering document")
	}
	return buf.String(), nil
}
