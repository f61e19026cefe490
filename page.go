package mdview

import (
	"fmt"
	"html"
	"strings"
)

// reloadScript arms the browser side of the push channel. The server
// closes the event stream after one message or a bounded wait; the
// EventSource reconnects to re-arm, and a reload re-issues it with the
// fresh version.
const reloadScript = `<script>
    const es = new EventSource('/reload?v=%d');
    es.onmessage = () => location.reload();
</script>
`

// PageData configures RenderPage.
type PageData struct {
	Title   string
	Body    string // rendered document HTML, emitted as-is
	CSS     string // inlined stylesheet; ignored when CSSHref is set
	CSSHref string // linked stylesheet, used in watch mode
	Reload  bool   // embed the reload script
	Version uint64 // cache version handed to the reload script
}

// RenderPage wraps a rendered document body in a minimal HTML shell
// with embedded or linked CSS.
func RenderPage(d PageData) string {
	var b strings.Builder
	b.WriteString("<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n")
	fmt.Fprintf(&b, "<title>%s</title>\n", html.EscapeString(d.Title))
	if d.CSSHref != "" {
		fmt.Fprintf(&b, "<link rel=\"stylesheet\" href=\"%s\">\n", d.CSSHref)
	} else if d.CSS != "" {
		b.WriteString("<style>\n")
		b.WriteString(d.CSS)
		if !strings.HasSuffix(d.CSS, "\n") {
			b.WriteByte('\n')
		}
		b.WriteString("</style>\n")
	}
	b.WriteString("</head>\n<body>\n")
	b.WriteString(d.Body)
	if d.Reload {
		fmt.Fprintf(&b, reloadScript, d.Version)
	}
	b.WriteString("</body>\n</html>\n")
	return b.String()
}
