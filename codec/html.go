package codec

import (
	"strings"
)

// htmlEscaper replaces the five HTML-special characters with named entities.
// strings.Replacer works in a single left-to-right pass, so '&' is never
// escaped twice.
var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#x27;",
)

// htmlUnescaper reverses the entities htmlEscaper produces (accepting the
// alternative "&#39;" spelling of the apostrophe as well).
var htmlUnescaper = strings.NewReplacer(
	"&lt;", "<",
	"&gt;", ">",
	"&quot;", `"`,
	"&#x27;", "'",
	"&#39;", "'",
	"&amp;", "&",
)

// -------------------------------------------------------

// HtmlCodec escapes the characters that are special in HTML markup. Decoding
// is deliberately lenient: entities it does not recognize are left in place
// rather than rejected, so decode never fails. The standard library's html
// package is not used because it escapes the quote characters numerically
// ("&#34;") and unescapes the entire HTML5 entity table.
type HtmlCodec struct {
}

func (h *HtmlCodec) Name() string {
	return "html"
}

func (h *HtmlCodec) Description() string {
	return "HTML entity encoding"
}

func (h *HtmlCodec) Encode(text string) string {
	return htmlEscaper.Replace(text)
}

func (h *HtmlCodec) Decode(encoded string) (string, error) {
	return htmlUnescaper.Replace(encoded), nil
}

func (h *HtmlCodec) TestPatterns() []string {
	return []string{
		`<a href="index.html?a=1&b=2">it's fine</a>`,
	}
}
