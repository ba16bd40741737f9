package content

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// TagsToRemove are elements dropped from post bodies along with their content.
var TagsToRemove = []string{
	"script",
	"style",
	"noscript",
	"iframe",
	"frame",
	"frameset",
	"object",
	"embed",
	"applet",
	"form",
	"input",
	"button",
	"select",
	"textarea",
	"link",
	"meta",
	"base",
}

var urlAttributes = []string{"href", "src", "action", "formaction", "xlink:href", "poster"}

// Sanitizer cleans remote post HTML before it is rendered unescaped.
type Sanitizer struct{}

// NewSanitizer creates a Sanitizer.
func NewSanitizer() *Sanitizer {
	return &Sanitizer{}
}

// Sanitize removes active content from an HTML fragment and returns the
// cleaned fragment.
func (s *Sanitizer) Sanitize(html string) (string, error) {
	if strings.TrimSpace(html) == "" {
		return "", nil
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", err
	}
	body := doc.Find("body")
	s.sanitizeSelection(body)
	return body.Html()
}

func (s *Sanitizer) sanitizeSelection(sel *goquery.Selection) {
	sel.Find(strings.Join(TagsToRemove, ", ")).Remove()

	sel.Find("*").Each(func(_ int, el *goquery.Selection) {
		node := el.Get(0)
		var drop []string
		for _, attr := range node.Attr {
			key := strings.ToLower(attr.Key)
			if strings.HasPrefix(key, "on") || key == "srcdoc" {
				drop = append(drop, attr.Key)
				continue
			}
			if isURLAttribute(key) && unsafeURL(attr.Val) {
				drop = append(drop, attr.Key)
			}
		}
		for _, k := range drop {
			el.RemoveAttr(k)
		}
	})
}

func isURLAttribute(key string) bool {
	for _, a := range urlAttributes {
		if key == a {
			return true
		}
	}
	return false
}

func unsafeURL(v string) bool {
	var b strings.Builder
	for _, r := range v {
		// Browsers ignore whitespace and control characters inside schemes.
		if r <= ' ' {
			continue
		}
		b.WriteRune(r)
	}
	u := strings.ToLower(b.String())
	return strings.HasPrefix(u, "javascript:") ||
		strings.HasPrefix(u, "vbscript:") ||
		strings.HasPrefix(u, "data:text/html")
}
