// Package sanitize strips captured rich HTML down to a safe allow-list
// before anything downstream inserts it into a DOM or terminal renderer.
package sanitize

import (
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	policyOnce sync.Once
	policy     *bluemonday.Policy
)

// buildPolicy mirrors the classifier's structural tag list plus the basic
// formatting tags a clipboard capture commonly carries. Scripts, styles,
// event handlers, and everything else are dropped.
func buildPolicy() *bluemonday.Policy {
	p := bluemonday.NewPolicy()
	p.AllowElements(
		"p", "div", "span", "br", "hr",
		"h1", "h2", "h3", "h4", "h5", "h6",
		"ul", "ol", "li",
		"table", "thead", "tbody", "tr", "td", "th",
		"strong", "em", "b", "i", "u", "code", "pre", "blockquote",
	)
	p.AllowAttrs("href").OnElements("a")
	p.AllowStandardURLs()
	p.AllowAttrs("src", "alt").OnElements("img")
	return p
}

// HTML returns content reduced to the allow-list. It never fails; input
// that is not HTML at all comes back as escaped text.
func HTML(content string) string {
	policyOnce.Do(func() { policy = buildPolicy() })
	return policy.Sanitize(content)
}
