package enrich

import (
	"bytes"
	"context"
	"io"
	"mime"
	"net/url"
	"strings"

	"github.com/rs/zerolog/log"
	"golang.org/x/net/html"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/transform"
)

// LinkMeta is the preview metadata fetched for a URL clip. Available is
// false when the fetch or parse failed; the UI shows an explicit
// unavailable state rather than an error.
type LinkMeta struct {
	URL         string `json:"url"`
	Title       string `json:"title"`
	Description string `json:"description"`
	FaviconURL  string `json:"faviconUrl"`
	Available   bool   `json:"available"`
}

// FetchLinkMeta resolves metadata for one URL, memoized per URL. Failures
// are logged and collapse to an unavailable LinkMeta; they never propagate.
func (e *Enricher) FetchLinkMeta(ctx context.Context, rawURL string) LinkMeta {
	v := e.memo.do(keyFrom("link", rawURL), func() any {
		meta, err := e.fetchLinkMeta(ctx, rawURL)
		if err != nil {
			log.Warn().Err(err).Str("url", rawURL).Msg("link metadata fetch failed")
			return LinkMeta{URL: rawURL}
		}
		return meta
	})
	return v.(LinkMeta)
}

func (e *Enricher) fetchLinkMeta(ctx context.Context, rawURL string) (LinkMeta, error) {
	body, contentType, err := e.fetch.Get(ctx, rawURL)
	if err != nil {
		return LinkMeta{}, err
	}
	reader, err := decodeCharset(body, contentType)
	if err != nil {
		reader = bytes.NewReader(body)
	}
	doc, err := html.Parse(reader)
	if err != nil {
		return LinkMeta{}, err
	}
	meta := LinkMeta{URL: rawURL, Available: true}
	walkHead(doc, &meta)
	if meta.FaviconURL == "" {
		if u, err := url.Parse(rawURL); err == nil {
			meta.FaviconURL = u.Scheme + "://" + u.Host + "/favicon.ico"
		}
	}
	return meta, nil
}

// decodeCharset converts a response body to UTF-8 based on the declared
// charset. Unknown or missing charsets fall back to the raw bytes.
func decodeCharset(body []byte, contentType string) (io.Reader, error) {
	_, params, err := mime.ParseMediaType(contentType)
	if err != nil {
		return bytes.NewReader(body), nil
	}
	name := params["charset"]
	if name == "" || strings.EqualFold(name, "utf-8") {
		return bytes.NewReader(body), nil
	}
	enc, err := htmlindex.Get(name)
	if err != nil {
		return nil, err
	}
	return transform.NewReader(bytes.NewReader(body), enc.NewDecoder()), nil
}

func walkHead(n *html.Node, meta *LinkMeta) {
	if n.Type == html.ElementNode {
		switch strings.ToLower(n.Data) {
		case "title":
			if meta.Title == "" && n.FirstChild != nil {
				meta.Title = strings.TrimSpace(n.FirstChild.Data)
			}
		case "meta":
			name, content := attr(n, "name"), attr(n, "content")
			if name == "" {
				name = attr(n, "property")
			}
			switch strings.ToLower(name) {
			case "description", "og:description":
				if meta.Description == "" {
					meta.Description = strings.TrimSpace(content)
				}
			case "og:title":
				if meta.Title == "" {
					meta.Title = strings.TrimSpace(content)
				}
			}
		case "link":
			rel := strings.ToLower(attr(n, "rel"))
			if meta.FaviconURL == "" && (rel == "icon" || rel == "shortcut icon") {
				meta.FaviconURL = attr(n, "href")
			}
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		walkHead(c, meta)
	}
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if strings.EqualFold(a.Key, key) {
			return a.Val
		}
	}
	return ""
}
