package preview

import (
	"strings"

	"github.com/hyperifyio/cliplens/internal/clip"
)

// ContactPreview covers both email and phone clips: the literal value plus
// a protocol link target for one-click use.
type ContactPreview struct {
	Value string `json:"value"`
	Href  string `json:"href"`
}

func extractEmail(content string) Preview {
	addr := strings.TrimSpace(content)
	return Preview{Kind: clip.KindEmail, Contact: &ContactPreview{
		Value: addr,
		Href:  "mailto:" + addr,
	}}
}

func extractPhone(content string) Preview {
	number := strings.TrimSpace(content)
	return Preview{Kind: clip.KindPhone, Contact: &ContactPreview{
		Value: number,
		Href:  "tel:" + strings.Join(strings.Fields(number), ""),
	}}
}
