package models

import "strings"

// BodyKind tags which representation of an article body is authoritative.
type BodyKind int

const (
	BodyEmpty BodyKind = iota
	BodyHTML
	BodyText
)

func (k BodyKind) String() string {
	switch k {
	case BodyHTML:
		return "html"
	case BodyText:
		return "text"
	default:
		return "empty"
	}
}

// ContentBody is the article body resolved for a single language.
// An Empty body renders the article description instead.
type ContentBody struct {
	Kind  BodyKind
	Value string
}

// ResolveBody picks html, then text, then Empty for lang.
func ResolveBody(a Article, lang Lang) ContentBody {
	v := a.Content.For(lang)
	if v == nil {
		return ContentBody{Kind: BodyEmpty}
	}
	if strings.TrimSpace(v.HTML) != "" {
		return ContentBody{Kind: BodyHTML, Value: v.HTML}
	}
	if strings.TrimSpace(v.Text) != "" {
		return ContentBody{Kind: BodyText, Value: v.Text}
	}
	return ContentBody{Kind: BodyEmpty}
}
