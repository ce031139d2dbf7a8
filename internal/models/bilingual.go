package models

import "strings"

// Lang is a supported display language.
type Lang string

const (
	LangHindi   Lang = "hi"
	LangEnglish Lang = "en"

	// DefaultLang is used when no preference has been stored
	DefaultLang = LangHindi
)

// ParseLang accepts only the exact supported tags.
func ParseLang(s string) (Lang, bool) {
	switch Lang(strings.ToLower(strings.TrimSpace(s))) {
	case LangHindi:
		return LangHindi, true
	case LangEnglish:
		return LangEnglish, true
	}
	return "", false
}

// Other returns the opposite language, used by the language switch.
func (l Lang) Other() Lang {
	if l == LangEnglish {
		return LangHindi
	}
	return LangEnglish
}

// BilingualText holds a Hindi and an English rendition of the same value
type BilingualText struct {
	HI string `json:"hi"`
	EN string `json:"en"`
}

// Text builds a BilingualText from both sides.
func Text(hi, en string) BilingualText {
	return BilingualText{HI: hi, EN: en}
}

// Get selects the side for lang. An empty English side falls back to Hindi.
func (b BilingualText) Get(lang Lang) string {
	if lang == LangEnglish && b.EN != "" {
		return b.EN
	}
	if lang == LangEnglish {
		return b.HI
	}
	if b.HI != "" {
		return b.HI
	}
	return b.EN
}

// Complete reports whether both sides are populated.
func (b BilingualText) Complete() bool {
	return b.HI != "" && b.EN != ""
}

func (b BilingualText) IsZero() bool {
	return b.HI == "" && b.EN == ""
}
