// Package i18n holds the UI strings for both site languages.
package i18n

import (
	"embed"
	"fmt"
	"io/fs"
	"sort"

	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"github.com/bilgisen/uknews/internal/models"
)

//go:embed locales/*.yaml
var locales embed.FS

type Bundle struct {
	dict     map[models.Lang]map[string]string
	fallback models.Lang
}

// Load reads the embedded locale files.
func Load() (*Bundle, error) {
	return LoadFS(locales, "locales")
}

// LoadFS reads <lang>.yaml for every site language from dir in fsys. Nested
// keys are flattened with dots.
func LoadFS(fsys fs.FS, dir string) (*Bundle, error) {
	b := &Bundle{
		dict:     map[models.Lang]map[string]string{},
		fallback: models.DefaultLang,
	}
	for _, l := range []models.Lang{models.LangHindi, models.LangEnglish} {
		raw, err := fs.ReadFile(fsys, dir+"/"+string(l)+".yaml")
		if err != nil {
			return nil, fmt.Errorf("load locale %s: %w", l, err)
		}
		var tree map[string]any
		if err := yaml.Unmarshal(raw, &tree); err != nil {
			return nil, fmt.Errorf("unmarshal %s: %w", l, err)
		}
		flat := map[string]string{}
		flatten("", tree, flat)
		b.dict[l] = flat
	}
	return b, nil
}

func flatten(prefix string, in map[string]any, out map[string]string) {
	for k, v := range in {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		switch val := v.(type) {
		case map[string]any:
			flatten(key, val, out)
		case string:
			out[key] = val
		default:
			out[key] = fmt.Sprint(val)
		}
	}
}

// T returns translation for key in lang, falling back to Hindi and finally key.
func (b *Bundle) T(lang models.Lang, key string) string {
	if m, ok := b.dict[lang]; ok {
		if v, ok := m[key]; ok {
			return v
		}
	}
	if m, ok := b.dict[b.fallback]; ok {
		if v, ok := m[key]; ok {
			return v
		}
	}
	return key
}

// Condition translates a weather condition text, keeping unknown ones as is.
func (b *Bundle) Condition(lang models.Lang, text string) string {
	key := "weather.conditions." + text
	if v := b.T(lang, key); v != key {
		return v
	}
	return text
}

// Keys lists the keys defined for lang, sorted.
func (b *Bundle) Keys(lang models.Lang) []string {
	out := make([]string, 0, len(b.dict[lang]))
	for k := range b.dict[lang] {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

var matcher = language.NewMatcher([]language.Tag{language.Hindi, language.English})

// Match maps a language tag such as "en-IN" or "hi" to a site language.
// Unparseable input is reported as not matched.
func Match(tag string) (models.Lang, bool) {
	if l, ok := models.ParseLang(tag); ok {
		return l, true
	}
	t, err := language.Parse(tag)
	if err != nil {
		return models.DefaultLang, false
	}
	_, idx, conf := matcher.Match(t)
	if conf == language.No {
		return models.DefaultLang, false
	}
	if idx == 1 {
		return models.LangEnglish, true
	}
	return models.LangHindi, true
}
