// Package slug maps bilingual city and category names to URL slugs and back.
//
// The forward and reverse tables are maintained independently and are not
// mutual inverses: the reverse lookup is best effort and falls back to a
// lossy capitalised guess for unknown slugs.
package slug

import (
	"regexp"
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/bilgisen/uknews/internal/models"
)

var whitespace = regexp.MustCompile(`\s+`)

// citySlugs is keyed by both English and Hindi display names.
var citySlugs = map[string]string{
	"Dehradun":    "dehradun",
	"देहरादून":    "dehradun",
	"Haridwar":    "haridwar",
	"हरिद्वार":    "haridwar",
	"Rishikesh":   "rishikesh",
	"ऋषिकेश":      "rishikesh",
	"Nainital":    "nainital",
	"नैनीताल":     "nainital",
	"Mussoorie":   "mussoorie",
	"मसूरी":       "mussoorie",
	"Almora":      "almora",
	"अल्मोड़ा":    "almora",
	"Pauri":       "pauri",
	"पौड़ी":       "pauri",
	"Bageshwar":   "bageshwar",
	"बागेश्वर":    "bageshwar",
	"Chamoli":     "chamoli",
	"चमोली":       "chamoli",
	"Uttarkashi":  "uttarkashi",
	"उत्तरकाशी":   "uttarkashi",
	"Pithoragarh": "pithoragarh",
	"पिथौरागढ़":   "pithoragarh",
	"Rudraprayag": "rudraprayag",
	"रुद्रप्रयाग": "rudraprayag",
	"Tehri":       "tehri",
	"टिहरी":       "tehri",
	"Haldwani":    "haldwani",
	"हल्द्वानी":   "haldwani",
	"Kashipur":    "kashipur",
	"काशीपुर":     "kashipur",
	"Kotdwar":     "kotdwar",
	"कोटद्वार":    "kotdwar",
	"Ramnagar":    "ramnagar",
	"रामनगर":      "ramnagar",
	"Roorkee":     "roorkee",
	"रुड़की":      "roorkee",
	"Tanakpur":    "tanakpur",
	"तनकपुर":      "tanakpur",
}

var cityNames = map[string]models.BilingualText{
	"dehradun":    {EN: "Dehradun", HI: "देहरादून"},
	"nainital":    {EN: "Nainital", HI: "नैनीताल"},
	"haridwar":    {EN: "Haridwar", HI: "हरिद्वार"},
	"mussoorie":   {EN: "Mussoorie", HI: "मसूरी"},
	"rishikesh":   {EN: "Rishikesh", HI: "ऋषिकेश"},
	"almora":      {EN: "Almora", HI: "अल्मोड़ा"},
	"pauri":       {EN: "Pauri", HI: "पौड़ी"},
	"bageshwar":   {EN: "Bageshwar", HI: "बागेश्वर"},
	"chamoli":     {EN: "Chamoli", HI: "चमोली"},
	"uttarkashi":  {EN: "Uttarkashi", HI: "उत्तरकाशी"},
	"pithoragarh": {EN: "Pithoragarh", HI: "पिथौरागढ़"},
	"rudraprayag": {EN: "Rudraprayag", HI: "रुद्रप्रयाग"},
	"tehri":       {EN: "Tehri", HI: "टिहरी"},
}

var categoryNames = map[string]models.BilingualText{
	"politics":  {EN: "Politics", HI: "राजनीति"},
	"education": {EN: "Education", HI: "शिक्षा"},
	"tourism":   {EN: "Tourism", HI: "पर्यटन"},
	"business":  {EN: "Business", HI: "व्यापार"},
	"sports":    {EN: "Sports", HI: "खेल"},
	"accidents": {EN: "Accidents", HI: "दुर्घटनाएं"},
}

// MainCities are the cities linked from the primary navigation.
var MainCities = []string{"dehradun", "nainital", "haridwar", "mussoorie", "rishikesh"}

// DisplayName is a reverse lookup result. Lossy is set when the name was
// guessed from the slug; the Hindi side then holds a non-Hindi string.
type DisplayName struct {
	Name  models.BilingualText
	Lossy bool
}

// CitySlug maps a display name in either language to its slug.
func CitySlug(name string) string {
	if s, ok := citySlugs[name]; ok {
		return s
	}
	return generic(name)
}

// CategorySlug derives a category slug; "&" becomes "and".
func CategorySlug(name string) string {
	return strings.ReplaceAll(generic(name), "&", "and")
}

// CityDisplayName resolves a city slug to its bilingual name.
func CityDisplayName(s string) DisplayName {
	if name, ok := cityNames[strings.ToLower(s)]; ok {
		return DisplayName{Name: name}
	}
	guess := capitalize(s)
	return DisplayName{Name: models.BilingualText{HI: guess, EN: guess}, Lossy: true}
}

// CategoryDisplayName resolves a category slug to its bilingual name.
func CategoryDisplayName(s string) DisplayName {
	if name, ok := categoryNames[strings.ToLower(s)]; ok {
		return DisplayName{Name: name}
	}
	guess := capitalize(s)
	return DisplayName{Name: models.BilingualText{HI: guess, EN: guess}, Lossy: true}
}

// Variants returns the surface forms tried against the upstream API:
// verbatim, lower-cased and capitalised, without duplicates.
func Variants(name string) []string {
	lower := strings.ToLower(name)
	out := make([]string, 0, 3)
	for _, v := range []string{name, lower, capitalize(lower)} {
		if v == "" || slices.Contains(out, v) {
			continue
		}
		out = append(out, v)
	}
	return out
}

func generic(name string) string {
	return whitespace.ReplaceAllString(strings.ToLower(name), "-")
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
