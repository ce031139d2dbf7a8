// Package format renders dates, ages and counters in the site languages.
package format

import (
	"fmt"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/bilgisen/uknews/internal/models"
)

// IST is the newsroom time zone used for displayed dates.
var IST = time.FixedZone("IST", 5*60*60+30*60)

var hindiMonths = [...]string{
	"जनवरी", "फ़रवरी", "मार्च", "अप्रैल", "मई", "जून",
	"जुलाई", "अगस्त", "सितंबर", "अक्तूबर", "नवंबर", "दिसंबर",
}

// TimeAgo buckets an age in hours: under one hour is "now", under a day is
// whole hours, anything else whole days.
func TimeAgo(hours float64, lang models.Lang) string {
	switch {
	case hours < 1:
		if lang == models.LangEnglish {
			return "Now"
		}
		return "अभी"
	case hours < 24:
		h := int(hours)
		if lang == models.LangEnglish {
			if h == 1 {
				return "1 hour ago"
			}
			return fmt.Sprintf("%d hours ago", h)
		}
		return fmt.Sprintf("%d घंटे पहले", h)
	default:
		d := int(hours) / 24
		if lang == models.LangEnglish {
			if d == 1 {
				return "1 day ago"
			}
			return fmt.Sprintf("%d days ago", d)
		}
		return fmt.Sprintf("%d दिन पहले", d)
	}
}

// LongDate formats t as "January 24, 2025" or "24 जनवरी 2025" in IST.
func LongDate(t time.Time, lang models.Lang) string {
	t = t.In(IST)
	if lang == models.LangEnglish {
		return t.Format("January 2, 2006")
	}
	return fmt.Sprintf("%d %s %d", t.Day(), hindiMonths[t.Month()-1], t.Year())
}

var printers = map[models.Lang]*message.Printer{
	models.LangHindi:   message.NewPrinter(language.Hindi),
	models.LangEnglish: message.NewPrinter(language.English),
}

// Count formats n with the grouping of lang.
func Count(n int, lang models.Lang) string {
	p, ok := printers[lang]
	if !ok {
		p = printers[models.DefaultLang]
	}
	return p.Sprintf("%d", n)
}
