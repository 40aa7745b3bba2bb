package display

import (
	"time"

	"golang.org/x/text/feature/plural"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

const (
	keyDue     = "Now!"
	keyDays    = "%d days"
	keyHours   = "%d hours"
	keyMinutes = "%d minutes"
	keySeconds = "%d seconds"
	keyCompact = "%s, %s, %s"
	keyFull    = "%s, %s, %s and %s"
)

// Remaining is the time left until a target, split into calendar days and
// the truncated remainder.
type Remaining struct {
	Days    int
	Hours   int
	Minutes int
	Seconds int
	Due     bool
}

var (
	supported = []language.Tag{language.English, language.German}
	catalogue = newCatalog()
)

func newCatalog() catalog.Catalog {
	b := catalog.NewBuilder(catalog.Fallback(language.English))
	set := func(tag language.Tag, key string, msg catalog.Message) {
		if err := b.Set(tag, key, msg); err != nil {
			panic(err)
		}
	}
	unit := func(one, other string) catalog.Message {
		return plural.Selectf(1, "%d", plural.One, one, plural.Other, other)
	}

	set(language.English, keyDue, catalog.String("Now!"))
	set(language.English, keyDays, unit("%d day", "%d days"))
	set(language.English, keyHours, unit("%d hour", "%d hours"))
	set(language.English, keyMinutes, unit("%d minute", "%d minutes"))
	set(language.English, keySeconds, unit("%d second", "%d seconds"))
	set(language.English, keyCompact, catalog.String("%s, %s, %s"))
	set(language.English, keyFull, catalog.String("%s, %s, %s and %s"))

	set(language.German, keyDue, catalog.String("Jetzt!"))
	set(language.German, keyDays, unit("%d Tag", "%d Tage"))
	set(language.German, keyHours, unit("%d Stunde", "%d Stunden"))
	set(language.German, keyMinutes, unit("%d Minute", "%d Minuten"))
	set(language.German, keySeconds, unit("%d Sekunde", "%d Sekunden"))
	set(language.German, keyCompact, catalog.String("%s, %s, %s"))
	set(language.German, keyFull, catalog.String("%s, %s, %s und %s"))
	return b
}

// Language resolves a BCP 47 string to one of the supported display
// languages, falling back to English.
func Language(lang string) language.Tag {
	tag, err := language.Parse(lang)
	if err != nil {
		return language.English
	}
	base, _ := tag.Base()
	for _, s := range supported {
		if sb, _ := s.Base(); sb == base {
			return s
		}
	}
	return language.English
}

func printer(lang string) *message.Printer {
	return message.NewPrinter(Language(lang), message.Catalog(catalogue))
}

// Breakdown splits the span between now and target. Days are counted by
// calendar steps in now's location, so a day with a DST shift still counts
// as one day.
func Breakdown(now, target time.Time) Remaining {
	if !target.After(now) {
		return Remaining{Due: true}
	}
	target = target.In(now.Location())

	days := int(target.Sub(now) / (24 * time.Hour))
	for days > 0 && now.AddDate(0, 0, days).After(target) {
		days--
	}
	for !now.AddDate(0, 0, days+1).After(target) {
		days++
	}

	rest := target.Sub(now.AddDate(0, 0, days))
	return Remaining{
		Days:    days,
		Hours:   int(rest / time.Hour),
		Minutes: int(rest % time.Hour / time.Minute),
		Seconds: int(rest % time.Minute / time.Second),
	}
}

// FormatRemaining renders days, hours and minutes, or the due indicator once
// the target is reached.
func FormatRemaining(now, target time.Time, lang string) string {
	p := printer(lang)
	r := Breakdown(now, target)
	if r.Due {
		return p.Sprintf(keyDue)
	}
	return p.Sprintf(keyCompact, p.Sprintf(keyDays, r.Days), p.Sprintf(keyHours, r.Hours), p.Sprintf(keyMinutes, r.Minutes))
}

// FormatRemainingFull is FormatRemaining with the seconds component.
func FormatRemainingFull(now, target time.Time, lang string) string {
	p := printer(lang)
	r := Breakdown(now, target)
	if r.Due {
		return p.Sprintf(keyDue)
	}
	return p.Sprintf(keyFull,
		p.Sprintf(keyDays, r.Days),
		p.Sprintf(keyHours, r.Hours),
		p.Sprintf(keyMinutes, r.Minutes),
		p.Sprintf(keySeconds, r.Seconds),
	)
}
