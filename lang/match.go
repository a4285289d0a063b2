package lang

import (
	"golang.org/x/text/language"
)

// makeMatcher builds a matcher over the language codes that parse as BCP 47
// tags. Codes that do not parse can still be looked up directly but never
// take part in negotiation.
func makeMatcher(codes []string) language.Matcher {
	tags := make([]language.Tag, 0, len(codes))

	for _, code := range codes {
		if tag, err := language.Parse(code); err == nil {
			tags = append(tags, tag)
		}
	}

	if len(tags) == 0 {
		return nil
	}

	return language.NewMatcher(tags)
}

// Match returns the loaded language code that best serves the preferred
// languages, given as BCP 47 tags or Accept-Language header values, and
// reports whether any loaded language is an acceptable match.
//
// A preferred value that names a loaded code exactly is returned as-is.
func (l *Linguini) Match(preferred ...string) (string, bool) {
	for _, p := range preferred {
		if l.HasLanguage(p) {
			return p, true
		}
	}

	if l.matcher == nil {
		return "", false
	}

	var want []language.Tag

	for _, p := range preferred {
		tags, _, err := language.ParseAcceptLanguage(p)
		if err != nil {
			continue
		}

		want = append(want, tags...)
	}

	if len(want) == 0 {
		return "", false
	}

	_, index, conf := l.matcher.Match(want...)
	if conf == language.No {
		return "", false
	}

	return l.supported()[index], true
}

// supported returns the codes in the order given to the matcher.
func (l *Linguini) supported() []string {
	codes := make([]string, 0, len(l.codes))

	for _, code := range l.codes {
		if _, err := language.Parse(code); err == nil {
			codes = append(codes, code)
		}
	}

	return codes
}
