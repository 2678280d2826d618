// internal/service/classifier/rules.go

package classifier

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"postforge/internal/domain/overlay"
)

// text is the input in both raw and lower-cased form
type text struct {
	raw   string
	lower string
}

type predicate func(t text) bool

type contentTypeRule struct {
	match  predicate
	result overlay.ContentType
}

type toneRule struct {
	match  predicate
	result overlay.Tone
}

type importanceRule struct {
	match  predicate
	result overlay.Importance
}

func containsAny(subs ...string) predicate {
	return func(t text) bool {
		for _, s := range subs {
			if strings.Contains(t.lower, s) {
				return true
			}
		}
		return false
	}
}

func words(ws ...string) predicate {
	re := regexp.MustCompile(`\b(` + strings.Join(ws, "|") + `)\b`)
	return func(t text) bool {
		return re.MatchString(t.lower)
	}
}

func either(ps ...predicate) predicate {
	return func(t text) bool {
		for _, p := range ps {
			if p(t) {
				return true
			}
		}
		return false
	}
}

var (
	percentPattern  = regexp.MustCompile(`\d+(\.\d+)?\s?%`)
	currencyPattern = regexp.MustCompile(`[$€£¥]\s?\d`)
)

func statistic(t text) bool {
	return percentPattern.MatchString(t.raw) || currencyPattern.MatchString(t.raw)
}

// headline matches capitalised single-sentence text shorter than max runes
func headline(max int) predicate {
	return func(t text) bool {
		s := strings.TrimSpace(t.raw)
		if s == "" || utf8.RuneCountInString(s) >= max {
			return false
		}
		first, _ := utf8.DecodeRuneInString(s)
		if !unicode.IsUpper(first) {
			return false
		}
		body := strings.TrimRight(s, ".?!")
		return !strings.ContainsAny(body, ".?!")
	}
}

// Order is significant: the first matching rule wins.
var contentTypeRules = []contentTypeRule{
	{containsAny("©", "copyright", "watermark"), overlay.ContentWatermark},
	{either(containsAny("!"), words("urgent", "important")), overlay.ContentCallout},
	{either(containsAny(`"`, "“", "”"), words("said", "quote")), overlay.ContentQuote},
	{statistic, overlay.ContentStatistic},
	{words("click", "tap", "press", "enter"), overlay.ContentInstruction},
	{words("disclaimer", "terms", "conditions"), overlay.ContentDisclaimer},
	{either(containsAny("photo by"), words("credit", "credits", "courtesy")), overlay.ContentCredit},
	{headline(50), overlay.ContentTitle},
	{headline(100), overlay.ContentSubtitle},
}

var toneRules = []toneRule{
	{either(words("urgent", "hurry", "asap", "breaking"), containsAny("limited time", "act now")), overlay.ToneUrgent},
	{words("fun", "funny", "awesome", "amazing", "wow", "lol"), overlay.TonePlayful},
	{words("business", "professional", "corporate", "solution", "solutions", "enterprise"), overlay.ToneProfessional},
	{words("hey", "cool", "nice"), overlay.ToneCasual},
}

var importanceRules = []importanceRule{
	{words("urgent", "emergency", "critical"), overlay.ImportanceCritical},
	{words("important", "warning", "alert"), overlay.ImportanceHigh},
}

var importanceByType = map[overlay.ContentType]overlay.Importance{
	overlay.ContentTitle:      overlay.ImportanceHigh,
	overlay.ContentCallout:    overlay.ImportanceHigh,
	overlay.ContentWatermark:  overlay.ImportanceLow,
	overlay.ContentDisclaimer: overlay.ImportanceLow,
}
