package services

import (
	"fmt"
	"unicode"
	"unicode/utf8"
)

// genericActivities fills any day that has no canned content.
var genericActivities = []string{
	"Explore local attractions",
	"Try authentic local cuisine",
	"Visit cultural sites",
	"Shopping & leisure time",
}

var genericHighlights = []string{
	"Local Landmarks & Attractions",
	"Cultural Sites & Museums",
	"Famous Local Cuisine",
	"Shopping Districts",
	"Natural Scenery",
}

// GenericActivities returns a fresh copy of the filler activity list.
func GenericActivities() []string {
	return append([]string(nil), genericActivities...)
}

// Synthesize builds a record for a destination missing from the table.
// destination is taken as typed; only its first character is upper-cased.
func Synthesize(destination string, days int) DestinationRecord {
	if days < 0 {
		days = 0
	}
	itinerary := make([]DayPlan, days)
	for i := range itinerary {
		itinerary[i] = DayPlan{Day: i + 1, Activities: GenericActivities()}
	}
	return DestinationRecord{
		Name:        capitalizeFirst(destination),
		Description: fmt.Sprintf("A wonderful destination waiting to be explored! Here's a suggested itinerary for %d days.", days),
		Highlights:  append([]string(nil), genericHighlights...),
		Itinerary:   itinerary,
	}
}

func capitalizeFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
