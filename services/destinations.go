package services

import (
	"sort"
	"strings"
)

// ─── Types ────────────────────────────────────────────────────────────────────

type DayPlan struct {
	Day        int      `json:"day"`
	Activities []string `json:"activities"`
}

type DestinationRecord struct {
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Highlights  []string  `json:"highlights"`
	Itinerary   []DayPlan `json:"itinerary"`
}

// Clone returns a deep copy so callers can never mutate the static table.
func (r DestinationRecord) Clone() DestinationRecord {
	out := DestinationRecord{
		Name:        r.Name,
		Description: r.Description,
		Highlights:  append([]string(nil), r.Highlights...),
		Itinerary:   make([]DayPlan, len(r.Itinerary)),
	}
	for i, d := range r.Itinerary {
		out.Itinerary[i] = DayPlan{Day: d.Day, Activities: append([]string(nil), d.Activities...)}
	}
	return out
}

// ─── Static Table ─────────────────────────────────────────────────────────────

var knownDestinations = map[string]DestinationRecord{
	"singapore": {
		Name:        "Singapore",
		Description: "A vibrant city-state known for its modern skyline, diverse culture, and world-class attractions.",
		Highlights: []string{
			"Marina Bay Sands & Gardens by the Bay",
			"Sentosa Island & Universal Studios",
			"Chinatown & Little India",
			"Orchard Road Shopping",
			"Hawker Centers & Local Cuisine",
		},
		Itinerary: []DayPlan{
			{1, []string{"Arrival & Check-in", "Marina Bay Sands", "Gardens by the Bay", "Supertree Grove Light Show"}},
			{2, []string{"Sentosa Island", "S.E.A. Aquarium", "Beaches & Resorts", "Cable Car Ride"}},
			{3, []string{"Chinatown Food Tour", "Buddha Tooth Relic Temple", "Clarke Quay", "Singapore River Cruise"}},
		},
	},
	"malaysia": {
		Name:        "Malaysia",
		Description: "A diverse country offering a mix of modern cities, colonial architecture, rainforests, and beautiful beaches.",
		Highlights: []string{
			"Petronas Towers in Kuala Lumpur",
			"George Town Street Art",
			"Cameron Highlands Tea Plantations",
			"Langkawi Beaches",
			"Diverse Local Cuisine",
		},
		Itinerary: []DayPlan{
			{1, []string{"Arrival in Kuala Lumpur", "Petronas Towers", "KLCC Park", "Bukit Bintang Shopping"}},
			{2, []string{"Batu Caves", "Central Market", "Chinatown (Petaling Street)", "Jalan Alor Food Street"}},
			{3, []string{"Day Trip to Genting Highlands", "Cable Car Ride", "Theme Park", "Casino & Entertainment"}},
		},
	},
	"japan": {
		Name:        "Japan",
		Description: "A fascinating blend of ancient traditions and cutting-edge modern technology.",
		Highlights: []string{
			"Tokyo's Shibuya & Shinjuku",
			"Kyoto Temples & Shrines",
			"Mount Fuji Views",
			"Osaka Street Food",
			"Bullet Train Experience",
		},
		Itinerary: []DayPlan{
			{1, []string{"Arrival in Tokyo", "Shibuya Crossing", "Meiji Shrine", "Tokyo Tower"}},
			{2, []string{"Asakusa & Senso-ji Temple", "Akihabara", "Ueno Park", "Shinjuku Nightlife"}},
			{3, []string{"Day Trip to Mount Fuji", "Lake Kawaguchi", "Hot Springs (Onsen)", "Chureito Pagoda"}},
		},
	},
	"thailand": {
		Name:        "Thailand",
		Description: "The Land of Smiles, famous for its tropical beaches, ornate temples, and vibrant street life.",
		Highlights: []string{
			"Grand Palace & Wat Pho",
			"Phuket Beaches",
			"Chiang Mai Temples",
			"Floating Markets",
			"Thai Street Food",
		},
		Itinerary: []DayPlan{
			{1, []string{"Arrival in Bangkok", "Grand Palace", "Wat Pho (Reclining Buddha)", "Wat Arun Sunset"}},
			{2, []string{"Chatuchak Weekend Market", "Jim Thompson House", "Asiatique Riverfront", "Khao San Road"}},
			{3, []string{"Damnoen Saduak Floating Market", "Maeklong Railway Market", "Ayutthaya Day Trip", "River Cruise"}},
		},
	},
}

// TravelTips is shown under every generated itinerary.
var TravelTips = []string{
	"Book accommodations in advance for better rates",
	"Check local weather before packing",
	"Download offline maps for easy navigation",
	"Try local street food for authentic experiences",
}

// ─── Lookup ───────────────────────────────────────────────────────────────────

// Normalize turns raw user input into a table key.
func Normalize(destination string) string {
	return strings.ToLower(strings.TrimSpace(destination))
}

// Lookup finds a canned record for destination. A miss is a normal outcome;
// callers synthesize a fallback with Synthesize.
func Lookup(destination string) (DestinationRecord, bool) {
	rec, ok := knownDestinations[Normalize(destination)]
	if !ok {
		return DestinationRecord{}, false
	}
	return rec.Clone(), true
}

// Destinations lists the known records sorted by name.
func Destinations() []DestinationRecord {
	out := make([]DestinationRecord, 0, len(knownDestinations))
	for _, rec := range knownDestinations {
		out = append(out, rec.Clone())
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
