package services

// Reconcile returns an itinerary of exactly days entries numbered 1..days.
// Existing activities are reused by position; missing days get the generic
// list. An itinerary that already has the right length keeps its content and
// day numbers. The result never shares activity slices with the input.
func Reconcile(itinerary []DayPlan, days int) []DayPlan {
	if len(itinerary) == days {
		out := make([]DayPlan, days)
		for i, d := range itinerary {
			out[i] = DayPlan{Day: d.Day, Activities: append([]string(nil), d.Activities...)}
		}
		return out
	}
	if days < 0 {
		days = 0
	}

	out := make([]DayPlan, days)
	for i := range out {
		activities := GenericActivities()
		if i < len(itinerary) {
			activities = append([]string(nil), itinerary[i].Activities...)
		}
		out[i] = DayPlan{Day: i + 1, Activities: activities}
	}
	return out
}
