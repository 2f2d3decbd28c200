package gym

// Cities is the closed set of supported search locations. City is an exact
// match against this list, not free text or coordinates.
var Cities = []string{"Porto", "Mumbai", "Visakhapatnam", "Hyderabad"}

var Weekdays = []string{
	"Monday",
	"Tuesday",
	"Wednesday",
	"Thursday",
	"Friday",
	"Saturday",
	"Sunday",
}

func IsValidCity(city string) bool {
	for _, c := range Cities {
		if c == city {
			return true
		}
	}
	return false
}

func IsWeekday(day string) bool {
	for _, d := range Weekdays {
		if d == day {
			return true
		}
	}
	return false
}
