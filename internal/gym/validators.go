package gym

import "regexp"

var (
	// First character must be an ASCII letter.
	gymNameRe = regexp.MustCompile(`^[A-Za-z]`)

	// Accepted map-provider link prefixes.
	mapLocationRe = regexp.MustCompile(`^https://(www\.)?(google\.com/maps|maps\.google\.com)`)

	// Exact form like 6am-10pm, hours 1-12. Case-insensitive, so 6AM-10PM
	// also passes.
	openHoursRe = regexp.MustCompile(`(?i)^(1[0-2]|[1-9])(am|pm)-(1[0-2]|[1-9])(am|pm)$`)

	// Positive integer literal, no leading zero, no sign.
	perDayCostRe = regexp.MustCompile(`^[1-9][0-9]*$`)
)

func IsValidGymName(name string) bool {
	return gymNameRe.MatchString(name)
}

func IsValidMapLocation(url string) bool {
	return mapLocationRe.MatchString(url)
}

func IsValidOpenHours(hours string) bool {
	return openHoursRe.MatchString(hours)
}

func IsValidPerDayCost(cost string) bool {
	return perDayCostRe.MatchString(cost)
}
