package geo

import "strings"

// MinQueryLength is the shortest query that triggers a list scan;
// anything shorter short-circuits to an empty result.
const MinQueryLength = 2

// referenceCities is the fixed lookup list. This is a placeholder for a
// real geocoding service: matching is substring-only in list order, with
// no ranking, fuzziness or pagination.
var referenceCities = []string{
	"İstanbul", "Ankara", "İzmir", "Bursa", "Antalya", "Adana", "Konya", "Gaziantep",
	"Şanlıurfa", "Mersin", "Diyarbakır", "Hatay", "Manisa", "Kocaeli", "Samsun",
	"London", "New York", "Paris", "Tokyo", "Berlin", "Rome", "Madrid", "Moscow",
	"Beijing", "Sydney", "Cairo", "Rio de Janeiro", "Toronto", "Dubai", "Singapore",
}

// SearchCities returns the cities whose name contains query,
// case-insensitively, in list order.
func SearchCities(query string) []string {
	query = strings.TrimSpace(query)
	if len([]rune(query)) < MinQueryLength {
		return []string{}
	}

	needle := strings.ToLower(query)
	results := []string{}
	for _, city := range referenceCities {
		if strings.Contains(strings.ToLower(city), needle) {
			results = append(results, city)
		}
	}
	return results
}
