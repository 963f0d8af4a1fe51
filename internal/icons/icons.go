// Package icons maps OpenWeatherMap condition codes (two digits plus an
// optional day/night suffix, e.g. "01d", "10n") onto display identifiers
// and CDN image URLs. The mapping is total: unknown or absent codes fall
// back to a neutral icon instead of failing.
package icons

import "strings"

// DefaultCDNBase is the icon CDN used when none is configured.
const DefaultCDNBase = "https://img.icons8.com/emoji/96"

// fallback identifier and image for unrecognized codes.
const (
	fallbackName  = "partly-cloudy"
	fallbackImage = "sun-behind-cloud.png"
)

// Name returns a stable display identifier for a condition code. The
// day/night suffix only matters for clear skies; every other prefix maps
// the same both ways.
func Name(code string) string {
	if code == "01n" {
		return "clear-night"
	}
	prefix := strings.TrimSuffix(strings.TrimSuffix(code, "d"), "n")
	switch prefix {
	case "01":
		return "clear-day"
	case "02":
		return "partly-cloudy"
	case "03", "04":
		return "cloudy"
	case "09", "10":
		return "rain"
	case "11":
		return "thunderstorm"
	case "13":
		return "snow"
	case "50":
		return "fog"
	default:
		return fallbackName
	}
}

// image returns the CDN file name for a condition code.
func image(code string) string {
	switch code {
	case "01d":
		return "sun-emoji.png"
	case "01n":
		return "crescent-moon-emoji.png"
	case "02d", "02n":
		return "sun-behind-small-cloud.png"
	case "03d", "03n", "04d", "04n":
		return "cloud-emoji.png"
	case "09d", "09n", "10d", "10n":
		return "cloud-with-rain-emoji.png"
	case "11d", "11n":
		return "cloud-with-lightning-and-rain.png"
	case "13d", "13n":
		return "cloud-with-snow-emoji.png"
	case "50d", "50n":
		return "fog-emoji.png"
	default:
		return fallbackImage
	}
}

// URL returns the full CDN URL for a condition code.
func URL(cdnBase, code string) string {
	return strings.TrimSuffix(cdnBase, "/") + "/" + image(code)
}

// CountryFlag converts an ISO 3166-1 alpha-2 country code into its flag
// emoji via regional indicator symbols. Returns "" for anything that is
// not two ASCII letters.
func CountryFlag(code string) string {
	if len(code) != 2 {
		return ""
	}
	const base = 0x1F1E6
	var flag []rune
	for _, c := range strings.ToUpper(code) {
		if c < 'A' || c > 'Z' {
			return ""
		}
		flag = append(flag, base+c-'A')
	}
	return string(flag)
}
