package timezone

import (
	"time"

	"github.com/rs/zerolog/log"

	"salas/config"
)

// DefaultTimezone is the organizational timezone every scheduling decision
// is made in. Falling back to the server-local zone would silently shift
// business-hour and past-date checks, so the fallback is always this zone.
const DefaultTimezone = "America/Fortaleza"

var (
	appLocation *time.Location
)

func init() {
	cfg := config.Get()

	name := cfg.App.Timezone
	if name == "" {
		name = DefaultTimezone
	}

	loc, err := time.LoadLocation(name)
	if err != nil {
		log.Error().
			Err(err).
			Str("timezone", name).
			Msg("Failed to load timezone, falling back to the organizational default")

		loc, err = time.LoadLocation(DefaultTimezone)
		if err != nil {
			loc = time.FixedZone("-03", -3*60*60)
		}
	}

	appLocation = loc
	log.Info().
		Str("timezone", name).
		Str("location", loc.String()).
		Msg("Application timezone initialized")
}

// Now returns the current time in the application timezone.
func Now() time.Time {
	return time.Now().In(appLocation)
}

// ToAppTime converts a time to the application timezone.
func ToAppTime(t time.Time) time.Time {
	return t.In(appLocation)
}

// GetLocation returns the application timezone location.
func GetLocation() *time.Location {
	return appLocation
}

// Parse parses a time string in the application timezone.
func Parse(layout, value string) (time.Time, error) {
	return time.ParseInLocation(layout, value, appLocation)
}

// Format formats a time in the application timezone.
func Format(t time.Time, layout string) string {
	return ToAppTime(t).Format(layout)
}
