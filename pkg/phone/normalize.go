package phone

import (
	"github.com/nyaruka/phonenumbers"
)

// DefaultRegion is assumed for numbers without a country prefix.
const DefaultRegion = "US"

// Normalize parses a raw phone number and returns its E.164 form.
// Unparseable or invalid input is returned unchanged so that imports
// never lose the user's original data.
func Normalize(raw string) string {
	if raw == "" {
		return ""
	}

	num, err := phonenumbers.Parse(raw, DefaultRegion)
	if err != nil {
		return raw
	}
	if !phonenumbers.IsValidNumber(num) {
		return raw
	}

	return phonenumbers.Format(num, phonenumbers.E164)
}
