package formatter

import (
	"strings"

	"github.com/nyaruka/phonenumbers"
)

// FormatPhone formats a phone number to E164, using region for numbers
// written without a country prefix.
func FormatPhone(phone, region string) (string, error) {
	num, err := phonenumbers.Parse(phone, strings.ToUpper(region))
	if err != nil {
		return "", err
	}
	return phonenumbers.Format(num, phonenumbers.E164), nil
}

// ContactPhone is FormatPhone for display: blank or unparseable input yields "".
func ContactPhone(phone, region string) string {
	if strings.TrimSpace(phone) == "" {
		return ""
	}
	formatted, err := FormatPhone(phone, region)
	if err != nil {
		return ""
	}
	return formatted
}
