package utils

import (
	"fmt"
	"regexp"
	"strings"
)

var digitsOnly = regexp.MustCompile(`^[0-9]+$`)

// NormalizeMSISDN strips formatting characters from a mobile number and
// validates the minimal syntactic requirement: at least 10 digits. No
// operator or country specific validation is performed.
func NormalizeMSISDN(msisdn string) (string, error) {
	stripped := strings.ReplaceAll(msisdn, "-", "")
	stripped = strings.ReplaceAll(stripped, " ", "")
	stripped = strings.TrimPrefix(stripped, "+")

	if !digitsOnly.MatchString(stripped) {
		return "", fmt.Errorf("mobile number must contain digits only")
	}
	if len(stripped) < 10 {
		return "", fmt.Errorf("mobile number must have at least 10 digits")
	}

	return stripped, nil
}
