package display

import (
	"fmt"
	"strings"

	"github.com/nyaruka/phonenumbers"
)

// PhoneRegion describes what the numbering-plan metadata knows about a raw value.
type PhoneRegion struct {
	Region      string
	CountryCode int
	Valid       bool
	E164        string
}

// LookupPhoneRegion resolves the region of an international raw value such as
// "+573012345678". The value must carry a leading '+'; a failed parse is
// returned as an error so callers can keep the heuristic display instead.
func LookupPhoneRegion(raw string) (PhoneRegion, error) {
	if !strings.HasPrefix(raw, "+") {
		return PhoneRegion{}, fmt.Errorf("phone %q has no international prefix", raw)
	}

	num, err := phonenumbers.Parse(raw, "")
	if err != nil {
		return PhoneRegion{}, fmt.Errorf("parse phone %q: %w", raw, err)
	}

	return PhoneRegion{
		Region:      phonenumbers.GetRegionCodeForNumber(num),
		CountryCode: int(num.GetCountryCode()),
		Valid:       phonenumbers.IsValidNumber(num),
		E164:        phonenumbers.Format(num, phonenumbers.E164),
	}, nil
}
