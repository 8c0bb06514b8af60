package docnum

import (
	"fmt"
	"strings"
	"time"

	"github.com/ShiraazMoollatjie/goluhn"
)

const (
	ContractPrefix = "CON"
	ActPrefix      = "ACT"

	payloadLen = 8
	dateLayout = "20060102"
)

// Generate produces a document number of the form PREFIX-YYYYMMDD-NNNNNNNN
// where the numeric payload carries a Luhn check digit. Global uniqueness is
// still guaranteed by the database unique index, not by this function.
func Generate(prefix string, now time.Time) string {
	return fmt.Sprintf("%s-%s-%s", prefix, now.Format(dateLayout), goluhn.Generate(payloadLen))
}

// Validate checks the structural shape, the expected prefix and the Luhn
// checksum of the payload.
func Validate(number, prefix string) error {
	parts := strings.Split(number, "-")
	if len(parts) != 3 {
		return fmt.Errorf("malformed document number: %s", number)
	}
	if parts[0] != prefix {
		return fmt.Errorf("unexpected document number prefix: %s", parts[0])
	}
	if _, err := time.Parse(dateLayout, parts[1]); err != nil {
		return fmt.Errorf("malformed document number date: %s", parts[1])
	}
	return goluhn.Validate(parts[2])
}
