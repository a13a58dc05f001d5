package validate

import "regexp"

// MustPattern compiles a schema pattern anchored to the full value. Schema
// regular expressions are implicitly anchored; Go's are not.
func MustPattern(expr string) *regexp.Regexp {
	return regexp.MustCompile(`\A(?:` + expr + `)\z`)
}

// Patterns recurring across ISO 20022 message schemas, compiled once at
// startup and shared read-only across all validation calls.
var (
	// PatternCountryCode matches an ISO 3166 alpha-2 country code.
	PatternCountryCode = MustPattern(`[A-Z]{2,2}`)

	// PatternCurrencyCode matches an ISO 4217 alpha-3 currency code.
	PatternCurrencyCode = MustPattern(`[A-Z]{3,3}`)

	// PatternBIC matches an 8 or 11 character Bank Identifier Code.
	PatternBIC = MustPattern(`[A-Z0-9]{4,4}[A-Z]{2,2}[A-Z0-9]{2,2}([A-Z0-9]{3,3})?`)

	// PatternLEI matches a 20 character Legal Entity Identifier.
	PatternLEI = MustPattern(`[A-Z0-9]{18,18}[0-9]{2,2}`)

	// PatternUETR matches a UUID-v4 shaped Unique End-to-end Transaction
	// Reference.
	PatternUETR = MustPattern(`[a-f0-9]{8}-[a-f0-9]{4}-4[a-f0-9]{3}-[89ab][a-f0-9]{3}-[a-f0-9]{12}`)

	// PatternIBAN matches an International Bank Account Number.
	PatternIBAN = MustPattern(`[A-Z]{2,2}[0-9]{2,2}[a-zA-Z0-9]{1,30}`)

	// PatternDateTimeOffset matches an ISO 8601 datetime carrying an explicit
	// UTC offset.
	PatternDateTimeOffset = MustPattern(`.*(\+|-)((0[0-9])|(1[0-4])):[0-5][0-9]`)

	// PatternDecimalAmount matches an unsigned decimal with at most five
	// fractional digits, as used by currency-and-amount simple types.
	PatternDecimalAmount = MustPattern(`[0-9]{1,18}(\.[0-9]{0,5})?`)
)
