package sample

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"

	"mxmessage_backend/internal/mx/validate"
)

const (
	upperAlpha   = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	digits       = "0123456789"
	alphanumeric = upperAlpha + digits
)

var currencyCodes = []string{"USD", "EUR", "GBP", "JPY", "CHF", "CAD", "AUD", "SEK", "NOK", "DKK", "SGD", "HKD"}

var countryCodes = []string{"US", "GB", "DE", "FR", "NL", "CH", "JP", "SG", "CA", "AU", "SE", "ES", "IT", "BE"}

var companyNames = []string{
	"Meridian Trading", "Atlas Commodities", "Northwind Logistics",
	"Harbourview Holdings", "Cobalt Industries", "Summit Textiles",
	"Lakeside Manufacturing", "Pacific Exports", "Sterling Partners",
	"Granite Engineering",
}

var cityNames = []string{
	"London", "Frankfurt", "Amsterdam", "Zurich", "Paris",
	"New York", "Singapore", "Tokyo", "Stockholm", "Madrid",
}

var streetNames = []string{
	"High Street", "Station Road", "Market Square", "King Street",
	"Harbour Lane", "Mill Road", "Church Street", "Bridge Avenue",
}

var words = []string{
	"invoice", "settlement", "payment", "transfer", "goods",
	"services", "contract", "shipment", "order", "reference",
}

// fakeValue produces a value for a {"fake": [kind, args...]} spec.
func fakeValue(kind string, args []any) (any, error) {
	switch kind {
	case "bic":
		return randomBIC(), nil
	case "uuid", "uetr":
		return uuid.NewString(), nil
	case "lei":
		return randomString(alphanumeric, 18) + randomString(digits, 2), nil
	case "iban":
		return randomIBAN(), nil
	case "currency_code":
		return currencyCodes[rand.Intn(len(currencyCodes))], nil
	case "country_code":
		return countryCodes[rand.Intn(len(countryCodes))], nil
	case "i64":
		lo, hi, err := numericRange(args)
		if err != nil {
			return nil, err
		}
		return int64(lo) + rand.Int63n(int64(hi-lo)+1), nil
	case "f64":
		lo, hi, err := numericRange(args)
		if err != nil {
			return nil, err
		}
		value := lo + rand.Float64()*(hi-lo)
		// Two decimal places, matching monetary amounts.
		return float64(int64(value*100)) / 100, nil
	case "iso8601_datetime":
		return time.Now().UTC().Format("2006-01-02T15:04:05-07:00"), nil
	case "date":
		layout := "2006-01-02"
		if len(args) > 0 {
			if format, ok := args[0].(string); ok {
				layout = dateLayout(format)
			}
		}
		return time.Now().UTC().Format(layout), nil
	case "time":
		return time.Now().UTC().Format("15:04:05"), nil
	case "alphanumeric":
		n := 10
		if len(args) > 0 {
			if f, ok := asFloat(args[0]); ok {
				n = int(f)
			}
		}
		return randomString(alphanumeric, n), nil
	case "company_name":
		suffixes := []string{"Ltd", "GmbH", "B.V.", "S.A.", "Inc", "AG"}
		return companyNames[rand.Intn(len(companyNames))] + " " + suffixes[rand.Intn(len(suffixes))], nil
	case "city", "city_name":
		return cityNames[rand.Intn(len(cityNames))], nil
	case "street_name":
		return streetNames[rand.Intn(len(streetNames))], nil
	case "street_address":
		return fmt.Sprintf("%d %s", 1+rand.Intn(199), streetNames[rand.Intn(len(streetNames))]), nil
	case "postal_code", "postcode", "zip":
		return randomString(digits, 5), nil
	case "email":
		return strings.ToLower(randomString(upperAlpha, 7)) + "@example.com", nil
	case "phone_number":
		return "+" + randomString("123456789", 1) + randomString(digits, 10), nil
	case "word":
		return words[rand.Intn(len(words))], nil
	case "words":
		n := 3
		if len(args) > 0 {
			if f, ok := asFloat(args[0]); ok {
				n = int(f)
			}
		}
		picked := make([]string, n)
		for i := range picked {
			picked[i] = words[rand.Intn(len(words))]
		}
		return strings.Join(picked, " "), nil
	case "enum":
		if len(args) == 0 {
			return nil, validate.NewError(validate.CodeGeneration, "enum spec needs at least one option")
		}
		return args[rand.Intn(len(args))], nil
	case "regex":
		if len(args) == 0 {
			return nil, validate.NewError(validate.CodeGeneration, "regex spec needs a pattern argument")
		}
		pattern, ok := args[0].(string)
		if !ok {
			return nil, validate.NewError(validate.CodeGeneration, "regex spec pattern must be a string")
		}
		return fromAlternation(pattern)
	default:
		return nil, validate.NewError(validate.CodeGeneration,
			fmt.Sprintf("unknown fake generator %q", kind))
	}
}

func numericRange(args []any) (float64, float64, error) {
	lo, hi := 1.0, 1000.0
	if len(args) >= 1 {
		f, ok := asFloat(args[0])
		if !ok {
			return 0, 0, validate.NewError(validate.CodeGeneration, "numeric range bounds must be numbers")
		}
		lo = f
	}
	if len(args) >= 2 {
		f, ok := asFloat(args[1])
		if !ok {
			return 0, 0, validate.NewError(validate.CodeGeneration, "numeric range bounds must be numbers")
		}
		hi = f
	}
	if hi < lo {
		lo, hi = hi, lo
	}
	return lo, hi, nil
}

// asFloat widens a numeric spec argument to float64. JSON decoding hands us
// float64, the YAML decoder produces int for integer scalars.
func asFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint64:
		return float64(n), true
	}
	return 0, false
}

func randomString(alphabet string, n int) string {
	if n <= 0 {
		return ""
	}
	b := make([]byte, n)
	for i := range b {
		b[i] = alphabet[rand.Intn(len(alphabet))]
	}
	return string(b)
}

func randomBIC() string {
	return randomString(upperAlpha, 4) +
		countryCodes[rand.Intn(len(countryCodes))] +
		randomString(alphanumeric, 2) +
		randomString(alphanumeric, 3)
}

func randomIBAN() string {
	country := countryCodes[rand.Intn(len(countryCodes))]
	return country + randomString(digits, 2) + randomString(alphanumeric, 16)
}

// fromAlternation resolves a simple "A|B|C" alternation pattern by picking
// one branch. Anything more complex is not supported.
func fromAlternation(pattern string) (string, error) {
	options := strings.Split(pattern, "|")
	if len(options) == 0 {
		return "", validate.NewError(validate.CodeGeneration, "regex spec pattern is empty")
	}
	return options[rand.Intn(len(options))], nil
}

// dateLayout converts strftime-style directives from scenario files into a
// Go time layout.
func dateLayout(format string) string {
	replacer := strings.NewReplacer(
		"%Y", "2006",
		"%m", "01",
		"%d", "02",
		"%H", "15",
		"%M", "04",
		"%S", "05",
	)
	return replacer.Replace(format)
}
