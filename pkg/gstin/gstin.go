// Package gstin validates GSTIN identifiers (Goods & Services Tax Identification
// Number, India) and resolves the state encoded in their first two digits.
package gstin

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Format: 2-digit state code, 5-letter PAN prefix, 4-digit PAN number, PAN check
// letter, entity number, the literal 'Z', checksum character.
var gstinPattern = regexp.MustCompile(`^[0-9]{2}[A-Z]{5}[0-9]{4}[A-Z]{1}[1-9A-Z]{1}Z[0-9A-Z]{1}$`)

// stateNames maps GSTIN state codes to state/UT names.
var stateNames = map[string]string{
	"01": "Jammu and Kashmir",
	"02": "Himachal Pradesh",
	"03": "Punjab",
	"04": "Chandigarh",
	"05": "Uttarakhand",
	"06": "Haryana",
	"07": "Delhi",
	"08": "Rajasthan",
	"09": "Uttar Pradesh",
	"10": "Bihar",
	"11": "Sikkim",
	"12": "Arunachal Pradesh",
	"13": "Nagaland",
	"14": "Manipur",
	"15": "Mizoram",
	"16": "Tripura",
	"17": "Meghalaya",
	"18": "Assam",
	"19": "West Bengal",
	"20": "Jharkhand",
	"21": "Odisha",
	"22": "Chhattisgarh",
	"23": "Madhya Pradesh",
	"24": "Gujarat",
	"26": "Dadra and Nagar Haveli and Daman and Diu",
	"27": "Maharashtra",
	"29": "Karnataka",
	"30": "Goa",
	"31": "Lakshadweep",
	"32": "Kerala",
	"33": "Tamil Nadu",
	"34": "Puducherry",
	"35": "Andaman and Nicobar Islands",
	"36": "Telangana",
	"37": "Andhra Pradesh",
	"38": "Ladakh",
}

// Normalize upper-cases and trims a GSTIN for comparison and storage.
func Normalize(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}

// Validate checks the GSTIN format and state code. Empty input is an error;
// callers that treat GSTIN as optional must check for empty themselves.
func Validate(s string) error {
	g := Normalize(s)
	if g == "" {
		return fmt.Errorf("gstin: empty")
	}
	if len(g) != 15 {
		return fmt.Errorf("gstin: must be 15 characters, got %d", len(g))
	}
	if !gstinPattern.MatchString(g) {
		return fmt.Errorf("gstin: invalid format %q", g)
	}
	code, _ := strconv.Atoi(g[:2])
	if code < 1 || code > 38 {
		return fmt.Errorf("gstin: invalid state code %q", g[:2])
	}
	return nil
}

// StateCode returns the two-digit state code prefix.
func StateCode(s string) (string, bool) {
	g := Normalize(s)
	if len(g) < 2 {
		return "", false
	}
	return g[:2], true
}

// StateName resolves a two-digit state code to the state/UT name.
func StateName(code string) (string, bool) {
	name, ok := stateNames[code]
	return name, ok
}

// StateFromGSTIN returns the state name encoded in the GSTIN.
func StateFromGSTIN(s string) (string, bool) {
	code, ok := StateCode(s)
	if !ok {
		return "", false
	}
	return StateName(code)
}
