package report

import (
	"regexp"
	"strconv"
	"strings"
)

// Claim grammar, version 1 (verb-anchored):
//
//	claim  = verb ws+ number ws* unit?
//	verb   = "worked" | "работал" | "работала" | "отработал" | "отработала"
//	number = digits ( ("." | ",") digits )?
//	unit   = "час" | "часа" | "часов" | "hour" | "hours" | "h"
//
// Matching is case-insensitive and the verb must not be preceded by a letter
// or digit. Messages with a bare number and no verb are not claims. RE2 has
// no Unicode-aware \b, so the anchor is spelled out.
var claimPattern = regexp.MustCompile(
	`(?i)(?:^|[^\p{L}\d])(?:отработала|отработал|работала|работал|worked)\s+(\d+(?:[.,]\d+)?)\s*(?:час(?:ов|а)?|hours?|h)?`,
)

// ExtractHours parses a message body into a claimed duration in hours.
// It returns false when no claim is present or the number fails to parse;
// the two cases are deliberately not distinguished.
func ExtractHours(text string) (float64, bool) {
	match := claimPattern.FindStringSubmatch(text)
	if match == nil {
		return 0, false
	}
	hours, err := strconv.ParseFloat(strings.ReplaceAll(match[1], ",", "."), 64)
	if err != nil {
		return 0, false
	}
	return hours, true
}
