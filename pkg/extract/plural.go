package extract

import "strings"

// Singularize returns the heuristic singular form of a term key, so that a
// selection of "Liabilities" still finds a "Liability" entry. It is a suffix
// heuristic, not a dictionary: "-ies" becomes "-y", a trailing "-ses" drops
// its "es", any other trailing "s" (but not "ss") is dropped. Known
// inaccuracies are accepted rather than special-cased: "series" yields
// "sery" and "expenses" yields "expens". Keys without a plural-looking
// suffix are returned unchanged.
func Singularize(key string) string {
	switch {
	case strings.HasSuffix(key, "ies"):
		return strings.TrimSuffix(key, "ies") + "y"
	case strings.HasSuffix(key, "ses"):
		return strings.TrimSuffix(key, "es")
	case strings.HasSuffix(key, "s") && !strings.HasSuffix(key, "ss"):
		return strings.TrimSuffix(key, "s")
	}
	return key
}
