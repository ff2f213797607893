// Package utm builds tagged marketing URLs.
package utm

import (
	"net/url"
	"strings"
)

// Build appends utm_source, utm_medium and utm_campaign to the base URL.
// When the base URL already has a query string the parameters are added
// with '&'; a trailing '?' or '&' is reused as-is so no double separator
// appears. The base URL itself is not validated: a malformed input
// produces a malformed result.
func Build(baseURL, source, medium, campaign string) string {
	sep := "?"
	if strings.Contains(baseURL, "?") {
		sep = "&"
	}
	if strings.HasSuffix(baseURL, "?") || strings.HasSuffix(baseURL, "&") {
		sep = ""
	}

	return baseURL + sep +
		"utm_source=" + source +
		"&utm_medium=" + medium +
		"&utm_campaign=" + campaign
}

// WithDate merges a utm_date parameter into an already built URL,
// overwriting any existing value. The query string is re-encoded, so
// parameter order follows url.Values.Encode (sorted keys). If the URL
// does not parse, the parameter is appended naively instead.
func WithDate(taggedURL, date string) string {
	u, err := url.Parse(taggedURL)
	if err != nil {
		sep := "&"
		if !strings.Contains(taggedURL, "?") {
			sep = "?"
		}
		return taggedURL + sep + "utm_date=" + date
	}

	q := u.Query()
	q.Set("utm_date", date)
	u.RawQuery = q.Encode()
	return u.String()
}
