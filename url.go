package pitch

import "net/url"

// ValidateURL checks that raw is an absolute http or https URL with a
// non-empty host. It is called before any network I/O so malformed input
// fails fast without touching the network.
func ValidateURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return Errorf(EINVALID, "invalid URL %q: %v", raw, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return Errorf(EINVALID, "URL %q must use http or https", raw)
	}
	if u.Host == "" {
		return Errorf(EINVALID, "URL %q has no host", raw)
	}
	return nil
}
