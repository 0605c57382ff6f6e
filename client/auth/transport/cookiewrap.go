package transport

import (
	"net/http"
)

// credentialed makes every clinic call carry the backend's session cookies,
// API and refresh calls alike, like an axios client with withCredentials set.
// Cookies already on the request win over the jar.
type credentialed struct {
	inner http.RoundTripper
	jar   http.CookieJar
}

func withCredentials(inner http.RoundTripper, jar http.CookieJar) http.RoundTripper {
	if jar == nil {
		return inner
	}
	return &credentialed{inner: inner, jar: jar}
}

func (c *credentialed) RoundTrip(req *http.Request) (*http.Response, error) {
	outbound := req.Clone(req.Context())
	for _, cookie := range c.jar.Cookies(outbound.URL) {
		if _, err := outbound.Cookie(cookie.Name); err == nil {
			continue
		}
		outbound.AddCookie(cookie)
	}
	resp, err := c.inner.RoundTrip(outbound)
	if err != nil {
		return nil, err
	}
	if cookies := resp.Cookies(); len(cookies) > 0 {
		c.jar.SetCookies(outbound.URL, cookies)
	}
	return resp, nil
}
