package utils

import (
	"fmt"
	"net/url"
	"strings"
)

// ToAbsoluteURL resolves a possibly relative reference against base.
// References net/url rejects, such as "/100%" or ":colon", are repaired first.
func ToAbsoluteURL(base *url.URL, relative string) (*url.URL, error) {
	relURL, err := url.Parse(relative)
	if err != nil {
		relURL, err = url.Parse(repairReference(relative))
		if err != nil {
			return nil, err
		}
	}
	return base.ResolveReference(relURL), nil
}

// IsHTTP reports whether u uses the http or https scheme.
func IsHTTP(u *url.URL) bool {
	return u.Scheme == "http" || u.Scheme == "https"
}

// ResolveLink returns the absolute form of href and whether it is an http(s)
// link. When href cannot be parsed even after repair (a malformed host, say),
// the absolute string is assembled by hand so callers still get a full URL.
func ResolveLink(base *url.URL, href string) (string, bool) {
	if u, err := ToAbsoluteURL(base, href); err == nil {
		return u.String(), IsHTTP(u)
	}

	if scheme, ok := splitScheme(href); ok {
		scheme = strings.ToLower(scheme)
		return href, scheme == "http" || scheme == "https"
	}
	if strings.HasPrefix(href, "//") {
		return base.Scheme + ":" + href, IsHTTP(base)
	}
	return base.Scheme + "://" + base.Host + "/" + strings.TrimLeft(href, "/"), IsHTTP(base)
}

// repairReference escapes stray '%' and control bytes, and protects a colon
// in a scheme-less first path segment with "./".
func repairReference(ref string) string {
	var b strings.Builder
	for i := 0; i < len(ref); i++ {
		c := ref[i]
		switch {
		case c == '%' && !(i+2 < len(ref) && isHex(ref[i+1]) && isHex(ref[i+2])):
			b.WriteString("%25")
		case c < 0x20 || c == 0x7f || c == ' ':
			fmt.Fprintf(&b, "%%%02X", c)
		default:
			b.WriteByte(c)
		}
	}

	s := b.String()
	if i := strings.IndexAny(s, ":/?#"); i >= 0 && s[i] == ':' {
		if _, ok := splitScheme(s); !ok {
			s = "./" + s
		}
	}
	return s
}

// splitScheme returns the scheme of ref when it starts with a valid one.
func splitScheme(ref string) (string, bool) {
	i := strings.IndexByte(ref, ':')
	if i <= 0 {
		return "", false
	}
	for j := 0; j < i; j++ {
		c := ref[j]
		switch {
		case 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z':
		case '0' <= c && c <= '9' || c == '+' || c == '-' || c == '.':
			if j == 0 {
				return "", false
			}
		default:
			return "", false
		}
	}
	return ref[:i], true
}

func isHex(c byte) bool {
	return '0' <= c && c <= '9' || 'a' <= c && c <= 'f' || 'A' <= c && c <= 'F'
}
