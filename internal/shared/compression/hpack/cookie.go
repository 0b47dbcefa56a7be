package hpack

import "strings"

const cookieDelimiter = "; "

// reassembleCookies implements §4.6: HTTP/2 splits a single Cookie
// header into multiple wire entries, which must be rejoined with "; "
// after decoding. The source's reference implementation is known to
// leave a trailing delimiter on the joined value (§9); this
// implementation does not reproduce that, per spec.md's direction to
// fix it rather than carry it forward.
func reassembleCookies(list HeaderList) HeaderList {
	var values []string
	out := make(HeaderList, 0, len(list))

	for _, h := range list {
		if strings.EqualFold(h.Name, "cookie") {
			values = append(values, h.Value)
			continue
		}
		out = append(out, h)
	}

	if len(values) == 0 {
		return list
	}

	out = append(out, Header{Name: "cookie", Value: strings.Join(values, cookieDelimiter)})
	return out
}
