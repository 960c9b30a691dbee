package beamer

import "strings"

// reserved lists the characters Escape prefixes with a backslash.
const reserved = `&$%#_{}`

// Escape prefixes each reserved LaTeX character (& $ % # _ { }) with a
// backslash. A reserved character after an odd run of backslashes is
// already escaped and left as is, so escaped text can be escaped again
// without change; after an even run (such as the \\ line break) it is
// escaped. All other characters, backslash included, pass through untouched.
func Escape(text string) string {
	if !strings.ContainsAny(text, reserved) {
		return text
	}

	var b strings.Builder
	b.Grow(len(text) + 8)
	backslashes := 0
	for i := 0; i < len(text); i++ {
		c := text[i]
		if strings.IndexByte(reserved, c) >= 0 && backslashes%2 == 0 {
			b.WriteByte('\\')
		}
		b.WriteByte(c)
		if c == '\\' {
			backslashes++
		} else {
			backslashes = 0
		}
	}
	return b.String()
}
