package format

import "regexp"

// Pre-compiled regular expressions for performance
var (
	// Phone display formatting: 3+3+4 consecutive digits
	phoneRunRegex = regexp.MustCompile(`(\d{3})(\d{3})(\d{4})`)
)
