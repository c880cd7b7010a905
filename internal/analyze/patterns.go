package analyze

import "regexp"

// Per-field pattern cascades, tried in priority order: label-anchored patterns
// first, generic fallbacks last. Every match of a pattern is scanned so the
// validity predicate can skip implausible candidates before the next pattern
// is consulted.
var (
	namePatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)customer(?:\s*name)?\s*[:#]\s*([A-Za-z][A-Za-z.,' -]+)`),
		regexp.MustCompile(`(?i)\bname\s*[:#]\s*([A-Za-z][A-Za-z.,' -]+)`),
		regexp.MustCompile(`(?i)\bbill(?:ed)?\s*to\s*[:#]?\s*([A-Za-z][A-Za-z.,' -]+)`),
	}

	writerPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)service\s*(?:writer|advisor)\s*[:#]?\s*([A-Za-z][A-Za-z.,' -]+)`),
		regexp.MustCompile(`(?i)\b(?:advisor|writer)\s*[:#]\s*([A-Za-z][A-Za-z.,' -]+)`),
		regexp.MustCompile(`(?i)\bwritten\s*by\s*[:#]?\s*([A-Za-z][A-Za-z.,' -]+)`),
	}

	phonePatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)(?:phone|cell|mobile|tel(?:ephone)?)\s*(?:no|number|#)?\s*[:#.]?\s*((?:\+?1[-. ]?)?\(?\d{3}\)?[-. ]?\d{3}[-. ]?\d{4})`),
		regexp.MustCompile(`(?:\+?1[-. ]?)?\(?\d{3}\)?[-. ]?\d{3}[-. ]?\d{4}`),
	}

	emailPattern = regexp.MustCompile(`[A-Za-z0-9._%+\-]+@[A-Za-z0-9.\-]+\.[A-Za-z]{2,}`)

	vinPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)\bVIN(?:\s*(?:no|number|#))?\s*[:#.]?\s*([A-HJ-NPR-Z0-9]{17})`),
		regexp.MustCompile(`(?i)\b([A-HJ-NPR-Z0-9]{17})\b`),
	}
	vinCharset = regexp.MustCompile(`^[A-HJ-NPR-Z0-9]{17}$`)

	// Compound year/make/model patterns. Groups are never mixed across the
	// two alternatives: a candidate is accepted or rejected whole.
	vehiclePatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)(?:vehicle|year/make/model|ymm)\s*[:#]?\s*(\d{4})\s+([A-Za-z][A-Za-z-]*)\s+([A-Za-z0-9][A-Za-z0-9-]*(?:[ \t]+[A-Za-z0-9-]+)?)`),
		regexp.MustCompile(`\b(19\d{2}|20\d{2})\s+([A-Za-z][A-Za-z-]*)\s+([A-Za-z0-9][A-Za-z0-9-]*(?:[ \t]+[A-Za-z0-9-]+)?)`),
	}

	platePatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)\blicense\s*plate\s*(?:no|number|#)?\s*[:#.]?\s*([A-Za-z0-9][A-Za-z0-9 -]{0,9})`),
		regexp.MustCompile(`(?i)\b(?:plate|tag)\s*(?:no|number|#)?\s*[:#.]?\s*([A-Za-z0-9][A-Za-z0-9 -]{0,9})`),
	}

	datePatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)\b(?:service\s*date|date\s*(?:of\s*service|in|out)?)\s*[:#]?\s*(\d{1,2}/\d{1,2}/\d{2,4})`),
		regexp.MustCompile(`\b(\d{1,2}/\d{1,2}/\d{2,4})\b`),
		regexp.MustCompile(`\b(\d{4}-\d{2}-\d{2})\b`),
	}
	slashDate = regexp.MustCompile(`^(\d{1,2})/(\d{1,2})/(\d{2}|\d{4})$`)
	isoDate   = regexp.MustCompile(`^(\d{4})-(\d{2})-(\d{2})$`)

	totalPattern = regexp.MustCompile(`(?i)\b(?:grand\s*total|final\s*total|amount\s*due|balance\s*due|balance|total)\s*[:#]?\s*\$?\s*(\d[\d,]*(?:\.\d{1,2})?)`)
	partsPattern = regexp.MustCompile(`(?i)\bparts?\s*(?:total|cost|amount)?\s*[:#]?\s*\$?\s*(\d[\d,]*(?:\.\d{1,2})?)`)
	laborPattern = regexp.MustCompile(`(?i)\blabou?r\s*(?:total|cost|amount)?\s*[:#]?\s*\$?\s*(\d[\d,]*(?:\.\d{1,2})?)`)

	whitespaceRun = regexp.MustCompile(`\s+`)
)
