package search

import (
	"net/url"
	"regexp"
	"strings"

	"github.com/rpattn/crmql/internal/domain"
)

var (
	urlPattern   = regexp.MustCompile(`(?i)(?:https?://|www\.)[^\s]+`)
	emailPattern = regexp.MustCompile(`[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}`)
	phonePattern = regexp.MustCompile(`\+?\(?\d[\d\s().\-]*\d`)

	tokenCutset = "\"'.,;:!?()[]{}<>"
)

const (
	minPhoneDigits = 7
	maxPhoneDigits = 15
)

// Options controls parser behavior that varies by integration point.
type Options struct {
	// LowercaseTokens lowercases residual tokens. Emails and domains are
	// always lowercased; tokens preserve input case by default.
	LowercaseTokens bool
}

// Parser extracts structured search signals from free text. It is
// stateless and safe for concurrent use.
type Parser struct {
	opts Options
}

// NewParser creates a parser with the given options.
func NewParser(opts Options) *Parser {
	return &Parser{opts: opts}
}

// ParseQuery parses text with default options.
func ParseQuery(text string) domain.ParsedQuery {
	return NewParser(Options{}).Parse(text)
}

// Parse extracts emails, domains, phone numbers, and residual tokens
// from text. Whitespace-only input yields all-empty results.
func (p *Parser) Parse(text string) domain.ParsedQuery {
	result := domain.NewParsedQuery()
	if strings.TrimSpace(text) == "" {
		return result
	}

	masked := []byte(text)
	seenEmails := make(map[string]struct{})
	seenDomains := make(map[string]struct{})
	seenPhones := make(map[string]struct{})
	seenTokens := make(map[string]struct{})

	// URLs first: an email-shaped substring inside a URL's userinfo or
	// path must not be claimed by the email pass.
	for _, span := range urlPattern.FindAllIndex(masked, -1) {
		match := strings.TrimRight(string(masked[span[0]:span[1]]), tokenCutset)
		if host := hostnameOf(match); host != "" {
			appendUnique(&result.Domains, seenDomains, host)
		}
		maskSpan(masked, span[0], span[0]+len(match))
	}

	for _, span := range emailPattern.FindAllIndex(masked, -1) {
		match := string(masked[span[0]:span[1]])
		// Malformed look-alikes are consumed whole, never partially
		// matched.
		if validEmail(match) {
			email := strings.ToLower(match)
			appendUnique(&result.Emails, seenEmails, email)
			if at := strings.LastIndex(email, "@"); at >= 0 {
				appendUnique(&result.Domains, seenDomains, email[at+1:])
			}
		}
		maskSpan(masked, span[0], span[1])
	}

	for _, span := range phonePattern.FindAllIndex(masked, -1) {
		match := strings.Trim(string(masked[span[0]:span[1]]), " .-()")
		digits := digitsOf(match)
		if len(digits) < minPhoneDigits || len(digits) > maxPhoneDigits {
			continue
		}
		phone := digits
		if strings.HasPrefix(match, "+") {
			phone = "+" + digits
		}
		appendUnique(&result.Phones, seenPhones, phone)
		maskSpan(masked, span[0], span[1])
	}

	for _, field := range strings.Fields(string(masked)) {
		token := strings.Trim(field, tokenCutset)
		if token == "" {
			continue
		}
		if p.opts.LowercaseTokens {
			token = strings.ToLower(token)
		}
		appendUnique(&result.Tokens, seenTokens, token)
	}

	return result
}

// validEmail rejects look-alikes the match pattern cannot exclude on
// its own: consecutive dots and dot-terminated local parts.
func validEmail(candidate string) bool {
	if strings.Contains(candidate, "..") {
		return false
	}
	at := strings.LastIndex(candidate, "@")
	if at <= 0 || at == len(candidate)-1 {
		return false
	}
	local := candidate[:at]
	if strings.HasPrefix(local, ".") || strings.HasSuffix(local, ".") {
		return false
	}
	if strings.Contains(local, "@") {
		return false
	}
	return true
}

// hostnameOf extracts the lowercased hostname from a URL match,
// dropping scheme, port, path, and a leading www label.
func hostnameOf(match string) string {
	raw := match
	if !strings.Contains(strings.ToLower(raw), "://") {
		raw = "http://" + raw
	}
	parsed, err := url.Parse(raw)
	if err != nil {
		return ""
	}
	host := strings.ToLower(parsed.Hostname())
	host = strings.TrimPrefix(host, "www.")
	if !strings.Contains(host, ".") {
		return ""
	}
	return host
}

func digitsOf(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func maskSpan(buf []byte, start, end int) {
	for i := start; i < end && i < len(buf); i++ {
		buf[i] = ' '
	}
}

func appendUnique(list *[]string, seen map[string]struct{}, value string) {
	if _, ok := seen[value]; ok {
		return
	}
	seen[value] = struct{}{}
	*list = append(*list, value)
}
