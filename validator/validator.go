package validator

import (
	"fmt"
	"regexp"
	"strings"
)

// Practical limits from RFC 5321: 64 octets for the local part, 255 for the
// domain, 320 for the whole address (64 + "@" + 255).
const (
	maxEmailLength  = 320
	maxLocalLength  = 64
	maxDomainLength = 255
)

// Regular expression for the overall local@domain shape:
// - one or more allowed local-part characters
// - @ symbol
// - one or more domain labels of letters, digits, and hyphens
// The trailing label group is optional on purpose: a domain without a TLD is
// reported as a warning, not a format failure.
var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9-]+(\.[a-zA-Z0-9-]+)*$`)

// Details carries the parsed parts and the outcome of each check group.
type Details struct {
	LocalPart         string `json:"localPart"`
	Domain            string `json:"domain"`
	HasValidFormat    bool   `json:"hasValidFormat"`
	HasValidLength    bool   `json:"hasValidLength"`
	HasValidLocalPart bool   `json:"hasValidLocalPart"`
	HasValidDomain    bool   `json:"hasValidDomain"`
}

// ValidationResult is the diagnostic report for a single email address.
// Errors and Warnings are ordered by check execution order. The result is a
// plain value and must not be mutated after it is returned.
type ValidationResult struct {
	Email      string   `json:"email"`
	IsValid    bool     `json:"isValid"`
	Errors     []string `json:"errors"`
	Warnings   []string `json:"warnings"`
	Suggestion string   `json:"suggestions,omitempty"`
	Details    Details  `json:"details"`
}

// Validate checks an email address against the built-in typo table.
func Validate(email string) ValidationResult {
	return ValidateWithTypos(email, DomainTypos)
}

// ValidateWithTypos runs every structural check against the given address and
// accumulates all diagnostics. It never short-circuits: each check runs and may
// append to Errors or Warnings independently of the others. The function is
// total over string inputs and never panics.
func ValidateWithTypos(email string, typos map[string]string) ValidationResult {
	trimmed := strings.TrimSpace(email)

	result := ValidationResult{
		Email:    trimmed,
		Errors:   []string{},
		Warnings: []string{},
	}

	if trimmed != email {
		result.Warnings = append(result.Warnings, "Email has leading or trailing whitespace")
	}

	// Split on the last @ so addresses with multiple @ symbols still yield a
	// sensible domain for the remaining checks.
	var localPart, domain string
	if i := strings.LastIndex(trimmed, "@"); i > 0 {
		localPart = trimmed[:i]
		domain = trimmed[i+1:]
	}

	hasValidFormat := emailRegex.MatchString(trimmed)

	hasValidLength := len(trimmed) > 0 && len(trimmed) <= maxEmailLength
	if len(trimmed) == 0 {
		result.Errors = append(result.Errors, "Email cannot be empty")
	} else if len(trimmed) > maxEmailLength {
		result.Errors = append(result.Errors, fmt.Sprintf("Email exceeds maximum length of %d characters", maxEmailLength))
	}

	hasValidLocalPart := true
	switch {
	case localPart == "":
		result.Errors = append(result.Errors, "Missing local part (before @)")
		hasValidLocalPart = false
	case len(localPart) > maxLocalLength:
		result.Errors = append(result.Errors, fmt.Sprintf("Local part exceeds %d characters", maxLocalLength))
		hasValidLocalPart = false
	default:
		if strings.HasPrefix(localPart, ".") || strings.HasSuffix(localPart, ".") {
			result.Errors = append(result.Errors, "Local part cannot start or end with a period")
			hasValidLocalPart = false
		}
		if strings.Contains(localPart, "..") {
			result.Errors = append(result.Errors, "Local part cannot contain consecutive periods")
			hasValidLocalPart = false
		}
	}

	hasValidDomain := true
	switch {
	case domain == "":
		result.Errors = append(result.Errors, "Missing domain (after @)")
		hasValidDomain = false
	case len(domain) > maxDomainLength:
		result.Errors = append(result.Errors, fmt.Sprintf("Domain exceeds %d characters", maxDomainLength))
		hasValidDomain = false
	default:
		if corrected, ok := typos[strings.ToLower(domain)]; ok {
			result.Suggestion = localPart + "@" + corrected
			result.Warnings = append(result.Warnings, fmt.Sprintf("Did you mean %q?", corrected))
		}
		if strings.HasPrefix(domain, "-") || strings.HasSuffix(domain, "-") {
			result.Errors = append(result.Errors, "Domain labels cannot start or end with hyphens")
			hasValidDomain = false
		}
		if strings.HasPrefix(domain, ".") || strings.HasSuffix(domain, ".") {
			result.Errors = append(result.Errors, "Domain cannot start or end with a period")
			hasValidDomain = false
		}
		if strings.Contains(domain, "..") {
			result.Errors = append(result.Errors, "Domain cannot contain consecutive periods")
			hasValidDomain = false
		}
		if !strings.Contains(domain, ".") {
			result.Warnings = append(result.Warnings, "Domain should typically include a TLD (e.g., .com, .org)")
		}
		if strings.Contains(domain, " ") {
			result.Errors = append(result.Errors, "Domain cannot contain spaces")
			hasValidDomain = false
		}
	}

	switch strings.Count(trimmed, "@") {
	case 1:
	case 0:
		result.Errors = append(result.Errors, "Email must contain an @ symbol")
	default:
		result.Errors = append(result.Errors, "Email cannot contain multiple @ symbols")
	}

	result.Details = Details{
		LocalPart:         localPart,
		Domain:            domain,
		HasValidFormat:    hasValidFormat,
		HasValidLength:    hasValidLength,
		HasValidLocalPart: hasValidLocalPart,
		HasValidDomain:    hasValidDomain,
	}
	result.IsValid = hasValidFormat && hasValidLength && hasValidLocalPart && hasValidDomain && len(result.Errors) == 0

	return result
}
