package validator

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// DomainTypos maps common lowercase domain misspellings to their canonical
// form. Built once at startup and never mutated; the service layer merges
// file and database entries over it into its own table.
var DomainTypos = map[string]string{
	"gmial.com":      "gmail.com",
	"gmal.com":       "gmail.com",
	"gamil.com":      "gmail.com",
	"gnail.com":      "gmail.com",
	"gmaill.com":     "gmail.com",
	"gmail.co":       "gmail.com",
	"gmail.cm":       "gmail.com",
	"yaho.com":       "yahoo.com",
	"yahooo.com":     "yahoo.com",
	"yhoo.com":       "yahoo.com",
	"yahoo.co":       "yahoo.com",
	"hotmial.com":    "hotmail.com",
	"hotmal.com":     "hotmail.com",
	"hotmil.com":     "hotmail.com",
	"hotmail.co":     "hotmail.com",
	"outlok.com":     "outlook.com",
	"outloook.com":   "outlook.com",
	"outlook.co":     "outlook.com",
	"iclod.com":      "icloud.com",
	"icluod.com":     "icloud.com",
	"protonmial.com": "protonmail.com",
	"aoll.com":       "aol.com",
	"ao.com":         "aol.com",
}

// LoadTypoFile reads an extra typo table from a JSON object file mapping
// misspelled domains to corrections. Keys and values are lowercased so
// lookups against a lowercased domain always hit.
func LoadTypoFile(path string) (map[string]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read typo file: %w", err)
	}

	var raw map[string]string
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse typo file %s: %w", path, err)
	}

	typos := make(map[string]string, len(raw))
	for typo, correction := range raw {
		typos[strings.ToLower(typo)] = strings.ToLower(correction)
	}
	return typos, nil
}
