package models

import (
	"errors"
	"strings"
	"time"
)

var (
	ErrTypoEmpty       = errors.New("typo domain cannot be empty")
	ErrCorrectionEmpty = errors.New("correction domain cannot be empty")
	ErrTypoInvalid     = errors.New("typo entries must be bare domains")
)

// DomainTypo is an operator-managed correction overriding the built-in table.
type DomainTypo struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	Typo       string    `gorm:"uniqueIndex" json:"typo"`
	Correction string    `json:"correction"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// Normalize lowercases both sides so lookups against a lowercased domain hit.
func (t *DomainTypo) Normalize() {
	t.Typo = strings.ToLower(strings.TrimSpace(t.Typo))
	t.Correction = strings.ToLower(strings.TrimSpace(t.Correction))
}

// Validate performs validation on the typo entry
func (t *DomainTypo) Validate() error {
	if t.Typo == "" {
		return ErrTypoEmpty
	}
	if t.Correction == "" {
		return ErrCorrectionEmpty
	}
	for _, field := range []string{t.Typo, t.Correction} {
		if strings.ContainsAny(field, "@ \t") {
			return ErrTypoInvalid
		}
	}
	return nil
}
