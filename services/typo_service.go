package services

import (
	"sync"

	"MailCheck/models"
	"MailCheck/repositories"
	"MailCheck/utils/logger"
	"MailCheck/validator"

	"github.com/rs/zerolog"
)

// TypoService owns the merged domain-typo table: built-in defaults, optional
// file entries, and database overrides layered in that order. The merged map
// is replaced wholesale on every rebuild and handed out as a read-only
// snapshot, so validations never observe a partially updated table.
type TypoService struct {
	repo repositories.TypoRepository
	base map[string]string
	log  zerolog.Logger

	mu     sync.RWMutex
	merged map[string]string
}

// NewTypoService builds the service over the built-in table plus any extra
// entries (typically loaded from TYPO_FILE). The database overrides are
// layered in by the first Reload.
func NewTypoService(repo repositories.TypoRepository, extra map[string]string) *TypoService {
	base := make(map[string]string, len(validator.DomainTypos)+len(extra))
	for typo, correction := range validator.DomainTypos {
		base[typo] = correction
	}
	for typo, correction := range extra {
		base[typo] = correction
	}

	s := &TypoService{
		repo:   repo,
		base:   base,
		log:    logger.GetLogger("typo_service"),
		merged: base,
	}
	return s
}

// Reload rebuilds the merged table from the base entries and the current
// database overrides.
func (s *TypoService) Reload() error {
	merged := make(map[string]string, len(s.base))
	for typo, correction := range s.base {
		merged[typo] = correction
	}

	if s.repo != nil {
		overrides, err := s.repo.All()
		if err != nil {
			return err
		}
		for _, o := range overrides {
			merged[o.Typo] = o.Correction
		}
	}

	s.mu.Lock()
	s.merged = merged
	s.mu.Unlock()

	s.log.Debug().Int("entries", len(merged)).Msg("Typo table rebuilt")
	return nil
}

// Table returns the current merged table. Callers must treat it as read-only.
func (s *TypoService) Table() map[string]string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.merged
}

// Set stores a database override and rebuilds the merged table.
func (s *TypoService) Set(typo, correction string) error {
	entry := &models.DomainTypo{Typo: typo, Correction: correction}
	entry.Normalize()
	if err := entry.Validate(); err != nil {
		return err
	}

	if err := s.repo.Upsert(entry); err != nil {
		return err
	}
	return s.Reload()
}

// Remove deletes a database override and rebuilds the merged table. Built-in
// entries cannot be removed, only overridden.
func (s *TypoService) Remove(typo string) error {
	if err := s.repo.Delete(typo); err != nil {
		return err
	}
	return s.Reload()
}
