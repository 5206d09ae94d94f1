package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDomainTypoNormalize(t *testing.T) {
	typo := &DomainTypo{Typo: " Gmial.COM ", Correction: "GMAIL.com"}
	typo.Normalize()

	assert.Equal(t, "gmial.com", typo.Typo)
	assert.Equal(t, "gmail.com", typo.Correction)
}

func TestDomainTypoValidate(t *testing.T) {
	tests := []struct {
		name    string
		typo    DomainTypo
		wantErr error
	}{
		{
			name:    "Valid entry",
			typo:    DomainTypo{Typo: "gmial.com", Correction: "gmail.com"},
			wantErr: nil,
		},
		{
			name:    "Empty typo",
			typo:    DomainTypo{Correction: "gmail.com"},
			wantErr: ErrTypoEmpty,
		},
		{
			name:    "Empty correction",
			typo:    DomainTypo{Typo: "gmial.com"},
			wantErr: ErrCorrectionEmpty,
		},
		{
			name:    "Typo with @",
			typo:    DomainTypo{Typo: "user@gmial.com", Correction: "gmail.com"},
			wantErr: ErrTypoInvalid,
		},
		{
			name:    "Correction with space",
			typo:    DomainTypo{Typo: "gmial.com", Correction: "gmail .com"},
			wantErr: ErrTypoInvalid,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.typo.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}
