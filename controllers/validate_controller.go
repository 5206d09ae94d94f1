package controllers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"MailCheck/utils/response"
	"MailCheck/validator"
)

type ValidationService interface {
	Validate(ctx context.Context, email string) validator.ValidationResult
	ValidateBatch(ctx context.Context, emails []string) []validator.ValidationResult
}

type ValidateController struct {
	service    ValidationService
	batchLimit int
}

func NewValidateController(service ValidationService, batchLimit int) *ValidateController {
	return &ValidateController{
		service:    service,
		batchLimit: batchLimit,
	}
}

type ValidateRequest struct {
	Email string `json:"email"`
}

type BatchValidateRequest struct {
	Emails []string `json:"emails"`
}

type BatchValidateResponse struct {
	Results []validator.ValidationResult `json:"results"`
}

// Validate handles POST /api/mailcheck/validate. An invalid address is a
// normal 200 outcome; only a malformed request body is a client error.
func (vc *ValidateController) Validate(w http.ResponseWriter, r *http.Request) {
	var req ValidateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.JSONError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	result := vc.service.Validate(r.Context(), req.Email)
	response.JSONResponse(w, result, http.StatusOK)
}

// ValidateBatch handles POST /api/mailcheck/validate/batch.
func (vc *ValidateController) ValidateBatch(w http.ResponseWriter, r *http.Request) {
	var req BatchValidateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.JSONError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if len(req.Emails) == 0 {
		response.JSONError(w, "No emails provided", http.StatusBadRequest)
		return
	}
	if len(req.Emails) > vc.batchLimit {
		response.JSONError(w, fmt.Sprintf("Batch size exceeds limit of %d", vc.batchLimit), http.StatusBadRequest)
		return
	}

	results := vc.service.ValidateBatch(r.Context(), req.Emails)
	response.JSONResponse(w, BatchValidateResponse{Results: results}, http.StatusOK)
}
