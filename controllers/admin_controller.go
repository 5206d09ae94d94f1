package controllers

import (
	"encoding/json"
	"errors"
	"net/http"

	"MailCheck/models"
	"MailCheck/repositories"
	"MailCheck/services"
	"MailCheck/utils/response"

	"github.com/gorilla/mux"
)

type TypoManager interface {
	Table() map[string]string
	Set(typo, correction string) error
	Remove(typo string) error
}

type AdminController struct {
	auth    *services.AdminService
	typos   TypoManager
	records repositories.RecordRepository
}

func NewAdminController(auth *services.AdminService, typos TypoManager, records repositories.RecordRepository) *AdminController {
	return &AdminController{
		auth:    auth,
		typos:   typos,
		records: records,
	}
}

type LoginRequest struct {
	APIKey string `json:"api_key"`
}

type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
}

type TypoRequest struct {
	Typo       string `json:"typo"`
	Correction string `json:"correction"`
}

func (ac *AdminController) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.JSONError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	token, err := ac.auth.Login(req.APIKey)
	if err != nil {
		response.JSONError(w, "Invalid API key", http.StatusUnauthorized)
		return
	}

	response.JSONResponse(w, TokenResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   int(ac.auth.JWTExpiry().Seconds()),
	}, http.StatusOK)
}

func (ac *AdminController) ListTypos(w http.ResponseWriter, r *http.Request) {
	response.JSONResponse(w, ac.typos.Table(), http.StatusOK)
}

func (ac *AdminController) UpsertTypo(w http.ResponseWriter, r *http.Request) {
	var req TypoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.JSONError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := ac.typos.Set(req.Typo, req.Correction); err != nil {
		if errors.Is(err, models.ErrTypoEmpty) || errors.Is(err, models.ErrCorrectionEmpty) || errors.Is(err, models.ErrTypoInvalid) {
			response.JSONError(w, err.Error(), http.StatusBadRequest)
			return
		}
		response.JSONError(w, "Failed to store typo correction", http.StatusInternalServerError)
		return
	}

	response.JSONResponse(w, map[string]string{"message": "Typo correction stored"}, http.StatusCreated)
}

func (ac *AdminController) DeleteTypo(w http.ResponseWriter, r *http.Request) {
	typo := mux.Vars(r)["typo"]

	if err := ac.typos.Remove(typo); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			response.JSONError(w, "Typo correction not found", http.StatusNotFound)
			return
		}
		response.JSONError(w, "Failed to delete typo correction", http.StatusInternalServerError)
		return
	}

	response.JSONResponse(w, map[string]string{"message": "Typo correction deleted"}, http.StatusOK)
}

func (ac *AdminController) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := ac.records.Stats()
	if err != nil {
		response.JSONError(w, "Failed to load stats", http.StatusInternalServerError)
		return
	}

	response.JSONResponse(w, stats, http.StatusOK)
}
