package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/xavierca1/agency-site/internal/usecase"
)

// Envelope é o formato de toda resposta da API.
type Envelope map[string]any

// Responder escreve os envelopes. Fora de produção o detalhe do erro vai junto.
type Responder struct {
	Production bool
	Logger     logrus.FieldLogger
}

func NewResponder(production bool, logger logrus.FieldLogger) *Responder {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &Responder{Production: production, Logger: logger}
}

func (rs *Responder) JSON(w http.ResponseWriter, status int, body Envelope) {
	if _, ok := body["success"]; !ok {
		body["success"] = status < 400
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		rs.Logger.WithError(err).Error("❌ erro ao serializar resposta")
	}
}

func (rs *Responder) Fail(w http.ResponseWriter, status int, message string, cause error) {
	body := Envelope{"success": false, "message": message}
	if cause != nil && !rs.Production {
		body["error"] = cause.Error()
	}
	rs.JSON(w, status, body)
}

// Error converte erros do usecase em status HTTP.
func (rs *Responder) Error(w http.ResponseWriter, r *http.Request, err error) {
	var de *usecase.DomainError
	if errors.As(err, &de) {
		rs.Fail(w, statusForCode(de.Code), de.Message, nil)
		return
	}

	rs.Logger.WithError(err).WithFields(logrus.Fields{
		"method": r.Method,
		"path":   r.URL.Path,
	}).Error("❌ erro interno")
	rs.Fail(w, http.StatusInternalServerError, "Internal server error", err)
}

func statusForCode(code string) int {
	switch code {
	case usecase.CodeValidation:
		return http.StatusBadRequest
	case usecase.CodeUnauthorized:
		return http.StatusUnauthorized
	case usecase.CodeNotFound:
		return http.StatusNotFound
	case usecase.CodeConflict:
		return http.StatusConflict
	}
	return http.StatusInternalServerError
}

// decode lê o corpo JSON limitado a 1MB.
func decode(r *http.Request, dst any) error {
	dec := json.NewDecoder(http.MaxBytesReader(nil, r.Body, 1<<20))
	return dec.Decode(dst)
}
