package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"quizadmin/internal/domain"
)

// unresolvable stands in for a path identifier that is not an integer; no
// stored entity carries it, so lookups report the level as not found.
const unresolvable = math.MinInt64

type errorBody struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	b, err := json.Marshal(v)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeRaw(w, status, b)
}

func writeRaw(w http.ResponseWriter, status int, b []byte) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write(b)
}

// writeError maps err onto a status code and a {"error": ...} body.
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	var nf *domain.NotFoundError
	switch {
	case errors.As(err, &nf):
		writeJSON(w, http.StatusNotFound, errorBody{Error: nf.Error()})
	case errors.Is(err, domain.ErrBadRequest), errors.Is(err, domain.ErrInvalidQuery):
		writeJSON(w, http.StatusBadRequest, errorBody{Error: err.Error()})
	case errors.Is(err, domain.ErrCorruptStore):
		s.log.Error("catalog store is corrupt", zap.String("path", r.URL.Path), zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, errorBody{Error: "store is corrupt"})
	case errors.Is(err, domain.ErrPersistence):
		s.log.Error("catalog store unavailable", zap.String("path", r.URL.Path), zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, errorBody{Error: "failed to persist changes"})
	default:
		s.log.Error("request failed", zap.String("path", r.URL.Path), zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, errorBody{Error: "internal error"})
	}
}

// decodeBody reads a single JSON value into v. An empty body leaves v at its
// zero value; anything after the value is rejected.
func decodeBody(r *http.Request, v any) error {
	defer r.Body.Close()
	dec := json.NewDecoder(r.Body)
	err := dec.Decode(v)
	if errors.Is(err, io.EOF) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("%w: invalid request body: %v", domain.ErrBadRequest, err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return fmt.Errorf("%w: invalid request body: trailing data", domain.ErrBadRequest)
	}
	return nil
}

func pathID(r *http.Request, name string) int64 {
	id, err := strconv.ParseInt(r.PathValue(name), 10, 64)
	if err != nil {
		return unresolvable
	}
	return id
}

func domainID(r *http.Request) domain.DomainID { return domain.DomainID(pathID(r, "domainId")) }

func categoryID(r *http.Request) domain.CategoryID {
	return domain.CategoryID(pathID(r, "categoryId"))
}

func questionID(r *http.Request) domain.QuestionID {
	return domain.QuestionID(pathID(r, "questionId"))
}
