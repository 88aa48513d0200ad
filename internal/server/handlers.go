package server

import (
	"encoding/json"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"quizadmin/internal/domain"
	"quizadmin/internal/fingerprint"
)

func (s *Server) handleListDomains(w http.ResponseWriter, r *http.Request) {
	domains, err := s.catalog.ListDomains(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	b, err := json.Marshal(domains)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	etag := fingerprint.ETag(b)
	w.Header().Set("ETag", etag)
	if etagMatches(r.Header.Get("If-None-Match"), etag) {
		w.WriteHeader(http.StatusNotModified)
		return
	}
	writeRaw(w, http.StatusOK, b)
}

// etagMatches reports whether an If-None-Match value selects etag, using weak
// comparison over the comma-separated list.
func etagMatches(header, etag string) bool {
	for _, candidate := range strings.Split(header, ",") {
		candidate = strings.TrimSpace(candidate)
		if candidate == "*" || strings.TrimPrefix(candidate, "W/") == strings.TrimPrefix(etag, "W/") {
			return true
		}
	}
	return false
}

func (s *Server) handleGetDomain(w http.ResponseWriter, r *http.Request) {
	d, err := s.catalog.GetDomain(r.Context(), domainID(r))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, d)
}

func (s *Server) handleCreateDomain(w http.ResponseWriter, r *http.Request) {
	var in domain.DomainInput
	if err := decodeBody(r, &in); err != nil {
		s.writeError(w, r, err)
		return
	}
	d, err := s.catalog.CreateDomain(r.Context(), in)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, d)
}

func (s *Server) handleUpdateDomain(w http.ResponseWriter, r *http.Request) {
	var in domain.DomainInput
	if err := decodeBody(r, &in); err != nil {
		s.writeError(w, r, err)
		return
	}
	d, err := s.catalog.UpdateDomain(r.Context(), domainID(r), in)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, d)
}

func (s *Server) handleDeleteDomain(w http.ResponseWriter, r *http.Request) {
	if err := s.catalog.DeleteDomain(r.Context(), domainID(r)); err != nil {
		s.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleCreateCategory(w http.ResponseWriter, r *http.Request) {
	var in domain.CategoryInput
	if err := decodeBody(r, &in); err != nil {
		s.writeError(w, r, err)
		return
	}
	c, err := s.catalog.CreateCategory(r.Context(), domainID(r), in)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, c)
}

func (s *Server) handleUpdateCategory(w http.ResponseWriter, r *http.Request) {
	var in domain.CategoryInput
	if err := decodeBody(r, &in); err != nil {
		s.writeError(w, r, err)
		return
	}
	c, err := s.catalog.UpdateCategory(r.Context(), domainID(r), categoryID(r), in)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, c)
}

func (s *Server) handleDeleteCategory(w http.ResponseWriter, r *http.Request) {
	if err := s.catalog.DeleteCategory(r.Context(), domainID(r), categoryID(r)); err != nil {
		s.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleCreateQuestion(w http.ResponseWriter, r *http.Request) {
	var in domain.QuestionInput
	if err := decodeBody(r, &in); err != nil {
		s.writeError(w, r, err)
		return
	}
	q, err := s.catalog.CreateQuestion(r.Context(), domainID(r), categoryID(r), in)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, q)
}

func (s *Server) handleUpdateQuestion(w http.ResponseWriter, r *http.Request) {
	var in domain.QuestionInput
	if err := decodeBody(r, &in); err != nil {
		s.writeError(w, r, err)
		return
	}
	q, err := s.catalog.UpdateQuestion(r.Context(), domainID(r), categoryID(r), questionID(r), in)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, q)
}

func (s *Server) handleDeleteQuestion(w http.ResponseWriter, r *http.Request) {
	err := s.catalog.DeleteQuestion(r.Context(), domainID(r), categoryID(r), questionID(r))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	domains, err := s.catalog.Search(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, domains)
}

func (s *Server) handleFilterQuestions(w http.ResponseWriter, r *http.Request) {
	matches, err := s.catalog.FilterQuestions(r.Context(), r.URL.Query().Get("where"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, matches)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if _, err := s.catalog.ListDomains(r.Context()); err != nil {
		s.log.Warn("health check failed", zap.Error(err))
		writeJSON(w, http.StatusServiceUnavailable, errorBody{Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
