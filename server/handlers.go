package server

import (
	"encoding/json"
	"mime"
	"net/http"

	"github.com/teranos/mbti/errors"
	"github.com/teranos/mbti/logger"
	"github.com/teranos/mbti/mbti"
	"github.com/teranos/mbti/version"
)

// maxBodyBytes caps POST bodies; a type code request is a few bytes.
const maxBodyBytes = 1 << 12

const codeHint = "type codes are four letters: i/e, n/s, t/f, j/p (e.g. intp)"

// indexEntry is one row of the type index
type indexEntry struct {
	Code     string `json:"code"`
	Name     string `json:"name"`
	Dominant string `json:"dominant"`
	InfoURL  string `json:"info_url"`
}

// infoResponse is a derived type plus its labelled positions
type infoResponse struct {
	mbti.Result
	Positions []mbti.Position `json:"positions"`
}

// HandleIndex lists all sixteen types
func (s *Server) HandleIndex(w http.ResponseWriter, r *http.Request) {
	codes := mbti.AllCodes()
	entries := make([]indexEntry, 0, len(codes))
	for _, code := range codes {
		res := mbti.MustDerive(code)
		entries = append(entries, indexEntry{
			Code:     res.Code,
			Name:     res.Upper(),
			Dominant: res.Stack.Dominant(),
			InfoURL:  "/" + res.Code + "/info",
		})
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"types": entries})
}

// HandleType derives the code given as ?code=/?type= (GET), or as a form
// field or JSON {"code": ...} body (POST)
func (s *Server) HandleType(w http.ResponseWriter, r *http.Request) {
	code, err := codeFromRequest(r)
	if err != nil {
		status := http.StatusBadRequest
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			status = http.StatusRequestEntityTooLarge
		}
		writeError(w, r, status, err)
		return
	}

	res, err := s.derive(r, code)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// HandleInfo returns the full profile for /{code}/info
func (s *Server) HandleInfo(w http.ResponseWriter, r *http.Request) {
	res, err := s.derive(r, r.PathValue("code"))
	if err != nil {
		writeError(w, r, http.StatusNotFound, err)
		return
	}
	writeJSON(w, http.StatusOK, infoResponse{Result: res, Positions: res.Positions()})
}

// HandleHealth reports liveness and build info
func (s *Server) HandleHealth(w http.ResponseWriter, r *http.Request) {
	info := version.Get()
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"version": info.Version,
		"commit":  info.Short(),
	})
}

// derive calls the core and records the outcome. Invalid codes come back
// wrapped with a user hint.
func (s *Server) derive(r *http.Request, code string) (mbti.Result, error) {
	res, err := mbti.Derive(code)
	s.metrics.observeDerivation(err)
	if err != nil {
		s.logger.Debugw("Rejected type code",
			logger.FieldRequestID, requestIDFrom(r.Context()),
			logger.FieldCode, code,
			logger.FieldError, err)
		return mbti.Result{}, errors.WithHint(err, codeHint)
	}

	s.logger.Debugw("Derived type",
		logger.FieldRequestID, requestIDFrom(r.Context()),
		logger.FieldCode, res.Code,
		logger.FieldDominant, res.Stack.Dominant())
	return res, nil
}

// codeFromRequest extracts the type code from query, form or JSON body.
func codeFromRequest(r *http.Request) (string, error) {
	if r.Method == http.MethodPost {
		mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
		if mediaType == "application/json" {
			var body struct {
				Code string `json:"code"`
				Type string `json:"type"`
			}
			if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
				return "", errors.WithHint(errors.Wrap(err, "invalid JSON body"), `send {"code": "intp"}`)
			}
			if code := firstNonEmpty(body.Code, body.Type); code != "" {
				return code, nil
			}
			return "", missingCode()
		}
	}

	if err := r.ParseForm(); err != nil {
		return "", errors.WithHint(errors.Wrap(err, "invalid form"), codeHint)
	}
	if code := firstNonEmpty(r.Form.Get("code"), r.Form.Get("type")); code != "" {
		return code, nil
	}
	return "", missingCode()
}

func missingCode() error {
	return errors.WithHint(errors.NewInvalidRequestError("missing type code"),
		"pass ?code=intp or a form field named type")
}

func notFound(path string) error {
	return errors.WithHint(errors.NewNotFoundError("no route for %s", path),
		"try / for the list of types or /intp/info")
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
