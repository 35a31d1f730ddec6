package httpapi

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	"retreat/internal/domain"
)

type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

const codeInternal = "internal"

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20) // 1 MB limit
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return domain.Invalidf("invalid request body: %v", err)
	}
	return nil
}

func statusFor(code string) int {
	switch code {
	case domain.CodeNotFound:
		return http.StatusNotFound
	case domain.CodeRoomClosed, domain.CodeGenderRestriction:
		return http.StatusConflict
	case domain.CodeValidation:
		return http.StatusBadRequest
	case domain.CodeUnauthenticated:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

// writeError renders err as a localized error envelope. Errors without a
// domain code are logged and reported as internal.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	code := domain.Code(err)
	if code == "" {
		log.Printf("❌ %s %s: %v", r.Method, r.URL.Path, err)
		code = codeInternal
	}
	locale := h.tr.Locale(r.Header.Get("Accept-Language"))
	msg := h.tr.T(locale, "error."+code, map[string]any{"Detail": validationDetail(err)})
	writeJSON(w, statusFor(code), errorResponse{Error: msg, Code: code})
}

// validationDetail returns the text following the validation sentinel.
func validationDetail(err error) string {
	if !errors.Is(err, domain.ErrValidation) {
		return ""
	}
	msg := err.Error()
	prefix := domain.ErrValidation.Error() + ": "
	if i := strings.Index(msg, prefix); i >= 0 {
		return msg[i+len(prefix):]
	}
	return msg
}
