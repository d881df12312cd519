package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/smartfinder/smartfinder/internal/logger"
	"github.com/smartfinder/smartfinder/internal/utils"
)

// bind decodes the request body into dst and validates it against the
// struct's validate tags.
//
// On failure it writes the error response itself and returns false:
//   - undecodable JSON → 400 with a message envelope.
//   - field constraint violations → 400 with a {field: message} map, one
//     entry per offending field.
func (h *Handler) bind(w http.ResponseWriter, r *http.Request, dst any) bool {
	log := logger.FromRequest(r)

	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		utils.WriteMessage(w, "invalid JSON was passed", http.StatusBadRequest)
		return false
	}

	if err := h.validate.Struct(dst); err != nil {
		var fieldErrors validator.ValidationErrors
		if !errors.As(err, &fieldErrors) {
			log.Err(err).Msg("request validation failed")
			utils.WriteMessage(w, "invalid request body", http.StatusBadRequest)
			return false
		}

		fields := make(map[string]string, len(fieldErrors))
		for _, fieldError := range fieldErrors {
			fields[strings.ToLower(fieldError.Field())] = bindingMessage(fieldError)
		}

		log.Info().Any("fields", fields).Msg("request rejected by field validation")
		utils.WriteJSON(w, fields, http.StatusBadRequest)
		return false
	}

	return true
}

// bindingMessage renders a single field constraint violation as a
// human-readable message.
func bindingMessage(fieldError validator.FieldError) string {
	switch fieldError.Tag() {
	case "max":
		return fmt.Sprintf("must be at most %s characters long", fieldError.Param())
	default:
		return fmt.Sprintf("failed on the %q constraint", fieldError.Tag())
	}
}

// idParam parses the {id} route parameter as a base-10 int64.
func idParam(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}
