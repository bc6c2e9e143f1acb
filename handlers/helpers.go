package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/Dosada05/esports-registry/db"
	"github.com/Dosada05/esports-registry/services"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
)

type jsonResponse map[string]interface{}

const maxBodyBytes = 1_048_576

// readJSON decodes a single JSON value into dst. Unknown fields are ignored;
// the registration form posts extra inputs.
func readJSON(w http.ResponseWriter, r *http.Request, dst interface{}) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	dec := json.NewDecoder(r.Body)

	err := dec.Decode(dst)
	if err != nil {
		var syntaxError *json.SyntaxError
		var unmarshalTypeError *json.UnmarshalTypeError
		var maxBytesError *http.MaxBytesError
		var invalidUnmarshalError *json.InvalidUnmarshalError

		switch {
		case errors.As(err, &syntaxError):
			return fmt.Errorf("body contains badly-formed JSON (at character %d)", syntaxError.Offset)
		case errors.Is(err, io.ErrUnexpectedEOF):
			return errors.New("body contains badly-formed JSON")
		case errors.As(err, &unmarshalTypeError):
			if unmarshalTypeError.Field != "" {
				return fmt.Errorf("body contains incorrect JSON type for field %q", unmarshalTypeError.Field)
			}
			return fmt.Errorf("body contains incorrect JSON type (at character %d)", unmarshalTypeError.Offset)
		case errors.Is(err, io.EOF):
			return errors.New("body must not be empty")
		case errors.As(err, &maxBytesError):
			return fmt.Errorf("body must not be larger than %d bytes", maxBytesError.Limit)
		case errors.As(err, &invalidUnmarshalError):
			panic(err)
		default:
			return err
		}
	}

	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return errors.New("body must only contain a single JSON value")
	}
	return nil
}

func writeJSON(w http.ResponseWriter, status int, data interface{}, headers http.Header) error {
	js, err := json.MarshalIndent(data, "", "\t")
	if err != nil {
		return err
	}
	js = append(js, '\n')

	for key, value := range headers {
		w.Header()[key] = value
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, err = w.Write(js)
	return err
}

// messageResponse writes {"message": message} plus any extra fields.
func messageResponse(w http.ResponseWriter, r *http.Request, logger *slog.Logger, status int, message string, extra jsonResponse) {
	env := jsonResponse{"message": message}
	for k, v := range extra {
		env[k] = v
	}
	if err := writeJSON(w, status, env, nil); err != nil {
		logger.ErrorContext(r.Context(), "failed to write response", slog.Any("error", err))
	}
}

func okResponse(w http.ResponseWriter, r *http.Request, logger *slog.Logger, data interface{}) {
	if err := writeJSON(w, http.StatusOK, data, nil); err != nil {
		logger.ErrorContext(r.Context(), "failed to write response", slog.Any("error", err))
	}
}

func badRequestResponse(w http.ResponseWriter, r *http.Request, logger *slog.Logger, err error) {
	messageResponse(w, r, logger, http.StatusBadRequest, err.Error(), nil)
}

// serverErrorResponse logs err in full and answers 500 with the endpoint's
// fixed failure message.
func serverErrorResponse(w http.ResponseWriter, r *http.Request, logger *slog.Logger, err error, message string) {
	logger.ErrorContext(r.Context(), message,
		slog.Any("error", err),
		slog.String("class", string(db.Classify(err))),
		slog.String("method", r.Method),
		slog.String("path", r.URL.Path),
		slog.String("request_id", chimw.GetReqID(r.Context())),
	)
	messageResponse(w, r, logger, http.StatusInternalServerError, message, nil)
}

// mapServiceErrorToHTTP translates service errors into responses. failure
// is the message used for everything that is not the client's fault.
func mapServiceErrorToHTTP(w http.ResponseWriter, r *http.Request, logger *slog.Logger, err error, failure string) {
	switch {
	case errors.Is(err, services.ErrTeamNotFound),
		errors.Is(err, services.ErrPlayerNotFound),
		errors.Is(err, services.ErrTournamentNotFound):
		messageResponse(w, r, logger, http.StatusNotFound, err.Error(), nil)

	case errors.Is(err, services.ErrTeamNameRequired),
		errors.Is(err, services.ErrPlayerFieldsRequired),
		errors.Is(err, services.ErrTournamentNameRequired),
		errors.Is(err, services.ErrTournamentDatesRequired),
		errors.Is(err, services.ErrTournamentInvalidDateRange),
		errors.Is(err, services.ErrPrizePoolNegative),
		errors.Is(err, services.ErrRosterTooSmall):
		badRequestResponse(w, r, logger, err)

	case errors.Is(err, services.ErrSnapshotStorageDisabled):
		messageResponse(w, r, logger, http.StatusServiceUnavailable, "Snapshot storage is not configured.", nil)

	default:
		serverErrorResponse(w, r, logger, err, failure)
	}
}

func getIDFromURL(r *http.Request, paramName string) (int, error) {
	idStr := chi.URLParam(r, paramName)
	if idStr == "" {
		return 0, fmt.Errorf("missing %s in URL path", paramName)
	}

	id, err := strconv.Atoi(idStr)
	if err != nil {
		return 0, fmt.Errorf("invalid %s format: %q", paramName, idStr)
	}
	if id <= 0 {
		return 0, fmt.Errorf("invalid %s value: %d", paramName, id)
	}
	return id, nil
}
