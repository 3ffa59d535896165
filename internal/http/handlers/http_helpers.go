package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/charmbracelet/log"
	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/rogerio-castellano/todo-tracker/internal/apierr"
)

const maxBodyBytes = 1048576 // one megabyte

// readJSON validates the request body against schema and decodes it into data.
// Any failure means the body does not have the shape of the operation's request.
func readJSON(w http.ResponseWriter, r *http.Request, schema *jsonschema.Schema, data any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	body, err := io.ReadAll(r.Body)
	if err != nil {
		return fmt.Errorf("failed to read body: %w", err)
	}

	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to read JSON: %w", err)
	}

	if err := schema.Validate(doc); err != nil {
		return fmt.Errorf("request does not match schema: %s", schemaErrorDetail(err))
	}

	if err := json.Unmarshal(body, data); err != nil {
		return fmt.Errorf("failed to decode JSON: %w", err)
	}
	return nil
}

// writeJSON takes a response status code and arbitrary data and writes a json response to the client
func writeJSON(w http.ResponseWriter, status int, data any) error {
	out, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(out); err != nil {
		return fmt.Errorf("failed to write to response: %w", err)
	}
	return nil
}

// writeAccepted sends a successful operation result.
func writeAccepted(w http.ResponseWriter, r *http.Request, data any) {
	if err := writeJSON(w, http.StatusAccepted, data); err != nil {
		log.FromContext(r.Context()).Error("failed to write JSON response", "err", err)
	}
}

// writeError translates err into the taxonomy and sends it as a bad request.
// Storage faults are logged with their cause; the client only sees DbError.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	writeErrorStatus(w, r, http.StatusBadRequest, err)
}

func writeErrorStatus(w http.ResponseWriter, r *http.Request, status int, err error) {
	respErr := apierr.Translate(err)
	logger := log.FromContext(r.Context())

	var known *apierr.ResponseError
	if !errors.As(err, &known) && respErr == apierr.ErrDb {
		logger.Error("storage failure", "path", r.URL.Path, "err", err)
	} else {
		logger.Debug("request failed", "path", r.URL.Path, "code", respErr.Code, "err", err)
	}

	if err := writeJSON(w, status, respErr); err != nil {
		logger.Error("failed to write JSON response", "err", err)
	}
}

// writeFormatError reports a body that could not be parsed into the expected request.
func writeFormatError(w http.ResponseWriter, r *http.Request, err error) {
	log.FromContext(r.Context()).Debug("invalid request body", "path", r.URL.Path, "err", err)
	if err := writeJSON(w, http.StatusBadRequest, apierr.ErrWrongFormat); err != nil {
		log.FromContext(r.Context()).Error("failed to write JSON response", "err", err)
	}
}

// WrongPathHandler answers requests that match no operation.
func WrongPathHandler(w http.ResponseWriter, r *http.Request) {
	writeError(w, r, apierr.ErrWrongPath)
}
