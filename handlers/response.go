package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"fitnessapi/services"
)

// Response is the envelope every endpoint returns: an HTTP status code, a
// human readable message and an array of zero or more serialized entities.
type Response struct {
	Code    int           `json:"code"`
	Message string        `json:"message"`
	Data    []interface{} `json:"data"`
}

func writeResult(w http.ResponseWriter, result services.ActionResult) {
	writeResponse(w, result.Code, result.Message, result.Data)
}

func writeResponse(w http.ResponseWriter, code int, message string, data []interface{}) {
	if data == nil {
		data = []interface{}{}
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(Response{Code: code, Message: message, Data: data})
}

func badRequestResponse(w http.ResponseWriter, message string) {
	writeResponse(w, http.StatusBadRequest, message, nil)
}

// decodeBody parses a JSON request body into the typed request schema.
func decodeBody(r *http.Request, dest interface{}) bool {
	return json.NewDecoder(r.Body).Decode(dest) == nil
}

// queryUint parses an unsigned integer query parameter, 0 when absent or
// invalid.
func queryUint(r *http.Request, name string) uint {
	value, err := strconv.ParseUint(r.URL.Query().Get(name), 10, 32)
	if err != nil {
		return 0
	}
	return uint(value)
}
