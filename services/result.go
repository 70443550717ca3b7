package services

import (
	"net/http"
)

// ActionResult is the uniform envelope every service operation returns.
// Code is an HTTP status code, Data holds zero or more response models.
type ActionResult struct {
	Code    int           `json:"code"`
	Message string        `json:"message"`
	Data    []interface{} `json:"data"`
}

func (r ActionResult) IsSuccess() bool {
	return r.Code == http.StatusOK || r.Code == http.StatusCreated
}

func success(message string, data ...interface{}) ActionResult {
	return ActionResult{Code: http.StatusOK, Message: message, Data: normalize(data)}
}

func created(message string, data ...interface{}) ActionResult {
	return ActionResult{Code: http.StatusCreated, Message: message, Data: normalize(data)}
}

// successList is success() for an already-built data slice.
func successList(data []interface{}) ActionResult {
	return ActionResult{Code: http.StatusOK, Message: MsgSuccess, Data: normalize(data)}
}

func badRequest(message string) ActionResult {
	return ActionResult{Code: http.StatusBadRequest, Message: message, Data: []interface{}{}}
}

func notFound(message string) ActionResult {
	return ActionResult{Code: http.StatusNotFound, Message: message, Data: []interface{}{}}
}

func unexpectedError(message string) ActionResult {
	return ActionResult{Code: http.StatusInternalServerError, Message: message, Data: []interface{}{}}
}

// normalize keeps Data non-nil so the envelope always serializes as an array.
func normalize(data []interface{}) []interface{} {
	if data == nil {
		return []interface{}{}
	}
	return data
}
