package handlers

import (
	"encoding/json"
	"net/http"

	"anonfeed/pkg/posts"
	"anonfeed/pkg/ratelimit"

	"go.uber.org/zap"
)

type Response struct {
	Message string `json:"message"`
}

type RateLimitResponse struct {
	Message    string `json:"message"`
	RetryAfter int    `json:"retryAfter"`
}

type CustomError struct {
	Location string `json:"location"`
	Param    string `json:"param"`
	Value    string `json:"value"`
	Msg      string `json:"msg"`
}

type ErrorsResponse struct {
	Errors []*CustomError `json:"errors"`
}

func WriteResponse(w http.ResponseWriter, msg string, status int) {
	resp := &Response{Message: msg}
	res, err := json.Marshal(resp)
	if err != nil {
		w.WriteHeader(status)
		return
	}

	w.WriteHeader(status)
	w.Write(res)
}

func writeErrorsResponse(w http.ResponseWriter, errors []*CustomError, status int) {
	errorsJSON, err := json.Marshal(&ErrorsResponse{Errors: errors})
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
	}

	w.WriteHeader(status)
	w.Write(errorsJSON)
}

// writeStoreError maps the store's typed failures onto statuses the front
// end can act on; anything else is a plain 500.
func writeStoreError(w http.ResponseWriter, logger *zap.SugaredLogger, err error) {
	switch e := err.(type) {
	case *posts.ValidationError:
		writeErrorsResponse(w, []*CustomError{
			{Location: "body", Param: e.Field, Msg: e.Msg},
		}, http.StatusUnprocessableEntity)
	case *ratelimit.Error:
		resp, merr := json.Marshal(&RateLimitResponse{Message: e.Error(), RetryAfter: e.RetryAfterSeconds})
		if merr != nil {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write(resp)
	default:
		logger.Error(err.Error())
		w.WriteHeader(http.StatusInternalServerError)
	}
}
