package handler

import "github.com/labstack/echo/v4"

// APIResponse is the uniform envelope returned by every endpoint, success or
// failure.
type APIResponse struct {
	IsSuccess     bool     `json:"isSuccess"`
	Message       string   `json:"message"`
	Result        any      `json:"result"`
	StatusCode    int      `json:"statusCode"`
	ErrorMessages []string `json:"errorMessages"`
}

// Success builds the envelope for a completed operation.
func Success(status int, message string, result any) APIResponse {
	return APIResponse{
		IsSuccess:     true,
		Message:       message,
		Result:        result,
		StatusCode:    status,
		ErrorMessages: []string{},
	}
}

// Failure builds the envelope for a rejected operation. Conflict-style
// rejections carry their text in Message; everything else lists messages in
// ErrorMessages.
func Failure(status int, message string, errorMessages ...string) APIResponse {
	if errorMessages == nil {
		errorMessages = []string{}
	}
	return APIResponse{
		IsSuccess:     false,
		Message:       message,
		StatusCode:    status,
		ErrorMessages: errorMessages,
	}
}

func respond(c echo.Context, status int, message string, result any) error {
	return c.JSON(status, Success(status, message, result))
}
