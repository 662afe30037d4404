package errors

// HTTPStatus returns the HTTP status code for any error. Plain errors
// without a code map to an internal server error.
func HTTPStatus(err error) int {
	return GetCode(err).HTTPStatus()
}

// HTTPBody builds the JSON error payload the HTTP layer returns to
// clients: the user-facing message plus the error code, with validation
// metadata when present.
func HTTPBody(err error) map[string]interface{} {
	body := map[string]interface{}{
		"error": GetMessage(err),
		"code":  GetCode(err).String(),
	}

	var customErr *Error
	if As(err, &customErr) && customErr.Meta != nil {
		if fields, ok := customErr.Meta["validation_errors"]; ok {
			body["fields"] = fields
		}
	}

	return body
}
