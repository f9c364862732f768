package errors

import "net/http"

// HTTPStatusFromErr maps an error's mark to the HTTP status a handler should
// respond with. Unclassified errors map to 500.
func HTTPStatusFromErr(err error) int {
	switch {
	case IsValidation(err):
		return http.StatusBadRequest
	case IsNotFound(err):
		return http.StatusNotFound
	case IsAlreadyExists(err):
		return http.StatusConflict
	case IsInvalidOperation(err):
		return http.StatusConflict
	case IsPermissionDenied(err):
		return http.StatusForbidden
	case IsDatabase(err):
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}
