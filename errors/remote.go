package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// RemoteError is a failed call against one of the backend services.
// Status is zero when no response reached the gateway.
type RemoteError struct {
	Method      string
	URL         string
	Status      int
	Message     string
	Unavailable bool
	Err         error
}

func (e *RemoteError) Error() string {
	if e.Unavailable {
		return fmt.Sprintf("%s %s: service unavailable: %v", e.Method, e.URL, e.Err)
	}
	return fmt.Sprintf("%s %s: %d %s", e.Method, e.URL, e.Status, e.Message)
}

func (e *RemoteError) Unwrap() error {
	return e.Err
}

// IsClientError reports a 4xx rejection by the remote service.
func (e *RemoteError) IsClientError() bool {
	return e.Status >= http.StatusBadRequest && e.Status < http.StatusInternalServerError
}

// GetRemoteError returns the RemoteError wrapped by err, or nil
func GetRemoteError(err error) *RemoteError {
	var remoteErr *RemoteError
	if errors.As(err, &remoteErr) {
		return remoteErr
	}
	return nil
}

// IsUnavailable reports a transport level failure.
func IsUnavailable(err error) bool {
	remoteErr := GetRemoteError(err)
	return remoteErr != nil && remoteErr.Unavailable
}

// UserMessage converts err into the text of a notification banner.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	if appErr := GetAppError(err); appErr != nil && appErr.Code != ErrCodeRemote {
		return appErr.Message
	}
	if remoteErr := GetRemoteError(err); remoteErr != nil {
		if remoteErr.Unavailable {
			return ServiceUnavailableMessage
		}
		if remoteErr.Message != "" {
			return remoteErr.Message
		}
		return http.StatusText(remoteErr.Status)
	}
	return "Something went wrong"
}
