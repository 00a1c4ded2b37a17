package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUserMessage_Validation(t *testing.T) {
	err := NewAppError(ErrCodeInvalidGuests, "Number of guests must be at least 1", nil)

	assert.Equal(t, "Number of guests must be at least 1", UserMessage(err))
	assert.True(t, IsValidation(err))
}

func TestUserMessage_RemoteRejection(t *testing.T) {
	err := fmt.Errorf("cancel: %w", &RemoteError{Method: "DELETE", Status: 400, Message: "check-in date has already started"})

	assert.Equal(t, "check-in date has already started", UserMessage(err))
	assert.False(t, IsUnavailable(err))
	assert.True(t, GetRemoteError(err).IsClientError())
}

func TestUserMessage_RemoteWithoutBody(t *testing.T) {
	err := &RemoteError{Method: "GET", Status: 404}

	assert.Equal(t, "Not Found", UserMessage(err))
}

func TestUserMessage_TransportFailure(t *testing.T) {
	err := &RemoteError{Method: "GET", Unavailable: true, Err: fmt.Errorf("dial tcp: connection refused")}

	assert.Equal(t, ServiceUnavailableMessage, UserMessage(err))
	assert.True(t, IsUnavailable(err))
	assert.False(t, IsValidation(err))
}

func TestUserMessage_Unknown(t *testing.T) {
	assert.Equal(t, "Something went wrong", UserMessage(fmt.Errorf("boom")))
	assert.Equal(t, "", UserMessage(nil))
}
