package dto

// MessageResponse carries a server message back to the browser as is
type MessageResponse struct {
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

// ListResponse wraps a list with its count
type ListResponse[T any] struct {
	Data  []T `json:"data"`
	Total int `json:"total"`
}
