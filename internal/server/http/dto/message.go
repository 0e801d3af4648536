package dto

// MessageResponse is the confirmation/error envelope every non-payload
// response uses.
type MessageResponse struct {
	Message string `json:"message"`
}
