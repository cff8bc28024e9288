package response

// ErrorResponse is returned for rejected requests and for pages that could
// not be fetched.
type ErrorResponse struct {
	Error string `json:"error"`
}

// Message for a request without a URL.
const MsgNoURL = "No URL provided"

const MsgInvalidBody = "Invalid request body"
