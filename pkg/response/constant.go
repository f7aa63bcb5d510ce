package response

// Messages
const (
	MessageSuccess      = "Success"
	DefaultErrorMessage = "Something went wrong"
	MessageRateLimited  = "Too many requests, please slow down"
)

// Error codes
const (
	BadRequestErrorCode      = 400
	TooManyRequestsErrorCode = 429
	InternalServerErrorCode  = 500
)

// DateTimeFormat is the layout DateTime marshals to.
const DateTimeFormat = "2006-01-02 15:04:05"
