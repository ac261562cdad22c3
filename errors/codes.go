package errors

// ErrorCode identifies a failure kind independent of its HTTP mapping.
type ErrorCode int32

const (
	ErrorCode_UNSPECIFIED ErrorCode = iota
	ErrorCode_HTTP_OK
	ErrorCode_INTERNAL
	ErrorCode_INVALID_ARGUMENT
	ErrorCode_INVALID_PAYLOAD
	ErrorCode_RATE_LIMITED
	ErrorCode_AI_NOT_CONFIGURED
	ErrorCode_AI_RATE_LIMITED
	ErrorCode_AI_QUOTA_EXCEEDED
	ErrorCode_AI_UNAVAILABLE
	ErrorCode_AI_MALFORMED_RESPONSE
)

// String returns the stable name used in logs and response bodies.
func (c ErrorCode) String() string {
	switch c {
	case ErrorCode_HTTP_OK:
		return "OK"
	case ErrorCode_INTERNAL:
		return "INTERNAL"
	case ErrorCode_INVALID_ARGUMENT:
		return "INVALID_ARGUMENT"
	case ErrorCode_INVALID_PAYLOAD:
		return "INVALID_PAYLOAD"
	case ErrorCode_RATE_LIMITED:
		return "RATE_LIMITED"
	case ErrorCode_AI_NOT_CONFIGURED:
		return "AI_NOT_CONFIGURED"
	case ErrorCode_AI_RATE_LIMITED:
		return "AI_RATE_LIMITED"
	case ErrorCode_AI_QUOTA_EXCEEDED:
		return "AI_QUOTA_EXCEEDED"
	case ErrorCode_AI_UNAVAILABLE:
		return "AI_UNAVAILABLE"
	case ErrorCode_AI_MALFORMED_RESPONSE:
		return "AI_MALFORMED_RESPONSE"
	default:
		return "UNSPECIFIED"
	}
}
