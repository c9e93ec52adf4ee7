package cli

// ErrorCode defines error types for CLI operations
type ErrorCode string

const (
	InvalidArguments    ErrorCode = "InvalidArguments"
	MissingServerTarget ErrorCode = "MissingServerTarget"
	InvalidServerURL    ErrorCode = "InvalidServerURL"
)

func (c ErrorCode) ErrorCode() string {
	return string(c)
}
