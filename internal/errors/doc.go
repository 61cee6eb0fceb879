// Package errors provides typed error handling for vanta-mcp operations.
//
// Example usage:
//
//	// Creating errors
//	err := errors.UnknownTool("bogus_tool")
//
//	// Wrapping errors
//	err := errors.InvalidArguments("vanta_execute_service", jsonErr)
//
//	// Checking error codes
//	if errors.Is(err, errors.CodeUnknownTool) {
//	    // handle unknown tool
//	}
//
//	// Stdlib compatibility
//	var vErr *errors.Error
//	if errors.As(err, &vErr) {
//	    fmt.Println(vErr.Code, vErr.Message)
//	}
package errors
