package handlers

import "github.com/tracklabs/projtrack/internal/types"

// Slug identifies the class of an API error response.
type Slug string

const (
	ErrorSlug        Slug = "error"
	InvalidInputSlug Slug = "invalid-input"
	NotFoundSlug     Slug = "not-found"
	ConflictSlug     Slug = "conflict"
	ServerErrorSlug  Slug = "server-error"
)

// Response is the envelope returned on non-2xx statuses. Fields is only
// populated for validation failures and maps each field name to the full
// list of its violation messages.
type Response struct {
	Slug   Slug                `json:"slug"`
	Error  string              `json:"error"`
	Fields map[string][]string `json:"fields,omitempty"`
}

func errInvalidInput(msg string) Response {
	return Response{
		Slug:  InvalidInputSlug,
		Error: msg,
	}
}

func errValidation(verrs types.ValidationErrors) Response {
	return Response{
		Slug:   InvalidInputSlug,
		Error:  "validation failed",
		Fields: verrs.Fields(),
	}
}

func errNotFound(msg string) Response {
	return Response{
		Slug:  NotFoundSlug,
		Error: msg,
	}
}

func errConflict(msg string) Response {
	return Response{
		Slug:  ConflictSlug,
		Error: msg,
	}
}

func errServer(msg string) Response {
	return Response{
		Slug:  ServerErrorSlug,
		Error: msg,
	}
}
