package panel

import (
	"strings"
	"time"
)

// Nest is a panel nest as returned by the application API.
type Nest struct {
	ID          int       `json:"id"`
	UUID        string    `json:"uuid"`
	Author      string    `json:"author"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Egg is a panel egg as returned by the application API.
type Egg struct {
	ID          int       `json:"id"`
	UUID        string    `json:"uuid"`
	Name        string    `json:"name"`
	Nest        int       `json:"nest"`
	Author      string    `json:"author"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CreateNestRequest is the body of a nest creation call.
type CreateNestRequest struct {
	Name        string `json:"name"`
	Identifier  string `json:"identifier"`
	Description string `json:"description"`
}

// object is the envelope wrapping every resource in API responses.
type object[T any] struct {
	Object     string `json:"object"`
	Attributes T      `json:"attributes"`
}

// list is the envelope of a paginated list response.
type list[T any] struct {
	Object string      `json:"object"`
	Data   []object[T] `json:"data"`
	Meta   struct {
		Pagination Pagination `json:"pagination"`
	} `json:"meta"`
}

// Pagination is the pagination block of a list response.
type Pagination struct {
	Total       int `json:"total"`
	Count       int `json:"count"`
	PerPage     int `json:"per_page"`
	CurrentPage int `json:"current_page"`
	TotalPages  int `json:"total_pages"`
}

// NestIdentifier derives the short identifier sent when creating a nest:
// lower-case, spaces and slashes replaced by underscores, & spelled "and".
func NestIdentifier(name string) string {
	r := strings.NewReplacer(" ", "_", "/", "_", "&", "and")
	return r.Replace(strings.ToLower(name))
}
