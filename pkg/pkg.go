// Package pkg holds project metadata and well-known file system locations.
package pkg

const (
	// Name identifies the command in help text and default paths.
	Name = "jsonpp"
	// Description is the one-line summary shown in help output.
	Description = "Strict JSON lexer, parser, and query tool"
	// Version is the semantic version reported by the version command.
	Version = "0.3.0"
)

// AuthorInfo is an author's name and email address.
type AuthorInfo struct {
	Name  string
	Email string
}

// Author lists the primary author(s) of the project.
//
//nolint:gochecknoglobals
var Author = []AuthorInfo{
	{"ardnew", "andrew@ardnew.com"},
}
