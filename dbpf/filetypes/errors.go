package filetypes

import "errors"

// Errors returned by the NMAP parser.
var (
	// ErrWrongResourceType indicates a chunk was not a NMAP resource.
	ErrWrongResourceType = errors.New("filetypes: not an NMAP resource")

	// ErrBadVersion indicates the NMAP version word was not 1.
	ErrBadVersion = errors.New("filetypes: unsupported NMAP version")
)
