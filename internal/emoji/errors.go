package emoji

import "errors"

var (
	// ErrInvalidIconSize is returned by NewResolver when the requested
	// sprite size is not in IconSizes. No resolver exists after this.
	ErrInvalidIconSize = errors.New("invalid icon size")

	// ErrUnknownName is returned when a ":name:" token is not in the
	// name index.
	ErrUnknownName = errors.New("unknown emoji name")

	// ErrUnknownUnicode is returned when a unicode hex string is not in
	// the codepoint index.
	ErrUnknownUnicode = errors.New("unknown emoji unicode")
)
