// Package emoji resolves :name: shortcodes and raw emoji characters to
// unicode codepoint strings, descriptions, and twemoji CDN image markup.
package emoji

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/rs/zerolog/log"
)

const (
	// cdnURLTemplate is the sprite location on the twemoji CDN. Existing
	// consumers of generated markup depend on this exact layout, so the
	// template must not change.
	cdnURLTemplate = "//twemoji.maxcdn.com/%dx%d/%s.png"

	// imageTagTemplate always carries a class attribute, even when no
	// classes are given.
	imageTagTemplate = `<img src="%s" alt="%s" class="%s">`
)

// tokenPattern matches :name: shortcodes. The empty name ("::") matches;
// that is wire-compatible behavior and kept on purpose.
var tokenPattern = regexp.MustCompile(`:[a-zA-Z0-9_]*:`)

// IconSizes are the sprite sizes available on the CDN.
var IconSizes = []int{16, 36, 72}

// DefaultIconSize is the smallest supported sprite size.
const DefaultIconSize = 16

// Record is a single dataset entry. Records are immutable once loaded.
type Record struct {
	Name        string `json:"name"`
	Unicode     string `json:"unicode"`
	Description string `json:"description"`
}

// Source provides the dataset the resolver indexes. Load is called exactly
// once, during construction; implementations should acquire and release any
// underlying handle within that call.
type Source interface {
	Load(ctx context.Context) ([]Record, error)
}

type indexed struct {
	token       string
	unicode     string
	description string
}

// Resolver answers shortcode and codepoint lookups over a dataset loaded at
// construction time. It holds no mutable state afterward, so a single
// instance is safe for concurrent use without locking.
type Resolver struct {
	size     int
	names    map[string]indexed // ":name:" -> entry
	unicodes map[string]indexed // unicode hex string -> entry
}

// NewResolver loads the dataset from src and builds the name and codepoint
// indexes. size must be one of IconSizes. Duplicate names or unicode values
// in the dataset are logged and resolved last-write-wins.
func NewResolver(ctx context.Context, src Source, size int) (*Resolver, error) {
	if !supportedSize(size) {
		return nil, fmt.Errorf("%w: %d (supported sizes: %s)",
			ErrInvalidIconSize, size, supportedSizeList())
	}

	records, err := src.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading emoji dataset: %w", err)
	}

	r := &Resolver{
		size:     size,
		names:    make(map[string]indexed, len(records)),
		unicodes: make(map[string]indexed, len(records)),
	}
	for _, rec := range records {
		entry := indexed{
			token:       ":" + rec.Name + ":",
			unicode:     rec.Unicode,
			description: rec.Description,
		}
		if _, dup := r.names[entry.token]; dup {
			log.Warn().Str("name", rec.Name).Msg("Duplicate emoji name in dataset, later entry wins")
		}
		if _, dup := r.unicodes[entry.unicode]; dup {
			log.Warn().Str("unicode", rec.Unicode).Msg("Duplicate emoji unicode in dataset, later entry wins")
		}
		r.names[entry.token] = entry
		r.unicodes[entry.unicode] = entry
	}

	log.Debug().Int("records", len(records)).Int("icon_size", size).Msg("Emoji indexes built")
	return r, nil
}

// NewDefaultResolver is NewResolver with the default icon size.
func NewDefaultResolver(ctx context.Context, src Source) (*Resolver, error) {
	return NewResolver(ctx, src, DefaultIconSize)
}

// IconSize returns the sprite size the resolver was constructed with.
func (r *Resolver) IconSize() int { return r.size }

// Len returns the number of indexed names.
func (r *Resolver) Len() int { return len(r.names) }

// UnicodeForName returns the unicode hex string for a ":name:" token.
func (r *Resolver) UnicodeForName(token string) (string, error) {
	e, ok := r.names[token]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnknownName, token)
	}
	return e.unicode, nil
}

// DescriptionForName returns the description for a ":name:" token.
func (r *Resolver) DescriptionForName(token string) (string, error) {
	e, ok := r.names[token]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnknownName, token)
	}
	return e.description, nil
}

// NameForUnicode returns the ":name:" token indexed under a unicode hex
// string, exactly as it appears in the dataset.
func (r *Resolver) NameForUnicode(unicode string) (string, error) {
	e, ok := r.unicodes[unicode]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnknownUnicode, unicode)
	}
	return e.token, nil
}

// DescriptionForChar returns the description for a raw emoji character by
// converting it with UnicodeForChar and consulting the codepoint index. The
// conversion strips interior zero padding only at the front of the whole
// string, so multi-codepoint sequences may fail to match dataset keys that
// use a separator; see UnicodeForChar.
func (r *Resolver) DescriptionForChar(char string) (string, error) {
	unicode := UnicodeForChar(char)
	e, ok := r.unicodes[unicode]
	if !ok {
		return "", fmt.Errorf("%w: %s (from %q)", ErrUnknownUnicode, unicode, char)
	}
	return e.description, nil
}

// URL returns the CDN sprite URL for an emoji. With byName the argument is a
// ":name:" token resolved through the name index; otherwise it is a raw
// emoji character converted with UnicodeForChar, which cannot fail.
func (r *Resolver) URL(emoji string, byName bool) (string, error) {
	var unicode string
	if byName {
		var err error
		unicode, err = r.UnicodeForName(emoji)
		if err != nil {
			return "", err
		}
	} else {
		unicode = UnicodeForChar(emoji)
	}
	return fmt.Sprintf(cdnURLTemplate, r.size, r.size, unicode), nil
}

// ImageTag renders an <img> tag for an emoji, with the description as alt
// text. Class handling: no classes yields an empty (but present) class
// attribute, a single class is used verbatim, multiple classes are joined
// with single spaces.
func (r *Resolver) ImageTag(emoji string, byName bool, classes ...string) (string, error) {
	url, err := r.URL(emoji, byName)
	if err != nil {
		return "", err
	}
	var description string
	if byName {
		description, err = r.DescriptionForName(emoji)
	} else {
		description, err = r.DescriptionForChar(emoji)
	}
	if err != nil {
		return "", err
	}
	return fmt.Sprintf(imageTagTemplate, url, description, strings.Join(classes, " ")), nil
}

// Replace scans text for :name: tokens and substitutes each with its image
// tag. The scan is a single left-to-right pass; replacements are not
// re-scanned and all non-matching text is preserved verbatim. A token that
// cannot be resolved (including the degenerate "::") is left in place
// unchanged rather than failing the whole substitution.
func (r *Resolver) Replace(text string, byName bool, classes ...string) string {
	return tokenPattern.ReplaceAllStringFunc(text, func(match string) string {
		tag, err := r.ImageTag(match, byName, classes...)
		if err != nil {
			log.Debug().Str("token", match).Msg("Leaving unresolvable token in place")
			return match
		}
		return tag
	})
}

func supportedSize(size int) bool {
	for _, s := range IconSizes {
		if s == size {
			return true
		}
	}
	return false
}

func supportedSizeList() string {
	parts := make([]string, len(IconSizes))
	for i, s := range IconSizes {
		parts[i] = fmt.Sprintf("%d", s)
	}
	return strings.Join(parts, ", ")
}
