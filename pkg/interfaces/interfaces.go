package interfaces

// Renderer answers emoji lookups and renders CDN image markup.
// *emoji.Resolver is the canonical implementation; the server depends on
// this interface so tests can substitute their own.
type Renderer interface {
	IconSize() int
	UnicodeForName(token string) (string, error)
	DescriptionForName(token string) (string, error)
	DescriptionForChar(char string) (string, error)
	URL(emoji string, byName bool) (string, error)
	ImageTag(emoji string, byName bool, classes ...string) (string, error)
	Replace(text string, byName bool, classes ...string) string
}
