package emoji

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticSource []Record

func (s staticSource) Load(_ context.Context) ([]Record, error) { return s, nil }

type failingSource struct{}

func (failingSource) Load(_ context.Context) ([]Record, error) {
	return nil, errors.New("dataset unavailable")
}

func testRecords() []Record {
	return []Record{
		{Name: "grinning", Unicode: "1f600", Description: "grinning face"},
		{Name: "smile", Unicode: "1f604", Description: "smiling face with open mouth and smiling eyes"},
		{Name: "heart", Unicode: "2764", Description: "heavy black heart"},
		{Name: "us", Unicode: "1f1fa-1f1f8", Description: "regional indicator symbol letters us"},
		{Name: "a", Unicode: "1f170", Description: "negative squared latin capital letter a"},
		{Name: "b", Unicode: "1f171", Description: "negative squared latin capital letter b"},
	}
}

func newTestResolver(t *testing.T, size int) *Resolver {
	t.Helper()
	r, err := NewResolver(context.Background(), staticSource(testRecords()), size)
	require.NoError(t, err)
	return r
}

func TestNewResolverIconSizes(t *testing.T) {
	for _, size := range IconSizes {
		r, err := NewResolver(context.Background(), staticSource(testRecords()), size)
		require.NoError(t, err, "size %d should be accepted", size)
		assert.Equal(t, size, r.IconSize())
	}

	for _, size := range []int{0, -1, 17, 24, 128} {
		_, err := NewResolver(context.Background(), staticSource(testRecords()), size)
		require.Error(t, err, "size %d should be rejected", size)
		assert.ErrorIs(t, err, ErrInvalidIconSize)
		assert.Contains(t, err.Error(), "16, 36, 72", "error must name the supported set")
	}
}

func TestNewDefaultResolver(t *testing.T) {
	r, err := NewDefaultResolver(context.Background(), staticSource(testRecords()))
	require.NoError(t, err)
	assert.Equal(t, DefaultIconSize, r.IconSize())
	assert.Equal(t, len(testRecords()), r.Len())
}

func TestNewResolverSourceError(t *testing.T) {
	_, err := NewResolver(context.Background(), failingSource{}, DefaultIconSize)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "dataset unavailable")
}

func TestNewResolverDuplicateNamesLastWins(t *testing.T) {
	records := []Record{
		{Name: "grinning", Unicode: "1f600", Description: "first"},
		{Name: "grinning", Unicode: "1f600", Description: "second"},
	}
	r, err := NewResolver(context.Background(), staticSource(records), DefaultIconSize)
	require.NoError(t, err)

	desc, err := r.DescriptionForName(":grinning:")
	require.NoError(t, err)
	assert.Equal(t, "second", desc)
}

func TestUnicodeForName(t *testing.T) {
	r := newTestResolver(t, DefaultIconSize)

	unicode, err := r.UnicodeForName(":grinning:")
	require.NoError(t, err)
	assert.Equal(t, "1f600", unicode)

	_, err = r.UnicodeForName(":no_such_emoji:")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownName)
}

func TestDescriptionLookups(t *testing.T) {
	r := newTestResolver(t, DefaultIconSize)

	desc, err := r.DescriptionForName(":smile:")
	require.NoError(t, err)
	assert.Equal(t, "smiling face with open mouth and smiling eyes", desc)

	// Round trip: the codepoint index must carry the same record the name
	// index does.
	unicode, err := r.UnicodeForName(":smile:")
	require.NoError(t, err)
	token, err := r.NameForUnicode(unicode)
	require.NoError(t, err)
	assert.Equal(t, ":smile:", token)

	// Raw character lookup goes through the same index.
	desc, err = r.DescriptionForChar("😄")
	require.NoError(t, err)
	assert.Equal(t, "smiling face with open mouth and smiling eyes", desc)

	_, err = r.DescriptionForChar("🙈")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownUnicode)
}

func TestDescriptionForCharMultiCodepointMisses(t *testing.T) {
	r := newTestResolver(t, DefaultIconSize)

	// The dataset keys the US flag as "1f1fa-1f1f8" but the conversion
	// yields "1f1fa0001f1f8", so the raw-character lookup cannot find it.
	// Pinned here so a change to either side is caught.
	_, err := r.DescriptionForChar("🇺🇸")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownUnicode)
}

func TestURL(t *testing.T) {
	r := newTestResolver(t, 16)

	url, err := r.URL(":grinning:", true)
	require.NoError(t, err)
	assert.Equal(t, "//twemoji.maxcdn.com/16x16/1f600.png", url)

	url, err = r.URL("😀", false)
	require.NoError(t, err)
	assert.Equal(t, "//twemoji.maxcdn.com/16x16/1f600.png", url)

	_, err = r.URL(":no_such_emoji:", true)
	assert.ErrorIs(t, err, ErrUnknownName)
}

func TestURLSizeVariants(t *testing.T) {
	for _, size := range IconSizes {
		r := newTestResolver(t, size)
		url, err := r.URL(":heart:", true)
		require.NoError(t, err)
		assert.Contains(t, url, sizePath(size))
	}
}

func sizePath(size int) string {
	switch size {
	case 16:
		return "/16x16/"
	case 36:
		return "/36x36/"
	default:
		return "/72x72/"
	}
}

func TestImageTag(t *testing.T) {
	r := newTestResolver(t, 16)

	tag, err := r.ImageTag(":grinning:", true)
	require.NoError(t, err)
	assert.Equal(t, `<img src="//twemoji.maxcdn.com/16x16/1f600.png" alt="grinning face" class="">`, tag)

	tag, err = r.ImageTag(":grinning:", true, "emoji")
	require.NoError(t, err)
	assert.Equal(t, `<img src="//twemoji.maxcdn.com/16x16/1f600.png" alt="grinning face" class="emoji">`, tag)

	tag, err = r.ImageTag(":grinning:", true, "a", "b")
	require.NoError(t, err)
	assert.Equal(t, `<img src="//twemoji.maxcdn.com/16x16/1f600.png" alt="grinning face" class="a b">`, tag)

	_, err = r.ImageTag(":no_such_emoji:", true)
	assert.ErrorIs(t, err, ErrUnknownName)
}

func TestReplace(t *testing.T) {
	r := newTestResolver(t, 16)

	got := r.Replace("Hi :smile: there", true, "emoji")
	want := `Hi <img src="//twemoji.maxcdn.com/16x16/1f604.png" alt="smiling face with open mouth and smiling eyes" class="emoji"> there`
	assert.Equal(t, want, got)
}

func TestReplaceIdentityWithoutTokens(t *testing.T) {
	r := newTestResolver(t, 16)

	for _, text := range []string{
		"",
		"no tokens here",
		"lone colon : and another :",
		"almost :token but unterminated",
	} {
		assert.Equal(t, text, r.Replace(text, true))
	}
}

func TestReplaceAdjacentTokens(t *testing.T) {
	r := newTestResolver(t, 16)

	got := r.Replace(":a::b:", true)
	want := `<img src="//twemoji.maxcdn.com/16x16/1f170.png" alt="negative squared latin capital letter a" class="">` +
		`<img src="//twemoji.maxcdn.com/16x16/1f171.png" alt="negative squared latin capital letter b" class="">`
	assert.Equal(t, want, got)
}

func TestReplaceUnknownTokensLeftInPlace(t *testing.T) {
	r := newTestResolver(t, 16)

	// Unknown names and the degenerate empty token stay verbatim; known
	// tokens in the same text are still replaced.
	got := r.Replace("x :nope: :: :grinning: y", true)
	want := `x :nope: :: <img src="//twemoji.maxcdn.com/16x16/1f600.png" alt="grinning face" class=""> y`
	assert.Equal(t, want, got)
}

func TestReplaceIsSinglePass(t *testing.T) {
	records := append(testRecords(),
		Record{Name: "tricky", Unicode: "1f9e9", Description: ":grinning: inside alt"})
	r, err := NewResolver(context.Background(), staticSource(records), 16)
	require.NoError(t, err)

	// The replacement's alt text contains a token; it must not be
	// re-scanned.
	got := r.Replace(":tricky:", true)
	assert.Equal(t, `<img src="//twemoji.maxcdn.com/16x16/1f9e9.png" alt=":grinning: inside alt" class="">`, got)
	assert.Equal(t, 1, strings.Count(got, "<img "))
}
