package dataset

import (
	"context"
	"regexp"
	"strings"

	"github.com/forPelevin/gomoji"
	"github.com/rs/zerolog/log"

	"github.com/haytac/emojify/internal/emoji"
)

// unicodeVersionPrefix strips the "E14.0 " style version marker gomoji
// carries in its unicode names.
var unicodeVersionPrefix = regexp.MustCompile(`^E\d+(\.\d+)?\s+`)

var validName = regexp.MustCompile(`^[a-zA-Z0-9_]+$`)

// Gomoji serves the full emoji inventory bundled with the gomoji library.
// Slugs become names (dashes to underscores), codepoints are lowercased and
// dash-joined, unicode names become descriptions.
type Gomoji struct{}

// Load converts every gomoji entry into a dataset record. Entries whose
// slug cannot form a valid :name: token are skipped.
func (Gomoji) Load(_ context.Context) ([]emoji.Record, error) {
	all := gomoji.AllEmojis()
	records := make([]emoji.Record, 0, len(all))
	for _, e := range all {
		name := strings.ReplaceAll(e.Slug, "-", "_")
		if !validName.MatchString(name) {
			log.Debug().Str("slug", e.Slug).Msg("Skipping gomoji entry with unusable slug")
			continue
		}
		records = append(records, emoji.Record{
			Name:        name,
			Unicode:     normalizeCodePoint(e.CodePoint),
			Description: unicodeVersionPrefix.ReplaceAllString(e.UnicodeName, ""),
		})
	}
	log.Debug().Int("records", len(records)).Msg("Gomoji inventory loaded")
	return records, nil
}

func normalizeCodePoint(cp string) string {
	return strings.ToLower(strings.Join(strings.Fields(cp), "-"))
}
