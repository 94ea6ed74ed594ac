// Package icon renders the symbols printed by the command line in the configured variant.
//
// Icons can be displayed as emoji, nerd-font glyphs, plain ASCII, kaomoji,
// or Unicode squares depending on user preference.
package icon

import (
	"github.com/anistream/anistream/color"
	"github.com/anistream/anistream/key"
	"github.com/anistream/anistream/style"
	"github.com/spf13/viper"
)

const (
	emoji   = "emoji"
	nerd    = "nerd"
	plain   = "plain"
	kaomoji = "kaomoji"
	squares = "squares"
)

// AvailableVariants returns every supported icons variant.
func AvailableVariants() []string {
	return []string{emoji, nerd, plain, kaomoji, squares}
}

// Icon identifies a symbol.
type Icon int

const (
	Success Icon = iota
	Fail
	Warn
	Search
	Progress
	Favorite
	Play
	Calendar
	Episode
)

type iconDef struct {
	emoji   string
	nerd    string
	plain   string
	kaomoji string
	squares string
}

func (d *iconDef) Get() string {
	switch viper.GetString(key.IconsVariant) {
	case emoji:
		return d.emoji
	case nerd:
		return d.nerd
	case plain:
		return d.plain
	case kaomoji:
		return d.kaomoji
	case squares:
		return d.squares
	default:
		return ""
	}
}

var icons = map[Icon]*iconDef{
	Success: {
		emoji:   "✅",
		nerd:    style.Fg(color.Green)(""),
		plain:   style.Fg(color.Green)("✓"),
		kaomoji: "(ᵔ◡ᵔ)",
		squares: style.Fg(color.Green)("▇"),
	},
	Fail: {
		emoji:   "❌",
		nerd:    style.Fg(color.Red)(""),
		plain:   style.Fg(color.Red)("✖"),
		kaomoji: "(╥﹏╥)",
		squares: style.Fg(color.Red)("▇"),
	},
	Warn: {
		emoji:   "⚠️",
		nerd:    style.Fg(color.Yellow)(""),
		plain:   style.Fg(color.Yellow)("!"),
		kaomoji: "(っ˘̩╭╮˘̩)っ",
		squares: style.Fg(color.Yellow)("▇"),
	},
	Search: {
		emoji:   "🔍",
		nerd:    style.Fg(color.Blue)(""),
		plain:   style.Fg(color.Blue)("?"),
		kaomoji: "(・・ ) ?",
		squares: style.Fg(color.Blue)("▇"),
	},
	Progress: {
		emoji:   "⏳",
		nerd:    style.Fg(color.Blue)(""),
		plain:   style.Fg(color.Blue)("…"),
		kaomoji: "(￣ω￣;)",
		squares: style.Fg(color.Blue)("▇"),
	},
	Favorite: {
		emoji:   "⭐",
		nerd:    style.Fg(color.Yellow)(""),
		plain:   style.Fg(color.Yellow)("*"),
		kaomoji: "(☆▽☆)",
		squares: style.Fg(color.Yellow)("▇"),
	},
	Play: {
		emoji:   "▶️",
		nerd:    style.Fg(color.Green)(""),
		plain:   style.Fg(color.Green)(">"),
		kaomoji: "(ﾉ◕ヮ◕)ﾉ",
		squares: style.Fg(color.Green)("▇"),
	},
	Calendar: {
		emoji:   "📅",
		nerd:    style.Fg(color.Purple)(""),
		plain:   style.Fg(color.Purple)("#"),
		kaomoji: "(・ω・)",
		squares: style.Fg(color.Purple)("▇"),
	},
	Episode: {
		emoji:   "🎞️",
		nerd:    style.Fg(color.Cyan)(""),
		plain:   style.Fg(color.Cyan)("-"),
		kaomoji: "(•‿•)",
		squares: style.Fg(color.Cyan)("▇"),
	},
}

// Get renders i in the configured variant, or "" for an unknown variant.
func Get(i Icon) string {
	return icons[i].Get()
}
