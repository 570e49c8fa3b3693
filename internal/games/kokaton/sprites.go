package kokaton

import (
	"strings"

	"github.com/vovakirdan/kokaton/internal/core"
)

// SpriteKey names a visual asset independent of how it is drawn.
type SpriteKey string

const (
	SpritePlayerRight     SpriteKey = "player.right"
	SpritePlayerUpRight   SpriteKey = "player.up_right"
	SpritePlayerUp        SpriteKey = "player.up"
	SpritePlayerUpLeft    SpriteKey = "player.up_left"
	SpritePlayerLeft      SpriteKey = "player.left"
	SpritePlayerDownLeft  SpriteKey = "player.down_left"
	SpritePlayerDown      SpriteKey = "player.down"
	SpritePlayerDownRight SpriteKey = "player.down_right"
	SpritePlayerSuccess   SpriteKey = "player.success"
	SpritePlayerDefeated  SpriteKey = "player.defeated"
	SpriteProjectile      SpriteKey = "projectile"
	SpriteExplosion0      SpriteKey = "explosion.0"
	SpriteExplosion1      SpriteKey = "explosion.1"
)

// facingSprites covers every Facing value. Neutral uses the right-facing art.
var facingSprites = [...]SpriteKey{
	FacingNeutral:   SpritePlayerRight,
	FacingRight:     SpritePlayerRight,
	FacingUpRight:   SpritePlayerUpRight,
	FacingUp:        SpritePlayerUp,
	FacingUpLeft:    SpritePlayerUpLeft,
	FacingLeft:      SpritePlayerLeft,
	FacingDownLeft:  SpritePlayerDownLeft,
	FacingDown:      SpritePlayerDown,
	FacingDownRight: SpritePlayerDownRight,
}

// FacingSprite returns the sprite key for a facing.
func FacingSprite(f Facing) SpriteKey {
	if f < 0 || int(f) >= len(facingSprites) {
		return SpritePlayerRight
	}
	return facingSprites[f]
}

// Sprite is a small block of glyphs drawn centered on an entity.
type Sprite struct {
	Rows  []string
	Color core.Color
}

// Width returns the widest row in runes.
func (s Sprite) Width() int {
	w := 0
	for _, row := range s.Rows {
		w = max(w, len([]rune(row)))
	}
	return w
}

// Height returns the number of rows.
func (s Sprite) Height() int {
	return len(s.Rows)
}

// mirrorRunes swaps glyphs that have a left/right counterpart.
var mirrorRunes = map[rune]rune{
	'▶': '◀', '◀': '▶',
	'▌': '▐', '▐': '▌',
	'▖': '▗', '▗': '▖',
	'▘': '▝', '▝': '▘',
	'◥': '◤', '◤': '◥',
	'◢': '◣', '◣': '◢',
	'(': ')', ')': '(',
	'<': '>', '>': '<',
	'/': '\\', '\\': '/',
}

// Mirror returns the sprite flipped horizontally.
func (s Sprite) Mirror() Sprite {
	w := s.Width()
	rows := make([]string, len(s.Rows))
	for i, row := range s.Rows {
		src := []rune(row)
		dst := make([]rune, w)
		for j := range dst {
			dst[j] = ' '
		}
		for j, r := range src {
			if m, ok := mirrorRunes[r]; ok {
				r = m
			}
			dst[w-1-j] = r
		}
		rows[i] = string(dst)
	}
	return Sprite{Rows: rows, Color: s.Color}
}

// WithRune returns a copy with every old glyph replaced by repl.
func (s Sprite) WithRune(old, repl rune) Sprite {
	rows := make([]string, len(s.Rows))
	for i, row := range s.Rows {
		rows[i] = strings.ReplaceAll(row, string(old), string(repl))
	}
	return Sprite{Rows: rows, Color: s.Color}
}

// WithColor returns a copy drawn in c.
func (s Sprite) WithColor(c core.Color) Sprite {
	return Sprite{Rows: s.Rows, Color: c}
}

// Atlas maps every sprite key to its visual.
type Atlas map[SpriteKey]Sprite

// playerHead is the glyph swapped to show which way the player faces.
const playerHead = '▶'

// DefaultAtlas builds the game's visuals. The eight player orientations are
// derived from one right-facing source and its mirror image.
func DefaultAtlas() Atlas {
	right := Sprite{
		Rows:  []string{" ▗▄▖ ", "▐◉ ▌▶", " ▝▀▘ "},
		Color: core.ColorBrightYellow,
	}
	left := right.Mirror()
	leftHead := mirrorRunes[playerHead]

	explosion := Sprite{
		Rows:  []string{" *. ", "*✸* ", ".* *"},
		Color: core.ColorOrange,
	}

	return Atlas{
		SpritePlayerRight:     right,
		SpritePlayerUpRight:   right.WithRune(playerHead, '◥'),
		SpritePlayerUp:        right.WithRune(playerHead, '▲'),
		SpritePlayerDown:      right.WithRune(playerHead, '▼'),
		SpritePlayerDownRight: right.WithRune(playerHead, '◢'),
		SpritePlayerLeft:      left,
		SpritePlayerUpLeft:    left.WithRune(leftHead, '◤'),
		SpritePlayerDownLeft:  left.WithRune(leftHead, '◣'),
		SpritePlayerSuccess:   right.WithRune('◉', '^').WithRune(playerHead, '♪').WithColor(core.ColorBrightYellow),
		SpritePlayerDefeated:  right.WithRune('◉', 'x').WithRune(playerHead, ' ').WithColor(core.ColorBrightRed),
		SpriteProjectile:      {Rows: []string{"━━▶"}, Color: core.ColorCyan},
		SpriteExplosion0:      explosion,
		SpriteExplosion1:      explosion.Mirror(),
	}
}

// Get returns the sprite for key, or a single '?' when the atlas has no entry.
func (a Atlas) Get(key SpriteKey) Sprite {
	if s, ok := a[key]; ok {
		return s
	}
	return Sprite{Rows: []string{"?"}, Color: core.ColorDefault}
}
