package core

// Sprite is the renderable handle an asset path resolves to.
// The simulation never inspects it; the platform draws Glyph in Color.
type Sprite struct {
	Glyph rune
	Color Color
}

// Sound identifies a sound effect.
type Sound int

const (
	SoundBlop      Sound = iota // ball contact
	SoundExplosion              // exploding brick chain start
)

// String returns the asset-style name of the sound.
func (s Sound) String() string {
	switch s {
	case SoundBlop:
		return "blop"
	case SoundExplosion:
		return "explosion"
	default:
		return "unknown"
	}
}
