package bricker

import "github.com/vovakirdan/bricker/internal/core"

//go:generate go tool mockgen -destination=./mocks/window_mock.go -package=mocks . Window

// Messages shown by the end-of-game dialog.
const (
	WinMessage  = "You win! Play again?"
	LoseMessage = "You lose! Play again?"
)

// AssetLoader resolves an image path to a sprite.
type AssetLoader interface {
	ReadImage(path string) (core.Sprite, error)
}

// SoundPlayer plays a sound without blocking.
type SoundPlayer interface {
	Play(s core.Sound)
}

// Window is the host of the arena: it shows the end-of-game dialog and
// restarts or closes the game.
type Window interface {
	AskPlayAgain(message string) bool
	ResetRun()
	CloseWindow()
}

type silentPlayer struct{}

func (silentPlayer) Play(core.Sound) {}

type noInput struct{}

func (noInput) IsKeyDown(core.Action) bool { return false }
