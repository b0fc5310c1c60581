package bricker

// MaxPaddles is the main paddle plus one extra paddle.
const MaxPaddles = 2

// GameState holds the counters of one run. It is mutated only through
// its increment and decrement methods, each of which keeps the counter in range
// and reports whether it changed.
type GameState struct {
	lives         int
	maxLives      int
	bricks        int
	paddles       int
	subPaddleHits int
	hitQuota      int
}

// NewGameState creates the counters for a run.
func NewGameState(lives, maxLives, bricks, hitQuota int) *GameState {
	return &GameState{
		lives:    min(max(lives, 0), maxLives),
		maxLives: maxLives,
		bricks:   max(bricks, 0),
		hitQuota: hitQuota,
	}
}

// Lives returns the remaining lives.
func (s *GameState) Lives() int { return s.lives }

// MaxLives returns the lives cap.
func (s *GameState) MaxLives() int { return s.maxLives }

// Bricks returns the number of bricks still standing.
func (s *GameState) Bricks() int { return s.bricks }

// Paddles returns the number of active paddles.
func (s *GameState) Paddles() int { return s.paddles }

// SubPaddleHits returns the hits taken by the extra paddle.
func (s *GameState) SubPaddleHits() int { return s.subPaddleHits }

// HitQuota returns the hits after which the extra paddle is removed.
func (s *GameState) HitQuota() int { return s.hitQuota }

// IncrementLives adds a life unless already at the cap.
func (s *GameState) IncrementLives() bool {
	if s.lives >= s.maxLives {
		return false
	}
	s.lives++
	return true
}

// DecrementLives removes a life unless none remain.
func (s *GameState) DecrementLives() bool {
	if s.lives <= 0 {
		return false
	}
	s.lives--
	return true
}

// DecrementBricks records a destroyed brick.
func (s *GameState) DecrementBricks() bool {
	if s.bricks <= 0 {
		return false
	}
	s.bricks--
	return true
}

// IncrementPaddles records a new paddle unless MaxPaddles exist.
func (s *GameState) IncrementPaddles() bool {
	if s.paddles >= MaxPaddles {
		return false
	}
	s.paddles++
	return true
}

// DecrementPaddles records a removed paddle.
func (s *GameState) DecrementPaddles() bool {
	if s.paddles <= 0 {
		return false
	}
	s.paddles--
	return true
}

// IncrementSubPaddleHits records a hit on the extra paddle, up to the quota.
func (s *GameState) IncrementSubPaddleHits() bool {
	if s.subPaddleHits >= s.hitQuota {
		return false
	}
	s.subPaddleHits++
	return true
}

// ResetSubPaddleHits zeroes the extra paddle hit counter.
func (s *GameState) ResetSubPaddleHits() {
	s.subPaddleHits = 0
}

// IsVictory reports whether every brick is gone.
func (s *GameState) IsVictory() bool { return s.bricks == 0 }

// IsDefeat reports whether no lives remain.
func (s *GameState) IsDefeat() bool { return s.lives == 0 }
