package bricker

const (
	// MaxEffects caps the effects stacked on one brick.
	MaxEffects = 3
	// maxDoubleDepth bounds nested double draws. The outermost double is depth 0.
	maxDoubleDepth = 3
	// kindDouble is the fifth outcome of a double draw.
	kindDouble = int(effectCount)
)

// Plan is the outcome of one factory draw.
type Plan struct {
	Double  bool     // drawn through the double branch
	Effects []Effect // empty means basic
}

// IsBasic reports whether the plan carries no effects.
func (p Plan) IsBasic() bool {
	return len(p.Effects) == 0
}

// StrategyFactory draws a collision strategy for each brick:
// 50% basic, 10% double, 40% one effect chosen uniformly.
type StrategyFactory struct {
	rng Random
	m   Mediator
}

// NewStrategyFactory creates a factory drawing from rng.
func NewStrategyFactory(rng Random, m Mediator) *StrategyFactory {
	return &StrategyFactory{rng: rng, m: m}
}

// Draw picks a plan without building it.
func (f *StrategyFactory) Draw() Plan {
	r := f.rng.IntN(10)
	switch {
	case r >= 5:
		return Plan{}
	case r == kindDouble:
		return Plan{Double: true, Effects: f.drawDouble(nil, 0)}
	default:
		return Plan{Effects: []Effect{Effect(r)}}
	}
}

// drawDouble draws two kinds among the four effects and double. A nested
// double recurses while at least two slots remain and depth allows it,
// otherwise it is re-drawn among the four effects.
func (f *StrategyFactory) drawDouble(effects []Effect, depth int) []Effect {
	for range 2 {
		if len(effects) >= MaxEffects {
			break
		}
		k := f.rng.IntN(kindDouble + 1)
		if k == kindDouble {
			if len(effects) <= MaxEffects-2 && depth < maxDoubleDepth {
				effects = f.drawDouble(effects, depth+1)
				continue
			}
			k = f.rng.IntN(kindDouble)
		}
		effects = append(effects, Effect(k))
	}
	return effects
}

// Build turns a plan into a strategy.
func (f *StrategyFactory) Build(p Plan) CollisionStrategy {
	basic := NewBasicStrategy(f.m)
	if p.IsBasic() {
		return basic
	}
	return NewCompositeStrategy(basic, p.Effects, f.m)
}

// New draws and builds a strategy.
func (f *StrategyFactory) New() CollisionStrategy {
	return f.Build(f.Draw())
}
