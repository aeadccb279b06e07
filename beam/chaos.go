package beam

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/beamcrawl/flavour"
	"github.com/lixenwraith/beamcrawl/rng"
)

var chaosColours = []tcell.Color{
	tcell.ColorRed, tcell.ColorBlue, tcell.ColorGreen, tcell.ColorYellow,
	tcell.ColorFuchsia, tcell.ColorAqua, tcell.ColorWhite, tcell.ColorOrange,
}

// resolveFlavour draws a concrete flavour for the current cell when the bolt carries a rewriter
func (e *Engine) resolveFlavour(b *Bolt) {
	if !b.RealFlavour.IsRewriter() {
		return
	}
	b.Flavour = e.rewrite(b.RealFlavour)
	b.ACRule = b.Flavour.DefaultACRule()
	if b.RealFlavour == flavour.Chaos {
		b.Colour = chaosColours[e.RNG.Random2(len(chaosColours))]
	}
}

func (e *Engine) rewrite(f flavour.Flavour) flavour.Flavour {
	if f == flavour.Chaos {
		sub := rng.ChooseWeighted(e.RNG, e.tables.Chaos)
		if sub == flavour.Chaos {
			sub = rng.ChooseWeighted(e.RNG, e.tables.ChaosEnchant)
		}
		return sub
	}
	table, ok := e.tables.Rewriters[f]
	assertf(ok, "no rewriter table for %s", f)
	return rng.ChooseWeighted(e.RNG, table)
}
