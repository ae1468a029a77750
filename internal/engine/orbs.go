package engine

import (
	"fmt"

	"github.com/jrient/text-game/internal/constants"
	"github.com/jrient/text-game/internal/game"
)

// Orb tuning. Evoking fully resolves an orb; the passive tick is the
// weaker per-turn pulse of everything still channeled.
const (
	orbEvokeLightning = 8
	orbEvokeFrost     = 5
	orbEvokePlasma    = 2

	orbPassiveLightning = 3
	orbPassiveFrost     = 2
	orbPassivePlasma    = 1
)

// Channel appends an orb to the player's slots. When the slots are
// full the oldest orb is evoked first to make room.
func (e *Engine) Channel(p *game.Player, enemies []game.Enemy, kind game.OrbKind) []string {
	var lines []string
	slots := p.OrbSlots
	if slots <= 0 {
		slots = constants.MaxOrbSlots
	}
	if len(p.Orbs) >= slots {
		lines = append(lines, e.evokeOldest(p, enemies)...)
	}
	p.Orbs = append(p.Orbs, kind)
	lines = append(lines, fmt.Sprintf("Channeled a %s orb", kind))
	return lines
}

// EvokeOldest resolves and removes the oldest channeled orb. Returns an
// empty log when no orb is channeled.
func (e *Engine) EvokeOldest(p *game.Player, enemies []game.Enemy) []string {
	return e.evokeOldest(p, enemies)
}

func (e *Engine) evokeOldest(p *game.Player, enemies []game.Enemy) []string {
	if len(p.Orbs) == 0 {
		return nil
	}
	kind := p.Orbs[0]
	p.Orbs = append([]game.OrbKind(nil), p.Orbs[1:]...)

	switch kind {
	case game.OrbLightning:
		alive := alivePointers(enemies)
		if len(alive) == 0 {
			return []string{"Evoked a lightning orb into empty air"}
		}
		target := alive[e.rng.Intn(len(alive))]
		DealDamageToEnemy(orbEvokeLightning, 1, target)
		return []string{fmt.Sprintf("Evoked a lightning orb: %d damage to %s", orbEvokeLightning, target.Name)}
	case game.OrbFrost:
		gained := e.gainBlock(p, orbEvokeFrost)
		return []string{fmt.Sprintf("Evoked a frost orb: gained %d block", gained)}
	case game.OrbPlasma:
		p.Energy += orbEvokePlasma
		return []string{fmt.Sprintf("Evoked a plasma orb: energy +%d", orbEvokePlasma)}
	}
	return nil
}

// passiveOrbTick pulses every channeled orb once at the start of the
// player turn without consuming it.
func (e *Engine) passiveOrbTick(p *game.Player, enemies []game.Enemy) []string {
	var lines []string
	for _, kind := range p.Orbs {
		switch kind {
		case game.OrbLightning:
			alive := alivePointers(enemies)
			if len(alive) == 0 {
				continue
			}
			target := alive[e.rng.Intn(len(alive))]
			DealDamageToEnemy(orbPassiveLightning, 1, target)
			lines = append(lines, fmt.Sprintf("Lightning orb: %d damage to %s", orbPassiveLightning, target.Name))
		case game.OrbFrost:
			p.Block += orbPassiveFrost
			lines = append(lines, fmt.Sprintf("Frost orb: block +%d", orbPassiveFrost))
		case game.OrbPlasma:
			p.Energy += orbPassivePlasma
			lines = append(lines, fmt.Sprintf("Plasma orb: energy +%d", orbPassivePlasma))
		}
	}
	return lines
}
