package engine

import "github.com/jrient/text-game/internal/game"

// CalcDamage computes a player attack's total damage. Each hit is
// base + strength + the character's attack bonus, floored at zero, and
// the weak and vulnerable multipliers truncate toward zero in that
// order against the integer total.
func CalcDamage(base, hits int, p *game.Player, target *game.Enemy) int {
	perHit := base + p.Strength + p.CharAttackBonus
	if perHit < 0 {
		perHit = 0
	}
	total := perHit * hits

	if p.WeakTurns > 0 {
		total = total * 3 / 4
	}
	if target != nil && target.VulnerableTurns > 0 {
		total = total * 3 / 2
	}
	if total < 0 {
		total = 0
	}
	return total
}

// CalcBlock computes the block granted by a card: base + dexterity +
// the character's defense bonus, reduced 25% while weak, floored at
// zero.
func CalcBlock(base int, p *game.Player) int {
	block := base + p.Dexterity + p.CharDefenseBonus
	if p.WeakTurns > 0 {
		block = block * 3 / 4
	}
	if block < 0 {
		block = 0
	}
	return block
}

func (e *Engine) gainBlock(p *game.Player, base int) int {
	gained := CalcBlock(base, p)
	p.Block += gained
	return gained
}

// DealDamageToEnemy applies total damage split over hits, each hit
// independently burning through remaining block before touching HP.
// Returns the HP actually removed.
func DealDamageToEnemy(total, hits int, target *game.Enemy) int {
	if hits < 1 {
		hits = 1
	}
	perHit := total / hits
	dealt := 0
	for i := 0; i < hits; i++ {
		dmg := perHit
		if i == hits-1 {
			dmg = total - perHit*(hits-1)
		}
		if dmg <= 0 {
			continue
		}
		if target.Block > 0 {
			if dmg >= target.Block {
				through := dmg - target.Block
				target.Block = 0
				target.HP -= through
				dealt += through
			} else {
				target.Block -= dmg
			}
		} else {
			target.HP -= dmg
			dealt += dmg
		}
	}
	if target.HP < 0 {
		target.HP = 0
	}
	return dealt
}

// DealDamageToPlayer consumes player block one-for-one; only the
// shortfall reaches HP. Block persists across turns, it is only ever
// spent by incoming damage. Returns the HP actually lost.
func DealDamageToPlayer(p *game.Player, incoming int) int {
	if incoming <= 0 {
		return 0
	}
	if p.Block >= incoming {
		p.Block -= incoming
		return 0
	}
	through := incoming - p.Block
	p.Block = 0
	p.HP -= through
	if p.HP < 0 {
		p.HP = 0
	}
	return through
}
