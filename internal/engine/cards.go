package engine

import (
	"fmt"

	"github.com/jrient/text-game/internal/game"
)

// PlayCard resolves the card at hand index cardIndex against the enemy
// at targetIndex (clamped to the living enemies). The card leaves the
// hand before its effects run, so a draw triggered by the card can
// never draw the card itself. Relic triggers fire after the card has
// fully resolved.
func (e *Engine) PlayCard(p *game.Player, combat *game.Combat, cardIndex, targetIndex int) ([]string, error) {
	if cardIndex < 0 || cardIndex >= len(p.Hand) {
		return nil, game.PreconditionFailed("no card at hand index %d", cardIndex)
	}
	card := p.Hand[cardIndex]

	if card.Unplayable {
		return nil, game.PreconditionFailed("%s cannot be played", card.Name)
	}
	switch card.ID {
	case "w_clash":
		for i := range p.Hand {
			if p.Hand[i].Type != game.CardAttack {
				return nil, game.PreconditionFailed("%s requires a hand of only attacks", card.Name)
			}
		}
	case "a_grand_finale":
		if len(p.DrawPile) > 0 {
			return nil, game.PreconditionFailed("%s requires an empty draw pile", card.Name)
		}
	}

	cost := card.Cost
	if cost < 0 {
		cost = 0
	}
	if p.Energy < cost {
		return nil, game.Insufficient("energy", cost, p.Energy)
	}
	p.Energy -= cost

	p.Hand = append(p.Hand[:cardIndex], p.Hand[cardIndex+1:]...)

	p.Counters.CardsThisTurn++
	switch card.Type {
	case game.CardAttack:
		p.Counters.AttacksThisTurn++
	case game.CardSkill:
		p.Counters.SkillsThisTurn++
	}
	p.CardsPlayed++

	var lines []string
	lines = append(lines, fmt.Sprintf("Played %s", card.Name))

	alive := alivePointers(combat.Enemies)
	var target *game.Enemy
	if len(alive) > 0 {
		if targetIndex < 0 || targetIndex >= len(alive) {
			targetIndex = 0
		}
		target = alive[targetIndex]
	}

	// Effects run off a local copy so per-card overrides never touch
	// the hand instance or the catalog template.
	c := card
	switch c.ID {
	case "w_body_slam":
		c.Damage = p.Block
	case "m_compile_driver":
		c.Damage += len(p.Orbs)
	case "m_thunder_strike":
		c.Hits = 0
		for _, orb := range p.Orbs {
			if orb == game.OrbLightning {
				c.Hits++
			}
		}
		if c.Hits == 0 {
			c.Damage = 0
			lines = append(lines, "No lightning orbs channeled")
		}
	case "w_limit_break":
		c.StrengthGain = 0
		p.Strength *= 2
		lines = append(lines, fmt.Sprintf("Strength doubled to %d", p.Strength))
	case "m_stack":
		c.Block = len(p.DiscardPile)
	}

	dealt := 0
	if c.Damage > 0 && c.Hits > 0 {
		if c.ApplyToAll {
			for _, enemy := range alive {
				total := CalcDamage(c.Damage, c.Hits, p, enemy)
				dealt += DealDamageToEnemy(total, c.Hits, enemy)
			}
			lines = append(lines, fmt.Sprintf("Dealt %d total damage to all enemies", dealt))
		} else if target != nil {
			total := CalcDamage(c.Damage, c.Hits, p, target)
			dealt = DealDamageToEnemy(total, c.Hits, target)
			lines = append(lines, fmt.Sprintf("Dealt %d damage to %s", dealt, target.Name))
		}
		p.DamageDealt += dealt
	}

	if c.Block > 0 {
		gained := e.gainBlock(p, c.Block)
		lines = append(lines, fmt.Sprintf("Gained %d block", gained))
	}

	if c.Draw > 0 {
		drawn := e.DrawCards(p, c.Draw)
		lines = append(lines, fmt.Sprintf("Drew %d cards", drawn))
	}

	if c.Heal > 0 {
		healed := p.Heal(c.Heal)
		lines = append(lines, fmt.Sprintf("Healed %d HP", healed))
	}

	if c.PoisonStacks > 0 && target != nil {
		target.Poison += c.PoisonStacks
		lines = append(lines, fmt.Sprintf("Applied %d poison to %s", c.PoisonStacks, target.Name))
	}
	if c.WeakTurns > 0 && target != nil {
		target.WeakTurns += c.WeakTurns
		lines = append(lines, fmt.Sprintf("%s is weak for %d turns", target.Name, c.WeakTurns))
	}
	if c.VulnerableTurns > 0 && target != nil {
		target.VulnerableTurns += c.VulnerableTurns
		lines = append(lines, fmt.Sprintf("%s is vulnerable for %d turns", target.Name, c.VulnerableTurns))
	}

	if c.Type == game.CardPower {
		if c.StrengthGain > 0 {
			p.Strength += c.StrengthGain
			lines = append(lines, fmt.Sprintf("Strength +%d", c.StrengthGain))
		}
		if c.EnergyGain > 0 {
			p.MaxEnergy += c.EnergyGain
			lines = append(lines, fmt.Sprintf("Max energy +%d", c.EnergyGain))
		}
		if c.DexterityGain > 0 {
			p.Dexterity += c.DexterityGain
			lines = append(lines, fmt.Sprintf("Dexterity +%d", c.DexterityGain))
		}
	} else {
		if c.StrengthGain > 0 {
			p.Strength += c.StrengthGain
			lines = append(lines, fmt.Sprintf("Strength +%d", c.StrengthGain))
			if c.ID == "w_flex" {
				p.Counters.FlexDown += c.StrengthGain
			}
		}
		if c.EnergyGain > 0 {
			p.Energy += c.EnergyGain
			lines = append(lines, fmt.Sprintf("Energy +%d", c.EnergyGain))
		}
		if c.DexterityGain > 0 {
			p.Dexterity += c.DexterityGain
			lines = append(lines, fmt.Sprintf("Dexterity +%d", c.DexterityGain))
		}
	}

	lines = append(lines, e.resolveCardQuirks(p, combat, c, dealt)...)

	if c.Exhaust {
		p.ExhaustPile = append(p.ExhaustPile, card)
		lines = append(lines, fmt.Sprintf("%s exhausted", card.Name))
	} else {
		p.DiscardPile = append(p.DiscardPile, card)
	}

	lines = append(lines, e.relics.CardPlayed(p, combat.Enemies, c,
		p.Counters.AttacksThisTurn, p.Counters.SkillsThisTurn, p.Counters.CardsThisTurn)...)

	return lines, nil
}

// resolveCardQuirks applies the effects that have no generic payload
// field: orb manipulation, token generation and self-copying.
func (e *Engine) resolveCardQuirks(p *game.Player, combat *game.Combat, c game.Card, dealt int) []string {
	var lines []string
	switch c.ID {
	case "m_dualcast":
		lines = append(lines, e.evokeOldest(p, combat.Enemies)...)
		lines = append(lines, e.evokeOldest(p, combat.Enemies)...)
	case "m_capacitor":
		for i := 0; i < 3; i++ {
			lines = append(lines, e.Channel(p, combat.Enemies, game.OrbLightning)...)
		}
	case "m_cold_snap":
		lines = append(lines, e.Channel(p, combat.Enemies, game.OrbFrost)...)
	case "m_ball_lightning":
		lines = append(lines, e.Channel(p, combat.Enemies, game.OrbLightning)...)
	case "m_meteor_strike":
		for i := 0; i < 3; i++ {
			lines = append(lines, e.Channel(p, combat.Enemies, game.OrbPlasma)...)
		}
	case "w_wild_strike":
		lines = append(lines, e.addCardToDiscard(p, "curse_wound")...)
	case "w_immolate":
		lines = append(lines, e.addCardToDiscard(p, "curse_burn")...)
	case "w_anger":
		copyOf := c
		p.DiscardPile = append(p.DiscardPile, copyOf)
		lines = append(lines, fmt.Sprintf("A copy of %s joins the discard pile", c.Name))
	case "w_reaper":
		if dealt > 0 {
			healed := p.Heal(dealt)
			lines = append(lines, fmt.Sprintf("Reaped %d HP", healed))
		}
	case "w_metallicize":
		p.MetallicizeStacks += 3
		lines = append(lines, "Metallicize: 3 block at the end of each turn")
	case "a_blade_dance":
		lines = append(lines, e.addShivs(p, 3)...)
	case "a_cloak_and_dagger":
		lines = append(lines, e.addShivs(p, 1)...)
	}
	return lines
}

func (e *Engine) addCardToDiscard(p *game.Player, id string) []string {
	card, ok := e.cat.Card(id)
	if !ok {
		return nil
	}
	p.DiscardPile = append(p.DiscardPile, card)
	return []string{fmt.Sprintf("A %s lands in the discard pile", card.Name)}
}

func (e *Engine) addShivs(p *game.Player, count int) []string {
	shiv, ok := e.cat.Card("shiv")
	if !ok {
		return nil
	}
	for i := 0; i < count; i++ {
		p.Hand = append(p.Hand, shiv)
	}
	return []string{fmt.Sprintf("Added %d Shiv(s) to your hand", count)}
}
