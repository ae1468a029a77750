package engine

import (
	"fmt"

	"github.com/jrient/text-game/internal/ai"
	"github.com/jrient/text-game/internal/constants"
	"github.com/jrient/text-game/internal/game"
)

// InitCombat spawns enemies for the node, rebuilds the combat piles
// from the permanent deck and runs the first player turn. Elite and
// boss nodes always spawn a single enemy; monster nodes roll a second
// one with a weight that grows with ascension.
func (e *Engine) InitCombat(gs *game.GameState, nodeType game.NodeType) {
	p := &gs.Player

	p.Block = 0
	p.WeakTurns = 0
	p.VulnerableTurns = 0
	p.MetallicizeStacks = 0
	p.Counters.ResetCombat()

	deck := make([]game.Card, len(p.Deck))
	copy(deck, p.Deck)
	e.shuffle(deck)
	p.DrawPile = deck
	p.Hand = nil
	p.DiscardPile = nil
	p.ExhaustPile = nil

	p.Orbs = nil
	if p.OrbSlots <= 0 {
		p.OrbSlots = constants.MaxOrbSlots
	}

	var enemies []game.Enemy
	switch nodeType {
	case game.NodeBoss, game.NodeElite:
		enemies = append(enemies, ai.Spawn(p.Act, nodeType, e.rng))
	default:
		count := 1
		twoEnemyWeight := 40 + gs.Ascension*5
		if e.rng.Intn(100) < twoEnemyWeight {
			count = 2
		}
		for i := 0; i < count; i++ {
			enemies = append(enemies, ai.Spawn(p.Act, game.NodeMonster, e.rng))
		}
	}

	scaleEnemies(enemies, gs.Ascension)

	combat := &game.Combat{
		Enemies:  enemies,
		Turn:     1,
		NodeType: nodeType,
		Log:      []string{"Combat begins!"},
	}
	gs.Combat = combat
	gs.Phase = game.PhaseCombat

	combat.Log = append(combat.Log, e.relics.CombatStart(p, combat.Enemies)...)
	combat.Log = append(combat.Log, e.StartPlayerTurn(p, combat.Enemies)...)
}

// scaleEnemies applies the ascension difficulty curve to freshly
// spawned enemies. Bosses scale harder from tier 3 up.
func scaleEnemies(enemies []game.Enemy, ascension int) {
	if ascension < 2 {
		return
	}
	hasBoss := false
	for i := range enemies {
		if enemies[i].IsBoss {
			hasBoss = true
		}
	}

	hpScale, dmgScale := 1.0, 1.0
	switch {
	case ascension == 2:
		hpScale = 1.10
	case ascension == 3:
		hpScale = 1.15
		if hasBoss {
			hpScale = 1.20
		}
	case ascension == 4:
		hpScale = 1.20
		if hasBoss {
			hpScale = 1.25
		}
		dmgScale = 1.10
	default:
		hpScale = 1.30
		dmgScale = 1.15
	}

	for i := range enemies {
		en := &enemies[i]
		if hpScale > 1.0 {
			hp := int(float64(en.HP) * hpScale)
			en.HP = hp
			en.MaxHP = hp
		}
		if dmgScale > 1.0 && en.Intent != nil && en.Intent.Value > 0 {
			en.Intent.Value = int(float64(en.Intent.Value) * dmgScale)
		}
	}
}

// StartPlayerTurn refreshes energy, grants the character's passive
// block, draws a fresh hand and ticks down the player's own debuffs.
// Block carries over untouched.
func (e *Engine) StartPlayerTurn(p *game.Player, enemies []game.Enemy) []string {
	var lines []string

	var kept []game.Card
	for _, card := range p.Hand {
		if card.Retain {
			kept = append(kept, card)
		} else {
			p.DiscardPile = append(p.DiscardPile, card)
		}
	}
	p.Hand = kept

	p.Counters.ResetTurn()

	saved := p.Counters.SavedEnergy
	p.Counters.SavedEnergy = 0
	p.Energy = p.MaxEnergy + saved

	if p.BaseBlock > 0 {
		p.Block += p.BaseBlock
		lines = append(lines, fmt.Sprintf("Passive armor: gained %d block (%d total)", p.BaseBlock, p.Block))
	}

	drawn := e.DrawCards(p, constants.HandDrawBase+p.BonusDraw)
	lines = append(lines, fmt.Sprintf("Turn start: %d energy, drew %d cards", p.Energy, drawn))

	if p.WeakTurns > 0 {
		p.WeakTurns--
	}
	if p.VulnerableTurns > 0 {
		p.VulnerableTurns--
	}

	lines = append(lines, e.passiveOrbTick(p, enemies)...)

	p.Counters.CombatTurn++
	lines = append(lines, e.relics.TurnStart(p, enemies, p.Counters.CombatTurn)...)

	return lines
}

// EndTurn closes the player phase: end-of-turn relics fire, the hand is
// discarded (ethereal cards dissolve instead), lingering Burns bite,
// then the enemies act and the next player turn begins unless the
// combat has ended.
func (e *Engine) EndTurn(p *game.Player, combat *game.Combat) []string {
	lines := []string{"--- Enemy turn ---"}

	discarded := 0
	for i := range p.Hand {
		if !p.Hand[i].Retain && !p.Hand[i].Ethereal {
			discarded++
		}
	}
	// Burns smolder wherever they sit, not just in hand.
	burns := 0
	for _, pile := range [][]game.Card{p.Hand, p.DrawPile, p.DiscardPile, p.ExhaustPile} {
		for i := range pile {
			if pile[i].ID == "curse_burn" {
				burns++
			}
		}
	}

	if p.Counters.FlexDown > 0 {
		p.Strength -= p.Counters.FlexDown
		lines = append(lines, fmt.Sprintf("Flex wears off: strength -%d", p.Counters.FlexDown))
		p.Counters.FlexDown = 0
	}

	lines = append(lines, e.relics.TurnEnd(p, combat.Enemies)...)

	var kept []game.Card
	for _, card := range p.Hand {
		switch {
		case card.Ethereal:
			lines = append(lines, fmt.Sprintf("%s dissolves", card.Name))
		case card.Retain:
			kept = append(kept, card)
		default:
			p.DiscardPile = append(p.DiscardPile, card)
		}
	}
	p.Hand = kept

	if discarded > 0 {
		lines = append(lines, e.relics.Discarded(p, combat.Enemies, discarded)...)
	}

	if burns > 0 {
		p.HP -= burns
		if p.HP < 0 {
			p.HP = 0
		}
		p.DamageTaken += burns
		lines = append(lines, fmt.Sprintf("Burn sears you for %d HP", burns))
	}

	lines = append(lines, e.enemyTurn(p, combat)...)

	p.Turns++
	combat.Turn++

	if e.CheckEnd(p, combat.Enemies) == OutcomeNone {
		lines = append(lines, e.StartPlayerTurn(p, combat.Enemies)...)
	}
	return lines
}

// enemyTurn resolves poison, then executes each living enemy's
// telegraphed intent and rolls its next one. An enemy that dies to
// poison skips its action.
func (e *Engine) enemyTurn(p *game.Player, combat *game.Combat) []string {
	var lines []string

	for i := range combat.Enemies {
		en := &combat.Enemies[i]
		if !en.Alive() {
			continue
		}

		if en.Poison > 0 {
			dmg := en.Poison
			en.HP -= dmg
			if en.HP < 0 {
				en.HP = 0
			}
			en.Poison--
			lines = append(lines, fmt.Sprintf("%s takes %d poison damage", en.Name, dmg))
			if !en.Alive() {
				lines = append(lines, fmt.Sprintf("%s succumbs to poison!", en.Name))
				continue
			}
		}

		if en.Intent == nil {
			continue
		}
		intent := *en.Intent

		switch intent.Action {
		case game.IntentAttack:
			lines = append(lines, e.enemyAttack(p, combat.Enemies, en, intent)...)
		case game.IntentBlock:
			gain := intent.Value + en.Dexterity
			en.Block += gain
			lines = append(lines, fmt.Sprintf("%s gains %d block", en.Name, gain))
		case game.IntentBuff:
			en.Strength += intent.Value
			if intent.Value > 0 {
				lines = append(lines, fmt.Sprintf("%s gains %d strength", en.Name, intent.Value))
			}
			if intent.Description != "" {
				lines = append(lines, fmt.Sprintf("%s: %s", en.Name, intent.Description))
			}
		case game.IntentDebuff:
			lines = append(lines, e.enemyDebuff(p, en, intent)...)
		case game.IntentSpecial:
			lines = append(lines, e.enemySpecial(p, en, intent)...)
		}

		if en.WeakTurns > 0 {
			en.WeakTurns--
		}
		if en.VulnerableTurns > 0 {
			en.VulnerableTurns--
		}

		en.MoveHistory = append(en.MoveHistory, string(intent.Action))
		next := ai.Next(en, e.rng)
		en.Intent = &next
	}

	return lines
}

func (e *Engine) enemyAttack(p *game.Player, enemies []game.Enemy, en *game.Enemy, intent game.Intent) []string {
	times := intent.Times
	if times < 1 {
		times = 1
	}
	total := (intent.Value + en.Strength) * times
	if en.WeakTurns > 0 {
		total = total * 3 / 4
	}
	if p.VulnerableTurns > 0 {
		total = total * 3 / 2
	}
	if total < 0 {
		total = 0
	}

	lost := DealDamageToPlayer(p, total)
	p.DamageTaken += lost

	lines := []string{fmt.Sprintf("%s attacks for %d (%d got through)", en.Name, total, lost)}
	if lost > 0 {
		lines = append(lines, e.relics.DamageTaken(p, enemies, lost)...)
	}
	return lines
}

func (e *Engine) enemyDebuff(p *game.Player, en *game.Enemy, intent game.Intent) []string {
	var lines []string
	if intent.Description != "" {
		lines = append(lines, fmt.Sprintf("%s: %s", en.Name, intent.Description))
	}
	switch intent.Status {
	case "dazed":
		if card, ok := e.cat.Card("curse_dazed"); ok {
			for i := 0; i < maxInt(intent.Value, 1); i++ {
				p.DiscardPile = append(p.DiscardPile, card)
			}
			lines = append(lines, fmt.Sprintf("Dazed x%d shuffled into your discard pile", maxInt(intent.Value, 1)))
		}
	default:
		if intent.Value > 0 {
			p.WeakTurns += intent.Value
			lines = append(lines, fmt.Sprintf("You are weak for %d turns", intent.Value))
		}
	}
	return lines
}

func (e *Engine) enemySpecial(p *game.Player, en *game.Enemy, intent game.Intent) []string {
	lines := []string{fmt.Sprintf("%s: %s", en.Name, intent.Description)}
	switch intent.Status {
	case "burn":
		if card, ok := e.cat.Card("curse_burn"); ok {
			for i := 0; i < 3; i++ {
				p.DiscardPile = append(p.DiscardPile, card)
			}
			lines = append(lines, "3 Burns smolder in your discard pile")
		}
	case "heal":
		before := en.HP
		en.HP += intent.Value
		if en.HP > en.MaxHP {
			en.HP = en.MaxHP
		}
		if en.HP > before {
			lines = append(lines, fmt.Sprintf("%s restores %d HP", en.Name, en.HP-before))
		}
	case "curse":
		if card, ok := e.cat.Card("curse_wound"); ok {
			p.Deck = append(p.Deck, card)
			p.DiscardPile = append(p.DiscardPile, card)
			lines = append(lines, "A Wound is carved into your deck")
		}
	}
	return lines
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
