package engine

import (
	"fmt"

	"github.com/jrient/text-game/internal/catalog"
	"github.com/jrient/text-game/internal/game"
)

// UsePotion consumes the potion at slot index and applies its effect.
// Combat-only effects (draw, poison, fire, gamble) require enemies to
// be non-nil; out of combat they are rejected. The slot is freed even
// when the effect hits nothing.
func (e *Engine) UsePotion(p *game.Player, enemies []game.Enemy, slot, targetIndex int) ([]string, error) {
	if slot < 0 || slot >= len(p.Potions) {
		return nil, game.NotFound("no potion in slot %d", slot)
	}
	potion := p.Potions[slot]

	inCombat := enemies != nil
	switch potion.Effect {
	case catalog.PotionDraw, catalog.PotionPoison, catalog.PotionFireDamage,
		catalog.PotionGamble, catalog.PotionEnergy, catalog.PotionBlock,
		catalog.PotionStrength, catalog.PotionDexterity:
		if !inCombat {
			return nil, game.PreconditionFailed("%s can only be used in combat", potion.Name)
		}
	}

	p.Potions = append(p.Potions[:slot], p.Potions[slot+1:]...)

	lines := []string{fmt.Sprintf("Used %s", potion.Name)}

	switch potion.Effect {
	case catalog.PotionHealPercent:
		healed := p.Heal(p.MaxHP * potion.Value / 100)
		lines = append(lines, fmt.Sprintf("Restored %d HP", healed))

	case catalog.PotionStrength:
		p.Strength += potion.Value
		lines = append(lines, fmt.Sprintf("Strength +%d", potion.Value))

	case catalog.PotionDexterity:
		p.Dexterity += potion.Value
		lines = append(lines, fmt.Sprintf("Dexterity +%d", potion.Value))

	case catalog.PotionDraw:
		drawn := e.DrawCards(p, potion.Value)
		lines = append(lines, fmt.Sprintf("Drew %d cards", drawn))

	case catalog.PotionBlock:
		p.Block += potion.Value
		lines = append(lines, fmt.Sprintf("Gained %d block", potion.Value))

	case catalog.PotionEnergy:
		p.Energy += potion.Value
		lines = append(lines, fmt.Sprintf("Energy +%d", potion.Value))

	case catalog.PotionPoison:
		alive := alivePointers(enemies)
		if len(alive) > 0 {
			if targetIndex < 0 || targetIndex >= len(alive) {
				targetIndex = 0
			}
			target := alive[targetIndex]
			target.Poison += potion.Value
			lines = append(lines, fmt.Sprintf("Applied %d poison to %s", potion.Value, target.Name))
		}

	case catalog.PotionFireDamage:
		for _, target := range alivePointers(enemies) {
			dmg := potion.Value - target.Block
			if dmg < 0 {
				dmg = 0
			}
			target.Block -= potion.Value
			if target.Block < 0 {
				target.Block = 0
			}
			target.HP -= dmg
			if target.HP < 0 {
				target.HP = 0
			}
			p.DamageDealt += dmg
		}
		lines = append(lines, fmt.Sprintf("Flames engulf every enemy for %d", potion.Value))

	case catalog.PotionRelic:
		if relic, ok := e.cat.RandomRelic("uncommon", e.rng); ok {
			p.Relics = append(p.Relics, relic)
			lines = append(lines, fmt.Sprintf("Obtained relic: %s", relic.Name))
		}

	case catalog.PotionGamble:
		handSize := len(p.Hand)
		p.DiscardPile = append(p.DiscardPile, p.Hand...)
		p.Hand = nil
		drawn := e.DrawCards(p, handSize)
		lines = append(lines, fmt.Sprintf("Redrew %d cards", drawn))
	}

	return lines, nil
}
