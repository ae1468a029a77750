// Package relics fires relic effects at the seven combat lifecycle
// hooks. Effects mutate player and enemy state in place and contribute
// log lines; a panicking effect is contained at the hook boundary so a
// bad relic can never abort a combat.
package relics

import (
	"fmt"
	"math/rand"

	"github.com/jrient/text-game/internal/catalog"
	"github.com/jrient/text-game/internal/constants"
	"github.com/jrient/text-game/internal/game"
	"github.com/jrient/text-game/internal/logging"
)

// Dispatcher wires relic effects to the combat primitives they need.
// The function fields are provided by the combat resolver to avoid
// duplicating draw/block/orb mechanics here.
type Dispatcher struct {
	Catalog *catalog.Catalog
	RNG     *rand.Rand

	Draw      func(p *game.Player, n int) int
	GainBlock func(p *game.Player, base int) int
	Channel   func(p *game.Player, enemies []game.Enemy, kind game.OrbKind) []string
}

func (d *Dispatcher) run(hook string, fn func() []string) (lines []string) {
	defer func() {
		if r := recover(); r != nil {
			logging.Error("relic hook failed", fmt.Errorf("%v", r), logging.Fields{
				constants.LogFieldHook: hook,
			})
			lines = nil
		}
	}()
	return fn()
}

func ownedIDs(p *game.Player) map[string]bool {
	ids := make(map[string]bool, len(p.Relics))
	for i := range p.Relics {
		ids[p.Relics[i].ID] = true
	}
	return ids
}

// CombatStart fires once when enemies are spawned, before the first
// player turn begins.
func (d *Dispatcher) CombatStart(p *game.Player, enemies []game.Enemy) []string {
	return d.run("combat_start", func() []string {
		var lines []string
		owned := ownedIDs(p)

		if owned["anchor"] {
			p.Block += 10
			lines = append(lines, "Anchor: gained 10 block")
		}
		if owned["bag_of_marbles"] {
			for i := range enemies {
				enemies[i].WeakTurns++
			}
			lines = append(lines, "Bag of Marbles: all enemies are weak")
		}
		if owned["ring_of_snake"] {
			d.Draw(p, 2)
			lines = append(lines, "Ring of the Serpent: drew 2 extra cards")
		}
		if owned["bag_of_preparation"] {
			d.Draw(p, 2)
			lines = append(lines, "Bag of Preparation: drew 2 extra cards")
		}
		if owned["captain_wheel"] {
			p.Strength += 3
			p.Dexterity += 3
			p.Block += 3
			lines = append(lines, "Captain's Wheel: strength +3, dexterity +3, block +3")
		}
		if owned["horn_cleat"] {
			p.Counters.HornCleat = true
			lines = append(lines, "Horn Cleat: extra block for the first two turns")
		}
		if owned["blood_vial"] {
			p.Heal(2)
			lines = append(lines, "Blood Vial: healed 2 HP")
		}
		if owned["lantern"] {
			p.Counters.LanternUsed = false
		}
		if owned["cracked_core"] && d.Channel != nil {
			lines = append(lines, d.Channel(p, enemies, game.OrbLightning)...)
		}
		if owned["pantograph"] {
			for i := range enemies {
				if enemies[i].IsBoss {
					healed := p.Heal(25)
					lines = append(lines, fmt.Sprintf("Pantograph: healed %d HP", healed))
					break
				}
			}
		}
		if owned["philosopher_stone"] {
			for i := range enemies {
				enemies[i].Strength++
			}
			lines = append(lines, "Philosopher's Stone: all enemies gain 1 strength")
		}
		if owned["mark_of_pain"] {
			if wound, ok := d.Catalog.Card("curse_wound"); ok {
				p.DrawPile = append(p.DrawPile, wound, wound)
				lines = append(lines, "Mark of Pain: 2 Wounds shuffled into your draw pile")
			}
		}
		if owned["du_vu_doll"] {
			curses := 0
			for i := range p.Deck {
				if p.Deck[i].Type == game.CardCurse {
					curses++
				}
			}
			if curses > 0 {
				p.Strength += curses
				lines = append(lines, fmt.Sprintf("Du-Vu Doll: strength +%d", curses))
			}
		}

		return lines
	})
}

// TurnStart fires at the start of each player turn with the one-based
// combat turn number.
func (d *Dispatcher) TurnStart(p *game.Player, enemies []game.Enemy, turn int) []string {
	return d.run("turn_start", func() []string {
		var lines []string
		owned := ownedIDs(p)

		if owned["lantern"] && !p.Counters.LanternUsed {
			p.Energy++
			p.Counters.LanternUsed = true
			lines = append(lines, "Lantern: energy +1")
		}
		if owned["horn_cleat"] && p.Counters.HornCleat && turn <= 2 {
			p.Block += 14
			lines = append(lines, "Horn Cleat: block +14")
			if turn == 2 {
				p.Counters.HornCleat = false
			}
		}
		if owned["happy_flower"] {
			p.Counters.FlowerCount++
			if p.Counters.FlowerCount%3 == 0 {
				p.Energy++
				lines = append(lines, "Happy Flower: energy +1")
			}
		}
		if owned["mercury_hourglass"] {
			for i := range enemies {
				if enemies[i].Alive() {
					enemies[i].HP -= 3
					if enemies[i].HP < 0 {
						enemies[i].HP = 0
					}
				}
			}
			lines = append(lines, "Mercury Hourglass: 3 damage to all enemies")
		}
		if owned["white_beast_statue"] {
			p.Heal(2)
			lines = append(lines, "White Beast Statue: healed 2 HP")
		}

		return lines
	})
}

// TurnEnd fires at the end of the player turn, before the hand is
// discarded.
func (d *Dispatcher) TurnEnd(p *game.Player, enemies []game.Enemy) []string {
	return d.run("turn_end", func() []string {
		var lines []string
		owned := ownedIDs(p)

		if p.MetallicizeStacks > 0 {
			p.Block += p.MetallicizeStacks
			lines = append(lines, fmt.Sprintf("Metallicize: gained %d block", p.MetallicizeStacks))
		}
		if owned["ice_cream"] && p.Energy > 0 {
			p.Counters.SavedEnergy = p.Energy
			lines = append(lines, fmt.Sprintf("Ice Cream: %d energy carried over", p.Energy))
		}
		if owned["frozen_core"] && len(p.Orbs) == 0 && d.Channel != nil {
			lines = append(lines, d.Channel(p, enemies, game.OrbFrost)...)
		}

		return lines
	})
}

// CardPlayed fires after a card's own effects resolve, with the
// post-increment per-turn counters.
func (d *Dispatcher) CardPlayed(p *game.Player, enemies []game.Enemy, card game.Card, attackCount, skillCount, totalCount int) []string {
	return d.run("card_played", func() []string {
		var lines []string
		owned := ownedIDs(p)

		if card.Type == game.CardAttack {
			if owned["nunchaku"] {
				p.Counters.NunchakuCount++
				if p.Counters.NunchakuCount%10 == 0 {
					p.Energy++
					lines = append(lines, "Nunchaku: energy +1")
				}
			}
			if owned["kunai"] && attackCount%3 == 0 {
				p.Dexterity++
				lines = append(lines, "Kunai: dexterity +1")
			}
			if owned["shuriken"] && attackCount%3 == 0 {
				p.Strength++
				lines = append(lines, "Shuriken: strength +1")
			}
			if owned["ornamental_fan"] && attackCount%3 == 0 {
				gained := d.GainBlock(p, 4)
				lines = append(lines, fmt.Sprintf("Ornamental Fan: block +%d", gained))
			}
		}

		if card.Type == game.CardSkill && owned["letter_opener"] && skillCount%3 == 0 {
			for i := range enemies {
				if enemies[i].Alive() {
					enemies[i].HP -= 5
					if enemies[i].HP < 0 {
						enemies[i].HP = 0
					}
				}
			}
			lines = append(lines, "Letter Opener: 5 damage to all enemies")
		}

		if owned["ink_bottle"] {
			p.Counters.InkCount++
			if p.Counters.InkCount%10 == 0 {
				d.Draw(p, 1)
				lines = append(lines, "Ink Bottle: drew a card")
			}
		}

		if card.Type == game.CardPower {
			if owned["bird_faced_urn"] {
				p.Heal(2)
				lines = append(lines, "Bird-Faced Urn: healed 2 HP")
			}
			if owned["mummified_hand"] && len(p.Hand) > 0 {
				target := &p.Hand[d.RNG.Intn(len(p.Hand))]
				if target.Cost > 0 {
					target.Cost--
					lines = append(lines, fmt.Sprintf("Mummified Hand: %s costs 1 less", target.Name))
				}
			}
		}

		if card.Exhaust && owned["dead_branch"] {
			rewards := d.Catalog.CardRewards(p.Character, p.Floor, 1, d.RNG)
			if len(rewards) > 0 {
				p.Hand = append(p.Hand, rewards[0])
				lines = append(lines, fmt.Sprintf("Dead Branch: added %s to your hand", rewards[0].Name))
			}
		}

		return lines
	})
}

// Discarded fires once per end of turn with the number of cards sent to
// the discard pile.
func (d *Dispatcher) Discarded(p *game.Player, enemies []game.Enemy, count int) []string {
	return d.run("discarded", func() []string {
		if count <= 0 {
			return nil
		}
		var lines []string
		owned := ownedIDs(p)

		if owned["tingsha"] {
			var alive []*game.Enemy
			for i := range enemies {
				if enemies[i].Alive() {
					alive = append(alive, &enemies[i])
				}
			}
			if len(alive) > 0 {
				target := alive[d.RNG.Intn(len(alive))]
				dmg := 3 * count
				target.HP -= dmg
				if target.HP < 0 {
					target.HP = 0
				}
				lines = append(lines, fmt.Sprintf("Tingsha: %d damage to %s", dmg, target.Name))
			}
		}
		if owned["tough_bandages"] {
			p.Block += 3 * count
			lines = append(lines, fmt.Sprintf("Tough Bandages: block +%d", 3*count))
		}
		if owned["true_grit_relic"] {
			p.Block += 2 * count
			lines = append(lines, fmt.Sprintf("Toughness: block +%d", 2*count))
		}

		return lines
	})
}

// DamageTaken fires when the player loses HP to an enemy attack.
func (d *Dispatcher) DamageTaken(p *game.Player, enemies []game.Enemy, amount int) []string {
	return d.run("damage_taken", func() []string {
		if amount <= 0 {
			return nil
		}
		var lines []string
		owned := ownedIDs(p)

		if owned["bronze_scales"] {
			for i := range enemies {
				if enemies[i].Alive() {
					enemies[i].HP -= 3
					if enemies[i].HP < 0 {
						enemies[i].HP = 0
					}
					break
				}
			}
			lines = append(lines, "Bronze Scales: 3 damage reflected")
		}
		if owned["centennial_puzzle"] && !p.Counters.PuzzleTriggered {
			p.Counters.PuzzleTriggered = true
			d.Draw(p, 3)
			lines = append(lines, "Centennial Puzzle: drew 3 cards")
		}

		return lines
	})
}

// CombatEnd fires when a combat resolves, before the player leaves the
// combat phase.
func (d *Dispatcher) CombatEnd(p *game.Player, victory bool) []string {
	return d.run("combat_end", func() []string {
		var lines []string
		owned := ownedIDs(p)

		if victory {
			if owned["burning_blood"] {
				p.Heal(6)
				lines = append(lines, "Burning Blood: healed 6 HP")
			}
			if owned["black_blood"] {
				p.Heal(12)
				lines = append(lines, "Black Blood: healed 12 HP")
			}
			if owned["meat_on_the_bone"] && p.HP*2 <= p.MaxHP {
				p.Heal(12)
				lines = append(lines, "Meat on the Bone: healed 12 HP")
			}
		}

		p.Counters.ResetCombat()
		return lines
	})
}
