package game

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestGameStateJSONRoundTrip(t *testing.T) {
	strike := Card{ID: "w_strike", Name: "Strike", Cost: 1, Type: CardAttack, Character: "warrior", Rarity: "starter", Damage: 6, Hits: 1}
	burn := Card{ID: "curse_burn", Name: "Burn", Cost: CostX, Type: CardCurse, Character: "common", Rarity: "curse", Unplayable: true}

	gs := &GameState{
		GameID: "g1",
		Phase:  PhaseCombat,
		Player: Player{
			ID:            "p1",
			Name:          "Tester",
			Character:     "warrior",
			CharacterName: "Warrior",
			HP:            61,
			MaxHP:         95,
			Energy:        2,
			MaxEnergy:     3,
			Block:         7,
			Strength:      2,
			Dexterity:     1,
			WeakTurns:     1,
			Deck:          []Card{strike, strike, burn},
			Hand:          []Card{strike},
			DrawPile:      []Card{burn},
			DiscardPile:   []Card{strike},
			ExhaustPile:   []Card{strike},
			Relics:        []Relic{{ID: "burning_blood", Name: "Burning Blood", Rarity: "starter"}},
			Potions:       []Potion{{ID: "health_potion", Name: "Health Potion", Rarity: "common", Value: 20}},
			Orbs:          []OrbKind{OrbLightning, OrbFrost},
			OrbSlots:      3,
			Gold:          148,
			Floor:         4,
			Act:           1,
			Kills:         3,
			Turns:         11,
			CardsPlayed:   25,
			DamageDealt:   96,
			DamageTaken:   34,
			GoldEarned:    173,
			Counters: TurnCounters{
				CombatTurn:      4,
				AttacksThisTurn: 1,
				NunchakuCount:   7,
				MawBankSpent:    true,
			},
		},
		Map: GameMap{
			Act:    1,
			Floors: 8,
			Nodes: map[string]*MapNode{
				"n0": {ID: "n0", Floor: 0, Type: NodeMonster, Connections: []string{"n1"}, Visited: true},
				"n1": {ID: "n1", Floor: 1, Type: NodeElite},
			},
			AvailableNodes: []string{"n1"},
		},
		Combat: &Combat{
			Enemies: []Enemy{{
				ID: "cultist", Name: "Cultist", HP: 12, MaxHP: 48,
				Strength: 3, Poison: 2,
				Intent:      &Intent{Action: IntentAttack, Value: 6, Times: 1, Description: "Dark Strike"},
				MoveHistory: []string{"ritual", "attack"},
			}},
			Turn:     4,
			NodeType: NodeMonster,
			Log:      []string{"Combat begins!"},
		},
		Ascension: 2,
		Message:   "Your turn.",
		Turn:      4,
	}

	b, err := json.Marshal(gs)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var got GameState
	if err := json.Unmarshal(b, &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !reflect.DeepEqual(gs, &got) {
		t.Fatalf("round trip changed the state:\n got %+v\nwant %+v", &got, gs)
	}
}
