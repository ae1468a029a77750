package engine

import (
	"math/rand"
	"testing"

	"github.com/jrient/text-game/internal/catalog"
	"github.com/jrient/text-game/internal/game"
)

func newTestEngine(seed int64) *Engine {
	return New(catalog.New(), rand.New(rand.NewSource(seed)))
}

func newTestPlayer() *game.Player {
	return &game.Player{
		ID:        "p1",
		Character: "warrior",
		HP:        80,
		MaxHP:     80,
		Energy:    3,
		MaxEnergy: 3,
	}
}

func strikeCard(t *testing.T, e *Engine) game.Card {
	t.Helper()
	card, ok := e.Catalog().Card("w_strike")
	if !ok {
		t.Fatal("w_strike missing from catalog")
	}
	return card
}

func TestCalcDamageAppliesWeakThenVulnerable(t *testing.T) {
	p := newTestPlayer()
	target := &game.Enemy{HP: 50, MaxHP: 50}

	if got := CalcDamage(10, 1, p, target); got != 10 {
		t.Fatalf("unmodified damage = %d, want 10", got)
	}

	p.WeakTurns = 1
	if got := CalcDamage(10, 1, p, target); got != 7 {
		t.Fatalf("weak damage = %d, want 7", got)
	}

	target.VulnerableTurns = 1
	if got := CalcDamage(10, 1, p, target); got != 10 {
		t.Fatalf("weak+vulnerable damage = %d, want 10", got)
	}

	p.WeakTurns = 0
	if got := CalcDamage(10, 1, p, target); got != 15 {
		t.Fatalf("vulnerable damage = %d, want 15", got)
	}
}

func TestCalcDamageFloorsNegativePerHit(t *testing.T) {
	p := newTestPlayer()
	p.CharAttackBonus = -3
	if got := CalcDamage(2, 2, p, nil); got != 0 {
		t.Fatalf("damage = %d, want 0", got)
	}
}

func TestCalcDamageMultipliesHitsBeforeModifiers(t *testing.T) {
	p := newTestPlayer()
	p.Strength = 1
	if got := CalcDamage(3, 3, p, nil); got != 12 {
		t.Fatalf("damage = %d, want 12", got)
	}
}

func TestDealDamageToEnemyBurnsBlockPerHit(t *testing.T) {
	target := &game.Enemy{Name: "dummy", HP: 30, MaxHP: 30, Block: 4}
	dealt := DealDamageToEnemy(9, 3, target)
	if dealt != 5 {
		t.Fatalf("dealt = %d, want 5", dealt)
	}
	if target.Block != 0 || target.HP != 25 {
		t.Fatalf("after hits: block=%d hp=%d, want 0/25", target.Block, target.HP)
	}
}

func TestDealDamageToPlayerConsumesBlock(t *testing.T) {
	p := newTestPlayer()
	p.Block = 10

	if lost := DealDamageToPlayer(p, 4); lost != 0 {
		t.Fatalf("lost = %d, want 0", lost)
	}
	if p.Block != 6 {
		t.Fatalf("block = %d, want 6", p.Block)
	}

	if lost := DealDamageToPlayer(p, 8); lost != 2 {
		t.Fatalf("lost = %d, want 2", lost)
	}
	if p.Block != 0 || p.HP != 78 {
		t.Fatalf("block=%d hp=%d, want 0/78", p.Block, p.HP)
	}
}

func TestDrawCardsReshufflesDiscardOnce(t *testing.T) {
	e := newTestEngine(7)
	p := newTestPlayer()
	card := strikeCard(t, e)
	p.DrawPile = []game.Card{card, card, card}
	p.DiscardPile = []game.Card{card, card, card, card}

	drawn := e.DrawCards(p, 5)
	if drawn != 5 {
		t.Fatalf("drawn = %d, want 5", drawn)
	}
	if len(p.Hand) != 5 || len(p.DiscardPile) != 0 || len(p.DrawPile) != 2 {
		t.Fatalf("piles hand=%d discard=%d draw=%d, want 5/0/2",
			len(p.Hand), len(p.DiscardPile), len(p.DrawPile))
	}
}

func TestDrawCardsReturnsShortCountWhenEverythingIsEmpty(t *testing.T) {
	e := newTestEngine(7)
	p := newTestPlayer()
	if drawn := e.DrawCards(p, 5); drawn != 0 {
		t.Fatalf("drawn = %d, want 0", drawn)
	}
}

func TestCheckEndDefeatWinsTies(t *testing.T) {
	e := newTestEngine(1)
	p := newTestPlayer()
	p.HP = 0
	enemies := []game.Enemy{{HP: 0, MaxHP: 10}}
	if got := e.CheckEnd(p, enemies); got != OutcomeDefeat {
		t.Fatalf("outcome = %v, want defeat", got)
	}
}

func TestPlayCardRejectsInsufficientEnergy(t *testing.T) {
	e := newTestEngine(1)
	p := newTestPlayer()
	p.Energy = 0
	p.Hand = []game.Card{strikeCard(t, e)}
	combat := &game.Combat{Enemies: []game.Enemy{{Name: "dummy", HP: 10, MaxHP: 10}}}

	_, err := e.PlayCard(p, combat, 0, 0)
	if !game.IsKind(err, game.KindPreconditionFailed) {
		t.Fatalf("err = %v, want precondition_failed", err)
	}
	if len(p.Hand) != 1 {
		t.Fatalf("hand size = %d, want card still in hand", len(p.Hand))
	}
}

func TestPlayCardRejectsUnplayableCurse(t *testing.T) {
	e := newTestEngine(1)
	p := newTestPlayer()
	wound, ok := e.Catalog().Card("curse_wound")
	if !ok {
		t.Fatal("curse_wound missing from catalog")
	}
	p.Hand = []game.Card{wound}
	combat := &game.Combat{Enemies: []game.Enemy{{Name: "dummy", HP: 10, MaxHP: 10}}}

	_, err := e.PlayCard(p, combat, 0, 0)
	if !game.IsKind(err, game.KindPreconditionFailed) {
		t.Fatalf("err = %v, want precondition_failed", err)
	}
}

func TestPlayCardResolvesAttack(t *testing.T) {
	e := newTestEngine(1)
	p := newTestPlayer()
	p.Hand = []game.Card{strikeCard(t, e)}
	combat := &game.Combat{Enemies: []game.Enemy{{Name: "dummy", HP: 20, MaxHP: 20}}}

	if _, err := e.PlayCard(p, combat, 0, 0); err != nil {
		t.Fatalf("PlayCard: %v", err)
	}
	if combat.Enemies[0].HP != 14 {
		t.Fatalf("enemy hp = %d, want 14", combat.Enemies[0].HP)
	}
	if p.Energy != 2 {
		t.Fatalf("energy = %d, want 2", p.Energy)
	}
	if len(p.Hand) != 0 || len(p.DiscardPile) != 1 {
		t.Fatalf("hand=%d discard=%d, want 0/1", len(p.Hand), len(p.DiscardPile))
	}
	if p.Counters.AttacksThisTurn != 1 || p.CardsPlayed != 1 {
		t.Fatalf("counters attack=%d played=%d, want 1/1",
			p.Counters.AttacksThisTurn, p.CardsPlayed)
	}
}

func TestPlayCardBodySlamUsesCurrentBlock(t *testing.T) {
	e := newTestEngine(1)
	p := newTestPlayer()
	p.Block = 9
	slam, ok := e.Catalog().Card("w_body_slam")
	if !ok {
		t.Fatal("w_body_slam missing from catalog")
	}
	p.Hand = []game.Card{slam}
	combat := &game.Combat{Enemies: []game.Enemy{{Name: "dummy", HP: 30, MaxHP: 30}}}

	if _, err := e.PlayCard(p, combat, 0, 0); err != nil {
		t.Fatalf("PlayCard: %v", err)
	}
	if combat.Enemies[0].HP != 21 {
		t.Fatalf("enemy hp = %d, want 21", combat.Enemies[0].HP)
	}
	if p.Block != 9 {
		t.Fatalf("block = %d, want 9 untouched", p.Block)
	}
}

func TestPlayCardClashNeedsAllAttackHand(t *testing.T) {
	e := newTestEngine(1)
	p := newTestPlayer()
	clash, ok := e.Catalog().Card("w_clash")
	if !ok {
		t.Fatal("w_clash missing from catalog")
	}
	defend, ok := e.Catalog().Card("w_defend")
	if !ok {
		t.Fatal("w_defend missing from catalog")
	}
	p.Hand = []game.Card{clash, defend}
	combat := &game.Combat{Enemies: []game.Enemy{{Name: "dummy", HP: 30, MaxHP: 30}}}

	_, err := e.PlayCard(p, combat, 0, 0)
	if !game.IsKind(err, game.KindPreconditionFailed) {
		t.Fatalf("err = %v, want precondition_failed", err)
	}
}

func TestChannelOverflowEvokesOldest(t *testing.T) {
	e := newTestEngine(3)
	p := newTestPlayer()
	p.OrbSlots = 3
	enemies := []game.Enemy{{Name: "dummy", HP: 40, MaxHP: 40}}

	e.Channel(p, enemies, game.OrbLightning)
	e.Channel(p, enemies, game.OrbFrost)
	e.Channel(p, enemies, game.OrbPlasma)
	e.Channel(p, enemies, game.OrbFrost)

	if len(p.Orbs) != 3 {
		t.Fatalf("orbs = %d, want 3", len(p.Orbs))
	}
	if p.Orbs[0] != game.OrbFrost || p.Orbs[2] != game.OrbFrost {
		t.Fatalf("orbs = %v, want oldest lightning evoked", p.Orbs)
	}
	if enemies[0].HP != 40-orbEvokeLightning {
		t.Fatalf("enemy hp = %d, want %d", enemies[0].HP, 40-orbEvokeLightning)
	}
}

func TestStartPlayerTurnRefreshesHandAndEnergy(t *testing.T) {
	e := newTestEngine(5)
	p := newTestPlayer()
	p.BaseBlock = 5
	p.Energy = 0
	card := strikeCard(t, e)
	for i := 0; i < 10; i++ {
		p.DrawPile = append(p.DrawPile, card)
	}
	p.Block = 3

	e.StartPlayerTurn(p, nil)

	if p.Energy != 3 {
		t.Fatalf("energy = %d, want 3", p.Energy)
	}
	if len(p.Hand) != 5 {
		t.Fatalf("hand = %d, want 5", len(p.Hand))
	}
	if p.Block != 8 {
		t.Fatalf("block = %d, want prior 3 + passive 5", p.Block)
	}
}

func TestStartPlayerTurnKeepsRetainedCards(t *testing.T) {
	e := newTestEngine(5)
	p := newTestPlayer()
	card := strikeCard(t, e)
	for i := 0; i < 10; i++ {
		p.DrawPile = append(p.DrawPile, card)
	}
	held := card
	held.ID = "w_held"
	held.Name = "Held"
	held.Retain = true
	p.Hand = []game.Card{held, card}

	e.StartPlayerTurn(p, nil)

	if len(p.Hand) != 6 {
		t.Fatalf("hand = %d, want retained card + 5 drawn", len(p.Hand))
	}
	if p.Hand[0].ID != "w_held" {
		t.Fatalf("hand[0] = %s, want the retained card first", p.Hand[0].ID)
	}
	if len(p.DiscardPile) != 1 {
		t.Fatalf("discard = %d, want only the unretained card", len(p.DiscardPile))
	}
	total := len(p.Hand) + len(p.DrawPile) + len(p.DiscardPile) + len(p.ExhaustPile)
	if total != 12 {
		t.Fatalf("cards in piles = %d, want 12 conserved", total)
	}
}

func TestEndTurnBurnsTaxEveryPile(t *testing.T) {
	e := newTestEngine(5)
	p := newTestPlayer()
	burn, ok := e.Catalog().Card("curse_burn")
	if !ok {
		t.Fatal("curse_burn missing from catalog")
	}
	strike := strikeCard(t, e)
	p.Hand = []game.Card{burn, strike}
	p.DrawPile = []game.Card{burn, strike, strike, strike, strike, strike}
	p.DiscardPile = []game.Card{burn}
	p.ExhaustPile = []game.Card{burn}
	combat := &game.Combat{
		Enemies: []game.Enemy{{
			Name: "dummy", HP: 30, MaxHP: 30,
			Intent: &game.Intent{Action: game.IntentBlock, Value: 5},
		}},
		Turn: 1,
	}

	e.EndTurn(p, combat)

	if p.HP != 76 {
		t.Fatalf("hp = %d, want 76 (one burn in each pile)", p.HP)
	}
	if p.DamageTaken != 4 {
		t.Fatalf("damage taken = %d, want 4", p.DamageTaken)
	}
}

func TestEndTurnKeepsBlockAndRunsEnemies(t *testing.T) {
	e := newTestEngine(5)
	p := newTestPlayer()
	p.Block = 12
	card := strikeCard(t, e)
	for i := 0; i < 10; i++ {
		p.DrawPile = append(p.DrawPile, card)
	}
	combat := &game.Combat{
		Enemies: []game.Enemy{{
			Name: "dummy", HP: 30, MaxHP: 30,
			Intent: &game.Intent{Action: game.IntentAttack, Value: 8, Times: 1},
		}},
		Turn: 1,
	}

	e.EndTurn(p, combat)

	if p.HP != 80 {
		t.Fatalf("hp = %d, want 80 (block absorbed the hit)", p.HP)
	}
	if p.Block != 4 {
		t.Fatalf("block = %d, want 12-8=4 carried into next turn", p.Block)
	}
	if combat.Enemies[0].Intent == nil {
		t.Fatal("enemy should have a fresh intent")
	}
	if combat.Turn != 2 {
		t.Fatalf("combat turn = %d, want 2", combat.Turn)
	}
}

func TestEnemyTurnPoisonTicksAndSkipsTheDead(t *testing.T) {
	e := newTestEngine(5)
	p := newTestPlayer()
	combat := &game.Combat{
		Enemies: []game.Enemy{{
			Name: "dummy", HP: 3, MaxHP: 30, Poison: 5,
			Intent: &game.Intent{Action: game.IntentAttack, Value: 50, Times: 1},
		}},
	}

	e.enemyTurn(p, combat)

	if combat.Enemies[0].HP != 0 {
		t.Fatalf("enemy hp = %d, want 0", combat.Enemies[0].HP)
	}
	if p.HP != 80 {
		t.Fatalf("player hp = %d, want 80 (dead enemy must not act)", p.HP)
	}
	if combat.Enemies[0].Poison != 4 {
		t.Fatalf("poison = %d, want 4", combat.Enemies[0].Poison)
	}
}

func TestInitCombatSpawnsAndStartsTurnOne(t *testing.T) {
	e := newTestEngine(11)
	gs := &game.GameState{
		Player: *newTestPlayer(),
	}
	gs.Player.Act = 1
	deck := e.Catalog().StarterDeck("warrior")
	gs.Player.Deck = deck

	e.InitCombat(gs, game.NodeMonster)

	if gs.Phase != game.PhaseCombat || gs.Combat == nil {
		t.Fatalf("phase = %v, want combat payload", gs.Phase)
	}
	if n := len(gs.Combat.Enemies); n < 1 || n > 2 {
		t.Fatalf("enemies = %d, want 1 or 2", n)
	}
	if len(gs.Player.Hand) != 5 {
		t.Fatalf("opening hand = %d, want 5", len(gs.Player.Hand))
	}
	if gs.Player.Energy != 3 {
		t.Fatalf("energy = %d, want 3", gs.Player.Energy)
	}
	for _, en := range gs.Combat.Enemies {
		if en.Intent == nil {
			t.Fatal("spawned enemy must telegraph an intent")
		}
	}
}

func TestScaleEnemiesAscensionFive(t *testing.T) {
	enemies := []game.Enemy{{
		HP: 100, MaxHP: 100,
		Intent: &game.Intent{Action: game.IntentAttack, Value: 10, Times: 1},
	}}
	scaleEnemies(enemies, 5)
	if enemies[0].HP != 130 || enemies[0].MaxHP != 130 {
		t.Fatalf("hp = %d/%d, want 130/130", enemies[0].HP, enemies[0].MaxHP)
	}
	if enemies[0].Intent.Value != 11 {
		t.Fatalf("intent value = %d, want 11", enemies[0].Intent.Value)
	}
}

func TestUsePotionFireDamageHitsEveryone(t *testing.T) {
	e := newTestEngine(9)
	p := newTestPlayer()
	fire, ok := e.Catalog().Potion("fire_potion")
	if !ok {
		t.Fatal("fire_potion missing from catalog")
	}
	p.Potions = []game.Potion{fire}
	enemies := []game.Enemy{
		{Name: "a", HP: 25, MaxHP: 25, Block: 5},
		{Name: "b", HP: 15, MaxHP: 15},
	}

	if _, err := e.UsePotion(p, enemies, 0, 0); err != nil {
		t.Fatalf("UsePotion: %v", err)
	}
	if enemies[0].HP != 10 || enemies[0].Block != 0 {
		t.Fatalf("enemy a hp=%d block=%d, want 10/0", enemies[0].HP, enemies[0].Block)
	}
	if enemies[1].HP != 0 {
		t.Fatalf("enemy b hp = %d, want 0", enemies[1].HP)
	}
	if len(p.Potions) != 0 {
		t.Fatalf("potions = %d, want slot freed", len(p.Potions))
	}
}

func TestUsePotionCombatOnlyOutsideCombat(t *testing.T) {
	e := newTestEngine(9)
	p := newTestPlayer()
	swift, ok := e.Catalog().Potion("swift_potion")
	if !ok {
		t.Fatal("swift_potion missing from catalog")
	}
	p.Potions = []game.Potion{swift}

	_, err := e.UsePotion(p, nil, 0, 0)
	if !game.IsKind(err, game.KindPreconditionFailed) {
		t.Fatalf("err = %v, want precondition_failed", err)
	}
	if len(p.Potions) != 1 {
		t.Fatalf("potions = %d, want potion kept on rejection", len(p.Potions))
	}
}

func TestUsePotionHealPercent(t *testing.T) {
	e := newTestEngine(9)
	p := newTestPlayer()
	p.HP = 30
	heal, ok := e.Catalog().Potion("health_potion")
	if !ok {
		t.Fatal("health_potion missing from catalog")
	}
	p.Potions = []game.Potion{heal}

	if _, err := e.UsePotion(p, nil, 0, 0); err != nil {
		t.Fatalf("UsePotion: %v", err)
	}
	if p.HP != 70 {
		t.Fatalf("hp = %d, want 70", p.HP)
	}
}
