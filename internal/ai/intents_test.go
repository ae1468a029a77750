package ai

import (
	"math/rand"
	"testing"

	"github.com/jrient/text-game/internal/game"
)

func TestCultistOpensWithRitual(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	e := &game.Enemy{ID: "cultist"}

	intent := Next(e, rng)
	if intent.Action != game.IntentBuff || intent.Value != 3 {
		t.Fatalf("first move = %+v, want buff 3", intent)
	}

	e.MoveHistory = append(e.MoveHistory, string(intent.Action))
	e.Strength = 3
	intent = Next(e, rng)
	if intent.Action != game.IntentAttack || intent.Value != 9 {
		t.Fatalf("second move = %+v, want attack 9 (6 + strength 3)", intent)
	}
}

func TestGuardianCyclesFixedPattern(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	e := &game.Enemy{ID: "the_guardian", IsBoss: true}

	wantActions := []game.IntentAction{
		game.IntentAttack, game.IntentBlock, game.IntentAttack, game.IntentAttack,
		game.IntentAttack, game.IntentBlock, game.IntentAttack, game.IntentAttack,
	}
	for i, want := range wantActions {
		intent := Next(e, rng)
		if intent.Action != want {
			t.Fatalf("move %d action = %s, want %s", i, intent.Action, want)
		}
		e.MoveHistory = append(e.MoveHistory, string(intent.Action))
	}
}

func TestLagavulinSleepsThreeTurns(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	e := &game.Enemy{ID: "lagavulin", IsElite: true}

	for i := 0; i < 3; i++ {
		intent := Next(e, rng)
		if intent.Action != game.IntentSpecial {
			t.Fatalf("move %d: lagavulin acted while asleep: %+v", i, intent)
		}
		e.MoveHistory = append(e.MoveHistory, string(intent.Action))
	}
	intent := Next(e, rng)
	if intent.Action != game.IntentBuff {
		t.Fatalf("wake move = %+v, want buff", intent)
	}
}

func TestCorruptHeartInvulnerabilityWindow(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	e := &game.Enemy{ID: "corrupt_heart", IsBoss: true}

	for i := 0; i < 4; i++ {
		intent := Next(e, rng)
		if intent.Action != game.IntentSpecial || intent.Status != "" {
			t.Fatalf("move %d = %+v, want idle special", i, intent)
		}
		e.MoveHistory = append(e.MoveHistory, string(intent.Action))
	}
	intent := Next(e, rng)
	if intent.Action != game.IntentSpecial || intent.Status != "heal" {
		t.Fatalf("move 4 = %+v, want heal special", intent)
	}
}

func TestNextIsReproducibleUnderSeed(t *testing.T) {
	for _, id := range []string{"jaw_worm", "red_louse", "acid_slime_m", "gremlin_nob"} {
		a := rand.New(rand.NewSource(42))
		b := rand.New(rand.NewSource(42))
		ea := &game.Enemy{ID: id, MoveHistory: []string{"attack"}}
		eb := &game.Enemy{ID: id, MoveHistory: []string{"attack"}}
		for i := 0; i < 10; i++ {
			ia, ib := Next(ea, a), Next(eb, b)
			if ia != ib {
				t.Fatalf("%s diverged at step %d: %+v vs %+v", id, i, ia, ib)
			}
		}
	}
}

func TestUnknownArchetypeFallsBackToAttack(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	intent := Next(&game.Enemy{ID: "no_such_enemy"}, rng)
	if intent.Action != game.IntentAttack || intent.Value < 6 || intent.Value > 12 {
		t.Fatalf("fallback intent = %+v", intent)
	}
}

func TestSpawnPoolsMatchActAndClass(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	for i := 0; i < 20; i++ {
		boss := Spawn(3, game.NodeBoss, rng)
		if boss.ID != "corrupt_heart" || !boss.IsBoss {
			t.Fatalf("act 3 boss = %+v", boss)
		}
		elite := Spawn(1, game.NodeElite, rng)
		if !elite.IsElite {
			t.Fatalf("act 1 elite spawn not elite: %+v", elite)
		}
		normal := Spawn(1, game.NodeMonster, rng)
		if normal.IsBoss {
			t.Fatalf("act 1 monster spawn is a boss: %+v", normal)
		}
		if normal.HP <= 0 || normal.HP != normal.MaxHP || normal.Intent == nil {
			t.Fatalf("spawned enemy malformed: %+v", normal)
		}
	}
}
