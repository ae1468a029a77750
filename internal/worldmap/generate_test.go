package worldmap

import (
	"math/rand"
	"testing"

	"github.com/jrient/text-game/internal/game"
)

func TestGenerateEveryNodeReachable(t *testing.T) {
	for seed := int64(0); seed < 20; seed++ {
		rng := rand.New(rand.NewSource(seed))
		m := Generate(1, rng)

		inbound := make(map[string]int)
		for _, node := range m.Nodes {
			for _, id := range node.Connections {
				inbound[id]++
			}
		}
		for id, node := range m.Nodes {
			if node.Floor == 0 {
				continue
			}
			if inbound[id] == 0 {
				t.Fatalf("seed %d: node %s on floor %d has no inbound connection", seed, id, node.Floor)
			}
		}
	}
}

func TestGenerateFloorZeroIsMonstersOnly(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	m := Generate(1, rng)
	for _, node := range m.Nodes {
		if node.Floor == 0 && node.Type != game.NodeMonster {
			t.Fatalf("floor 0 node %s has type %s", node.ID, node.Type)
		}
		if node.Floor == 0 && !node.Available {
			t.Fatalf("floor 0 node %s not available at start", node.ID)
		}
	}
	if len(m.AvailableNodes) < 3 || len(m.AvailableNodes) > 4 {
		t.Fatalf("expected 3-4 starting nodes, got %d", len(m.AvailableNodes))
	}
}

func TestGenerateBossNodeCapsTheAct(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	m := Generate(2, rng)

	boss, ok := m.Nodes["boss_2"]
	if !ok {
		t.Fatal("boss node missing")
	}
	if boss.Type != game.NodeBoss {
		t.Fatalf("boss node has type %s", boss.Type)
	}
	for _, node := range m.Nodes {
		if node.Floor == m.Floors-2 {
			found := false
			for _, id := range node.Connections {
				if id == boss.ID {
					found = true
				}
			}
			if !found {
				t.Fatalf("last-floor node %s not connected to boss", node.ID)
			}
		}
	}
}

func TestAdvanceRemovesSiblings(t *testing.T) {
	rng := rand.New(rand.NewSource(9))
	m := Generate(1, rng)

	chosen := m.AvailableNodes[0]
	siblings := append([]string(nil), m.AvailableNodes[1:]...)

	available := Advance(&m, chosen)

	node := m.Nodes[chosen]
	if !node.Visited {
		t.Fatal("visited node not marked")
	}
	for _, sib := range siblings {
		for _, id := range available {
			if id == sib {
				t.Fatalf("sibling %s still available after choosing %s", sib, chosen)
			}
		}
		if m.Nodes[sib].Available {
			t.Fatalf("sibling %s still flagged available", sib)
		}
	}

	successors := make(map[string]bool)
	for _, id := range node.Connections {
		successors[id] = true
	}
	for _, id := range available {
		if !successors[id] {
			t.Fatalf("available node %s is not a successor of %s", id, chosen)
		}
	}
	if m.CurrentFloor != 1 {
		t.Fatalf("current floor = %d, want 1", m.CurrentFloor)
	}
}

func TestAdvanceUnknownNodeKeepsAvailability(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	m := Generate(1, rng)
	before := append([]string(nil), m.AvailableNodes...)

	after := Advance(&m, "no_such_node")
	if len(after) != len(before) {
		t.Fatalf("available set changed for unknown node: %v -> %v", before, after)
	}
}
