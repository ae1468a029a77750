// Package worldmap builds and advances the per-act node graph: a layered
// DAG of 3-4 nodes per floor with forward connections into the next
// floor and a single boss node capping the act.
package worldmap

import (
	"fmt"
	"math/rand"

	"github.com/jrient/text-game/internal/game"
)

type actConfig struct {
	floors int
}

var actConfigs = map[int]actConfig{
	1: {floors: 7},
	2: {floors: 7},
	3: {floors: 5},
}

type nodeWeight struct {
	nodeType game.NodeType
	label    string
	weight   int
}

var nodeWeights = []nodeWeight{
	{game.NodeMonster, "Combat", 45},
	{game.NodeElite, "Elite", 12},
	{game.NodeRest, "Rest Site", 12},
	{game.NodeShop, "Shop", 10},
	{game.NodeEvent, "Event", 16},
	{game.NodeTreasure, "Treasure", 5},
}

var nodeLabels = map[game.NodeType]string{
	game.NodeMonster:  "Combat",
	game.NodeElite:    "Elite",
	game.NodeRest:     "Rest Site",
	game.NodeShop:     "Shop",
	game.NodeEvent:    "Event",
	game.NodeTreasure: "Treasure",
	game.NodeBoss:     "Boss",
}

// Generate builds the map for one act. Every node beyond floor 0 is
// guaranteed at least one inbound connection, and all last-floor nodes
// connect to the synthetic boss node.
func Generate(act int, rng *rand.Rand) game.GameMap {
	cfg, ok := actConfigs[act]
	if !ok {
		cfg = actConfigs[1]
	}
	floors := cfg.floors

	byFloor := make([][]*game.MapNode, floors)
	for floor := 0; floor < floors; floor++ {
		n := 3 + rng.Intn(2)
		byFloor[floor] = make([]*game.MapNode, 0, n)
		for pos := 0; pos < n; pos++ {
			t := pickNodeType(floor, floors, rng)
			byFloor[floor] = append(byFloor[floor], &game.MapNode{
				ID:        fmt.Sprintf("%d_%d", floor, pos),
				Floor:     floor,
				Position:  pos,
				Type:      t,
				Label:     nodeLabels[t],
				Available: floor == 0,
			})
		}
	}

	// Forward connections, 1-2 per node.
	for floor := 0; floor < floors-1; floor++ {
		next := byFloor[floor+1]
		for _, node := range byFloor[floor] {
			n := 1 + rng.Intn(min(2, len(next)))
			for _, i := range rng.Perm(len(next))[:n] {
				node.Connections = append(node.Connections, next[i].ID)
			}
		}
	}

	// Repair pass: every next-floor node needs an inbound edge.
	for floor := 0; floor < floors-1; floor++ {
		current := byFloor[floor]
		reachable := make(map[string]bool)
		for _, node := range current {
			for _, id := range node.Connections {
				reachable[id] = true
			}
		}
		for _, next := range byFloor[floor+1] {
			if !reachable[next.ID] {
				from := current[rng.Intn(len(current))]
				from.Connections = append(from.Connections, next.ID)
			}
		}
	}

	nodes := make(map[string]*game.MapNode)
	for _, floorNodes := range byFloor {
		for _, node := range floorNodes {
			nodes[node.ID] = node
		}
	}

	boss := &game.MapNode{
		ID:    fmt.Sprintf("boss_%d", act),
		Floor: floors,
		Type:  game.NodeBoss,
		Label: nodeLabels[game.NodeBoss],
	}
	for _, node := range byFloor[floors-1] {
		node.Connections = append(node.Connections, boss.ID)
	}
	nodes[boss.ID] = boss

	available := make([]string, 0, len(byFloor[0]))
	for _, node := range byFloor[0] {
		available = append(available, node.ID)
	}

	return game.GameMap{
		Act:            act,
		Floors:         floors + 1,
		Nodes:          nodes,
		AvailableNodes: available,
	}
}

func pickNodeType(floor, totalFloors int, rng *rand.Rand) game.NodeType {
	if floor == 0 {
		return game.NodeMonster
	}
	if floor == totalFloors-1 {
		// No elites or treasure right before the boss.
		weights := []nodeWeight{
			{game.NodeMonster, "", 40},
			{game.NodeRest, "", 25},
			{game.NodeShop, "", 20},
			{game.NodeEvent, "", 15},
		}
		return weightedPick(weights, rng)
	}
	return weightedPick(nodeWeights, rng)
}

func weightedPick(weights []nodeWeight, rng *rand.Rand) game.NodeType {
	total := 0
	for _, w := range weights {
		total += w.weight
	}
	roll := rng.Intn(total)
	for _, w := range weights {
		roll -= w.weight
		if roll < 0 {
			return w.nodeType
		}
	}
	return weights[len(weights)-1].nodeType
}

// Advance marks the node visited, opens its unvisited successors and
// revokes availability of same-floor siblings. Returns the new
// available set.
func Advance(m *game.GameMap, visitedID string) []string {
	node, ok := m.Nodes[visitedID]
	if !ok {
		return m.AvailableNodes
	}

	node.Visited = true
	var opened []string
	for _, id := range node.Connections {
		if next, ok := m.Nodes[id]; ok && !next.Visited {
			next.Available = true
			opened = append(opened, id)
		}
	}

	updated := make([]string, 0, len(opened))
	for _, id := range m.AvailableNodes {
		if sibling, ok := m.Nodes[id]; ok && sibling.Floor != node.Floor {
			updated = append(updated, id)
		} else if ok {
			sibling.Available = false
		}
	}
	updated = append(updated, opened...)

	m.AvailableNodes = updated
	m.CurrentFloor = node.Floor + 1
	return updated
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
