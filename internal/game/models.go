package game

// Phase is the top-level state of a session. Exactly one of the optional
// GameState payloads (Combat, Shop, Event, CardRewards, BossRelicChoices)
// is populated, matching the phase.
type Phase string

const (
	PhaseMap        Phase = "map"
	PhaseCombat     Phase = "combat"
	PhaseRest       Phase = "rest"
	PhaseShop       Phase = "shop"
	PhaseEvent      Phase = "event"
	PhaseCardReward Phase = "card_reward"
	PhaseBossRelic  Phase = "boss_relic"
	PhaseGameOver   Phase = "game_over"
	PhaseVictory    Phase = "victory"
)

// Terminal reports whether the phase accepts no further actions.
func (p Phase) Terminal() bool { return p == PhaseGameOver || p == PhaseVictory }

// CardType classifies a card for counters and relic triggers.
type CardType string

const (
	CardAttack CardType = "attack"
	CardSkill  CardType = "skill"
	CardPower  CardType = "power"
	CardCurse  CardType = "curse"
	CardStatus CardType = "status"
)

// CostX marks cards with no meaningful integer cost (curses, unplayables).
const CostX = -1

// Card is a value copy of a catalog template. Instances are never shared:
// upgrading one copy must not touch its siblings or the template.
type Card struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Cost        int      `json:"cost"`
	Type        CardType `json:"type"`
	Character   string   `json:"character"`
	Rarity      string   `json:"rarity"`

	Damage          int `json:"damage"`
	Block           int `json:"block"`
	Draw            int `json:"draw"`
	Hits            int `json:"hits"`
	EnergyGain      int `json:"energy_gain"`
	Heal            int `json:"heal"`
	StrengthGain    int `json:"strength_gain"`
	DexterityGain   int `json:"dexterity_gain"`
	WeakTurns       int `json:"weak_turns"`
	VulnerableTurns int `json:"vulnerable_turns"`
	PoisonStacks    int `json:"poison_stacks"`

	Exhaust    bool `json:"exhaust"`
	Ethereal   bool `json:"ethereal"`
	Innate     bool `json:"innate"`
	Unplayable bool `json:"unplayable"`
	Retain     bool `json:"retain"`
	ApplyToAll bool `json:"apply_to_all"`
	Upgraded   bool `json:"upgraded"`
}

// Relic is the display form of an owned relic. The catalog is the source
// of truth for what a relic does; the owned list stores id + display only.
type Relic struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Rarity      string `json:"rarity"`
}

// Potion occupies one of the three potion slots.
type Potion struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Rarity      string `json:"rarity"`
	Effect      string `json:"effect"`
	Value       int    `json:"value"`
	Price       int    `json:"price,omitempty"`
}

// IntentAction is the kind of move an enemy has telegraphed.
type IntentAction string

const (
	IntentAttack  IntentAction = "attack"
	IntentBlock   IntentAction = "block"
	IntentBuff    IntentAction = "buff"
	IntentDebuff  IntentAction = "debuff"
	IntentSpecial IntentAction = "special"
)

// Intent is an enemy's telegraphed next action. Value is the base
// magnitude; the combat resolver applies live strength, weak and
// vulnerable modifiers at execution time, so the displayed number is a
// preview and may differ from the damage actually dealt.
type Intent struct {
	Action      IntentAction `json:"action"`
	Value       int          `json:"value"`
	Times       int          `json:"times"`
	Description string       `json:"description"`
	Status      string       `json:"status,omitempty"`
}

// Enemy exists only for the duration of one combat.
type Enemy struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	HP    int    `json:"hp"`
	MaxHP int    `json:"max_hp"`
	Block int    `json:"block"`

	Strength  int `json:"strength"`
	Dexterity int `json:"dexterity"`

	Poison          int `json:"poison"`
	WeakTurns       int `json:"weak_turns"`
	VulnerableTurns int `json:"vulnerable_turns"`

	MoveHistory []string `json:"move_history"`
	Intent      *Intent  `json:"intent"`

	IsBoss  bool `json:"is_boss"`
	IsElite bool `json:"is_elite"`
}

// Alive reports whether the enemy still acts this combat.
func (e *Enemy) Alive() bool { return e.HP > 0 }

// TurnCounters holds the transient per-turn and per-combat bookkeeping
// that relic thresholds read. Reset points: per-turn fields at the start
// of every player turn, per-combat fields when a combat ends.
type TurnCounters struct {
	CardsThisTurn   int  `json:"cards_this_turn"`
	AttacksThisTurn int  `json:"attacks_this_turn"`
	SkillsThisTurn  int  `json:"skills_this_turn"`
	PuzzleTriggered bool `json:"puzzle_triggered"`
	FlexDown        int  `json:"flex_down"`

	CombatTurn  int  `json:"combat_turn"`
	SavedEnergy int  `json:"saved_energy"`
	LanternUsed bool `json:"lantern_used"`
	HornCleat   bool `json:"horn_cleat"`
	FlowerCount int  `json:"flower_count"`

	// Run-scoped relic counters (not reset between combats).
	NunchakuCount int  `json:"nunchaku_count"`
	InkCount      int  `json:"ink_count"`
	MawBankSpent  bool `json:"maw_bank_spent"`
}

// ResetTurn clears the counters that scope to a single player turn.
func (c *TurnCounters) ResetTurn() {
	c.CardsThisTurn = 0
	c.AttacksThisTurn = 0
	c.SkillsThisTurn = 0
	c.PuzzleTriggered = false
	c.FlexDown = 0
}

// ResetCombat clears the counters that scope to a single combat.
func (c *TurnCounters) ResetCombat() {
	c.ResetTurn()
	c.CombatTurn = 0
	c.SavedEnergy = 0
	c.LanternUsed = false
	c.HornCleat = false
	c.FlowerCount = 0
}

// OrbKind is a channeled elemental resource of the mage archetype.
type OrbKind string

const (
	OrbLightning OrbKind = "lightning"
	OrbFrost     OrbKind = "frost"
	OrbPlasma    OrbKind = "plasma"
)

// Player is the persistent run state. Outside combat the four pile slices
// are empty; Deck is the only permanent card store.
type Player struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Character     string `json:"character"`
	CharacterName string `json:"character_name"`

	HP    int `json:"hp"`
	MaxHP int `json:"max_hp"`

	Strength  int `json:"strength"`
	Dexterity int `json:"dexterity"`
	Energy    int `json:"energy"`
	MaxEnergy int `json:"max_energy"`

	BaseBlock        int `json:"base_block"`
	CharAttackBonus  int `json:"char_attack_bonus"`
	CharDefenseBonus int `json:"char_defense_bonus"`
	BonusDraw        int `json:"bonus_draw"`

	Block           int `json:"block"`
	WeakTurns       int `json:"weak_turns"`
	VulnerableTurns int `json:"vulnerable_turns"`

	Deck        []Card `json:"deck"`
	DrawPile    []Card `json:"draw_pile"`
	Hand        []Card `json:"hand"`
	DiscardPile []Card `json:"discard_pile"`
	ExhaustPile []Card `json:"exhaust_pile"`

	Gold    int      `json:"gold"`
	Relics  []Relic  `json:"relics"`
	Potions []Potion `json:"potions"`

	Orbs     []OrbKind `json:"orbs"`
	OrbSlots int       `json:"orb_slots"`

	MetallicizeStacks int `json:"metallicize_stacks"`

	Floor int `json:"floor"`
	Act   int `json:"act"`

	Kills       int `json:"kills"`
	Turns       int `json:"turns"`
	CardsPlayed int `json:"cards_played"`
	DamageDealt int `json:"damage_dealt"`
	DamageTaken int `json:"damage_taken"`
	GoldEarned  int `json:"gold_earned"`

	Counters TurnCounters `json:"counters"`
}

// HasRelic reports whether the player owns the relic with the given id.
func (p *Player) HasRelic(id string) bool {
	for i := range p.Relics {
		if p.Relics[i].ID == id {
			return true
		}
	}
	return false
}

// Heal raises HP by amount, clamped to MaxHP, and returns the amount
// actually restored.
func (p *Player) Heal(amount int) int {
	if amount <= 0 {
		return 0
	}
	before := p.HP
	p.HP += amount
	if p.HP > p.MaxHP {
		p.HP = p.MaxHP
	}
	return p.HP - before
}

// AliveEnemies filters the slice down to enemies that still act.
func AliveEnemies(enemies []Enemy) []Enemy {
	alive := make([]Enemy, 0, len(enemies))
	for _, e := range enemies {
		if e.Alive() {
			alive = append(alive, e)
		}
	}
	return alive
}

// NodeType classifies a map node.
type NodeType string

const (
	NodeMonster  NodeType = "monster"
	NodeElite    NodeType = "elite"
	NodeRest     NodeType = "rest"
	NodeShop     NodeType = "shop"
	NodeEvent    NodeType = "event"
	NodeTreasure NodeType = "treasure"
	NodeBoss     NodeType = "boss"
)

// MapNode is one node of the act map.
type MapNode struct {
	ID          string   `json:"id"`
	Floor       int      `json:"floor"`
	Position    int      `json:"position"`
	Type        NodeType `json:"type"`
	Label       string   `json:"label"`
	Visited     bool     `json:"visited"`
	Connections []string `json:"connections"`
	Available   bool     `json:"available"`
}

// GameMap is the layered node graph for one act.
type GameMap struct {
	Act            int                 `json:"act"`
	Floors         int                 `json:"floors"`
	Nodes          map[string]*MapNode `json:"nodes"`
	CurrentFloor   int                 `json:"current_floor"`
	AvailableNodes []string            `json:"available_nodes"`
}

// Combat is the active-combat payload of a session.
type Combat struct {
	Enemies  []Enemy  `json:"enemies"`
	Turn     int      `json:"turn"`
	NodeType NodeType `json:"node_type"`
	Log      []string `json:"log"`
}

// Shop is the shop payload of a session.
type Shop struct {
	Cards       []Card         `json:"cards"`
	Relics      []Relic        `json:"relics"`
	Potions     []Potion       `json:"potions"`
	CardPrices  map[string]int `json:"card_prices"`
	RelicPrices map[string]int `json:"relic_prices"`
	RemovePrice int            `json:"remove_price"`
	HealPrice   int            `json:"heal_price"`
	HealAmount  int            `json:"heal_amount"`
}

// EventChoice is one selectable option of a scripted event.
type EventChoice struct {
	Text        string `json:"text"`
	Effect      string `json:"effect"`
	Description string `json:"description"`
	Gold        int    `json:"gold,omitempty"`
	HP          int    `json:"hp,omitempty"`
	Strength    int    `json:"strength,omitempty"`
	Value       int    `json:"value,omitempty"`
}

// Event is the scripted-event payload of a session.
type Event struct {
	ID          string        `json:"id"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Choices     []EventChoice `json:"choices"`
}

// FinalStats is the frozen end-of-run snapshot, computed once when the
// session reaches game_over or victory.
type FinalStats struct {
	Floor       int    `json:"floor"`
	Kills       int    `json:"kills"`
	Turns       int    `json:"turns"`
	CardsPlayed int    `json:"cards_played"`
	DamageDealt int    `json:"damage_dealt"`
	DamageTaken int    `json:"damage_taken"`
	GoldEarned  int    `json:"gold_earned"`
	RelicCount  int    `json:"relics_count"`
	DeckSize    int    `json:"deck_size"`
	Ascension   int    `json:"ascension"`
	Character   string `json:"character"`
}

// GameState is the session root. It serializes to a single JSON blob; the
// store round-trips it without interpreting anything beyond the indexed
// header columns.
type GameState struct {
	GameID string  `json:"game_id"`
	Phase  Phase   `json:"phase"`
	Player Player  `json:"player"`
	Map    GameMap `json:"map"`

	Combat           *Combat     `json:"combat,omitempty"`
	Shop             *Shop       `json:"shop,omitempty"`
	Event            *Event      `json:"event,omitempty"`
	CardRewards      []Card      `json:"card_rewards,omitempty"`
	BossRelicChoices []Relic     `json:"boss_relic_choices,omitempty"`
	FinalStats       *FinalStats `json:"final_stats,omitempty"`

	NextAct   int    `json:"next_act,omitempty"`
	Ascension int    `json:"ascension"`
	Message   string `json:"message"`
	Turn      int    `json:"turn"`
}
