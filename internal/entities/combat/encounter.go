package combat

// Encounter defaults
const (
	DefaultEnemyLevel        = 90
	DefaultEnemyCount        = 3
	DefaultToughness         = 120
	DefaultEnemySpeed        = 120
	DefaultEnemyHP           = 500000
	DefaultRounds            = 5
	DefaultArcherSPThreshold = 2
	DefaultDamagePerHit      = 100
	DefaultAttacksPerRound   = 3
)

// EncounterParams describes the enemy group and the time budget
type EncounterParams struct {
	EnemyLevel        int     `json:"enemyLevel"`
	EnemyCount        int     `json:"enemyCount"`
	Toughness         float64 `json:"toughness"`
	Speed             float64 `json:"speed"`
	HP                float64 `json:"hp"`
	Elite             bool    `json:"elite"`
	Rounds            int     `json:"rounds"`
	ArcherSPThreshold int     `json:"archerSpThreshold"`
	DamagePerHit      float64 `json:"damagePerHit"`
	AttacksPerRound   int     `json:"attacksPerRound"`
}

// DefaultEncounter is a single elite group at level 90
func DefaultEncounter() EncounterParams {
	return EncounterParams{
		EnemyLevel:        DefaultEnemyLevel,
		EnemyCount:        DefaultEnemyCount,
		Toughness:         DefaultToughness,
		Speed:             DefaultEnemySpeed,
		HP:                DefaultEnemyHP,
		Elite:             true,
		Rounds:            DefaultRounds,
		ArcherSPThreshold: DefaultArcherSPThreshold,
		DamagePerHit:      DefaultDamagePerHit,
		AttacksPerRound:   DefaultAttacksPerRound,
	}
}

// WithDefaults fills zero-valued fields from DefaultEncounter. Elite and
// the SP threshold are taken as given.
func (p EncounterParams) WithDefaults() EncounterParams {
	d := DefaultEncounter()
	if p.EnemyLevel <= 0 {
		p.EnemyLevel = d.EnemyLevel
	}
	if p.EnemyCount <= 0 {
		p.EnemyCount = d.EnemyCount
	}
	if p.Toughness <= 0 {
		p.Toughness = d.Toughness
	}
	if p.Speed <= 0 {
		p.Speed = d.Speed
	}
	if p.HP <= 0 {
		p.HP = d.HP
	}
	if p.Rounds <= 0 {
		p.Rounds = d.Rounds
	}
	if p.DamagePerHit < 0 {
		p.DamagePerHit = 0
	}
	if p.AttacksPerRound < 0 {
		p.AttacksPerRound = 0
	}
	return p
}

// TimeBudget is the number of ticks a run lasts: 150 for the first
// round and 100 for every round after it.
func (p EncounterParams) TimeBudget() int {
	rounds := p.Rounds
	if rounds < 1 {
		rounds = 1
	}
	return 150 + (rounds-1)*100
}
