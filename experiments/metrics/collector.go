package metrics

import (
	"othello/game"
	"time"
)

type SearchMetric struct {
	Depth    int
	Pruning  bool
	Duration time.Duration
	Nodes    int // Positions entered by the recursion, root children included
	Leaves   int // Static evaluations
	Cutoffs  int // Alpha-beta cutoffs
	Passes   int // Forced passes searched through
	Utility  int // Utility of the chosen move
}

type MoveMetric struct {
	Step   int
	Player int // game.White or game.Black
	Move   game.Move
	SearchMetric
}

type GameMetric struct {
	StartingPlayer int
	Winner         int // game.Empty on a draw
	WhiteDiscs     int
	BlackDiscs     int
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
	TotalMoves     int
	Passes         int
}

// AgentConfig describes one contestant of an experiment.
type AgentConfig struct {
	ID         int    `yaml:"id" mapstructure:"id"`
	Kind       string `yaml:"kind" mapstructure:"kind"` // "alphabeta", "random" or "remote"
	Depth      int    `yaml:"depth" mapstructure:"depth"`
	Evaluation string `yaml:"evaluation,omitempty" mapstructure:"evaluation"`
	NoPruning  bool   `yaml:"no_pruning,omitempty" mapstructure:"no_pruning"`
	Seed       uint64 `yaml:"seed,omitempty" mapstructure:"seed"`
	URL        string `yaml:"url,omitempty" mapstructure:"url"`
}

type Collector interface {
	Start(depth int, pruning bool)
	AddNode()
	AddLeaf()
	AddCutoff()
	AddPass()
	Complete() SearchMetric
}

// collector is owned by a single search; searches never run concurrently on it.
type collector struct {
	depth     int
	pruning   bool
	startTime time.Time
	nodes     int
	leaves    int
	cutoffs   int
	passes    int
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(depth int, pruning bool) {
	*m = collector{
		depth:     depth,
		pruning:   pruning,
		startTime: time.Now(),
	}
}

func (m *collector) AddNode() {
	m.nodes++
}

func (m *collector) AddLeaf() {
	m.leaves++
}

func (m *collector) AddCutoff() {
	m.cutoffs++
}

func (m *collector) AddPass() {
	m.passes++
}

func (m *collector) Complete() SearchMetric {
	return SearchMetric{
		Depth:    m.depth,
		Pruning:  m.pruning,
		Duration: time.Since(m.startTime),
		Nodes:    m.nodes,
		Leaves:   m.leaves,
		Cutoffs:  m.cutoffs,
		Passes:   m.passes,
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(depth int, pruning bool) {}
func (m *dummyCollector) AddNode()                      {}
func (m *dummyCollector) AddLeaf()                      {}
func (m *dummyCollector) AddCutoff()                    {}
func (m *dummyCollector) AddPass()                      {}
func (m *dummyCollector) Complete() SearchMetric        { return SearchMetric{} }
