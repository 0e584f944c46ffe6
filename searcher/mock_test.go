package searcher

import "othello/game"

// mockNode is a hand-built game tree. Leaves carry the utility returned by mockEvaluate.
type mockNode struct {
	value    int
	children []*mockNode
	terminal bool
	passTo   *mockNode
	visits   int
}

func leaf(value int) *mockNode {
	return &mockNode{value: value}
}

func branch(children ...*mockNode) *mockNode {
	return &mockNode{children: children}
}

type mockState struct {
	node   *mockNode
	player int
}

func (m *mockState) Player() int {
	return m.player
}

func (m *mockState) LegalMoves() []game.Move {
	moves := make([]game.Move, len(m.node.children))
	for i := range m.node.children {
		moves[i] = game.Move{Row: 0, Col: i}
	}
	return moves
}

func (m *mockState) Play(move game.Move) {
	m.node = m.node.children[move.Col]
	m.node.visits++
	m.player = game.Opponent(m.player)
}

func (m *mockState) Pass() {
	if m.node.passTo != nil {
		m.node = m.node.passTo
	}
	m.player = game.Opponent(m.player)
}

func (m *mockState) GameOver() bool {
	return m.node.terminal
}

func (m *mockState) Contents(row, col int) int {
	return game.Empty
}

func (m *mockState) Copy() game.State {
	c := *m
	return &c
}

func mockEvaluate(s game.State) int {
	return s.(*mockState).node.value
}
