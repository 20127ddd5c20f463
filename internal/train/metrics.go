package train

import "gonum.org/v1/gonum/stat"

// Metrics accumulates per-step loss and correctness over a rolling
// window.
type Metrics struct {
	losses  []float64
	correct int
}

// Record adds one step's result to the window.
func (m *Metrics) Record(loss float64, correct bool) {
	m.losses = append(m.losses, loss)
	if correct {
		m.correct++
	}
}

// Steps returns the number of steps recorded since the last snapshot.
func (m *Metrics) Steps() int {
	return len(m.losses)
}

// Snapshot returns the window's mean loss and accuracy and resets it.
// An empty window snapshots to zeros.
func (m *Metrics) Snapshot() (meanLoss, accuracy float64) {
	if len(m.losses) == 0 {
		return 0, 0
	}

	meanLoss = stat.Mean(m.losses, nil)
	accuracy = float64(m.correct) / float64(len(m.losses))

	m.losses = m.losses[:0]
	m.correct = 0
	return meanLoss, accuracy
}
