package classifier

import "math"

// TrainConfig tunes logistic regression fitting.
type TrainConfig struct {
	// C is the inverse L2 regularisation strength.
	C            float64
	MaxIter      int
	LearningRate float64
	Tolerance    float64
}

// DefaultC is light regularisation: on small intents files every training
// pattern must come back above a 0.25 confidence gate.
const DefaultC = 10.0

// DefaultTrainConfig is an L2 logistic regression with C=DefaultC.
func DefaultTrainConfig() TrainConfig {
	return TrainConfig{C: DefaultC, MaxIter: 2000, LearningRate: 1.0, Tolerance: 1e-6}
}

// logistic is a multinomial logistic regression over sparse inputs.
type logistic struct {
	classes    []string
	weights    [][]float64 // classes x features
	intercepts []float64
}

// fitLogistic minimises mean cross-entropy + ||W||^2 / (2Cn) by full-batch
// gradient descent. Inputs are l2-normalised, so a step of 1 is stable.
// Intercepts are not penalised.
func fitLogistic(x []SparseVector, y []int, classes []string, nFeatures int, cfg TrainConfig) *logistic {
	k := len(classes)
	n := float64(len(x))

	m := &logistic{
		classes:    classes,
		weights:    make([][]float64, k),
		intercepts: make([]float64, k),
	}
	gradW := make([][]float64, k)
	for c := 0; c < k; c++ {
		m.weights[c] = make([]float64, nFeatures)
		gradW[c] = make([]float64, nFeatures)
	}
	gradB := make([]float64, k)
	probs := make([]float64, k)

	reg := 0.0
	if cfg.C > 0 {
		reg = 1 / (cfg.C * n)
	}

	for iter := 0; iter < cfg.MaxIter; iter++ {
		for c := 0; c < k; c++ {
			for j := range gradW[c] {
				gradW[c][j] = reg * m.weights[c][j]
			}
			gradB[c] = 0
		}

		for i, xi := range x {
			m.probaInto(xi, probs)
			for c := 0; c < k; c++ {
				g := probs[c]
				if c == y[i] {
					g -= 1
				}
				g /= n
				gradB[c] += g
				for t, idx := range xi.Indices {
					gradW[c][idx] += g * xi.Values[t]
				}
			}
		}

		maxGrad := 0.0
		for c := 0; c < k; c++ {
			for j, g := range gradW[c] {
				m.weights[c][j] -= cfg.LearningRate * g
				maxGrad = math.Max(maxGrad, math.Abs(g))
			}
			m.intercepts[c] -= cfg.LearningRate * gradB[c]
			maxGrad = math.Max(maxGrad, math.Abs(gradB[c]))
		}
		if maxGrad < cfg.Tolerance {
			break
		}
	}

	return m
}

// probaInto writes the softmax class probabilities of x into out.
func (m *logistic) probaInto(x SparseVector, out []float64) {
	maxScore := math.Inf(-1)
	for c := range m.classes {
		s := m.intercepts[c]
		w := m.weights[c]
		for t, idx := range x.Indices {
			s += w[idx] * x.Values[t]
		}
		out[c] = s
		if s > maxScore {
			maxScore = s
		}
	}

	var sum float64
	for c := range out {
		out[c] = math.Exp(out[c] - maxScore)
		sum += out[c]
	}
	for c := range out {
		out[c] /= sum
	}
}
