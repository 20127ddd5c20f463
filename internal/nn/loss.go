package nn

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/sprout-ml/sprout/internal/tensor"
)

// NLLLoss computes the negative log-likelihood of the true class over
// softmax probabilities.
//
// Loss = -log(probs[label])
//
// The gradient with respect to the probabilities is zero everywhere
// except at the true label, where it is -1/probs[label]: the other
// entries do not appear in the loss term, so their partials vanish.
// Feeding that vector into Softmax.Backward yields the usual
// cross-entropy error signal.
//
// Example:
//
//	loss := nn.NewNLLLoss()
//	probs := softmax.Forward(logits)
//	l := loss.Loss(probs, label)
//	grad := loss.Grad(probs, label)
type NLLLoss struct{}

// NewNLLLoss creates a new negative log-likelihood loss.
func NewNLLLoss() *NLLLoss {
	return &NLLLoss{}
}

// Loss returns -log(probs[label]).
func (n *NLLLoss) Loss(probs *tensor.Tensor, label int) float64 {
	n.validate(probs, label)
	return -math.Log(probs.At(label, 0))
}

// Grad returns the loss gradient with respect to the probabilities: a
// zero column vector with -1/probs[label] at the true label.
func (n *NLLLoss) Grad(probs *tensor.Tensor, label int) *tensor.Tensor {
	n.validate(probs, label)
	grad := tensor.New(probs.Shape())
	grad.Set(-1/probs.At(label, 0), label, 0)
	return grad
}

func (n *NLLLoss) validate(probs *tensor.Tensor, label int) {
	shape := probs.Shape()
	if len(shape) != 2 || shape[1] != 1 {
		panic(fmt.Sprintf("nll: expected probability column [n,1], got shape %v", shape))
	}
	if label < 0 || label >= shape[0] {
		panic(fmt.Sprintf("nll: label %d out of range for %d classes", label, shape[0]))
	}
}

// Argmax returns the index of the largest element. Ties go to the
// first occurrence.
func Argmax(t *tensor.Tensor) int {
	return floats.MaxIdx(t.Data())
}
