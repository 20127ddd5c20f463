// Package optim implements optimization algorithms for training neural
// networks.
//
// This package provides:
//   - Optimizer interface: base interface for all optimizers
//   - SGD: stochastic gradient descent with optional momentum
//   - Adam: adaptive moment estimation
//
// Optimizers bind a parameter list at construction. Layers accumulate
// gradients into each Parameter during the backward pass; Step then
// applies the update rule, keeping gradient computation and update
// policy separate so the policy is swappable.
//
// Example usage:
//
//	optimizer := optim.NewSGD(model.Parameters(), optim.SGDConfig{
//	    LR: 0.005,
//	})
//
//	for each sample {
//	    probs := model.Forward(image)
//	    model.Backward(loss.Grad(probs, label))
//	    optimizer.Step()
//	    optimizer.ZeroGrad()
//	}
package optim

import (
	"github.com/sprout-ml/sprout/internal/nn"
)

// Optimizer is the base interface for all optimization algorithms.
//
// All optimizers must implement:
//   - Step: apply the update rule to the bound parameters
//   - ZeroGrad: clear accumulated gradients before the next sample
//   - GetLR: get the current learning rate (for monitoring/scheduling)
type Optimizer interface {
	// Step applies one update to every bound parameter from its
	// accumulated gradient.
	Step()

	// ZeroGrad clears all bound parameters' gradients.
	//
	// Called after each Step so gradients from unrelated samples do
	// not accumulate.
	ZeroGrad()

	// GetLR returns the current learning rate.
	GetLR() float64
}

// zeroGrads clears the gradients of all given parameters.
func zeroGrads(params []*nn.Parameter) {
	for _, param := range params {
		param.ZeroGrad()
	}
}
