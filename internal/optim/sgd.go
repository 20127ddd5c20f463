package optim

import (
	"gonum.org/v1/gonum/floats"

	"github.com/sprout-ml/sprout/internal/nn"
	"github.com/sprout-ml/sprout/internal/tensor"
)

// SGD implements stochastic gradient descent with optional momentum.
//
// Update rule without momentum:
//
//	param = param - lr * gradient
//
// Update rule with momentum:
//
//	velocity = momentum * velocity + gradient
//	param = param - lr * velocity
//
// Plain SGD (momentum 0) is the update rule of the digit exercise.
//
// Example:
//
//	optimizer := optim.NewSGD(model.Parameters(), optim.SGDConfig{
//	    LR: 0.005,
//	})
type SGD struct {
	params     []*nn.Parameter
	lr         float64
	momentum   float64
	velocities map[*nn.Parameter]*tensor.Tensor
}

// SGDConfig holds configuration for the SGD optimizer.
type SGDConfig struct {
	LR       float64 // Learning rate (default: 0.01)
	Momentum float64 // Momentum factor (default: 0.0, range: [0, 1))
}

// NewSGD creates a new SGD optimizer bound to the given parameters.
func NewSGD(params []*nn.Parameter, config SGDConfig) *SGD {
	if config.LR == 0 {
		config.LR = 0.01
	}

	return &SGD{
		params:     params,
		lr:         config.LR,
		momentum:   config.Momentum,
		velocities: make(map[*nn.Parameter]*tensor.Tensor),
	}
}

// Step performs a single optimization step over all bound parameters.
func (s *SGD) Step() {
	for _, param := range s.params {
		grad := param.Grad().Data()

		if s.momentum == 0 {
			floats.AddScaled(param.Tensor().Data(), -s.lr, grad)
			continue
		}

		velocity, exists := s.velocities[param]
		if !exists {
			velocity = tensor.New(param.Tensor().Shape())
			s.velocities[param] = velocity
		}

		// velocity = momentum * velocity + grad
		v := velocity.Data()
		floats.Scale(s.momentum, v)
		floats.Add(v, grad)

		floats.AddScaled(param.Tensor().Data(), -s.lr, v)
	}
}

// ZeroGrad clears gradients for all bound parameters.
func (s *SGD) ZeroGrad() {
	zeroGrads(s.params)
}

// GetLR returns the current learning rate.
func (s *SGD) GetLR() float64 {
	return s.lr
}

// SetLR updates the learning rate.
//
// Useful for learning rate scheduling during training.
func (s *SGD) SetLR(lr float64) {
	s.lr = lr
}
