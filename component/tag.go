package component

import "github.com/lixenwraith/baobei/core"

// PlayerComponent tags the controlled entity
type PlayerComponent struct{}

// CompanionComponent tags the request-making entity
type CompanionComponent struct{}

// KindComponent carries presentation classification
type KindComponent struct {
	Kind core.Kind
	Name string
}
