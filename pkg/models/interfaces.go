package models

// Model is implemented by all persisted resources.
type Model interface {
	Self() string // Human readable name of the resource type
}

// Registry lists all models in the order in which they can be
// deleted without violating foreign keys.
//
// It is maintained so that operations that affect all models do not need to explicitly iterate over every single model,
// increasing the risk of forgetting something when adding a new model
var Registry = []Model{
	Choice{},
	Participant{},
	LifestyleOption{},
	Profession{},
	TaxBracket{},
}
