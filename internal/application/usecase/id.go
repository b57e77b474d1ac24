package usecase

// IDGenerator is a function type for generating unique IDs.
type IDGenerator func() string
