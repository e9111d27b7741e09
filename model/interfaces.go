package model

// PolicyStore is the narrow store surface the policy consumers need, kept here
// to avoid circular dependencies between bot, handlers and the database layer.
type PolicyStore interface {
	Policy() PolicyConfig
	Update(mutate func(*PolicyConfig)) error
}
