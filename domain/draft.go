package domain

// PlayerEntry is a raw roster row, before blank rows are dropped and identities are assigned.
type PlayerEntry struct {
	Name     string   `validate:"required,max=64"`
	Score    int      `validate:"score"`
	Category Category `validate:"oneof=A B"`
}

// DraftCommand asks for GroupCount groups of GroupSize participants.
type DraftCommand struct {
	Players    []PlayerEntry `validate:"dive"`
	GroupCount int           `validate:"gt=0"`
	GroupSize  int           `validate:"gt=0"`
}
