package core

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Move is a request from a move source. Quit marks an explicit end-game request
// and carries no coordinate.
type Move struct {
	Row  int  `validate:"min=0,max=7"`
	Col  int  `validate:"min=0,max=7"`
	Side Side `validate:"oneof=1 2"`
	Quit bool
}

func (m Move) String() string {
	if m.Quit {
		return "exit"
	}
	return fmt.Sprintf("%d %d", m.Row, m.Col)
}

// ValidateRange checks the coordinate and side fields
func (m Move) ValidateRange() error {
	if err := validate.Struct(m); err != nil {
		return fmt.Errorf("%w: row %d, col %d", ErrInvalidCoordinate, m.Row, m.Col)
	}
	return nil
}
