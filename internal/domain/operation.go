package domain

import (
	"fmt"
	"strings"
)

// Operation selects which direction the VAT is applied in
type Operation int

const (
	// AddVAT turns a net amount into a gross amount
	AddVAT Operation = iota
	// RemoveVAT turns a gross amount into a net amount
	RemoveVAT
)

var operationAliases = map[string]Operation{
	"add":    AddVAT,
	"+":      AddVAT,
	"gross":  AddVAT,
	"remove": RemoveVAT,
	"-":      RemoveVAT,
	"net":    RemoveVAT,
}

// ParseOperation resolves an operation name or alias, case-insensitively
func ParseOperation(s string) (Operation, error) {
	if op, ok := operationAliases[strings.ToLower(strings.TrimSpace(s))]; ok {
		return op, nil
	}
	return 0, fmt.Errorf("unknown operation %q (want add or remove)", s)
}

func (o Operation) String() string {
	if o == RemoveVAT {
		return "remove"
	}
	return "add"
}

// Label is the button caption for the operation
func (o Operation) Label() string {
	if o == RemoveVAT {
		return "Remove VAT"
	}
	return "Add VAT"
}

// Subject names the amount the operation consumes: a net amount for AddVAT, gross for RemoveVAT
func (o Operation) Subject() string {
	if o == RemoveVAT {
		return "Gross"
	}
	return "Net"
}

func (o Operation) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

func (o *Operation) UnmarshalText(text []byte) error {
	op, err := ParseOperation(string(text))
	if err != nil {
		return err
	}
	*o = op
	return nil
}
