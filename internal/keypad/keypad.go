package keypad

import (
	"errors"
	"fmt"

	"github.com/rpgo/vat-calculator/internal/calculation"
	"github.com/rpgo/vat-calculator/internal/domain"
)

// ClearKey empties the display
const ClearKey = "C"

// ErrUnknownKey is returned by Press for anything not on the keypad
var ErrUnknownKey = errors.New("unknown key")

// Layout lists the keypad rows top to bottom
var Layout = [][]string{
	{"7", "8", "9"},
	{"4", "5", "6"},
	{"1", "2", "3"},
	{ClearKey, "0", "."},
}

// IsKey reports whether key is on the keypad
func IsKey(key string) bool {
	for _, row := range Layout {
		for _, k := range row {
			if k == key {
				return true
			}
		}
	}
	return false
}

// Display is the calculator's single input field. It holds either what the
// user typed, a formatted result, or the message of the last rejected input.
type Display struct {
	text        string
	transformer *calculation.Transformer
}

// NewDisplay creates an empty display backed by t
func NewDisplay(t *calculation.Transformer) *Display {
	if t == nil {
		t = calculation.NewTransformer()
	}
	return &Display{transformer: t}
}

// Text returns the current field content
func (d *Display) Text() string { return d.text }

// Set replaces the field content
func (d *Display) Set(text string) { d.text = text }

// Press appends a digit or decimal point, or clears on ClearKey.
// No validation happens here; text after an error message is appended to it.
func (d *Display) Press(key string) error {
	if !IsKey(key) {
		return fmt.Errorf("%w: %q", ErrUnknownKey, key)
	}
	if key == ClearKey {
		d.Clear()
		return nil
	}
	d.text = Append(d.text, key)
	return nil
}

// Clear empties the field
func (d *Display) Clear() { d.text = "" }

// AddVAT replaces the field with its gross amount or an error message
func (d *Display) AddVAT() string { return d.Apply(domain.AddVAT) }

// RemoveVAT replaces the field with its net amount or an error message
func (d *Display) RemoveVAT() string { return d.Apply(domain.RemoveVAT) }

// Apply runs op over the field and replaces it with the outcome
func (d *Display) Apply(op domain.Operation) string {
	d.text = d.transformer.Apply(op, d.text)
	return d.text
}

// Append is the keypad's concatenation of a key onto the current text
func Append(current, key string) string {
	return current + key
}
