// Package commands defines the vatcalc CLI and wires dependencies for subcommands.
//
// Commands
//
//   - keypad       Open the terminal keypad (default)
//   - prompt       Ask for one amount and operation in a form
//   - add          Add VAT to each amount argument
//   - remove       Remove VAT from each amount argument
//   - config init  Write an example configuration file
//
// # Implementation
//
// The root command loads the YAML configuration, builds a zap logger and the
// amount transformer before any subcommand runs, so handlers share one app
// context. Interactive commands keep logs off the terminal they draw on.
package commands
