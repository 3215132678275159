// Package ui provides theme and color support for the mpcalc command-line
// output. It defines color schemes and provides ANSI escape code functions
// for consistent styling across the presentation layer.
//
// This package is designed to be a shared dependency for packages that need
// color output, reducing coupling between business logic and presentation.
package ui
