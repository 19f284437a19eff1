// Package logging builds the zap logger used across prelint.
package logging
