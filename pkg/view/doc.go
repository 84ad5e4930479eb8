// Package view holds the low-level markup helpers shared by every field
// variant: placeholder substitution for control templates, attribute value
// escaping and an ordered attribute builder.
package view
