// Package template defines the engine contract used to render field chrome
// (labels, descriptions, error lists) around control markup.
package template
