// Package config loads form and field definitions from JSON or YAML files and
// builds hosted forms from them through a fields.Registry.
package config
