package cmd

// Positional exposes positional for tests.
var Positional = positional
