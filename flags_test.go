package main

import (
	"flag"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfigMatchesFlags(t *testing.T) {
	// no command line is parsed in tests, so every flag holds its default
	assert.Equal(t, DefaultConfig(), configFromFlags())

	tests := map[string]string{
		"addr":                ":8080",
		"cell-divisor":        "2000",
		"simplify-factor":     "1",
		"min-component-cells": "50",
		"walkway-layer":       "WALKWAY",
		"entrance-color":      "1",
		"route-snap-distance": "0",
	}
	for name, want := range tests {
		f := flag.Lookup(name)
		require.NotNil(t, f, name)
		assert.Equal(t, want, f.DefValue, name)
	}
}
