// SPDX-License-Identifier: MIT

// Package config defines the configuration descriptor consumed by the utilcss
// generator and the machinery around it: loading with precedence
// (ENV > file > defaults), strict YAML parsing, glob pattern syntax checks,
// design-token resolution, validation, diffing, atomic persistence and hot
// reload.
//
// The package never scans source files, extracts class names, emits CSS or
// executes plugins. It only produces the immutable descriptor the generator
// reads at the start of a run.
package config
