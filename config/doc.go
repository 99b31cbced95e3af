// SPDX-License-Identifier: MIT

// Package config holds the run configuration of peernet.
//
// Precedence: environment (PEERNET_*) > YAML file > Default(). A missing
// file is not an error; a present but unparsable one is. The merged value
// is checked with go-playground/validator before it is returned.
package config
