//go:build tools
// +build tools

// Package tools pins the developer tools used by the build and CI scripts.
package tools

import (
	_ "github.com/golangci/golangci-lint/v2/cmd/golangci-lint"
	_ "gotest.tools/gotestsum"
)
