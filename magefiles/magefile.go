//go:build mage

// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package main provides build targets for the catalog project using Mage.
//
// Usage:
//
//	mage build          Compile the catalog binary to bin/
//	mage test:all       Run all tests
//	mage test:race      Run all tests with the race detector
//	mage test:cover     Run all tests and write coverage.out
//	mage lint           Run golangci-lint
//	mage dev            Build and serve in the Development environment
//	mage clean          Remove build artifacts
//	mage install        Install catalog to GOPATH/bin
package main
