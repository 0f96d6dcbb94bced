// Copyright 2024 The Templator Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package ui provides a thin abstraction over user output (typically, a tty
device): rendered data on stdout, warnings and debug diagnostics on stderr.
*/
package ui
