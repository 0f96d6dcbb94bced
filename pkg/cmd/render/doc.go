// Copyright 2024 The Templator Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package render implements the render command: it gathers template files,
resolves delimiter configuration, renders each file against the context
document, and hands the results to the selected output (stdout, file,
directory tree, zip archive, or bulk JSON).
*/
package render
