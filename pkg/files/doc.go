// Copyright 2024 The Templator Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package files provides primitives for enumerating and loading data from
various file or file-like Sources and for writing rendered output to
filesystem files, directory trees and zip archives.

This lets the rest of the code process logically chunked streams of data
without becoming entangled in the details of how to read or write data.
Files ending in .script are typed TypeScript; they are written executable
and may be post-processed by the scripts package.
*/
package files
