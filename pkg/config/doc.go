// Copyright 2024 The Templator Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package config resolves the delimiter configuration for a render from its
optional sources: explicit CLI flags, a side configuration document, and a
config block embedded in the context document. Resolution is a pure function
over those inputs; there is no shared mutable configuration state.
*/
package config
