// Copyright 2024 The Templator Authors.
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"fmt"
	"path/filepath"

	semver "github.com/hashicorp/go-version"

	"templator.dev/templator/pkg/markup"
	"templator.dev/templator/pkg/version"
)

// Flags are the explicit delimiter CLI flags; empty string means unset.
type Flags struct {
	Open  string
	Close string
}

// Resolved is the outcome of configuration resolution: one global delimiter
// pair plus per-file overrides. Immutable once built.
type Resolved struct {
	global    markup.DelimiterPair
	overrides map[string]markup.DelimiterPair
}

// Resolve merges the three optional configuration sources into a Resolved.
// Precedence, most to least specific: per-file override, explicit CLI flags,
// side configuration document options, context-embedded options, built-in
// default pair.
func Resolve(flags Flags, cfgDoc *Document, ctxDoc *Document) (*Resolved, error) {
	for _, doc := range []*Document{cfgDoc, ctxDoc} {
		err := checkMinimumVersion(doc)
		if err != nil {
			return nil, err
		}
	}

	global := markup.DefaultDelimiters

	for _, doc := range []*Document{ctxDoc, cfgDoc} { // cfgDoc last; it wins
		if doc != nil && doc.Options.Delimiters != nil {
			global = markup.DelimiterPair{
				Open:  doc.Options.Delimiters.Open,
				Close: doc.Options.Delimiters.Close,
			}
		}
	}

	if len(flags.Open) > 0 {
		global.Open = flags.Open
	}
	if len(flags.Close) > 0 {
		global.Close = flags.Close
	}

	err := global.Validate()
	if err != nil {
		return nil, err
	}

	overrides := map[string]markup.DelimiterPair{}

	for _, doc := range []*Document{ctxDoc, cfgDoc} {
		if doc == nil {
			continue
		}
		for file, override := range doc.Files {
			pair := markup.DelimiterPair{Open: override.OpenDelimiter, Close: override.CloseDelimiter}
			err := pair.Validate()
			if err != nil {
				return nil, fmt.Errorf("Delimiter override for file '%s': %s", file, err)
			}
			overrides[file] = pair
		}
	}

	return &Resolved{global: global, overrides: overrides}, nil
}

// Global returns the delimiter pair for files without a per-file override.
func (r *Resolved) Global() markup.DelimiterPair { return r.global }

// ForFile returns the delimiter pair to render the given file with.
// Overrides are matched against the full relative path first; an override
// keyed by a bare file name applies to any file with that name, at any
// depth.
func (r *Resolved) ForFile(relPath string) markup.DelimiterPair {
	if pair, found := r.overrides[relPath]; found {
		return pair
	}
	if pair, found := r.overrides[filepath.Base(relPath)]; found {
		return pair
	}
	return r.global
}

func checkMinimumVersion(doc *Document) error {
	if doc == nil || len(doc.Options.MinimumRequiredVersion) == 0 {
		return nil
	}

	requiredVer, err := semver.NewVersion(doc.Options.MinimumRequiredVersion)
	if err != nil {
		return fmt.Errorf("Parsing minimum required version '%s': %s", doc.Options.MinimumRequiredVersion, err)
	}

	currVer, err := semver.NewVersion(version.Version)
	if err != nil {
		return fmt.Errorf("Parsing current version '%s': %s", version.Version, err)
	}

	if currVer.LessThan(requiredVer) {
		return fmt.Errorf("Templator version '%s' does not meet the minimum required version '%s'",
			version.Version, doc.Options.MinimumRequiredVersion)
	}
	return nil
}
