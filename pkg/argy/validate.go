// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package argy

import (
	"fmt"
	"strings"

	"tailscale.com/util/set"
)

// validate runs the structural checks over the raw tokens before any value
// is extracted. Checks run in a fixed order and the first failing check
// wins; its message names every offending token that check found.
func (s *Schema) validate(tokens []string) error {
	present := make(set.Set[string], len(tokens))
	for _, t := range tokens {
		present.Add(t)
	}
	checks := []func([]string, set.Set[string]) error{
		s.checkUnknown,
		s.checkRequired,
		s.checkFlagAndShorthand,
		s.checkDuplicates,
	}
	for _, check := range checks {
		if err := check(tokens, present); err != nil {
			return err
		}
	}
	return nil
}

// checkUnknown rejects dash-prefixed tokens that match no declared flag or
// shorthand, as well as a bare "-" or "--".
func (s *Schema) checkUnknown(tokens []string, _ set.Set[string]) error {
	var unknown []string
	for _, t := range tokens {
		bare := strings.TrimSpace(t)
		if bare == "-" || bare == "--" {
			unknown = append(unknown, t)
			continue
		}
		if _, ok := s.index[t]; strings.HasPrefix(t, "-") && !ok {
			unknown = append(unknown, t)
		}
	}
	if len(unknown) > 0 {
		return errorf(UnknownFlagsOrShorthandPresent,
			"These flags/shorthands are unknown: %s", strings.Join(unknown, ", "))
	}
	return nil
}

func (s *Schema) checkRequired(_ []string, present set.Set[string]) error {
	var missing []string
	for _, a := range s.args {
		if !a.required || present.Contains(a.flag) || (a.short != "" && present.Contains(a.short)) {
			continue
		}
		if a.short == "" {
			missing = append(missing, a.flag)
		} else {
			missing = append(missing, fmt.Sprintf("%s or %s", a.flag, a.short))
		}
	}
	if len(missing) > 0 {
		return errorf(RequiredFlagNotProvided,
			"These required flags aren't provided: %s", strings.Join(missing, " and "))
	}
	return nil
}

func (s *Schema) checkFlagAndShorthand(_ []string, present set.Set[string]) error {
	var both []string
	for _, a := range s.args {
		if a.short != "" && present.Contains(a.flag) && present.Contains(a.short) {
			both = append(both, fmt.Sprintf("%s and %s", a.flag, a.short))
		}
	}
	if len(both) > 0 {
		return errorf(FlagAndShorthandPresentOnCommandLine,
			"Both a flag and a shorthand were provided: %s", strings.Join(both, ", "))
	}
	return nil
}

func (s *Schema) checkDuplicates(tokens []string, _ set.Set[string]) error {
	seen := make(set.Set[string])
	reported := make(set.Set[string])
	var dups []string
	for _, t := range tokens {
		if !strings.HasPrefix(t, "-") {
			continue
		}
		if seen.Contains(t) && !reported.Contains(t) {
			reported.Add(t)
			dups = append(dups, t)
		}
		seen.Add(t)
	}
	if len(dups) > 0 {
		return errorf(DuplicateFlagOrShortPresentOnCommandLine,
			"Duplicate flag or shorthand (%s) used on command line.", strings.Join(dups, ", "))
	}
	return nil
}
