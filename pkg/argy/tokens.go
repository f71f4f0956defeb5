// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package argy

// RawValue is one flag as typed on the command line and its unconverted
// value. Boolean flags carry "true".
type RawValue struct {
	Token string
	Value string
}

const trueString = "true"

// tokenize walks already validated tokens as a sequence of (flag [value])
// pairs and returns them in command-line order.
func (s *Schema) tokenize(tokens []string) ([]RawValue, error) {
	values := make([]RawValue, 0, len(tokens))
	for i := 0; i < len(tokens); i++ {
		tok := tokens[i]
		a, ok := s.arg(tok)
		if !ok {
			if i == 0 {
				return nil, errorf(FirstArgIsNotAnID,
					"The first argument (%s) is not a flag or shorthand.", tok)
			}
			return nil, errorf(IDAndValueCountDoNotMatch,
				"Value (%s) is not preceded by a flag or shorthand that takes a value.", tok)
		}
		if a.kind == KindBool {
			values = append(values, RawValue{Token: tok, Value: trueString})
			continue
		}
		if i+1 >= len(tokens) {
			return nil, errorf(ValueMissing, "Value for %s is missing.", tok)
		}
		if _, isFlag := s.arg(tokens[i+1]); isFlag {
			return nil, errorf(ValueMissing, "Value for %s is missing (found %s instead).", tok, tokens[i+1])
		}
		values = append(values, RawValue{Token: tok, Value: tokens[i+1]})
		i++
	}
	return values, nil
}
