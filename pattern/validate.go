package pattern

// Validate checks a pattern and returns nil or a *ValidationError for the
// first violation found.
func Validate(p string) error {
	_, err := tokenize(p)
	return err
}

// tokenize lexes and checks a pattern, in the order
// emptiness → alphabet → empty pairs → bracket balance.
func tokenize(p string) ([]Token, error) {
	if len(p) == 0 {
		return nil, &ValidationError{Kind: EmptyPattern}
	}
	tokens, err := lex(p)
	if err != nil {
		tracer().Errorf("pattern %q: %v", p, err)
		return nil, err
	}
	if err = checkEmptyGroups(tokens); err != nil {
		tracer().Errorf("pattern %q: %v", p, err)
		return nil, err
	}
	if err = checkBalance(tokens); err != nil {
		tracer().Errorf("pattern %q: %v", p, err)
		return nil, err
	}
	return tokens, nil
}

func checkEmptyGroups(tokens []Token) error {
	for i := 0; i+1 < len(tokens); i++ {
		if tokens[i].IsOpening() && tokens[i+1].Char == closing(tokens[i].Char) {
			return &ValidationError{Kind: EmptyGroup, Index: i, Bracket: tokens[i].Char}
		}
	}
	return nil
}

func checkBalance(tokens []Token) error {
	var stack []int
	for i, t := range tokens {
		switch {
		case t.IsOpening():
			stack = append(stack, i)
		case t.IsClosing():
			if len(stack) == 0 {
				return &ValidationError{Kind: UnbalancedBrackets, Index: i, Bracket: t.Char}
			}
			open := tokens[stack[len(stack)-1]].Char
			if closing(open) != t.Char {
				return &ValidationError{Kind: UnbalancedBrackets, Index: i, Bracket: t.Char,
					Expected: closing(open)}
			}
			stack = stack[:len(stack)-1]
		}
	}
	if len(stack) > 0 {
		i := stack[len(stack)-1]
		return &ValidationError{Kind: UnbalancedBrackets, Index: i, Bracket: tokens[i].Char,
			Expected: closing(tokens[i].Char)}
	}
	return nil
}
