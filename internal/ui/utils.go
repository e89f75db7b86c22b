package ui

import "github.com/Hashversion/koes/internal/classname"

// CN merges class tokens: falsy tokens are dropped, nested ones flattened,
// duplicates collapsed and conflicting Tailwind utilities resolved so the
// last one wins.
func CN(tokens ...any) string {
	return classname.Compose(tokens...)
}
