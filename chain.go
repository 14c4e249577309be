package logging

import (
	stderrs "errors"
	"strings"
)

// causer is the unwrapping contract used by github.com/pkg/errors.
type causer interface {
	Cause() error
}

// errorChain walks an error's cause chain and returns:
//   - chain: outermost -> innermost error messages
//   - root: the innermost error message
//
// The traversal prefers Cause() from pkg/errors wrappers and falls back to
// stdlib errors.Unwrap. pkg/errors wraps in two layers with the same message,
// so consecutive duplicates are collapsed; a depth cap guards against cycles.
func errorChain(err error) (chain []string, root string) {
	const maxDepth = 50

	depth := 0
	for err != nil && depth < maxDepth {
		depth++

		msg := err.Error()
		if n := len(chain); n == 0 || chain[n-1] != msg {
			chain = append(chain, msg)
		}

		if c, ok := err.(causer); ok {
			next := c.Cause()
			if next == err {
				break
			}
			err = next
			continue
		}
		err = stderrs.Unwrap(err)
	}

	if len(chain) > 0 {
		root = chain[len(chain)-1]
	}
	return chain, root
}

// joinChain returns a single string for the error chain separated by " -> ".
func joinChain(chain []string) string {
	if len(chain) == 0 {
		return emptyString
	}
	return strings.Join(chain, " -> ")
}
