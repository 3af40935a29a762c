// Package green implements the immutable, structure-shared concrete-syntax
// tree ("green tree") at the core of the PDF parser: trivia and token
// leaves, interior nodes, the node cache that interns them, and the
// diagnostics attached to a finished tree. Trees built by this package are
// safe to read from multiple goroutines once finished; building a tree
// (via the sibling builder package) is a single-goroutine session.
package green

import "fmt"

// Kind is an opaque syntactic-category tag. The package imposes no
// interpretation on Kind values beyond equality and hashing; the PDF lexer
// and parser (external collaborators) define the concrete constants.
type Kind uint16

func (k Kind) String() string {
	return fmt.Sprintf("Kind(%d)", uint16(k))
}
