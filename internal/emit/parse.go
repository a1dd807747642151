package emit

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"gc-derive/internal/derive"
)

// ErrSyntax is returned for type expressions ParseTypeRef cannot read.
var ErrSyntax = errors.New("invalid type expression")

// ParseTypeRef parses a rendered type expression such as
// ::gc::Node<'a, C, Gc<'a, T>> back into a TypeRef.
// Scope arguments must precede type arguments.
func ParseTypeRef(s string) (derive.TypeRef, error) {
	p := &refParser{src: s}

	ref, err := p.typeRef()
	if err != nil {
		return derive.TypeRef{}, err
	}

	p.skipSpace()

	if !p.done() {
		return derive.TypeRef{}, p.errorf("unexpected %q after type", p.rest())
	}

	return ref, nil
}

type refParser struct {
	src string
	pos int
}

func (p *refParser) errorf(format string, args ...any) error {
	return fmt.Errorf("%w %q at offset %d: %s", ErrSyntax, p.src, p.pos, fmt.Sprintf(format, args...))
}

func (p *refParser) done() bool { return p.pos >= len(p.src) }

func (p *refParser) rest() string { return p.src[p.pos:] }

func (p *refParser) skipSpace() {
	for !p.done() && unicode.IsSpace(rune(p.src[p.pos])) {
		p.pos++
	}
}

// accept consumes tok if it comes next, ignoring leading space.
func (p *refParser) accept(tok string) bool {
	p.skipSpace()

	if strings.HasPrefix(p.rest(), tok) {
		p.pos += len(tok)
		return true
	}

	return false
}

func (p *refParser) ident() (string, error) {
	p.skipSpace()

	start := p.pos
	for !p.done() {
		c := rune(p.src[p.pos])
		if c != '_' && !unicode.IsLetter(c) && !unicode.IsDigit(c) {
			break
		}

		p.pos++
	}

	if start == p.pos {
		return "", p.errorf("expected identifier")
	}

	if unicode.IsDigit(rune(p.src[start])) {
		p.pos = start
		return "", p.errorf("identifier starts with a digit")
	}

	return p.src[start:p.pos], nil
}

func (p *refParser) path() (string, error) {
	var sb strings.Builder

	if p.accept("::") {
		sb.WriteString("::")
	}

	for {
		seg, err := p.ident()
		if err != nil {
			return "", err
		}

		sb.WriteString(seg)

		if !p.accept("::") {
			return sb.String(), nil
		}

		sb.WriteString("::")
	}
}

func (p *refParser) typeRef() (derive.TypeRef, error) {
	path, err := p.path()
	if err != nil {
		return derive.TypeRef{}, err
	}

	ref := derive.TypeRef{Path: path}

	if !p.accept("<") {
		return ref, nil
	}

	if p.accept(">") {
		return derive.TypeRef{}, p.errorf("empty argument list")
	}

	for {
		if p.accept("'") {
			if len(ref.Args) > 0 {
				return derive.TypeRef{}, p.errorf("scope argument after type argument")
			}

			scope, err := p.ident()
			if err != nil {
				return derive.TypeRef{}, err
			}

			ref.Scopes = append(ref.Scopes, scope)
		} else {
			arg, err := p.typeRef()
			if err != nil {
				return derive.TypeRef{}, err
			}

			ref.Args = append(ref.Args, arg)
		}

		if p.accept(">") {
			return ref, nil
		}

		if !p.accept(",") {
			return derive.TypeRef{}, p.errorf("expected ',' or '>'")
		}
	}
}
