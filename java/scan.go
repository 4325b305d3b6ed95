// Package java scans Java source for the declaration structure that native
// method extraction needs: packages, imports, classes and method signatures
// with exact byte spans. It does not build a syntax tree; method bodies are
// skipped by nesting depth and only their source regions are recorded.
package java

// ParseFile harvests declarations from src. Scanning is best-effort:
// malformed regions resynchronize at the next member boundary instead of
// failing, so the result is always usable even for files a compiler would
// reject.
func ParseFile(path string, src []byte) *File {
	s := &scanner{
		lexer: NewLexer(src, path),
		file:  &File{Path: path},
	}
	s.next()
	s.parseCompilationUnit()
	return s.file
}

type scanner struct {
	lexer *Lexer
	tok   Token
	prev  Token
	file  *File
}

// next advances to the following significant token. Whitespace and comments
// are skipped; prev keeps the last significant token so spans can end where
// the previous token ended.
func (s *scanner) next() {
	s.prev = s.tok
	for {
		t := s.lexer.NextToken()
		switch t.Kind {
		case TokenWhitespace, TokenComment, TokenLineComment:
			continue
		}
		s.tok = t
		return
	}
}

func (s *scanner) parseCompilationUnit() {
	for s.tok.Kind != TokenEOF {
		switch s.tok.Kind {
		case TokenPackage:
			s.next()
			s.file.Package = s.qualifiedName()
			s.skipToSemicolon()
		case TokenImport:
			s.parseImport()
		case TokenAt:
			s.next()
			if s.tok.Kind == TokenInterface {
				s.skipAnnotationDecl()
			} else {
				s.skipAnnotationRest()
			}
		case TokenClass, TokenInterface, TokenEnum, TokenRecord:
			if c := s.parseClassDecl(""); c != nil {
				s.file.Classes = append(s.file.Classes, c)
			}
		default:
			s.next()
		}
	}
}

func (s *scanner) parseImport() {
	s.next()
	imp := Import{}
	if s.tok.Kind == TokenStatic {
		imp.Static = true
		s.next()
	}
	var name []byte
	for s.tok.Kind == TokenIdent {
		name = append(name, s.tok.Literal...)
		s.next()
		if s.tok.Kind != TokenDot {
			break
		}
		s.next()
		if s.tok.Kind == TokenOperator && s.tok.Literal == "*" {
			imp.Wildcard = true
			s.next()
			break
		}
		name = append(name, '.')
	}
	imp.Name = string(name)
	if imp.Name != "" {
		s.file.Imports = append(s.file.Imports, imp)
	}
	s.skipToSemicolon()
}

// qualifiedName consumes ident(.ident)* and returns the dotted result.
func (s *scanner) qualifiedName() string {
	var name []byte
	for s.tok.Kind == TokenIdent {
		name = append(name, s.tok.Literal...)
		s.next()
		if s.tok.Kind != TokenDot {
			break
		}
		s.next()
		name = append(name, '.')
	}
	return string(name)
}

func (s *scanner) parseClassDecl(enclosingBinary string) *Class {
	var kind ClassKind
	switch s.tok.Kind {
	case TokenClass:
		kind = ClassKindClass
	case TokenInterface:
		kind = ClassKindInterface
	case TokenEnum:
		kind = ClassKindEnum
	case TokenRecord:
		kind = ClassKindRecord
	}
	s.next()

	if s.tok.Kind != TokenIdent {
		return nil
	}
	name := s.tok.Literal
	s.next()

	binary := name
	if enclosingBinary != "" {
		binary = enclosingBinary + "$" + name
	} else if s.file.Package != "" {
		binary = s.file.Package + "." + name
	}
	c := &Class{Name: name, Binary: binary, Kind: kind}

	if s.tok.Kind == TokenLT {
		s.skipAngles()
	}
	if kind == ClassKindRecord && s.tok.Kind == TokenLParen {
		s.skipParens()
	}
	for s.tok.Kind != TokenLBrace && s.tok.Kind != TokenEOF && s.tok.Kind != TokenSemicolon {
		if s.tok.Kind == TokenLT {
			s.skipAngles()
			continue
		}
		s.next()
	}
	if s.tok.Kind == TokenLBrace {
		s.next()
		s.parseClassBody(c)
	}
	return c
}

func (s *scanner) parseClassBody(c *Class) {
	if c.Kind == ClassKindEnum {
		s.skipEnumConstants()
	}
	for {
		switch s.tok.Kind {
		case TokenEOF:
			return
		case TokenRBrace:
			s.next()
			return
		case TokenSemicolon:
			s.next()
		case TokenAt:
			s.next()
			if s.tok.Kind == TokenInterface {
				s.skipAnnotationDecl()
			} else {
				s.skipAnnotationRest()
			}
		case TokenClass, TokenInterface, TokenEnum, TokenRecord:
			if nested := s.parseClassDecl(c.Binary); nested != nil {
				c.Classes = append(c.Classes, nested)
			}
		case TokenLBrace:
			s.skipBraces()
		default:
			s.parseMember(c)
		}
	}
}

func (s *scanner) parseMember(c *Class) {
	declStart := s.tok.Span.Start
	var modifiers []string
	native := false
	abstract := false

	for {
		switch s.tok.Kind {
		case TokenPublic, TokenProtected, TokenPrivate, TokenStatic, TokenFinal,
			TokenAbstract, TokenNative, TokenSynchronized, TokenStrictfp,
			TokenTransient, TokenVolatile, TokenDefault:
			if s.tok.Kind == TokenNative {
				native = true
			}
			if s.tok.Kind == TokenAbstract {
				abstract = true
			}
			modifiers = append(modifiers, s.tok.Literal)
			s.next()
			continue
		case TokenAt:
			s.next()
			s.skipAnnotationRest()
			continue
		}
		break
	}

	switch s.tok.Kind {
	case TokenClass, TokenInterface, TokenEnum, TokenRecord:
		if nested := s.parseClassDecl(c.Binary); nested != nil {
			c.Classes = append(c.Classes, nested)
		}
		return
	case TokenLBrace:
		s.skipBraces()
		return
	case TokenLT:
		s.skipAngles()
	}

	if !s.isTypeStart() {
		s.resyncMember()
		return
	}
	first := s.parseType()

	if s.tok.Kind == TokenLParen {
		// constructor: what looked like a type was the name
		s.skipParens()
		s.skipMethodTail()
		return
	}

	if s.tok.Kind != TokenIdent {
		s.resyncMember()
		return
	}
	name := s.tok.Literal
	s.next()

	if s.tok.Kind != TokenLParen {
		// field declaration
		s.resyncMember()
		return
	}

	m := &Method{
		Name:      name,
		Modifiers: modifiers,
		Return:    first,
		Native:    native,
		Abstract:  abstract,
	}
	m.Parameters = s.parseParameters()

	for s.tok.Kind == TokenLBracket {
		s.next()
		if s.tok.Kind != TokenRBracket {
			break
		}
		s.next()
		m.Return.ArrayDepth++
	}

	if s.tok.Kind == TokenThrows {
		s.next()
		for s.tok.Kind == TokenIdent {
			m.Throws = append(m.Throws, s.qualifiedName())
			if s.tok.Kind != TokenComma {
				break
			}
			s.next()
		}
	}

	switch s.tok.Kind {
	case TokenLBrace:
		open := s.tok
		closing := s.skipBraces()
		m.Body = Span{Start: open.Span.Start, End: closing.Span.End}
		m.Span = Span{Start: declStart, End: closing.Span.End}
	case TokenSemicolon:
		// Bodiless declaration. The region between the previous token and
		// the semicolon is where a native implementation comment sits.
		m.Body = Span{Start: s.prev.Span.End, End: s.tok.Span.Start}
		m.Span = Span{Start: declStart, End: s.tok.Span.End}
		s.next()
	default:
		s.resyncMember()
		m.Span = Span{Start: declStart, End: s.prev.Span.End}
		m.Body = m.Span
	}

	c.Methods = append(c.Methods, m)
}

func (s *scanner) isTypeStart() bool {
	switch s.tok.Kind {
	case TokenIdent, TokenVoid, TokenBoolean, TokenByte, TokenChar,
		TokenShort, TokenInt, TokenLong, TokenFloat, TokenDouble:
		return true
	}
	return false
}

func (s *scanner) parseType() Type {
	t := Type{Name: s.tok.Literal}
	s.next()
	for s.tok.Kind == TokenDot {
		s.next()
		if s.tok.Kind != TokenIdent {
			break
		}
		t.Name += "." + s.tok.Literal
		s.next()
	}
	if s.tok.Kind == TokenLT {
		s.skipAngles()
	}
	for s.tok.Kind == TokenLBracket {
		s.next()
		if s.tok.Kind != TokenRBracket {
			break
		}
		s.next()
		t.ArrayDepth++
	}
	return t
}

func (s *scanner) parseParameters() []Parameter {
	var params []Parameter
	s.next()
	for s.tok.Kind != TokenRParen && s.tok.Kind != TokenEOF {
		for {
			if s.tok.Kind == TokenAt {
				s.next()
				s.skipAnnotationRest()
				continue
			}
			if s.tok.Kind == TokenFinal {
				s.next()
				continue
			}
			break
		}
		if !s.isTypeStart() {
			s.next()
			continue
		}
		t := s.parseType()
		if s.tok.Kind == TokenEllipsis {
			s.next()
			t.ArrayDepth++
		}
		name := ""
		if s.tok.Kind == TokenIdent {
			name = s.tok.Literal
			s.next()
			for s.tok.Kind == TokenLBracket {
				s.next()
				if s.tok.Kind != TokenRBracket {
					break
				}
				s.next()
				t.ArrayDepth++
			}
		}
		params = append(params, Parameter{Name: name, Type: t, Index: len(params)})
		if s.tok.Kind == TokenComma {
			s.next()
		}
	}
	if s.tok.Kind == TokenRParen {
		s.next()
	}
	return params
}

// skipMethodTail skips past a constructor's throws clause and body.
func (s *scanner) skipMethodTail() {
	for {
		switch s.tok.Kind {
		case TokenLBrace:
			s.skipBraces()
			return
		case TokenSemicolon:
			s.next()
			return
		case TokenEOF, TokenRBrace:
			return
		}
		s.next()
	}
}

func (s *scanner) skipAnnotationRest() {
	for s.tok.Kind == TokenIdent {
		s.next()
		if s.tok.Kind != TokenDot {
			break
		}
		s.next()
	}
	if s.tok.Kind == TokenLParen {
		s.skipParens()
	}
}

func (s *scanner) skipAnnotationDecl() {
	s.next()
	if s.tok.Kind == TokenIdent {
		s.next()
	}
	for s.tok.Kind != TokenLBrace && s.tok.Kind != TokenEOF {
		s.next()
	}
	if s.tok.Kind == TokenLBrace {
		s.skipBraces()
	}
}

// skipAngles consumes a balanced <...> group. Shift operators never reach
// here because angles are only skipped in declaration positions.
func (s *scanner) skipAngles() {
	depth := 0
	for s.tok.Kind != TokenEOF {
		switch s.tok.Kind {
		case TokenLT:
			depth++
		case TokenGT:
			depth--
		case TokenLBrace, TokenSemicolon:
			return
		}
		s.next()
		if depth == 0 {
			return
		}
	}
}

func (s *scanner) skipParens() {
	depth := 0
	for s.tok.Kind != TokenEOF {
		switch s.tok.Kind {
		case TokenLParen:
			depth++
		case TokenRParen:
			depth--
		}
		s.next()
		if depth == 0 {
			return
		}
	}
}

// skipBraces consumes a balanced {...} group and returns the closing brace
// token so callers can record where a body ends.
func (s *scanner) skipBraces() Token {
	depth := 0
	for s.tok.Kind != TokenEOF {
		switch s.tok.Kind {
		case TokenLBrace:
			depth++
		case TokenRBrace:
			depth--
			if depth == 0 {
				closing := s.tok
				s.next()
				return closing
			}
		}
		s.next()
	}
	return s.tok
}

// resyncMember skips to the end of the current member: the next semicolon
// at zero nesting depth. The enclosing class's closing brace is left for
// the caller.
func (s *scanner) resyncMember() {
	depth := 0
	for s.tok.Kind != TokenEOF {
		switch s.tok.Kind {
		case TokenLParen, TokenLBrace, TokenLBracket:
			depth++
		case TokenRParen, TokenRBracket:
			if depth > 0 {
				depth--
			}
		case TokenRBrace:
			if depth == 0 {
				return
			}
			depth--
		case TokenSemicolon:
			if depth == 0 {
				s.next()
				return
			}
		}
		s.next()
	}
}

func (s *scanner) skipToSemicolon() {
	for s.tok.Kind != TokenEOF {
		if s.tok.Kind == TokenSemicolon {
			s.next()
			return
		}
		s.next()
	}
}

// skipEnumConstants consumes the constant list at the top of an enum body,
// through the separating semicolon if present. The enum's closing brace is
// left for parseClassBody.
func (s *scanner) skipEnumConstants() {
	depth := 0
	for s.tok.Kind != TokenEOF {
		switch s.tok.Kind {
		case TokenLParen, TokenLBrace:
			depth++
		case TokenRParen:
			if depth > 0 {
				depth--
			}
		case TokenRBrace:
			if depth == 0 {
				return
			}
			depth--
		case TokenSemicolon:
			if depth == 0 {
				s.next()
				return
			}
		}
		s.next()
	}
}
