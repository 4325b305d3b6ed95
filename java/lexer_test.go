package java

import (
	"testing"
)

func TestLexerKeywords(t *testing.T) {
	tests := []struct {
		input string
		kind  TokenKind
	}{
		{"class", TokenClass},
		{"interface", TokenInterface},
		{"enum", TokenEnum},
		{"record", TokenRecord},
		{"native", TokenNative},
		{"public", TokenPublic},
		{"private", TokenPrivate},
		{"protected", TokenProtected},
		{"static", TokenStatic},
		{"final", TokenFinal},
		{"abstract", TokenAbstract},
		{"extends", TokenExtends},
		{"implements", TokenImplements},
		{"throws", TokenThrows},
		{"package", TokenPackage},
		{"import", TokenImport},
		{"void", TokenVoid},
		{"int", TokenInt},
		{"boolean", TokenBoolean},
		{"double", TokenDouble},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			lexer := NewLexer([]byte(tt.input), "test.java")
			tok := lexer.NextToken()
			if tok.Kind != tt.kind {
				t.Errorf("Kind = %v, want %v", tok.Kind, tt.kind)
			}
			if tok.Literal != tt.input {
				t.Errorf("Literal = %q, want %q", tok.Literal, tt.input)
			}
		})
	}
}

func TestLexerNonKeywordIdent(t *testing.T) {
	// words that are Java keywords but irrelevant to declaration scanning
	// lex as plain identifiers
	for _, word := range []string{"if", "return", "while", "new", "this"} {
		lexer := NewLexer([]byte(word), "test.java")
		tok := lexer.NextToken()
		if tok.Kind != TokenIdent {
			t.Errorf("Kind(%q) = %v, want %v", word, tok.Kind, TokenIdent)
		}
	}
}

func TestLexerBlockCommentIsOneToken(t *testing.T) {
	input := `/*-{ if (x) { return this.y; } }-*/`
	lexer := NewLexer([]byte(input), "test.java")
	tok := lexer.NextToken()
	if tok.Kind != TokenComment {
		t.Fatalf("Kind = %v, want %v", tok.Kind, TokenComment)
	}
	if tok.Literal != input {
		t.Errorf("Literal = %q, want %q", tok.Literal, input)
	}
	if next := lexer.NextToken(); next.Kind != TokenEOF {
		t.Errorf("next Kind = %v, want EOF", next.Kind)
	}
}

func TestLexerLiteralsHideBraces(t *testing.T) {
	tests := []struct {
		name  string
		input string
		kind  TokenKind
	}{
		{"string", `"{ not a block }"`, TokenStringLiteral},
		{"escaped quote", `"a\"b{"`, TokenStringLiteral},
		{"char", `'{'`, TokenCharLiteral},
		{"escaped char", `'\''`, TokenCharLiteral},
		{"text block", "\"\"\"\n{ x }\n\"\"\"", TokenTextBlock},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lexer := NewLexer([]byte(tt.input), "test.java")
			tok := lexer.NextToken()
			if tok.Kind != tt.kind {
				t.Errorf("Kind = %v, want %v", tok.Kind, tt.kind)
			}
			if tok.Literal != tt.input {
				t.Errorf("Literal = %q, want %q", tok.Literal, tt.input)
			}
		})
	}
}

func TestLexerNumbers(t *testing.T) {
	inputs := []string{"0", "42", "1_000", "0xFF", "0b1010", "3.14", "1e9", "2.5e-3", "1L", "2.0f", ".5"}
	for _, input := range inputs {
		lexer := NewLexer([]byte(input), "test.java")
		tok := lexer.NextToken()
		if tok.Kind != TokenNumberLiteral {
			t.Errorf("Kind(%q) = %v, want %v", input, tok.Kind, TokenNumberLiteral)
		}
		if tok.Literal != input {
			t.Errorf("Literal = %q, want %q", tok.Literal, input)
		}
	}
}

func TestLexerPositions(t *testing.T) {
	input := "class A\n{\n}"
	lexer := NewLexer([]byte(input), "A.java")

	tok := lexer.NextToken() // class
	if tok.Span.Start.Offset != 0 || tok.Span.Start.Line != 1 || tok.Span.Start.Column != 1 {
		t.Errorf("class start = %+v, want offset 0 line 1 col 1", tok.Span.Start)
	}

	lexer.NextToken() // whitespace
	tok = lexer.NextToken()
	if tok.Kind != TokenIdent || tok.Literal != "A" {
		t.Fatalf("token = %v %q, want Ident A", tok.Kind, tok.Literal)
	}
	if tok.Span.Start.Offset != 6 {
		t.Errorf("A offset = %d, want 6", tok.Span.Start.Offset)
	}

	lexer.NextToken() // newline
	tok = lexer.NextToken()
	if tok.Kind != TokenLBrace {
		t.Fatalf("token = %v, want {", tok.Kind)
	}
	if tok.Span.Start.Line != 2 || tok.Span.Start.Column != 1 {
		t.Errorf("{ position = line %d col %d, want line 2 col 1", tok.Span.Start.Line, tok.Span.Start.Column)
	}
}

func TestLexerEllipsisAndDots(t *testing.T) {
	lexer := NewLexer([]byte("a.b..."), "test.java")
	kinds := []TokenKind{TokenIdent, TokenDot, TokenIdent, TokenEllipsis, TokenEOF}
	for i, want := range kinds {
		tok := lexer.NextToken()
		if tok.Kind != want {
			t.Fatalf("token %d = %v, want %v", i, tok.Kind, want)
		}
	}
}

func TestLexerAnglesAreSingleChar(t *testing.T) {
	lexer := NewLexer([]byte("List<List<String>>"), "test.java")
	var kinds []TokenKind
	for {
		tok := lexer.NextToken()
		if tok.Kind == TokenEOF {
			break
		}
		kinds = append(kinds, tok.Kind)
	}
	want := []TokenKind{TokenIdent, TokenLT, TokenIdent, TokenLT, TokenIdent, TokenGT, TokenGT}
	if len(kinds) != len(want) {
		t.Fatalf("token count = %d, want %d", len(kinds), len(want))
	}
	for i := range want {
		if kinds[i] != want[i] {
			t.Errorf("token %d = %v, want %v", i, kinds[i], want[i])
		}
	}
}
