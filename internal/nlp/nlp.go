// Package nlp defines the tokenizer boundary the extraction pipeline depends
// on. The pipeline only needs a sequence of tokens annotated with a coarse
// part-of-speech tag and a stop-word flag; the default implementation adapts
// the prose tagger to that shape.
package nlp

import (
	"fmt"
	"strings"

	prose "github.com/jdkato/prose/v2"
)

// POS is a coarse part-of-speech class.
type POS int

// Coarse part-of-speech classes recognized by the pipeline.
const (
	POSOther POS = iota
	POSNoun
	POSProperNoun
	POSAdjective
)

// Token is one annotated token of the input text.
type Token struct {
	Text string
	POS  POS
	Stop bool
}

// IsContentWord reports whether the token is a noun, proper noun, or
// adjective — the classes the keyword extractor ranks.
func (t Token) IsContentWord() bool {
	return t.POS == POSNoun || t.POS == POSProperNoun || t.POS == POSAdjective
}

// Tagger annotates raw text with tokens. Implementations must be safe for
// concurrent use.
type Tagger interface {
	Tokenize(text string) ([]Token, error)
}

// ProseTagger implements Tagger using the prose tokenizer and perceptron
// part-of-speech tagger.
type ProseTagger struct{}

// NewProseTagger returns a Tagger backed by prose.
func NewProseTagger() *ProseTagger {
	return &ProseTagger{}
}

// Tokenize annotates text with coarse part-of-speech tags and stop-word
// flags.
func (pt *ProseTagger) Tokenize(text string) ([]Token, error) {
	doc, err := prose.NewDocument(text,
		prose.WithExtraction(false),
		prose.WithSegmentation(false),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to tokenize text: %w", err)
	}

	raw := doc.Tokens()
	tokens := make([]Token, 0, len(raw))
	for _, t := range raw {
		tokens = append(tokens, Token{
			Text: t.Text,
			POS:  coarsePOS(t.Tag),
			Stop: IsStopWord(t.Text),
		})
	}
	return tokens, nil
}

// coarsePOS collapses Penn Treebank tags into the coarse classes the
// pipeline cares about.
func coarsePOS(tag string) POS {
	switch {
	case strings.HasPrefix(tag, "NNP"):
		return POSProperNoun
	case strings.HasPrefix(tag, "NN"):
		return POSNoun
	case strings.HasPrefix(tag, "JJ"):
		return POSAdjective
	default:
		return POSOther
	}
}
