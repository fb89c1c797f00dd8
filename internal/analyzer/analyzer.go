// Package analyzer is the entry point of the document intelligence pipeline:
// classify, extract, reconcile, score, suggest an account, synthesize a
// journal entry, validate. The pipeline is stateless and purely
// computational, so a Service is safe for arbitrary concurrent use.
package analyzer

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/contaro/docintel/internal/accounts"
	"github.com/contaro/docintel/internal/classifier"
	"github.com/contaro/docintel/internal/confidence"
	"github.com/contaro/docintel/internal/document"
	"github.com/contaro/docintel/internal/encoding"
	"github.com/contaro/docintel/internal/extractor"
	"github.com/contaro/docintel/internal/journal"
	"github.com/contaro/docintel/internal/validate"
)

var (
	// ErrNoText means the input carried no text at all; there is nothing
	// to extract from.
	ErrNoText = errors.New("document has no usable text")

	// ErrUnusable means extraction resolved neither a vendor nor a total:
	// the result is too sparse for any downstream action.
	ErrUnusable = errors.New("extraction too sparse to be usable")
)

// DefaultMaxTextBytes caps how much document text one analysis will scan.
const DefaultMaxTextBytes = 256 << 10

// Input is one document to analyze: its file name plus the raw text an OCR
// step (or the upload itself) produced.
type Input struct {
	FileName string
	Text     string
}

// Result is the full pipeline output for one document.
type Result struct {
	// ID correlates this analysis in logs and audit trails.
	ID         uuid.UUID
	Type       document.Type
	Document   document.Extracted
	Account    *document.Account
	Journal    *document.Entry
	Confidence float64 // 0-100 presentation scale
	Validation document.Validation
}

// Service runs the pipeline. The zero value is not usable; construct with
// NewService.
type Service struct {
	classifier   *classifier.Classifier
	suggester    *accounts.Suggester
	maxTextBytes int
}

// NewService wires the pipeline stages. maxTextBytes <= 0 selects
// DefaultMaxTextBytes.
func NewService(c *classifier.Classifier, s *accounts.Suggester, maxTextBytes int) *Service {
	if maxTextBytes <= 0 {
		maxTextBytes = DefaultMaxTextBytes
	}

	return &Service{
		classifier:   c,
		suggester:    s,
		maxTextBytes: maxTextBytes,
	}
}

// Analyze runs the whole pipeline over one document. Sparse fields are not
// errors: they lower the confidence score and surface as validation
// warnings. Analyze fails only when the input is empty (ErrNoText) or when
// neither vendor nor total could be resolved (ErrUnusable).
func (s *Service) Analyze(ctx context.Context, in Input) (res *Result, err error) {
	// The pipeline stages never panic on malformed documents; this is the
	// outermost conversion point for anything truly exceptional.
	defer func() {
		if r := recover(); r != nil {
			res = nil
			err = fmt.Errorf("analysis panic: %v", r)
		}
	}()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	text := encoding.Truncate(in.Text, s.maxTextBytes)
	if strings.TrimSpace(text) == "" {
		return nil, ErrNoText
	}

	typ := s.classifier.Classify(in.FileName, text)

	doc := extractor.Extract(text)
	doc.Type = typ

	if doc.Vendor == nil && doc.Total == nil {
		return nil, ErrUnusable
	}

	doc.Confidence = confidence.Score(doc)

	acct := s.suggester.Suggest(typ, categoryHints(doc)...)
	entry := journal.Synthesize(doc, acct)

	return &Result{
		ID:         uuid.New(),
		Type:       typ,
		Document:   doc,
		Account:    acct,
		Journal:    entry,
		Confidence: doc.Confidence * 100,
		Validation: validate.Check(doc),
	}, nil
}

// categoryHints collects the free text the account suggester matches its
// category keywords against.
func categoryHints(doc document.Extracted) []string {
	var hints []string

	if doc.Vendor != nil {
		hints = append(hints, *doc.Vendor)
	}

	for _, item := range doc.LineItems {
		hints = append(hints, item.Description)
	}

	return hints
}
