package document

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/contaro/docintel/internal/analyzer"
	"github.com/contaro/docintel/internal/document"
)

type accountResponse struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

type lineItemResponse struct {
	Description string   `json:"description"`
	Quantity    *int64   `json:"quantity,omitempty"`
	UnitPrice   *float64 `json:"unit_price,omitempty"`
	Amount      float64  `json:"amount"`
}

type extractedResponse struct {
	Vendor         *string            `json:"vendor"`
	DocumentNumber *string            `json:"document_number"`
	IssueDate      *string            `json:"issue_date"`
	DueDate        *string            `json:"due_date"`
	Total          *float64           `json:"total"`
	Subtotal       *float64           `json:"subtotal"`
	Tax            *float64           `json:"tax"`
	LineItems      []lineItemResponse `json:"line_items"`
	DatesInferred  bool               `json:"dates_inferred"`
}

type journalLineResponse struct {
	AccountCode string  `json:"account_code"`
	AccountName string  `json:"account_name"`
	Debit       float64 `json:"debit"`
	Credit      float64 `json:"credit"`
}

type journalEntryResponse struct {
	Lines []journalLineResponse `json:"lines"`
}

type validationResponse struct {
	IsValid  bool     `json:"is_valid"`
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
}

type analysisResponse struct {
	ID               uuid.UUID             `json:"id"`
	DocumentType     document.Type         `json:"document_type"`
	ExtractedData    extractedResponse     `json:"extracted_data"`
	SuggestedAccount *accountResponse      `json:"suggested_account"`
	JournalEntry     *journalEntryResponse `json:"journal_entry"`
	Confidence       float64               `json:"confidence"`
	Validation       validationResponse    `json:"validation"`
}

type batchItemResponse struct {
	FileName string            `json:"file_name"`
	Success  bool              `json:"success"`
	Data     *analysisResponse `json:"data,omitempty"`
	Error    *errorResponse    `json:"error,omitempty"`
}

type batchResponse struct {
	Total      int                 `json:"total"`
	Successful int                 `json:"successful"`
	Failed     int                 `json:"failed"`
	Results    []batchItemResponse `json:"results"`
}

func toAnalysisResponse(res *analyzer.Result) analysisResponse {
	out := analysisResponse{
		ID:           res.ID,
		DocumentType: res.Type,
		ExtractedData: extractedResponse{
			Vendor:         res.Document.Vendor,
			DocumentNumber: res.Document.Number,
			IssueDate:      formatDate(res.Document.IssueDate),
			DueDate:        formatDate(res.Document.DueDate),
			Total:          centsToAmount(res.Document.Total),
			Subtotal:       centsToAmount(res.Document.Subtotal),
			Tax:            centsToAmount(res.Document.Tax),
			LineItems:      toLineItems(res.Document.LineItems),
			DatesInferred:  res.Document.DatesInferred,
		},
		Confidence: res.Confidence,
		Validation: validationResponse{
			IsValid:  res.Validation.Valid,
			Errors:   res.Validation.Errors,
			Warnings: res.Validation.Warnings,
		},
	}

	if res.Account != nil {
		out.SuggestedAccount = &accountResponse{
			Code: res.Account.Code,
			Name: res.Account.Name,
		}
	}

	if res.Journal != nil {
		entry := journalEntryResponse{
			Lines: make([]journalLineResponse, 0, len(res.Journal.Lines)),
		}

		for _, l := range res.Journal.Lines {
			entry.Lines = append(entry.Lines, journalLineResponse{
				AccountCode: l.AccountCode,
				AccountName: l.AccountName,
				Debit:       float64(l.Debit) / 100.0,
				Credit:      float64(l.Credit) / 100.0,
			})
		}

		out.JournalEntry = &entry
	}

	return out
}

func toBatchResponse(batch *analyzer.Batch) batchResponse {
	out := batchResponse{
		Total:      batch.Total,
		Successful: batch.Successful,
		Failed:     batch.Failed,
		Results:    make([]batchItemResponse, 0, len(batch.Outcomes)),
	}

	for _, o := range batch.Outcomes {
		item := batchItemResponse{
			FileName: o.FileName,
			Success:  o.Err == nil,
		}

		if o.Err != nil {
			item.Error = toBatchError(o.Err)
		} else {
			data := toAnalysisResponse(o.Result)
			item.Data = &data
		}

		out.Results = append(out.Results, item)
	}

	return out
}

func toBatchError(err error) *errorResponse {
	resp := errorResponse{Error: err.Error(), Code: "internal"}

	switch {
	case errors.Is(err, analyzer.ErrNoText):
		resp.Code = "no_text"
	case errors.Is(err, analyzer.ErrUnusable):
		resp.Code = "extraction_unusable"
	}

	return &resp
}

func toLineItems(items []document.LineItem) []lineItemResponse {
	out := make([]lineItemResponse, 0, len(items))

	for _, item := range items {
		out = append(out, lineItemResponse{
			Description: item.Description,
			Quantity:    item.Quantity,
			UnitPrice:   centsToAmount(item.UnitPrice),
			Amount:      float64(item.Amount) / 100.0,
		})
	}

	return out
}

func centsToAmount(cents *int64) *float64 {
	if cents == nil {
		return nil
	}

	return new(float64(*cents) / 100.0)
}

func formatDate(t *time.Time) *string {
	if t == nil {
		return nil
	}

	return new(t.Format(time.DateOnly))
}
