package repository

import "github.com/diillson/aws-billing-report-go/internal/domain/document"

// ReportWriter é o backend de paginação que materializa um documento em bytes.
type ReportWriter interface {
	Write(doc *document.Document) ([]byte, error)
}
