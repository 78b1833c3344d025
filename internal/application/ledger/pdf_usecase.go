package ledger

import (
	"context"
	"fmt"

	"github.com/Ojas37/Stock-Master/internal/domain/repository"
)

const pdfExportMaxEntries = 500 // tope de filas por reporte

// PDFGenerator puerto del generador del reporte del libro de stock.
type PDFGenerator interface {
	GenerateLedgerPDF(ctx context.Context, entries []repository.LedgerEntry, filter repository.LedgerViewFilter) ([]byte, error)
}

// PDFUseCase exporta la vista del ledger como PDF.
type PDFUseCase struct {
	analyticsRepo repository.AnalyticsRepository
	generator     PDFGenerator
}

// NewPDFUseCase construye el caso de uso.
func NewPDFUseCase(analyticsRepo repository.AnalyticsRepository, generator PDFGenerator) *PDFUseCase {
	return &PDFUseCase{analyticsRepo: analyticsRepo, generator: generator}
}

// Export consulta la vista del ledger con los filtros dados y genera el PDF.
func (uc *PDFUseCase) Export(ctx context.Context, filter repository.LedgerViewFilter) ([]byte, error) {
	entries, err := uc.analyticsRepo.GetLedgerView(ctx, filter, pdfExportMaxEntries)
	if err != nil {
		return nil, fmt.Errorf("exportar ledger: %w", err)
	}
	return uc.generator.GenerateLedgerPDF(ctx, entries, filter)
}
