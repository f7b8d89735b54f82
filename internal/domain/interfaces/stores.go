package interfaces

import domaintypes "cryptodemo/internal/domain/types"

// ReportStore persists suite reports.
type ReportStore interface {
	SaveReport(report domaintypes.Report) error
	ListReports(kind domaintypes.ReportKind) ([]domaintypes.Report, error)
}
