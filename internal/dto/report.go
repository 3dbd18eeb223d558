package dto

// ReportFormat selects the export format of a trip report.
type ReportFormat string

const (
	ReportFormatPDF ReportFormat = "pdf"
	ReportFormatCSV ReportFormat = "csv"
)

// ExportReportParams defines query parameters for the report export endpoint.
type ExportReportParams struct {
	Format ReportFormat `form:"format,default=pdf" binding:"omitempty,oneof=pdf csv"`
}

// ReportFile points at a generated report on disk.
type ReportFile struct {
	FilePath string `json:"filePath"`
	FileName string `json:"fileName"`
}
