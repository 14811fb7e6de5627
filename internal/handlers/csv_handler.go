package handlers

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	domain "github.com/BruksfildServices01/buyer-leads/internal/domain/buyer"
	"github.com/BruksfildServices01/buyer-leads/internal/httpresp"
	"github.com/BruksfildServices01/buyer-leads/internal/middleware"
	ucBuyer "github.com/BruksfildServices01/buyer-leads/internal/usecase/buyer"
)

const maxImportFileBytes = 1 << 20

type CSVHandler struct {
	importer *ucBuyer.ImportBuyers
	exporter *ucBuyer.ExportBuyers
}

func NewCSVHandler(importer *ucBuyer.ImportBuyers, exporter *ucBuyer.ExportBuyers) *CSVHandler {
	return &CSVHandler{importer: importer, exporter: exporter}
}

type ImportRequest struct {
	Buyers []map[string]any `json:"buyers" binding:"required"`
}

// ======================================================
// IMPORT
// ======================================================

// Import accepts either a multipart "file" upload or a JSON body of
// already split rows.
func (h *CSVHandler) Import(c *gin.Context) {
	var (
		rows []domain.CSVRow
		err  error
	)

	if strings.HasPrefix(c.ContentType(), "multipart/") {
		rows, err = readUploadedCSV(c)
	} else {
		rows, err = readJSONRows(c)
	}
	if err != nil {
		writeError(c, err, "failed_to_read_import")
		return
	}

	res, err := h.importer.Execute(c.Request.Context(), ucBuyer.ImportBuyersInput{
		OwnerID: middleware.GetUserID(c),
		Rows:    rows,
	})
	if err != nil {
		writeError(c, err, "failed_to_import_buyers")
		return
	}

	httpresp.OK(c, res)
}

func readUploadedCSV(c *gin.Context) ([]domain.CSVRow, error) {
	fh, err := c.FormFile("file")
	if err != nil {
		return nil, errBadUpload
	}
	if fh.Size > maxImportFileBytes {
		return nil, errBadUpload
	}

	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()

	raw, err := io.ReadAll(io.LimitReader(f, maxImportFileBytes))
	if err != nil {
		return nil, err
	}
	return domain.ParseCSV(string(raw))
}

func readJSONRows(c *gin.Context) ([]domain.CSVRow, error) {
	var req ImportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return nil, errBadUpload
	}

	rows := make([]domain.CSVRow, 0, len(req.Buyers))
	for _, in := range req.Buyers {
		row := domain.CSVRow{}
		for k, v := range in {
			row[k] = cellString(v)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// cellString renders a JSON value the way it would appear in a CSV cell.
func cellString(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	default:
		return fmt.Sprint(t)
	}
}

// Template serves an importable CSV with one sample row.
func (h *CSVHandler) Template(c *gin.Context) {
	httpresp.CSV(c, "buyers-template.csv", []byte(domain.CSVTemplateBody))
}

// ======================================================
// EXPORT
// ======================================================

func (h *CSVHandler) Export(c *gin.Context) {
	out, err := h.exporter.Execute(c.Request.Context(), ucBuyer.ExportBuyersInput{
		RequestedBy: middleware.GetUserID(c),
		Filters:     domain.ParseExportFilters(c.Request.URL.Query()),
	})
	if err != nil {
		writeError(c, err, "failed_to_export_buyers")
		return
	}

	httpresp.CSV(c, out.Filename, out.Body)
}
