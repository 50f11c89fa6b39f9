package output

import (
	"bytes"
	"encoding/csv"

	"github.com/rpgo/vat-calculator/internal/domain"
)

// CSVSummarizer writes one row per conversion in input order.
type CSVSummarizer struct{}

func (c CSVSummarizer) Name() string { return "csv" }

func (c CSVSummarizer) Format(batch *domain.Batch) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Operation", "Input", "Output", "Net", "VAT", "Gross", "Error"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, conv := range batch.Conversions {
		row := []string{conv.Operation.String(), conv.Input, conv.Output, "", "", "", ""}
		if conv.OK() {
			net, vat, gross := netGrossVAT(conv)
			row[3], row[4], row[5] = net.StringFixed(2), vat.StringFixed(2), gross.StringFixed(2)
		} else {
			row[6] = conv.ErrorKind.String()
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
