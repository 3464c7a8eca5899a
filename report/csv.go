package report

import(
	"encoding/csv"
	"io"
)

func (r *Report)OutputAsCSV(w io.Writer) error {
	csvWriter := csv.NewWriter(w)
	if err := csvWriter.Write(r.Headers); err != nil { return err }
	for _,row := range r.Rows {
		if err := csvWriter.Write(row); err != nil { return err }
	}
	csvWriter.Flush()
	return csvWriter.Error()
}
