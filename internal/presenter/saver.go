package presenter

import (
	"encoding/csv"
	"os"
	"strconv"

	"gonum.org/v1/gonum/mat"
)

// SweepHeader names the columns of experiment.Sweep.Table.
var SweepHeader = []string{"n", "trapezoid", "gauss", "err_trapezoid", "err_gauss"}

// SaveDenseToCSV writes m row by row, preceded by header when it is not empty.
func SaveDenseToCSV(m *mat.Dense, header []string, filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	writer := csv.NewWriter(file)

	if len(header) > 0 {
		if err := writer.Write(header); err != nil {
			return err
		}
	}

	rows, cols := m.Dims()
	for i := 0; i < rows; i++ {
		record := make([]string, cols)
		for j := 0; j < cols; j++ {
			record[j] = strconv.FormatFloat(m.At(i, j), 'g', -1, 64)
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}

// SaveSamplesToCSV writes one accepted sample per row under an "x" header.
func SaveSamplesToCSV(samples []float64, filename string) error {
	if len(samples) == 0 {
		return SaveDenseToCSV(&mat.Dense{}, []string{"x"}, filename)
	}
	return SaveDenseToCSV(mat.NewDense(len(samples), 1, samples), []string{"x"}, filename)
}
