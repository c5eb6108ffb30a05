// Package matutils implements utility function for working with mat.Matrix
// structs
package matutils

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Format formats a matrix for printing
func Format(X mat.Matrix) string {
	fa := mat.Formatted(X, mat.Prefix(""), mat.Squeeze())
	return fmt.Sprintf("%v", fa)
}

// DenseFromRows converts a possibly ragged slice of rows into a dense
// matrix with cols columns. Entries missing from short rows are zero.
// Rows longer than cols cause an error.
func DenseFromRows(rows [][]float64, cols int) (*mat.Dense, error) {
	if len(rows) == 0 || cols == 0 {
		return nil, fmt.Errorf("denseFromRows: cannot create an empty matrix")
	}

	data := make([]float64, len(rows)*cols)
	for i, row := range rows {
		if len(row) > cols {
			return nil, fmt.Errorf("denseFromRows: row %d has %d columns, "+
				"want at most %d", i, len(row), cols)
		}
		copy(data[i*cols:], row)
	}
	return mat.NewDense(len(rows), cols, data), nil
}

// VecOnes returns a vector of 1.0's
func VecOnes(length int) *mat.VecDense {
	oneSlice := make([]float64, length)
	for i := 0; i < length; i++ {
		oneSlice[i] = 1.0
	}
	return mat.NewVecDense(length, oneSlice)
}

// VecFill returns a vector with every element set to value
func VecFill(length int, value float64) *mat.VecDense {
	vec := VecOnes(length)
	vec.ScaleVec(value, vec)
	return vec
}
