package forecast

import (
	"fmt"
	"math"
)

// polynomial holds OLS coefficients, constant term first. A fit is one-shot:
// coefficients are computed once and only evaluated afterwards.
type polynomial []float64

// fitPolynomial fits y on the time index 0..n-1 by ordinary least squares
// over expanded polynomial features, with no regularization. It solves the
// normal equations directly; the system is at most (degree+1) x (degree+1)
// and degree is bounded at 5.
func fitPolynomial(y []float64, degree int) (polynomial, error) {
	n := len(y)
	size := degree + 1
	if n < size {
		return nil, fmt.Errorf("need %d points for degree %d, got %d", size, degree, n)
	}

	// a[j][k] = sum_i i^(j+k), b[j] = sum_i y_i * i^j
	a := make([][]float64, size)
	for j := range a {
		a[j] = make([]float64, size)
	}
	b := make([]float64, size)

	for i := 0; i < n; i++ {
		x := float64(i)
		powers := make([]float64, 2*size-1)
		powers[0] = 1
		for p := 1; p < len(powers); p++ {
			powers[p] = powers[p-1] * x
		}
		for j := 0; j < size; j++ {
			for k := 0; k < size; k++ {
				a[j][k] += powers[j+k]
			}
			b[j] += y[i] * powers[j]
		}
	}

	coeffs, err := solve(a, b)
	if err != nil {
		return nil, err
	}
	return polynomial(coeffs), nil
}

// solve runs Gaussian elimination with partial pivoting on a square system.
func solve(a [][]float64, b []float64) ([]float64, error) {
	size := len(b)

	for col := 0; col < size; col++ {
		pivot := col
		for row := col + 1; row < size; row++ {
			if math.Abs(a[row][col]) > math.Abs(a[pivot][col]) {
				pivot = row
			}
		}
		if math.Abs(a[pivot][col]) < 1e-12 {
			return nil, fmt.Errorf("singular system at column %d", col)
		}
		a[col], a[pivot] = a[pivot], a[col]
		b[col], b[pivot] = b[pivot], b[col]

		for row := col + 1; row < size; row++ {
			factor := a[row][col] / a[col][col]
			for k := col; k < size; k++ {
				a[row][k] -= factor * a[col][k]
			}
			b[row] -= factor * b[col]
		}
	}

	x := make([]float64, size)
	for row := size - 1; row >= 0; row-- {
		sum := b[row]
		for k := row + 1; k < size; k++ {
			sum -= a[row][k] * x[k]
		}
		x[row] = sum / a[row][row]
	}
	return x, nil
}

// eval evaluates the polynomial at x using Horner's rule.
func (p polynomial) eval(x float64) float64 {
	var result float64
	for i := len(p) - 1; i >= 0; i-- {
		result = result*x + p[i]
	}
	return result
}
