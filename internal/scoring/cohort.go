package scoring

// CohortValue carries one raw metric tagged with its product-type cohort.
// Normalization is only meaningful within a cohort; phone view counts and TV
// view counts never share a scale.
type CohortValue struct {
	Cohort string
	Raw    float64
}

// CohortMaxima is pass one of cohort-relative normalization: the maximum raw
// value observed per cohort in the current batch.
func CohortMaxima(values []CohortValue) map[string]float64 {
	maxima := make(map[string]float64, 4)
	for _, v := range values {
		if v.Raw > maxima[v.Cohort] {
			maxima[v.Cohort] = v.Raw
		}
	}
	return maxima
}

// NormalizeByCohort is pass two: each raw value rescaled to [0,100] against
// its own cohort's maximum. Output is positionally aligned with the input.
func NormalizeByCohort(values []CohortValue) []float64 {
	maxima := CohortMaxima(values)
	out := make([]float64, len(values))
	for i, v := range values {
		out[i] = MaxRelative(v.Raw, maxima[v.Cohort])
	}
	return out
}
