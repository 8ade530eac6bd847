package contracts

// Forecast request bounds. Requests outside these are rejected before the
// historical series is touched.
const (
	MinHorizonMonths = 1
	MaxHorizonMonths = 36
	MinPolyDegree    = 1
	MaxPolyDegree    = 5
)

// ForecastRequest asks for a polynomial trend projection.
type ForecastRequest struct {
	HorizonMonths int `json:"horizon_months"`
	Degree        int `json:"polynomial_degree"`
}

// Validate checks the request bounds.
func (r ForecastRequest) Validate() error {
	if r.HorizonMonths < MinHorizonMonths || r.HorizonMonths > MaxHorizonMonths {
		return &InvalidRequestError{Field: "horizon_months", Reason: "must be between 1 and 36"}
	}
	if r.Degree < MinPolyDegree || r.Degree > MaxPolyDegree {
		return &InvalidRequestError{Field: "polynomial_degree", Reason: "must be between 1 and 5"}
	}
	return nil
}

// ForecastResult carries the historical series together with the in-sample
// fit and the forward projection. Fitted has the same length as Historical;
// Predicted has one point per requested horizon month, with generated
// future period labels.
type ForecastResult struct {
	Historical Series `json:"historical"`
	Fitted     Series `json:"fitted"`
	Predicted  Series `json:"predicted"`
	Degree     int    `json:"polynomial_degree"`
}
