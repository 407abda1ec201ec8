package weather

type Status string

const (
	StatusSuccess Status = "success"
	StatusError   Status = "error"
)

// ErrorKind classifies a failed summary so the calling agent can decide how
// to phrase the reply.
type ErrorKind string

const (
	ErrInvalidInput    ErrorKind = "invalid_input"
	ErrUpstreamFailure ErrorKind = "upstream_failure"
	ErrNoHourlyData    ErrorKind = "no_hourly_data"
	ErrNoForecastData  ErrorKind = "no_forecast_data"
)

// Result is the outcome of one summary call. Failures travel as data, never
// as panics or raw errors: the agent inspects ErrorKind and ErrorMessage and
// keeps going. ErrorMessage is safe to show to a user verbatim.
type Result struct {
	Status       Status    `json:"status"`
	Location     string    `json:"location"`
	Forecast     string    `json:"forecast,omitempty"`
	ErrorKind    ErrorKind `json:"error_kind,omitempty"`
	ErrorMessage string    `json:"error_message,omitempty"`
}

// OK reports whether the call produced a forecast.
func (r Result) OK() bool { return r.Status == StatusSuccess }

func success(location, forecast string) Result {
	return Result{Status: StatusSuccess, Location: location, Forecast: forecast}
}

func failure(location string, kind ErrorKind, message string) Result {
	return Result{Status: StatusError, Location: location, ErrorKind: kind, ErrorMessage: message}
}
