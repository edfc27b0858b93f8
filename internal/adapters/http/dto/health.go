package dto

import "github.com/jsamuelsen11/go-item-loader/internal/ports"

// LivenessResponse is the body of GET /health/live.
type LivenessResponse struct {
	Status string `json:"status"`
}

// ReadinessResponse is the body of GET /health/ready.
type ReadinessResponse struct {
	Ready  bool            `json:"ready"`
	Checks []CheckResponse `json:"checks"`
}

// CheckResponse is one dependency in a ReadinessResponse.
type CheckResponse struct {
	Name      string  `json:"name"`
	Healthy   bool    `json:"healthy"`
	Error     string  `json:"error,omitempty"`
	LatencyMS float64 `json:"latency_ms"`
}

// ToReadinessResponse reports ready only when every check passed.
func ToReadinessResponse(results []ports.CheckResult) ReadinessResponse {
	resp := ReadinessResponse{Ready: true, Checks: make([]CheckResponse, 0, len(results))}
	for _, res := range results {
		c := CheckResponse{
			Name:      res.Name,
			Healthy:   res.Healthy(),
			LatencyMS: float64(res.Latency.Microseconds()) / 1000,
		}
		if !c.Healthy {
			c.Error = res.Err.Error()
			resp.Ready = false
		}
		resp.Checks = append(resp.Checks, c)
	}
	return resp
}
