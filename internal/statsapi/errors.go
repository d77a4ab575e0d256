package statsapi

import "fmt"

// ProviderError reports a failed stats-provider call. Status is zero when
// the request never completed (transport failure or decode error).
type ProviderError struct {
	Endpoint string
	Status   int
	Err      error
}

func (e *ProviderError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("stats provider %s: status %d: %v", e.Endpoint, e.Status, e.Err)
	}
	return fmt.Sprintf("stats provider %s: %v", e.Endpoint, e.Err)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}
