package service

import "fmt"

// ValidateResponses verifica que haya exactamente 20 respuestas en [1,7].
func ValidateResponses(responses []float64) error {
	if len(responses) != responseCount {
		return fmt.Errorf("%w: expected %d responses, got %d", ErrInvalidInput, responseCount, len(responses))
	}
	for i, r := range responses {
		// La forma negada tambien rechaza NaN.
		if !(r >= minResponse && r <= maxResponse) {
			return fmt.Errorf("%w: response %d must be between 1 and 7, got %v", ErrInvalidInput, i+1, r)
		}
	}
	return nil
}
