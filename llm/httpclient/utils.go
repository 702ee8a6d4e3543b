package httpclient

import "net/http"

// IsHTTPStatusCodeRetryable reports whether a Transport retry attempt should be made
// for statusCode: 5xx and 429 are retryable, all other 4xx are not.
func IsHTTPStatusCodeRetryable(statusCode int) bool {
	if statusCode == http.StatusTooManyRequests {
		return true
	}

	if statusCode >= 400 && statusCode < 500 {
		return false
	}

	return statusCode >= 500
}

var sensitiveHeaders = map[string]bool{
	"Authorization":  true,
	"X-Api-Key":      true,
	"Api-Key":        true,
	"X-Goog-Api-Key": true,
	"Cookie":         true,
}

// MaskSensitiveHeaders returns a copy of headers with credential-bearing values
// redacted, safe to pass to the structured logger alongside a request/response event.
func MaskSensitiveHeaders(headers http.Header) http.Header {
	result := make(http.Header, len(headers))

	for key, values := range headers {
		if sensitiveHeaders[key] {
			result[key] = []string{"******"}
			continue
		}

		result[key] = values
	}

	return result
}
