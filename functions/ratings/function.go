// Package ratings provides an HTTP Cloud Function that resolves a review
// score to its display label. Front-end widgets call it so the label scale
// stays server-defined.
package ratings

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/GoogleCloudPlatform/functions-framework-go/functions"
)

// RFC3339Millis matches the main project's timestamp format.
const RFC3339Millis = "2006-01-02T15:04:05.000Z"

// Score bounds for professional reviews. Zero means no review yet.
const (
	MinScore = 0
	MaxScore = 5
)

var labels = [...]string{"None", "Terrible", "Bad", "Average", "Good", "Excellent"}

func init() {
	functions.HTTP("RatingLabel", ratingLabelHandler)
}

// Response represents the function response.
type Response struct {
	Score     int    `json:"score"`
	Label     string `json:"label"`
	Timestamp string `json:"timestamp"`
}

type problem struct {
	Title  string `json:"title"`
	Status int    `json:"status"`
	Detail string `json:"detail"`
}

func ratingLabelHandler(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query().Get("score")
	if raw == "" {
		writeProblem(w, http.StatusUnprocessableEntity, "missing score parameter")
		return
	}

	score, err := strconv.Atoi(raw)
	if err != nil || score < MinScore || score > MaxScore {
		writeProblem(w, http.StatusUnprocessableEntity, "score must be an integer between 0 and 5")
		return
	}

	resp := Response{
		Score:     score,
		Label:     labels[score],
		Timestamp: time.Now().UTC().Format(RFC3339Millis),
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(resp)
}

func writeProblem(w http.ResponseWriter, status int, detail string) {
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(problem{
		Title:  http.StatusText(status),
		Status: status,
		Detail: detail,
	})
}
