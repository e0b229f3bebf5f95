package apierror

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func init() {
	// Set gin to test mode to reduce noise in test output
	gin.SetMode(gin.TestMode)
}

func TestProblemDetailsJSON(t *testing.T) {
	retryAfter := 30
	problem := &ProblemDetails{
		Type:        TypeValidation,
		Title:       TitleValidation,
		Status:      http.StatusBadRequest,
		Detail:      "Field validation failed",
		Instance:    "/api/v1/urges/123",
		RequestID:   "req-abc123",
		UserMessage: "Please fix the errors",
		RetryAfter:  &retryAfter,
		Action:      "authenticate",
		Errors: []FieldError{
			{Field: "intensity", Message: "must be between 1 and 10", Code: "out_of_range"},
			{Field: "created_at", Message: "must be a valid date", Code: "invalid_date"},
		},
	}

	data, err := json.Marshal(problem)
	if err != nil {
		t.Fatalf("Failed to marshal ProblemDetails: %v", err)
	}

	var result map[string]interface{}
	if err := json.Unmarshal(data, &result); err != nil {
		t.Fatalf("Failed to unmarshal JSON: %v", err)
	}

	if result["type"] != TypeValidation {
		t.Errorf("Expected type=%q, got %q", TypeValidation, result["type"])
	}
	if result["title"] != TitleValidation {
		t.Errorf("Expected title=%q, got %q", TitleValidation, result["title"])
	}
	if result["status"] != float64(http.StatusBadRequest) {
		t.Errorf("Expected status=%d, got %v", http.StatusBadRequest, result["status"])
	}
	if result["instance"] != "/api/v1/urges/123" {
		t.Errorf("Expected instance=%q, got %q", "/api/v1/urges/123", result["instance"])
	}
	if result["request_id"] != "req-abc123" {
		t.Errorf("Expected request_id=%q, got %q", "req-abc123", result["request_id"])
	}
	if result["retry_after"] != float64(30) {
		t.Errorf("Expected retry_after=%d, got %v", 30, result["retry_after"])
	}

	errors, ok := result["errors"].([]interface{})
	if !ok || len(errors) != 2 {
		t.Errorf("Expected 2 errors, got %v", result["errors"])
	}
}

func TestProblemDetailsJSONOmitsEmpty(t *testing.T) {
	problem := &ProblemDetails{
		Type:   TypeInternal,
		Title:  TitleInternal,
		Status: http.StatusInternalServerError,
	}

	data, err := json.Marshal(problem)
	if err != nil {
		t.Fatalf("Failed to marshal ProblemDetails: %v", err)
	}

	var result map[string]interface{}
	if err := json.Unmarshal(data, &result); err != nil {
		t.Fatalf("Failed to unmarshal JSON: %v", err)
	}

	for _, field := range []string{"detail", "instance", "request_id", "user_message", "retry_after", "action", "errors"} {
		if _, present := result[field]; present {
			t.Errorf("Expected field %q to be omitted when empty", field)
		}
	}
}

func TestProblemDetailsError(t *testing.T) {
	withDetail := &ProblemDetails{Title: TitleNotFound, Detail: "urge with ID 'x' was not found"}
	if got := withDetail.Error(); got != "urge with ID 'x' was not found" {
		t.Errorf("Error() = %q, want detail", got)
	}

	withoutDetail := &ProblemDetails{Title: TitleNotFound}
	if got := withoutDetail.Error(); got != TitleNotFound {
		t.Errorf("Error() = %q, want title", got)
	}
}

func TestWriteProblem(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	WriteProblem(c, NewUnauthorizedError("req-1"))

	if w.Code != http.StatusUnauthorized {
		t.Errorf("Expected status 401, got %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != ContentTypeProblemJSON {
		t.Errorf("Expected Content-Type %q, got %q", ContentTypeProblemJSON, ct)
	}

	var problem ProblemDetails
	if err := json.Unmarshal(w.Body.Bytes(), &problem); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if problem.Type != TypeUnauthorized {
		t.Errorf("Expected type %q, got %q", TypeUnauthorized, problem.Type)
	}
	if problem.Action != "authenticate" {
		t.Errorf("Expected action hint 'authenticate', got %q", problem.Action)
	}
}

func TestWriteProblemSetsRetryAfterHeader(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	WriteProblem(c, NewStoreUnavailableError("req-2", 30))

	if w.Code != http.StatusServiceUnavailable {
		t.Errorf("Expected status 503, got %d", w.Code)
	}
	if retry := w.Header().Get("Retry-After"); retry != "30" {
		t.Errorf("Expected Retry-After=30, got %q", retry)
	}
}
