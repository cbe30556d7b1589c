package pkg

import (
	"errors"
	"net/http"
	"testing"
)

func TestAppError(t *testing.T) {
	t.Run("simple error has no cause", func(t *testing.T) {
		e := NewDomainErrorSimple("NOT_FOUND", "Solicitação não encontrada", http.StatusNotFound)
		if e.Error() != "Solicitação não encontrada" {
			t.Fatalf("unexpected message: %s", e.Error())
		}
		if e.Unwrap() != nil {
			t.Fatalf("expected nil cause")
		}
		body := e.ToHTTPError()
		if body.Code != "NOT_FOUND" || body.Status != http.StatusNotFound {
			t.Fatalf("unexpected body: %+v", body)
		}
	})

	t.Run("wrapped cause is reachable", func(t *testing.T) {
		cause := errors.New("db")
		e := NewDomainError("INTERNAL_ERROR", "An internal error occurred", cause, http.StatusInternalServerError)
		if !errors.Is(e, cause) {
			t.Fatalf("expected errors.Is to reach cause")
		}
		if e.Error() != "An internal error occurred: db" {
			t.Fatalf("unexpected message: %s", e.Error())
		}
	})

	t.Run("zero status falls back to 500", func(t *testing.T) {
		e := &AppError{Code: "X", Message: "x"}
		if e.ToHTTPError().Status != http.StatusInternalServerError {
			t.Fatalf("expected 500")
		}
	})
}
