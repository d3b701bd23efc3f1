package usecase_test

import (
	"strings"
	"testing"

	"app/internal/usecase"
)

// HTTPErrorであること、期待ステータスであることを確認して返す
func assertHTTPStatus(t *testing.T, err error, wantStatus int) *usecase.HTTPError {
	t.Helper()

	he, ok := usecase.AsHTTPError(err)
	if !ok {
		t.Fatalf("want HTTPError, got %v", err)
	}
	if he.Status != wantStatus {
		t.Fatalf("status=%d want=%d (message=%s)", he.Status, wantStatus, he.Message)
	}
	return he
}

// バリデーションエラーが対象フィールドのメッセージを持つことを確認する
func assertFieldError(t *testing.T, err error, field string) {
	t.Helper()

	he := assertHTTPStatus(t, err, 400)
	msg, ok := he.Fields[field]
	if !ok {
		t.Fatalf("no field error for %q: fields=%v", field, he.Fields)
	}
	if !strings.Contains(msg, field) {
		t.Fatalf("field message %q does not mention %q", msg, field)
	}
}
