package errors

import (
	stderrs "errors"
	"fmt"
	"net/http"
	"testing"
)

func TestHTTPStatusCode(t *testing.T) {
	cases := []struct {
		code ErrorCode
		want int
	}{
		{ErrorCodeNotFound, http.StatusNotFound},
		{ErrorCodeNoData, http.StatusNotFound},
		{ErrorCodeInvalidArgument, http.StatusUnprocessableEntity},
		{ErrorCodeValidation, http.StatusBadRequest},
		{ErrorCodeJSON, http.StatusBadRequest},
		{ErrorCodeMalformedData, http.StatusBadRequest},
		{ErrorCodeUnavailable, http.StatusServiceUnavailable},
		{ErrorCodeDB, http.StatusInternalServerError},
		{ErrorCodePanic, http.StatusInternalServerError},
		{ErrorCodeUnknown, http.StatusInternalServerError},
		{9999, http.StatusInternalServerError},
	}
	for _, c := range cases {
		if got := HTTPStatusCode(c.code); got != c.want {
			t.Fatalf("HTTPStatusCode(%v) = %d, want %d", c.code, got, c.want)
		}
	}
}

func TestError_WrapAndWire(t *testing.T) {
	var nilErr *Error
	if nilErr.Error() != "<nil>" {
		t.Fatalf("nil *Error render = %q", nilErr.Error())
	}

	cause := stderrs.New(`strconv.ParseFloat: parsing "n/a": invalid syntax`)
	err := Wrapf(cause, ErrorCodeMalformedData, "row %d: Deficiency Rate", 7)

	if want := `row 7: Deficiency Rate: strconv.ParseFloat: parsing "n/a": invalid syntax`; err.Error() != want {
		t.Fatalf("Error() = %q", err.Error())
	}
	if stderrs.Unwrap(err) != cause || Root(fmt.Errorf("load: %w", err)) != cause {
		t.Fatalf("cause lost")
	}
	if !IsCode(fmt.Errorf("load: %w", err), ErrorCodeMalformedData) {
		t.Fatalf("code lost through fmt wrap")
	}

	// the wire form carries only the message, never the cause
	if w := WireFrom(err); w.Code != ErrorCodeMalformedData || w.Message != "row 7: Deficiency Rate" {
		t.Fatalf("WireFrom = %+v", w)
	}
	if w := WireFrom(cause); w.Code != ErrorCodeUnknown || w.Message != cause.Error() {
		t.Fatalf("WireFrom(foreign) = %+v", w)
	}
	if w := WireFrom(nil); w != (Wire{}) {
		t.Fatalf("WireFrom(nil) = %+v", w)
	}
	if HTTPStatus(cause) != http.StatusInternalServerError || HTTPStatus(err) != http.StatusBadRequest {
		t.Fatalf("HTTPStatus mismatch")
	}
}

func TestError_FieldAndOpAreCopyOnWrite(t *testing.T) {
	base := InvalidArgf("clients_min is not a number")
	withField := WithField(base, "clients_min")
	withOp := WithOp(withField, "pipeline.ParseSelection")

	if e, _ := As(withOp); e.Field() != "clients_min" || e.Op() != "pipeline.ParseSelection" {
		t.Fatalf("field/op = %q/%q", e.Field(), e.Op())
	}
	if e, _ := As(base); e.Field() != "" || e.Op() != "" {
		t.Fatalf("original mutated: %+v", e)
	}
	if WireFrom(withOp).Field != "clients_min" {
		t.Fatalf("field missing from wire")
	}

	foreign := stderrs.New("eof")
	if WithField(foreign, "x") != foreign || WithOp(foreign, "x") != foreign {
		t.Fatalf("foreign errors should pass through")
	}
}

func TestSugarCodes(t *testing.T) {
	cases := map[ErrorCode]error{
		ErrorCodeNotFound:        NotFoundf("chart %q", "nope"),
		ErrorCodeInvalidArgument: InvalidArgf("theme %q", "neon"),
		ErrorCodeDB:              DBf("insert"),
		ErrorCodeJSON:            JSONErrf("empty body"),
		ErrorCodePanic:           PanicErrf("panic recovered"),
		ErrorCodeUnavailable:     Unavailablef("clickhouse down"),
		ErrorCodeUnknown:         Internalf("session cookie not configured"),
		ErrorCodeMalformedData:   Malformedf("missing required columns"),
		ErrorCodeNoData:          NoDataf("no reports match"),
	}
	for code, err := range cases {
		if CodeOf(err) != code {
			t.Fatalf("%v: CodeOf = %v", err, CodeOf(err))
		}
	}
	if got := ErrorCodeNoData.String(); got != "no_data" {
		t.Fatalf("String() = %q", got)
	}
	if got := ErrorCode(999).String(); got != "code(999)" {
		t.Fatalf("String() = %q", got)
	}
}
