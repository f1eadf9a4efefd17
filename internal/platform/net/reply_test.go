package net_test

import (
	"errors"
	"net/http"
	"testing"

	perr "pcaobdash/internal/platform/errors"
	pnet "pcaobdash/internal/platform/net"
)

func TestData(t *testing.T) {
	t.Parallel()

	w := pnet.Data(http.StatusOK, []string{"BDO USA", "RSM US"}, "dash-01/abc-000001")
	if w.StatusCode != 200 || w.Status != "OK" || w.RequestID != "dash-01/abc-000001" || w.Code != 0 || w.Error != "" {
		t.Fatalf("wire = %+v", w)
	}
	if got := w.Data.([]string); len(got) != 2 {
		t.Fatalf("data = %v", w.Data)
	}
}

func TestError(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		err    error
		status int
		code   perr.ErrorCode
		msg    string
	}{
		{"nil", nil, http.StatusOK, perr.ErrorCodeUnknown, ""},
		{"foreign", errors.New("disk full"), http.StatusInternalServerError, perr.ErrorCodeUnknown, "disk full"},
		{"no data", perr.NoDataf("no data available"), http.StatusNotFound, perr.ErrorCodeNoData, "no data available"},
		{"unknown chart", perr.NotFoundf("unknown chart %q", "pie"), http.StatusNotFound, perr.ErrorCodeNotFound, `unknown chart "pie"`},
		{"bad years", perr.InvalidArgf("year 1999 is not available"), http.StatusUnprocessableEntity, perr.ErrorCodeInvalidArgument, "year 1999 is not available"},
		{"reloading", perr.Unavailablef("dataset reloading"), http.StatusServiceUnavailable, perr.ErrorCodeUnavailable, "dataset reloading"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			status, w := pnet.Error(tc.err, "rid")
			if status != tc.status || w.StatusCode != tc.status || w.Status != http.StatusText(tc.status) {
				t.Fatalf("status = %d, wire = %+v", status, w)
			}
			if w.Code != tc.code || w.Error != tc.msg || w.Data != nil || w.RequestID != "rid" {
				t.Fatalf("wire = %+v", w)
			}
		})
	}
}
