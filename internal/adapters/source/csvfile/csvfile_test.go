package csvfile

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"pcaobdash/internal/core/inspection"
	perr "pcaobdash/internal/platform/errors"
)

const sample = `Company,Inspection Report Company,Country,Inspection Year,Inspection Type,Total Issuer Audit Clients,Audits Reviewed,Part I.A Deficiency Rate,word_count,document_sentiment_score,pdf_link
Deloitte,Deloitte & Touche LLP,United States,2019,Inspection,120,12,25%,5000,0.12,https://example.test/a.pdf
2019,Smith CPA,Canada,2019,Inspection,,3,0%,1200,-0.05,https://example.test/b.pdf
`

func TestRows_LoadsThroughNormalizer(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "inspections.csv")
	if err := os.WriteFile(path, []byte(sample), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	src := New(path)
	if src.Name() != "csv:inspections.csv" {
		t.Fatalf("Name() = %q", src.Name())
	}
	ds, err := inspection.Load(context.Background(), src)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	recs := ds.Records()
	if len(recs) != 2 {
		t.Fatalf("records = %d, want 2", len(recs))
	}
	if recs[0].DeficiencyRate != 25 || recs[0].InspectionYear != "2019" {
		t.Fatalf("first record = %+v", recs[0])
	}
	if recs[1].Company != inspection.Sentinel || recs[1].TotalIssuerAuditClients != 0 {
		t.Fatalf("second record = %+v", recs[1])
	}
}

func TestRows_HeaderOnlyAndEmpty(t *testing.T) {
	t.Parallel()

	rows, err := FromReader("empty", strings.NewReader("")).Rows(context.Background())
	if err != nil || rows != nil {
		t.Fatalf("empty input = %v, %v", rows, err)
	}
	rows, err = FromReader("hdr", strings.NewReader("Company,Country\n")).Rows(context.Background())
	if err != nil || len(rows) != 0 {
		t.Fatalf("header only = %v, %v", rows, err)
	}
}

func TestLoad_HeaderOnlyNeedsEveryColumn(t *testing.T) {
	t.Parallel()

	_, err := inspection.Load(context.Background(), FromReader("x.csv", strings.NewReader("Company,Country\n")))
	if !perr.IsCode(err, perr.ErrorCodeMalformedData) {
		t.Fatalf("partial header = %v, want malformed_data", err)
	}

	header := strings.SplitN(sample, "\n", 2)[0] + "\n"
	src := FromReader("hdr.csv", strings.NewReader(header))
	ds, err := inspection.Load(context.Background(), src)
	if err != nil || ds.Len() != 0 {
		t.Fatalf("complete header only = %v, %v", ds.Len(), err)
	}
	if len(src.Columns()) != 11 {
		t.Fatalf("columns = %v", src.Columns())
	}
}

func TestRows_MissingFile(t *testing.T) {
	t.Parallel()

	_, err := New(filepath.Join(t.TempDir(), "nope.csv")).Rows(context.Background())
	if !perr.IsCode(err, perr.ErrorCodeUnavailable) {
		t.Fatalf("err = %v, want unavailable", err)
	}
}

func TestRows_BrokenQuoting(t *testing.T) {
	t.Parallel()

	_, err := FromReader("bad", strings.NewReader("Company\n\"unterminated\n")).Rows(context.Background())
	if !perr.IsCode(err, perr.ErrorCodeMalformedData) {
		t.Fatalf("err = %v, want malformed", err)
	}
}

func TestRows_Canceled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := FromReader("c", strings.NewReader(sample)).Rows(ctx)
	if !perr.IsCode(err, perr.ErrorCodeUnavailable) {
		t.Fatalf("err = %v, want unavailable", err)
	}
}
