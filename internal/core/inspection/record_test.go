package inspection

import "testing"

func TestLookupColumn(t *testing.T) {
	cases := map[string]Column{
		"Company":                    ColCompany,
		"inspection_year":            ColInspectionYear,
		"INSPECTION YEAR":            ColInspectionYear,
		"Part I.A Deficiency Rate":   ColDeficiencyRate,
		"part_i_a_deficiency_rate":   ColDeficiencyRate,
		"Word Count":                 ColWordCount,
		"document-sentiment-score":   ColSentiment,
		" Inspection Report Company": ColFirmName,
	}
	for in, want := range cases {
		got, ok := LookupColumn(in)
		if !ok || got != want {
			t.Fatalf("LookupColumn(%q) = %q,%v want %q", in, got, ok, want)
		}
	}
	if _, ok := LookupColumn("Unnamed: 0"); ok {
		t.Fatalf("unknown header matched")
	}
}

func TestColumns_Required(t *testing.T) {
	var optional []Column
	for _, c := range Columns() {
		if !c.Required() {
			optional = append(optional, c)
		}
	}
	if len(optional) != 2 || optional[0] != ColClients || optional[1] != ColReportDate {
		t.Fatalf("optional columns = %v", optional)
	}
}

func TestRawValue_String(t *testing.T) {
	if got := Number(2015.0).String(); got != "2015" {
		t.Fatalf("Number(2015).String() = %q", got)
	}
	if got := Number(3.5).String(); got != "3.5" {
		t.Fatalf("Number(3.5).String() = %q", got)
	}
	if got := Null().String(); got != "" {
		t.Fatalf("Null().String() = %q", got)
	}
	if _, ok := Null().Float(); ok {
		t.Fatalf("Null().Float() ok")
	}
}
