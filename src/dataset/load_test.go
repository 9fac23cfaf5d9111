package dataset

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const sampleCSV = `id,state,abbr,poverty,povertyMoe,age,ageMoe,income,incomeMoe,healthcare,healthcareLow,healthcareHigh,obesity,obesityLow,obesityHigh,smokes,smokesLow,smokesHigh
1,Alabama,AL,19.3,0.5,38.6,0.2,42830,598,13.9,12.7,15.1,33.5,32.1,35,21.1,19.7,22.5
2,Alaska,AK,11.2,0.9,33.3,0.3,71583,1784,15,13.3,16.6,29.7,27.8,31.6,19.9,18.2,21.6
4,Arizona,AZ,18.2,0.4,36.9,0.1,50068,645,14.4,13.5,15.4,28.9,27.7,30.1,16.5,15.5,17.6
`

func TestParse_ReadsRequiredColumnsIgnoresExtras(t *testing.T) {
	recs, err := Parse(strings.NewReader(sampleCSV))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(recs) != 3 {
		t.Fatalf("expected 3 records got %d", len(recs))
	}
	al := recs[0]
	if al.State != "Alabama" || al.Abbr != "AL" {
		t.Fatalf("unexpected identity: %+v", al)
	}
	want := map[Metric]float64{Poverty: 19.3, Age: 38.6, Income: 42830, Healthcare: 13.9, Obesity: 33.5, Smokes: 21.1}
	for m, v := range want {
		if got := al.Value(m); got != v {
			t.Fatalf("%s: got %v want %v", m, got, v)
		}
	}
}

func TestParse_NonNumericBecomesNaN(t *testing.T) {
	in := "state,abbr,poverty,age,income,healthcare,obesity,smokes\n" +
		"Nowhere,NW,n/a,40,,12,30,x\n"
	recs, err := Parse(strings.NewReader(in))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	r := recs[0]
	if !math.IsNaN(r.Poverty) || !math.IsNaN(r.Income) || !math.IsNaN(r.Smokes) {
		t.Fatalf("expected NaN for non-numeric cells: %+v", r)
	}
	if r.Age != 40 || r.Obesity != 30 {
		t.Fatalf("numeric cells lost: %+v", r)
	}
	if n := CountNaN(recs, Poverty); n != 1 {
		t.Fatalf("CountNaN poverty = %d", n)
	}
	// an empty cell is missing, not zero
	if r.Income == 0 {
		t.Fatalf("empty income cell read as 0")
	}
}

func TestParse_NonFiniteCellsBecomeNaN(t *testing.T) {
	in := "state,abbr,poverty,age,income,healthcare,obesity,smokes\n" +
		"Nowhere,NW,inf,+Inf,Infinity,0x10,0x1p4,1e999\n" +
		"Elsewhere,EW,-12.5,.5,1e3,NaN,1_000,+7.\n"
	recs, err := Parse(strings.NewReader(in))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	for m := Metric(0); m < numMetrics; m++ {
		if v := recs[0].Value(m); !math.IsNaN(v) {
			t.Fatalf("%s: expected NaN got %v", m, v)
		}
	}
	ok := recs[1]
	if ok.Poverty != -12.5 || ok.Age != 0.5 || ok.Income != 1000 || ok.Smokes != 7 {
		t.Fatalf("decimal cells misread: %+v", ok)
	}
	if !math.IsNaN(ok.Healthcare) || !math.IsNaN(ok.Obesity) {
		t.Fatalf("expected NaN for NaN and underscore cells: %+v", ok)
	}
	lo, hi, ok2 := Extent(recs, Income)
	if !ok2 || lo != 1000 || hi != 1000 {
		t.Fatalf("extent over finite cells: %v %v %v", lo, hi, ok2)
	}
}

func TestParse_ShortRowsAndHeaderCase(t *testing.T) {
	in := "\ufeffState,ABBR,Poverty,Age,Income,Healthcare,Obesity,Smokes\nTexas,TX,15\n"
	recs, err := Parse(strings.NewReader(in))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if recs[0].State != "Texas" || recs[0].Poverty != 15 || !math.IsNaN(recs[0].Smokes) {
		t.Fatalf("unexpected record: %+v", recs[0])
	}
}

func TestParse_Errors(t *testing.T) {
	if _, err := Parse(strings.NewReader("")); !errors.Is(err, ErrNoHeader) {
		t.Fatalf("empty input: want ErrNoHeader got %v", err)
	}
	_, err := Parse(strings.NewReader("state,abbr,poverty,age\nA,AA,1,2\n"))
	if !errors.Is(err, ErrMissingColumn) {
		t.Fatalf("want ErrMissingColumn got %v", err)
	}
	for _, col := range []string{"income", "healthcare", "obesity", "smokes"} {
		if !strings.Contains(err.Error(), col) {
			t.Fatalf("error should name missing column %s: %v", col, err)
		}
	}
}

func TestLoad_MissingFileFails(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.csv")); err == nil {
		t.Fatalf("expected error for missing file")
	}
	p := filepath.Join(t.TempDir(), "data.csv")
	if err := os.WriteFile(p, []byte(sampleCSV), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	recs, err := Load(p)
	if err != nil || len(recs) != 3 {
		t.Fatalf("load: %v (n=%d)", err, len(recs))
	}
}

func TestExtent_SkipsNaN(t *testing.T) {
	recs := []Record{{Poverty: 10}, {Poverty: math.NaN()}, {Poverty: 30}, {Poverty: 20}}
	lo, hi, ok := Extent(recs, Poverty)
	if !ok || lo != 10 || hi != 30 {
		t.Fatalf("extent = %v %v %v", lo, hi, ok)
	}
	if _, _, ok := Extent(nil, Poverty); ok {
		t.Fatalf("empty extent should not be ok")
	}
	if _, _, ok := Extent([]Record{{Age: math.NaN()}}, Age); ok {
		t.Fatalf("all-NaN extent should not be ok")
	}
}
